// pkg/invoice/file.go

package invoice

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Decode parses a record from YAML or JSON. Field names are the JSON names
// of Record in both formats.
func Decode(data []byte) (Record, error) {
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("decode invoice: %w", err)
	}
	return r, nil
}

// ReadFile reads a record file.
func ReadFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, err
	}
	r, err := Decode(data)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Encode renders r as YAML.
func Encode(r Record) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode invoice: %w", err)
	}
	return data, nil
}
