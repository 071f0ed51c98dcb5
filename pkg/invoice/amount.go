// pkg/invoice/amount.go

package invoice

import (
	"encoding/json"
	"math"
	"strconv"
)

// Amount is a number that may be absent. An absent amount is not the same
// as a present zero: absent means the line does not apply and is left off
// the document, zero means it applies and is shown with a zero value.
//
// Amount implements json.Marshaler and json.Unmarshaler; absent encodes as
// null, and both null and a missing key decode as absent.
type Amount struct {
	value float64
	valid bool
}

// Some returns a present amount.
func Some(v float64) Amount {
	return Amount{value: v, valid: true}
}

// None returns an absent amount.
func None() Amount {
	return Amount{}
}

// Get returns the value and whether it is present.
func (a Amount) Get() (float64, bool) {
	return a.value, a.valid
}

// IsSet reports whether the amount is present.
func (a Amount) IsSet() bool {
	return a.valid
}

// Or returns the value, or fallback if the amount is absent.
func (a Amount) Or(fallback float64) float64 {
	if !a.valid {
		return fallback
	}
	return a.value
}

// Neutral is the value used in arithmetic: absent and NaN count as zero.
func (a Amount) Neutral() float64 {
	if !a.valid || math.IsNaN(a.value) {
		return 0
	}
	return a.value
}

func (a Amount) String() string {
	if !a.valid {
		return "<none>"
	}
	return strconv.FormatFloat(a.value, 'f', -1, 64)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Amount{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = Some(v)
	return nil
}
