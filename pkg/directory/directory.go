// pkg/directory/directory.go

// Package directory holds the static lookup tables a form consults to
// pre-fill a record: companies (logo, marks, issuer block) and signers.
// The renderer never reads them.
package directory

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/invoice-generator/pkg/invoice"
)

var (
	ErrUnknownCompany = errors.New("directory: unknown company")
	ErrUnknownUser    = errors.New("directory: unknown user")
)

// Company is an issuer the form can select.
type Company struct {
	Name           string `yaml:"name" json:"name"`
	Logo           string `yaml:"logo" json:"logo"`
	Marks          string `yaml:"marks" json:"marks"`
	AdditionalInfo string `yaml:"additional_info" json:"additionalInfo"`
}

// User is a person who can sign documents.
type User struct {
	Name        string `yaml:"name" json:"name"`
	Email       string `yaml:"email" json:"email"`
	Phone       string `yaml:"phone" json:"phone"`
	CountryCode string `yaml:"country_code" json:"countryCode"`
	Signature   string `yaml:"signature" json:"signature"`
}

// Directory is an immutable set of companies and users.
type Directory struct {
	companies []Company
	users     []User
}

type file struct {
	Companies []Company `yaml:"companies"`
	Users     []User    `yaml:"users"`
}

// New builds a directory. Names must be unique and non-empty within each
// list.
func New(companies []Company, users []User) (*Directory, error) {
	seen := map[string]bool{}
	for i, c := range companies {
		if c.Name == "" {
			return nil, fmt.Errorf("directory: company %d has no name", i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("directory: duplicate company %q", c.Name)
		}
		seen[c.Name] = true
	}
	clear(seen)
	for i, u := range users {
		if u.Name == "" {
			return nil, fmt.Errorf("directory: user %d has no name", i)
		}
		if seen[u.Name] {
			return nil, fmt.Errorf("directory: duplicate user %q", u.Name)
		}
		seen[u.Name] = true
	}
	return &Directory{
		companies: slices.Clone(companies),
		users:     slices.Clone(users),
	}, nil
}

// Parse reads a YAML directory with top-level "companies" and "users" lists.
func Parse(data []byte) (*Directory, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("directory: %w", err)
	}
	return New(f.Companies, f.Users)
}

// Load reads a directory file. An empty path returns the built-in
// directory.
func Load(path string) (*Directory, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("directory: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Marshal encodes d in the format Parse reads.
func (d *Directory) Marshal() ([]byte, error) {
	return yaml.Marshal(file{Companies: d.companies, Users: d.users})
}

func (d *Directory) Companies() []Company {
	return slices.Clone(d.companies)
}

func (d *Directory) Users() []User {
	return slices.Clone(d.users)
}

func (d *Directory) Company(name string) (Company, error) {
	i := slices.IndexFunc(d.companies, func(c Company) bool { return c.Name == name })
	if i < 0 {
		return Company{}, fmt.Errorf("%w %q", ErrUnknownCompany, name)
	}
	return d.companies[i], nil
}

func (d *Directory) User(name string) (User, error) {
	i := slices.IndexFunc(d.users, func(u User) bool { return u.Name == name })
	if i < 0 {
		return User{}, fmt.Errorf("%w %q", ErrUnknownUser, name)
	}
	return d.users[i], nil
}

// ImageHosts lists, sorted and without duplicates, the hosts of every
// http(s) logo and signature in d.
func (d *Directory) ImageHosts() []string {
	var refs []string
	for _, c := range d.companies {
		refs = append(refs, c.Logo)
	}
	for _, u := range d.users {
		refs = append(refs, u.Signature)
	}
	var hosts []string
	for _, ref := range refs {
		if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
			continue
		}
		if u, err := url.Parse(ref); err == nil && u.Hostname() != "" {
			hosts = append(hosts, strings.ToLower(u.Hostname()))
		}
	}
	slices.Sort(hosts)
	return slices.Compact(hosts)
}

// ApplyCompany fills the logo, marks and additional info from c.
func ApplyCompany(c Company) invoice.Edit {
	return func(r invoice.Record) invoice.Record {
		r.Logo = c.Logo
		r.Marks = c.Marks
		r.AdditionalInfo = c.AdditionalInfo
		return r
	}
}

// ApplyUser sets u as the signer.
func ApplyUser(u User) invoice.Edit {
	return invoice.SetSignature(u.Signature, u.Name)
}
