package reference

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// CodeLength is the fixed length of every book code.
const CodeLength = 3

var (
	ErrEmptyName     = errors.New("reference: empty book name")
	ErrInvalidCode   = errors.New("reference: invalid book code")
	ErrDuplicateName = errors.New("reference: duplicate book name")
	ErrEmptyTable    = errors.New("reference: empty table")
)

var reCode = regexp.MustCompile(`^[0-9A-Za-z]{3}$`)

//go:embed books.yaml
var defaultBooks []byte

// Entry maps one book name (canonical or alias) to its code.
type Entry struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// Table is an ordered, validated set of entries. It is read-only after
// construction and safe for concurrent use.
type Table struct {
	entries []Entry
	byName  map[string]Entry
}

// NewTable validates entries and builds a Table. Names are trimmed and
// compared case-insensitively.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]Entry, len(entries)),
	}
	for i, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		e.Code = strings.TrimSpace(e.Code)
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if !reCode.MatchString(e.Code) {
			return nil, fmt.Errorf("entry %d (%s): %w: %q", i, e.Name, ErrInvalidCode, e.Code)
		}
		key := strings.ToLower(e.Name)
		if _, ok := t.byName[key]; ok {
			return nil, fmt.Errorf("entry %d: %w: %q", i, ErrDuplicateName, e.Name)
		}
		t.byName[key] = e
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// ParseTable decodes a YAML sequence of {name, code} entries.
func ParseTable(data []byte) (*Table, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}
	return NewTable(entries)
}

// LoadTable reads a YAML table from disk.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	return ParseTable(data)
}

// DefaultTable returns the built-in table of the 66 books of the Protestant
// canon plus ordinal-word aliases ("first Samuel", "third John", ...).
func DefaultTable() *Table {
	t, err := ParseTable(defaultBooks)
	if err != nil {
		panic(fmt.Sprintf("reference: embedded table: %v", err))
	}
	return t
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup finds an entry by name, ignoring case.
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}
