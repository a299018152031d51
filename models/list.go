package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const listSeparator = ", "

type listKind uint8

const (
	listNone listKind = iota
	listItems
	listCSV
)

// ListInput is either an ordered sequence of strings or a single
// comma-separated string. The zero value is an absent list.
type ListInput struct {
	kind  listKind
	items []string
	csv   string
}

// ListOf builds a ListInput from individual items.
func ListOf(items ...string) ListInput {
	return ListInput{kind: listItems, items: items}
}

// CSV builds a ListInput from a comma-separated string.
func CSV(s string) ListInput {
	return ListInput{kind: listCSV, csv: s}
}

// Normalize returns the canonical form: items trimmed, empty items dropped,
// remaining items joined with ", " in input order. Absent input yields "".
func (l ListInput) Normalize() string {
	switch l.kind {
	case listItems:
		// an item may itself carry commas; the stored form cannot tell them apart
		return NormalizeCSV(strings.Join(l.items, ","))
	case listCSV:
		return NormalizeCSV(l.csv)
	default:
		return ""
	}
}

// UnmarshalJSON accepts a JSON string, an array of strings or null.
func (l *ListInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*l = ListInput{}
		return nil
	case data[0] == '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("list input: %w", err)
		}
		*l = ListOf(items...)
		return nil
	default:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("list input: %w", err)
		}
		*l = CSV(s)
		return nil
	}
}

// MarshalJSON writes the canonical string form.
func (l ListInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Normalize())
}

// NormalizeCSV puts a comma-separated string into canonical form.
func NormalizeCSV(s string) string {
	return joinCanonical(strings.Split(s, ","))
}

func joinCanonical(items []string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			kept = append(kept, item)
		}
	}
	return strings.Join(kept, listSeparator)
}

func splitCanonical(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSeparator)
}
