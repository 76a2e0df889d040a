package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// StringList is an ordered sequence of opaque strings (ingredients, instructions).
// It is stored as a JSON array in a text column; this type is the only reader and
// writer of those columns, so every record uses the same encoding.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
}

// StringSet is an unordered set of strings (tags). Stored as a sorted, deduplicated
// JSON array so equal sets always serialize identically.
type StringSet []string

// NewStringSet deduplicates and sorts values, dropping empty strings.
func NewStringSet(values []string) StringSet {
	seen := make(map[string]struct{}, len(values))
	set := make(StringSet, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		set = append(set, v)
	}
	sort.Strings(set)
	return set
}

func (s StringSet) Contains(value string) bool {
	for _, v := range s {
		if v == value {
			return true
		}
	}
	return false
}

func (s StringSet) Value() (driver.Value, error) {
	b, err := json.Marshal([]string(NewStringSet(s)))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringSet) Scan(src interface{}) error {
	var raw []string
	switch v := src.(type) {
	case nil:
		*s = StringSet{}
		return nil
	case []byte:
		if err := json.Unmarshal(v, &raw); err != nil {
			return err
		}
	case string:
		if err := json.Unmarshal([]byte(v), &raw); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported type %T for StringSet", src)
	}
	*s = NewStringSet(raw)
	return nil
}
