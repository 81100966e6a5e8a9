package domain

import (
	"fmt"
	"strings"
)

// Attributes holds the schema-less part of a document.
type Attributes map[string]interface{}

// Keys that name the document identifier; they are never stored as attributes.
var reservedKeys = map[string]struct{}{
	"_id": {},
	"id":  {},
}

// IsReserved reports whether key names the document identifier.
func IsReserved(key string) bool {
	_, ok := reservedKeys[key]
	return ok
}

// ValidKey reports whether key can be stored as a top-level attribute:
// non-empty, not an operator ("$set") and not a path ("a.b").
func ValidKey(key string) bool {
	return key != "" && !strings.HasPrefix(key, "$") && !strings.Contains(key, ".")
}

// Clean returns a copy of a without identifier keys. It fails on the first
// key ValidKey rejects.
func (a Attributes) Clean() (Attributes, error) {
	out := make(Attributes, len(a))
	for k, v := range a {
		if IsReserved(k) {
			continue
		}
		if !ValidKey(k) {
			return nil, fmt.Errorf("invalid attribute key %q", k)
		}
		out[k] = v
	}
	return out, nil
}
