package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// StringList is a list field the API is inconsistent about: papers imported
// from different sources carry authors and tags either as a JSON array or as
// one comma-separated string. Both decode to trimmed, non-empty items.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		*l = nil
		return nil
	}

	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*l = NormalizeList(arr...)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*l = NormalizeList(strings.Split(s, ",")...)
	return nil
}

// NormalizeList trims every item and drops empty ones.
func NormalizeList(items ...string) StringList {
	out := make(StringList, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// String joins the list for display; long author lists are shortened to
// the first three followed by "et al.".
func (l StringList) String() string {
	if len(l) > 3 {
		return strings.Join(l[:3], ", ") + " et al."
	}
	return strings.Join(l, ", ")
}
