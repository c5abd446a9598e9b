// Package learner owns learner identity and the preference profile that
// adapts quizzes and chat to how a learner studies best.
package learner

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyName is returned when a learner name has no usable characters.
var ErrEmptyName = errors.New("learner name is empty")

// Profile maps a preference dimension (for example "content_formats") to a
// free-form value. It is derived once from the intake interview and is not
// edited afterwards.
type Profile map[string]any

// JSON returns the profile as indented JSON. A nil profile renders as {}.
func (p Profile) JSON() string {
	if p == nil {
		return "{}"
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Key turns a learner name into the storage key for their profile and
// transcript: lowercase letters, digits and hyphens, with runs of
// anything else collapsed to a single underscore.
func Key(name string) (string, error) {
	var b strings.Builder
	sep := false
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			sep = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		sep = true
	}
	if b.Len() == 0 {
		return "", ErrEmptyName
	}
	return b.String(), nil
}
