package llm

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSONObject is returned when a response holds no complete JSON object.
var ErrNoJSONObject = errors.New("no JSON object found in response")

// ErrJSONArray is returned when the first object sits inside a JSON array.
var ErrJSONArray = errors.New("response is a JSON array, not an object")

// fenceLine matches a markdown code-fence line such as "```json" or "```".
var fenceLine = regexp.MustCompile("(?m)^[ \t]*`{3,}[A-Za-z0-9_+-]*[ \t]*\r?$")

// ExtractJSONObject pulls the first balanced top-level {...} span out of
// model text. Code-fence lines are dropped first; prose before and after
// the object is ignored. Braces inside JSON strings do not count. An object
// that is an element of an array is rejected with ErrJSONArray.
func ExtractJSONObject(text string) (string, error) {
	text = fenceLine.ReplaceAllString(text, "")

	if strings.HasPrefix(strings.TrimSpace(text), "[") {
		return "", ErrJSONArray
	}
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", ErrNoJSONObject
	}
	if strings.HasSuffix(strings.TrimRight(text[:start], " \t\r\n"), "[") {
		return "", ErrJSONArray
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", ErrNoJSONObject
}
