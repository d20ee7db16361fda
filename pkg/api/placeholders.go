package api

import (
	"fmt"
	"regexp"
)

var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Placeholders returns the identifiers referenced as ${id} in s, in order
// of appearance, duplicates included.
func Placeholders(s string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}

// Expand substitutes every ${id} in s with vars[id]. Substitution is a
// single textual pass: a substituted value is never rescanned for
// placeholders. An identifier absent from vars yields ErrUnboundVariable.
func Expand(s string, vars map[string]string) (string, error) {
	var missing string
	expanded := placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		id := match[2 : len(match)-1]
		value, ok := vars[id]
		if !ok {
			if missing == "" {
				missing = id
			}
			return match
		}
		return value
	})
	if missing != "" {
		return "", fmt.Errorf("%w: ${%s}", ErrUnboundVariable, missing)
	}
	return expanded, nil
}
