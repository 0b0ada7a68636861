// Package matcher filters text line by line: literal substring, case-insensitive substring or regexp
package matcher

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// ErrPattern is returned when a regexp pattern fails to compile.
var ErrPattern = errors.New("invalid regex pattern")

// RegexHint is shown to the user next to ErrPattern.
const RegexHint = "Hint: check the regex syntax, see https://github.com/google/re2/wiki/Syntax"

// Lines splits contents into lines. Returned strings share memory with contents.
// A trailing "\r" is dropped and a final line break does not add an empty line.
func Lines(contents string) []string {
	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	for len(contents) > 0 {
		line := contents
		i := strings.IndexByte(contents, '\n')
		if i >= 0 {
			line, contents = contents[:i], contents[i+1:]
		} else {
			contents = ""
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}

// Search returns lines containing query. Empty query matches every line.
func Search(query, contents string) []string {
	return filter(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive compares lower-cased copies of query and line.
// strings.ToLower is a simple per-rune mapping, not locale-aware case folding.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	return filter(contents, func(line string) bool {
		return strings.Contains(strings.ToLower(line), query)
	})
}

// SearchRegex compiles pattern once and returns lines where it matches anywhere.
func SearchRegex(pattern, contents string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPattern, err)
	}
	return filter(contents, re.MatchString), nil
}

// Find runs the matcher selected by mode.
func Find(mode model.SearchMode, query, contents string) ([]string, error) {
	switch mode {
	case model.ModeIgnoreCase:
		return SearchCaseInsensitive(query, contents), nil
	case model.ModeRegex:
		return SearchRegex(query, contents)
	default:
		return Search(query, contents), nil
	}
}

func filter(contents string, match func(string) bool) []string {
	result := []string{}
	for _, line := range Lines(contents) {
		if match(line) {
			result = append(result, line)
		}
	}
	return result
}
