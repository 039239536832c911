// Package input reads problem instances from text.
//
// Two formats are accepted:
//
//	stdin form:  "n\n a1 a2 ... an\n" (whitespace separated, two lines)
//	list form:   "a1, a2, ..., an" (commas and/or whitespace)
//
// Shape checks (len == n) are left to shortcut.FromInput so that every
// boundary reports the same error.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrMalformed indicates text that is not a well-formed instance.
	ErrMalformed = errors.New("input: malformed")

	// ErrEmptyList indicates a shortcut list with no values.
	ErrEmptyList = errors.New("input: shortcut list is empty")
)

// maxLine bounds a single input line (a million 7-digit values fits).
const maxLine = 16 << 20

// ReadProblem reads n from the first line and the shortcut map from the
// second. Extra trailing lines are ignored.
func ReadProblem(r io.Reader) (int, []int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)

	first, ok := nextLine(sc)
	if !ok {
		return 0, nil, scanErr(sc, "missing intersection count")
	}
	n, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: intersection count %q is not an integer", ErrMalformed, strings.TrimSpace(first))
	}

	second, ok := nextLine(sc)
	if !ok {
		if err := sc.Err(); err != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		// A missing second line reads as no shortcuts. shortcut.Validate then
		// reports ErrShapeMismatch for n >= 1 and ErrEmptyNetwork otherwise.
		return n, []int{}, nil
	}
	shortcuts, err := parseFields(strings.Fields(second))
	if err != nil {
		return 0, nil, err
	}

	return n, shortcuts, nil
}

// ParseList parses a comma and/or whitespace separated list of integers.
func ParseList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, ErrEmptyList
	}

	return parseFields(fields)
}

// FormatDistances joins distances with single spaces, the stdout format.
func FormatDistances(dist []int) string {
	var b strings.Builder
	for i, d := range dist {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(d))
	}

	return b.String()
}

// FormatPath renders zero-based nodes as a 1-based route "1 -> 4 -> 7".
func FormatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v + 1)
	}

	return strings.Join(parts, " -> ")
}

func parseFields(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d (%q) is not an integer", ErrMalformed, i+1, f)
		}
		out[i] = v
	}

	return out, nil
}

// nextLine skips blank lines.
func nextLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			return line, true
		}
	}

	return "", false
}

func scanErr(sc *bufio.Scanner, msg string) error {
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, msg, err)
	}

	return fmt.Errorf("%w: %s", ErrMalformed, msg)
}
