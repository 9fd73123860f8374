// Package placeholder implements $placeholder substitution for template
// documents.
//
// Placeholders are declared on the second line of a document, prefixed with
// the placeholder symbol and separated by spaces:
//
//	Prepare luggage for $Destination:
//		$Destination $date
//		- Pack @due($date)
//
// Substitution removes the declaration line and replaces every occurrence
// of $name in the remaining text. A document without a declaration line
// passes through untouched.
package placeholder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/villert/popthings/internal/apperr"
)

// DefaultSymbol is the placeholder prefix used unless configured otherwise.
const DefaultSymbol = "$"

// Names returns the placeholder names declared on the second line of text,
// in declaration order. It returns nil when there is no declaration line.
func Names(text, symbol string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil
	}
	decl := strings.TrimSpace(lines[1])
	if !strings.HasPrefix(decl, symbol) {
		return nil
	}

	var names []string
	for _, name := range strings.Split(decl, symbol) {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Apply substitutes the declared placeholders with the given values and
// drops the declaration line. Every declared name must have a value;
// a missing one aborts with apperr.ErrPlaceholder.
func Apply(text, symbol string, values map[string]string) (string, error) {
	names := Names(text, symbol)
	if names == nil {
		return text, nil
	}

	lines := strings.Split(text, "\n")
	out := strings.Join(append(lines[:1:1], lines[2:]...), "\n")
	for _, name := range names {
		value, ok := values[name]
		if !ok {
			return "", fmt.Errorf("placeholder: no value for %s%s: %w", symbol, name, apperr.ErrPlaceholder)
		}
		out = strings.ReplaceAll(out, symbol+name, value)
	}
	return out, nil
}

// Prompt asks for a value for each name, reading answers line by line.
// It backs the interactive CLI flow; non-interactive callers pass a value
// map to Apply directly.
func Prompt(names []string, in io.Reader, out io.Writer) (map[string]string, error) {
	values := make(map[string]string, len(names))
	r := bufio.NewReader(in)
	for _, name := range names {
		fmt.Fprintf(out, "%s value? ", capitalize(name))
		answer, err := r.ReadString('\n')
		if err != nil && answer == "" {
			return nil, fmt.Errorf("placeholder: read value for %s: %w", name, err)
		}
		values[name] = strings.TrimRight(answer, "\r\n")
	}
	return values, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
