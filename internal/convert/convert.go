// Package convert wires the parsing pipeline into a single document-to-JSON
// transform: classify lines, build the tree, assemble Things objects, and
// serialize them.
package convert

import (
	"encoding/json"
	"fmt"

	"github.com/villert/popthings/internal/taskpaper"
	"github.com/villert/popthings/internal/things"
)

// Result is the outcome of converting one document.
type Result struct {
	Projects []*things.Project
	JSON     []byte
	URL      string
}

// Document converts an entire template document. The transform is pure and
// deterministic: identical input text yields identical JSON bytes. Any
// failure aborts the conversion; there is no partial output.
func Document(text string) (*Result, error) {
	tree := taskpaper.Parse(text)
	projects, err := things.FromTree(tree)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(projects)
	if err != nil {
		return nil, fmt.Errorf("convert: encode payload: %w", err)
	}

	return &Result{
		Projects: projects,
		JSON:     payload,
		URL:      things.URL(payload),
	}, nil
}

// Counts returns the number of projects and to-dos in the result, used for
// logging and the conversion history.
func (r *Result) Counts() (projects, todos int) {
	projects = len(r.Projects)
	for _, p := range r.Projects {
		for _, item := range p.Items {
			if _, ok := item.(*things.ToDo); ok {
				todos++
			}
		}
	}
	return projects, todos
}
