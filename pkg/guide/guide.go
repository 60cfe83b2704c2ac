// Package guide holds the user documentation shown by the guide command.
package guide

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/ansiprint/pkg/errors"
)

//go:embed topics/*.md
var topicsFS embed.FS

// DefaultTopic is shown when no topic is named.
const DefaultTopic = "markup"

// Topics lists the available topic names, sorted.
func Topics() []string {
	entries, _ := fs.ReadDir(topicsFS, "topics")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Content returns a topic's raw markdown.
func Content(topic string) (string, error) {
	data, err := topicsFS.ReadFile(path.Join("topics", strings.ToLower(topic)+".md"))
	if err != nil {
		return "", errors.Newf(errors.ErrNotFound, "no guide topic %q (available: %s)",
			topic, strings.Join(Topics(), ", ")).WithDetail("topic", topic)
	}
	return string(data), nil
}

// Renderer turns topic markdown into terminal output with glamour.
type Renderer struct {
	Style string // glamour style name: "dark", "light", "notty" or "auto"
	Width int    // word wrap column, 0 for glamour's default
}

// Render returns the styled topic. If glamour fails the raw markdown is
// returned.
func (r *Renderer) Render(topic string) (string, error) {
	content, err := Content(topic)
	if err != nil {
		return "", err
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStandardStyle(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content, nil
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content, nil
	}
	return rendered, nil
}
