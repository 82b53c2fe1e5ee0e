package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const separator = "---\n"

// Document is a markdown file made of YAML frontmatter, a heading and a bullet list.
type Document struct {
	Meta    any
	Heading string
	Items   []string
}

// Render writes meta as frontmatter. Items are flattened to a single line each.
func Render(doc Document) (string, error) {
	raw, err := yaml.Marshal(doc.Meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf := bytes.Buffer{}
	buf.WriteString(separator)
	buf.Write(raw)
	buf.WriteString(separator)
	buf.WriteString("\n")
	if doc.Heading != "" {
		fmt.Fprintf(&buf, "# %s\n\n", doc.Heading)
	}
	for _, item := range doc.Items {
		item = strings.Join(strings.Fields(item), " ")
		if item == "" {
			continue
		}
		buf.WriteString("- ")
		buf.WriteString(item)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

// Parse splits content into decoded frontmatter and the remaining body.
// Content without frontmatter yields empty meta.
func Parse(content string) (map[string]any, string, error) {
	if !strings.HasPrefix(content, separator) {
		return map[string]any{}, content, nil
	}
	rest := strings.TrimPrefix(content, separator)
	raw, body, ok := strings.Cut(rest, "\n"+separator)
	if !ok {
		return nil, "", fmt.Errorf("invalid frontmatter: missing closing separator")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return meta, body, nil
}
