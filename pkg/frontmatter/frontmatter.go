// Package frontmatter provides utilities for parsing and formatting
// YAML frontmatter in markdown files.
package frontmatter

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Document is a markdown file split into its frontmatter mapping and body.
type Document struct {
	// Metadata holds the decoded frontmatter. It is never nil.
	Metadata map[string]any

	// Body is everything after the closing delimiter, or the whole input
	// when no usable frontmatter was found.
	Body string
}

// Parse splits content into frontmatter metadata and body.
//
// Parse never fails. If the content does not start with a "---" line, has no
// closing "---" line, or the block between them is not a YAML mapping, the
// returned Document has empty Metadata and the entire original content as
// Body.
func Parse(content []byte) Document {
	fallback := Document{Metadata: map[string]any{}, Body: string(content)}

	block, body, ok := split(content)
	if !ok {
		return fallback
	}

	var node yaml.Node
	if err := yaml.Unmarshal(block, &node); err != nil {
		return fallback
	}

	// An empty block decodes to a zero node, which is an empty mapping.
	if node.Kind == 0 {
		return Document{Metadata: map[string]any{}, Body: string(body)}
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return fallback
	}

	meta := map[string]any{}
	if err := node.Decode(&meta); err != nil {
		return fallback
	}
	return Document{Metadata: meta, Body: string(body)}
}

// split locates the frontmatter block. Both LF and CRLF line endings are
// accepted. The body starts right after the newline that ends the closing
// delimiter line.
func split(content []byte) (block, body []byte, ok bool) {
	var rest []byte
	switch {
	case bytes.HasPrefix(content, []byte("---\n")):
		rest = content[4:]
	case bytes.HasPrefix(content, []byte("---\r\n")):
		rest = content[5:]
	default:
		return nil, nil, false
	}

	// Closing delimiter directly after the opening one: empty block.
	if end, ok := closingLine(rest); ok {
		return nil, rest[end:], true
	}

	offset := 0
	for {
		idx := bytes.IndexByte(rest[offset:], '\n')
		if idx < 0 {
			return nil, nil, false
		}
		lineStart := offset + idx + 1
		if end, ok := closingLine(rest[lineStart:]); ok {
			block = bytes.TrimSuffix(rest[:offset+idx], []byte("\r"))
			return block, rest[lineStart+end:], true
		}
		offset = lineStart
	}
}

// closingLine reports whether b starts with a "---" line terminated by a
// newline or the end of input and returns the length of that line including
// the terminator.
func closingLine(b []byte) (int, bool) {
	if !bytes.HasPrefix(b, []byte(delimiter)) {
		return 0, false
	}
	tail := b[len(delimiter):]
	switch {
	case len(tail) == 0:
		return len(delimiter), true
	case bytes.HasPrefix(tail, []byte("\n")):
		return len(delimiter) + 1, true
	case bytes.HasPrefix(tail, []byte("\r\n")):
		return len(delimiter) + 2, true
	}
	return 0, false
}

// String returns the metadata value for key when it is a non-empty string.
func (d Document) String(key string) string {
	if d.Metadata == nil {
		return ""
	}
	s, ok := d.Metadata[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Decode re-decodes the metadata mapping into out, which must be a pointer.
// Types implementing yaml.Unmarshaler (such as tool lists) see the original
// YAML shape.
func (d Document) Decode(out any) error {
	if len(d.Metadata) == 0 {
		return nil
	}
	data, err := yaml.Marshal(d.Metadata)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

// Format formats content with YAML frontmatter.
// The matter struct is serialized to YAML and wrapped in "---" delimiters,
// followed by the body content.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, err
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
