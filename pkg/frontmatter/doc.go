// Package frontmatter provides best-effort parsing of YAML frontmatter from
// the Markdown files that make up Claude agents, skills and plugins.
//
// Frontmatter is delimited by lines containing only "---" at the start and end.
// The content between delimiters is parsed as a YAML mapping. The remaining
// content after the closing delimiter is returned as the body.
//
// # Basic Usage
//
//	doc := frontmatter.Parse(data)
//	name := doc.String("name")
//	fmt.Printf("Agent: %s\nPrompt:\n%s", name, doc.Body)
//
// # Passthrough
//
// [Parse] never returns an error. Documents without frontmatter, with an
// unterminated block, or with YAML that is not a mapping come back with empty
// metadata and the whole input as the body, so callers can always fall back
// to treating the file as plain markdown.
//
// # Formatting
//
// [Format] is the inverse used when writing skills: it encodes a value as a
// YAML header and appends the body. Parsing the result yields the same
// metadata mapping.
//
// Both Unix (LF) and Windows (CRLF) line endings are handled.
package frontmatter
