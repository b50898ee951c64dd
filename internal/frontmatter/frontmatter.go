package frontmatter

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// Frontmatter is a YAML block delimited by `---` lines at the very start of a
// markdown document. Book content is user-authored and frequently malformed,
// so nothing in this package returns an error: a document without a valid
// block simply has no frontmatter.

var delimiter = []byte("---")

// Split separates a leading frontmatter block from the document body.
// If the document does not start with a delimiter line, or the closing
// delimiter is missing, had is false and body is the full input.
func Split(content []byte) (fm, body []byte, had bool) {
	rest, ok := cutDelimiterLine(content)
	if !ok {
		return nil, content, false
	}

	// Closing delimiter immediately after the opener: empty block
	if after, ok := cutDelimiterLine(rest); ok {
		return []byte{}, after, true
	}

	offset := 0
	for offset < len(rest) {
		idx := bytes.IndexByte(rest[offset:], '\n')
		if idx < 0 {
			break
		}
		lineStart := offset + idx + 1
		if after, ok := cutDelimiterLine(rest[lineStart:]); ok {
			return rest[:lineStart], after, true
		}
		offset = lineStart
	}

	return nil, content, false
}

// cutDelimiterLine consumes a `---` line (trailing spaces and CR tolerated)
// from the start of content, returning the remainder
func cutDelimiterLine(content []byte) ([]byte, bool) {
	if !bytes.HasPrefix(content, delimiter) {
		return nil, false
	}
	rest := content[len(delimiter):]

	idx := bytes.IndexByte(rest, '\n')
	var line, after []byte
	if idx < 0 {
		line, after = rest, nil
	} else {
		line, after = rest[:idx], rest[idx+1:]
	}

	if len(bytes.TrimRight(line, " \t\r")) != 0 {
		return nil, false
	}
	return after, true
}

// Parse unmarshals a raw frontmatter block into a map. Invalid YAML, or YAML
// that is not a mapping, yields (nil, false).
func Parse(fm []byte) (map[string]any, bool) {
	if len(fm) == 0 {
		return map[string]any{}, true
	}

	var fields map[string]any
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return nil, false
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, true
}

// Extract splits and parses in one step. The returned map is nil when the
// document has no frontmatter or the block fails to parse; body is always
// the content with any well-formed block removed.
func Extract(content []byte) (map[string]any, []byte) {
	fm, body, had := Split(content)
	if !had {
		return nil, body
	}

	fields, ok := Parse(fm)
	if !ok {
		return nil, body
	}
	return fields, body
}
