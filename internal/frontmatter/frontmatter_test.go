package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		had      bool
		fm       string
		body     string
	}{
		{
			name:  "basic block",
			input: "---\ntitle: Test\n---\nbody\n",
			had:   true,
			fm:    "title: Test\n",
			body:  "body\n",
		},
		{
			name:  "empty block",
			input: "---\n---\nbody\n",
			had:   true,
			fm:    "",
			body:  "body\n",
		},
		{
			name:  "no frontmatter",
			input: "# Heading\nbody\n",
			had:   false,
			body:  "# Heading\nbody\n",
		},
		{
			name:  "missing closing delimiter",
			input: "---\ntitle: Test\nbody without end\n",
			had:   false,
			body:  "---\ntitle: Test\nbody without end\n",
		},
		{
			name:  "delimiter with trailing spaces",
			input: "---  \ntitle: Test\n---  \nbody\n",
			had:   true,
			fm:    "title: Test\n",
			body:  "body\n",
		},
		{
			name:  "crlf input",
			input: "---\r\ntitle: Test\r\n---\r\nbody\r\n",
			had:   true,
			fm:    "title: Test\r\n",
			body:  "body\r\n",
		},
		{
			name:  "horizontal rule later is not frontmatter",
			input: "body first\n---\nmore\n",
			had:   false,
			body:  "body first\n---\nmore\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, had := Split([]byte(tt.input))
			assert.Equal(t, tt.had, had)
			assert.Equal(t, tt.body, string(body))
			if tt.had {
				assert.Equal(t, tt.fm, string(fm))
			}
		})
	}
}

func TestParseValid(t *testing.T) {
	fields, ok := Parse([]byte("title: Test\ntags:\n  - a\n  - b\n"))
	require.True(t, ok)
	assert.Equal(t, "Test", fields["title"])
	assert.Equal(t, []any{"a", "b"}, fields["tags"])
}

func TestParseInvalid(t *testing.T) {
	fields, ok := Parse([]byte("title: [unclosed\n"))
	assert.False(t, ok)
	assert.Nil(t, fields)
}

func TestParseNonMapping(t *testing.T) {
	fields, ok := Parse([]byte("- just\n- a list\n"))
	assert.False(t, ok)
	assert.Nil(t, fields)
}

func TestParseEmpty(t *testing.T) {
	fields, ok := Parse(nil)
	require.True(t, ok)
	assert.Empty(t, fields)
}

func TestExtract(t *testing.T) {
	fields, body := Extract([]byte("---\ntitle: Test\ndraft: true\n---\n# Body\n"))
	require.NotNil(t, fields)
	assert.Equal(t, "Test", fields["title"])
	assert.Equal(t, true, fields["draft"])
	assert.Equal(t, "# Body\n", string(body))
}

func TestExtractMalformedBlockRemoved(t *testing.T) {
	// The block is well-formed structurally but invalid YAML: metadata is
	// absent, the body still excludes the block
	fields, body := Extract([]byte("---\na: [unclosed\n---\n# Body\n"))
	assert.Nil(t, fields)
	assert.Equal(t, "# Body\n", string(body))
}

func TestExtractNoFrontmatter(t *testing.T) {
	fields, body := Extract([]byte("plain content"))
	assert.Nil(t, fields)
	assert.Equal(t, "plain content", string(body))
}
