package detector

import (
	"os"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/geocine/mdreader/internal/frontmatter"
)

var (
	leadingNumber  = regexp.MustCompile(`^\d+[-_]?`)
	nameSeparators = regexp.MustCompile(`[-_]+`)

	titleCaser = cases.Title(language.English)
)

// TitleFromFile extracts a title from file content: frontmatter `title`
// first, then the first level-1 heading in the body. Read failures and
// malformed frontmatter are swallowed; "" means no title was found and the
// caller falls back to the filename.
func TitleFromFile(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	fields, body := frontmatter.Extract(content)
	if title, ok := fields["title"].(string); ok && title != "" {
		return title
	}

	return FirstHeading(body)
}

// FirstHeading returns the text of the first level-1 heading in a markdown
// body, or ""
func FirstHeading(body []byte) string {
	md := goldmark.New()
	root := md.Parser().Parse(gmtext.NewReader(body))

	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok && h.Level == 1 {
			title = nodeText(h, body)
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}

// nodeText collects the raw text of a node and its descendants
func nodeText(node gmast.Node, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(node, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if t, ok := n.(*gmast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// titleFromFilename derives a display title from a filename stem:
// "01-getting-started" -> "Getting Started"
func titleFromFilename(stem string) string {
	title := leadingNumber.ReplaceAllString(stem, "")
	title = nameSeparators.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)
	if title == "" {
		title = stem
	}
	return titleCaser.String(title)
}
