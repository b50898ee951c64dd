package detector

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/geocine/mdreader/internal/models"
	"github.com/geocine/mdreader/internal/utils"
)

// Regex for matching link pattern: [Title](path.md)
var summaryLinkRegex = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+\.md)\)`)

// parseSummary parses SUMMARY.md (mdBook/GitBook). Each markdown-style link
// to a .md file becomes one chapter, in link order; unresolvable links are
// skipped. The first link to a conventional intro filename becomes chapter 0.
func (d *Detector) parseSummary(summaryPath string) *models.BookStructure {
	content, err := utils.ReadToString(summaryPath)
	if err != nil {
		return d.autoDetect()
	}

	structure := d.parseSummaryContent(content, summaryPath)
	structure.RootPath = d.root
	return structure
}

// parseSummaryContent does the line scan; the mdbook parser reuses it for a
// nested src/SUMMARY.md
func (d *Detector) parseSummaryContent(content, summaryPath string) *models.BookStructure {
	structure := models.NewBookStructure(models.FormatSummary, d.root)

	chapterNum := 0
	introSeen := false

	for _, line := range strings.Split(content, "\n") {
		matches := summaryLinkRegex.FindStringSubmatch(line)
		if matches == nil {
			continue
		}

		title := strings.TrimSpace(matches[1])
		relPath := strings.TrimSpace(matches[2])

		// Resolve relative to the book root, then relative to the
		// manifest's own directory
		filePath := filepath.Join(d.root, relPath)
		if !utils.FileExists(filePath) {
			filePath = filepath.Join(filepath.Dir(summaryPath), relPath)
		}
		if !utils.FileExists(filePath) {
			continue
		}

		if _, isIntro := d.cfg.SummaryIntroNames[strings.ToLower(relPath)]; isIntro && !introSeen {
			introSeen = true
			ch := models.NewIntroChapter(title, filePath)
			enrichWithFrontmatter(ch)
			structure.PushChapter(ch)
			continue
		}

		chapterNum++
		ch := models.NewChapter(chapterNum, title, filePath)
		enrichWithFrontmatter(ch)
		structure.PushChapter(ch)
	}

	return structure
}
