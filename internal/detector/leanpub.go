package detector

import (
	"path/filepath"
	"strings"

	"github.com/geocine/mdreader/internal/models"
	"github.com/geocine/mdreader/internal/utils"
)

// parseLeanpub parses Book.txt (Leanpub): one markdown file per line, in
// file order. Blank lines, `#` comments and matter-section markers are
// skipped without affecting numbering. Paths resolve against manuscript/
// when it exists, then against the book root.
func (d *Detector) parseLeanpub(bookTxtPath string) *models.BookStructure {
	content, err := utils.ReadToString(bookTxtPath)
	if err != nil {
		return d.autoDetect()
	}

	structure := models.NewBookStructure(models.FormatLeanpub, d.root)

	baseDir := d.root
	if manuscriptDir := filepath.Join(d.root, "manuscript"); utils.DirExists(manuscriptDir) {
		baseDir = manuscriptDir
	}

	chapterNum := 0
	introSeen := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch line {
		case "frontmatter:", "mainmatter:", "backmatter:":
			continue
		}

		filePath := filepath.Join(baseDir, line)
		if !utils.FileExists(filePath) {
			filePath = filepath.Join(d.root, line)
		}
		if !utils.FileExists(filePath) || filepath.Ext(filePath) != ".md" {
			continue
		}

		title := TitleFromFile(filePath)
		if title == "" {
			title = stem(filePath)
		}

		if _, isIntro := d.cfg.LeanpubIntroNames[strings.ToLower(line)]; isIntro && !introSeen {
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

// stem returns the filename without its extension
func stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
