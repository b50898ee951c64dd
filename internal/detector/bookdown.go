package detector

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/geocine/mdreader/internal/models"
	"github.com/geocine/mdreader/internal/utils"
)

// bookdownConfig mirrors the keys of _bookdown.yml the detector consumes
type bookdownConfig struct {
	BookFilename string   `yaml:"book_filename"`
	Title        string   `yaml:"title"`
	RmdFiles     []string `yaml:"rmd_files"`
}

// parseBookdown parses _bookdown.yml: chapters come from the ordered
// rmd_files list. Bookdown sources are .Rmd; entries missing on disk are
// retried with a .md extension and skipped when still missing. An entry is
// the introduction when it is the first list entry or its name contains
// "index" - but only while no chapter has been numbered yet; a later
// index-named entry is never reclassified.
func (d *Detector) parseBookdown(bookdownPath string) *models.BookStructure {
	data, err := os.ReadFile(bookdownPath)
	if err != nil {
		return d.autoDetect()
	}

	var cfg bookdownConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return d.autoDetect()
	}

	structure := models.NewBookStructure(models.FormatBookdown, d.root)
	structure.Title = cfg.BookFilename
	if structure.Title == "" {
		structure.Title = cfg.Title
	}

	chapterNum := 0
	introSeen := false

	for i, fileName := range cfg.RmdFiles {
		filePath := filepath.Join(d.root, fileName)
		if !utils.FileExists(filePath) {
			mdPath := strings.TrimSuffix(filePath, filepath.Ext(filePath)) + ".md"
			if !utils.FileExists(mdPath) {
				continue
			}
			filePath = mdPath
		}

		title := TitleFromFile(filePath)
		if title == "" {
			title = stem(filePath)
		}

		isIntro := strings.Contains(strings.ToLower(fileName), "index") || i == 0

		var ch *models.Chapter
		if isIntro && chapterNum == 0 && !introSeen {
			introSeen = true
			ch = models.NewIntroChapter(title, filePath)
		} else {
			chapterNum++
			ch = models.NewChapter(chapterNum, title, filePath)
		}

		enrichWithFrontmatter(ch)
		structure.PushChapter(ch)
	}

	return structure
}
