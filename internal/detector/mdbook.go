package detector

import (
	"path/filepath"

	"github.com/geocine/mdreader/internal/config"
	"github.com/geocine/mdreader/internal/models"
	"github.com/geocine/mdreader/internal/utils"
)

// parseMdBook parses book.toml: title/author come from the [book] table,
// chapter discovery is delegated to the SUMMARY.md parser pointed at the
// conventional src/SUMMARY.md. Without a nested manifest the whole format
// degrades to auto-detection.
func (d *Detector) parseMdBook(tomlPath string) *models.BookStructure {
	var title, author string
	if cfg, err := config.LoadMdBookConfig(tomlPath); err == nil {
		title = cfg.Book.Title
		author = cfg.Book.FirstAuthor()
	}

	srcSummary := filepath.Join(d.root, "src", "SUMMARY.md")
	if !utils.FileExists(srcSummary) {
		return d.autoDetect()
	}

	structure := models.NewBookStructure(models.FormatMdBook, d.root)
	structure.Title = title
	structure.Author = author

	content, err := utils.ReadToString(srcSummary)
	if err != nil {
		return d.autoDetect()
	}

	structure.Chapters = d.parseSummaryContent(content, srcSummary).Chapters
	return structure
}
