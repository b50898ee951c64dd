package writer

import (
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/geocine/mdreader/internal/config"
	"github.com/geocine/mdreader/internal/utils"
)

// Init scaffolds a new book at root: book.yaml metadata, an empty
// SUMMARY.md and the chapters directory
func Init(root, title, author string) error {
	if title == "" {
		title = filepath.Base(root)
	}

	if err := utils.CreateDirAll(filepath.Join(root, ChaptersDir)); err != nil {
		return err
	}

	meta := config.BookMeta{
		Title:    title,
		Author:   author,
		Language: "en",
		Created:  time.Now().Format("2006-01-02"),
	}
	if err := config.SaveBookMeta(filepath.Join(root, "book.yaml"), meta); err != nil {
		return err
	}

	summary := fmt.Sprintf("# %s\n\n", title)
	return utils.WriteFile(filepath.Join(root, "SUMMARY.md"), []byte(summary))
}

// chapterFrontmatter keeps new-chapter frontmatter keys in a stable order
type chapterFrontmatter struct {
	Title   string `yaml:"title"`
	Chapter int    `yaml:"chapter"`
	Date    string `yaml:"date"`
	Draft   bool   `yaml:"draft,omitempty"`
}

// NewChapter creates the next numbered chapter file with frontmatter and
// regenerates SUMMARY.md. Returns the path of the created file.
func NewChapter(root, title string, draft bool) (string, error) {
	chaptersDir := filepath.Join(root, ChaptersDir)
	if !utils.DirExists(chaptersDir) {
		return "", fmt.Errorf("%s/ directory not found at '%s', run init first", ChaptersDir, root)
	}

	num := NextChapterNumber(chaptersDir)
	filename := fmt.Sprintf("%02d-%s.md", num, Slugify(title))
	chapterPath := filepath.Join(chaptersDir, filename)

	fm := chapterFrontmatter{
		Title:   title,
		Chapter: num,
		Date:    time.Now().Format("2006-01-02"),
		Draft:   draft,
	}
	fmYaml, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	content := fmt.Sprintf("---\n%s---\n\n# %s\n\n", fmYaml, title)
	if err := utils.WriteFile(chapterPath, []byte(content)); err != nil {
		return "", err
	}

	meta := config.LoadBookMeta(filepath.Join(root, "book.yaml"))
	if err := WriteSummary(root, meta.Title, ScanChapters(chaptersDir)); err != nil {
		return "", err
	}

	return chapterPath, nil
}

// RegenerateSummary rebuilds SUMMARY.md from the chapters directory and
// returns the entries it found
func RegenerateSummary(root string) ([]Entry, error) {
	chaptersDir := filepath.Join(root, ChaptersDir)
	if !utils.DirExists(chaptersDir) {
		return nil, fmt.Errorf("%s/ directory not found at '%s'", ChaptersDir, root)
	}

	entries := ScanChapters(chaptersDir)
	meta := config.LoadBookMeta(filepath.Join(root, "book.yaml"))
	if err := WriteSummary(root, meta.Title, entries); err != nil {
		return nil, err
	}
	return entries, nil
}
