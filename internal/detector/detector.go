// Package detector resolves the chapter structure of a markdown book
// directory. It understands the manifest conventions of mdBook/GitBook
// (SUMMARY.md), Leanpub (Book.txt), Bookdown (_bookdown.yml) and generic
// mdBook configuration (book.toml), and falls back to filename heuristics
// when no manifest exists.
package detector

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/geocine/mdreader/internal/config"
	"github.com/geocine/mdreader/internal/models"
	"github.com/geocine/mdreader/internal/utils"
)

// Detector detects book structure under a root directory
type Detector struct {
	root string
	cfg  config.Detection
}

// New creates a detector for the given root directory
func New(root string, cfg config.Detection) *Detector {
	return &Detector{root: root, cfg: cfg}
}

// Detect resolves the book structure, trying each manifest format in
// priority order and falling back to auto-detection:
//
//  1. SUMMARY.md (mdBook/GitBook)
//  2. Book.txt (Leanpub)
//  3. _bookdown.yml (Bookdown)
//  4. book.toml (mdBook config)
//  5. Filename/directory heuristics
//
// The cascade commits on manifest *existence*; each parser degrades to
// auto-detection internally if its manifest turns out to be unreadable or
// unparsable. The only error is an unreadable root directory.
func (d *Detector) Detect() (*models.BookStructure, error) {
	if _, err := os.ReadDir(d.root); err != nil {
		return nil, fmt.Errorf("failed to read book root '%s': %w", d.root, err)
	}

	summaryPath := filepath.Join(d.root, "SUMMARY.md")
	if utils.FileExists(summaryPath) {
		return d.parseSummary(summaryPath), nil
	}

	leanpubPath := filepath.Join(d.root, "Book.txt")
	if utils.FileExists(leanpubPath) {
		return d.parseLeanpub(leanpubPath), nil
	}

	bookdownPath := filepath.Join(d.root, "_bookdown.yml")
	if utils.FileExists(bookdownPath) {
		return d.parseBookdown(bookdownPath), nil
	}

	mdbookPath := filepath.Join(d.root, "book.toml")
	if utils.FileExists(mdbookPath) {
		return d.parseMdBook(mdbookPath), nil
	}

	return d.autoDetect(), nil
}
