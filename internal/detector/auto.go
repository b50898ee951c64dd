package detector

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/geocine/mdreader/internal/models"
	"github.com/geocine/mdreader/internal/utils"
)

var leadingDigits = regexp.MustCompile(`^\d+`)

// Files with no extractable number sort after every numbered file
const unnumberedSentinel = 999999

// autoDetect infers chapters from filename and directory conventions when no
// manifest exists. Intro files are checked by fixed priority, candidates sort
// by (leading number, lowercase filename), and numbering is assigned
// sequentially from 1 in sorted order.
func (d *Detector) autoDetect() *models.BookStructure {
	structure := models.NewBookStructure(models.FormatAuto, d.root)

	introPath := ""
	for _, introFile := range d.cfg.IntroFiles {
		path := filepath.Join(d.root, introFile)
		if !utils.FileExists(path) {
			continue
		}
		title := TitleFromFile(path)
		if title == "" {
			title = "Introduction"
		}
		ch := models.NewIntroChapter(title, path)
		enrichWithFrontmatter(ch)
		structure.PushChapter(ch)
		introPath = path
		break
	}

	files := d.collectMarkdownFiles()

	sort.SliceStable(files, func(i, j int) bool {
		ki, kj := d.sortKey(files[i]), d.sortKey(files[j])
		if ki.num != kj.num {
			return ki.num < kj.num
		}
		return ki.name < kj.name
	})

	chapterNum := 0
	for _, filePath := range files {
		if filePath == introPath {
			continue
		}
		if d.cfg.IsSkipFile(filepath.Base(filePath)) {
			continue
		}

		title := TitleFromFile(filePath)
		if title == "" {
			title = titleFromFilename(stem(filePath))
		}

		chapterNum++
		ch := models.NewChapter(chapterNum, title, filePath)
		enrichWithFrontmatter(ch)
		structure.PushChapter(ch)
	}

	return structure
}

// collectMarkdownFiles gathers chapter candidates. Directories named
// chapter-* each contribute one file (preferring a content/ subdirectory);
// otherwise every top-level markdown file is a candidate, excluding
// underscore-prefixed files, known manifests, intro files and the skip set.
func (d *Detector) collectMarkdownFiles() []string {
	chapterDirs, _ := filepath.Glob(filepath.Join(d.root, "chapter-*"))

	var dirs []string
	for _, path := range chapterDirs {
		if utils.DirExists(path) {
			dirs = append(dirs, path)
		}
	}

	if len(dirs) > 0 {
		var files []string
		for _, chapterDir := range dirs {
			contentDir := filepath.Join(chapterDir, "content")
			if utils.DirExists(contentDir) {
				contentFiles, _ := filepath.Glob(filepath.Join(contentDir, "*.md"))
				if len(contentFiles) > 0 {
					if best := d.pickBestContentFile(contentFiles); best != "" {
						files = append(files, best)
					}
					continue
				}
			}

			directFiles, _ := filepath.Glob(filepath.Join(chapterDir, "*.md"))
			var candidates []string
			for _, f := range directFiles {
				if !strings.HasPrefix(filepath.Base(f), "_") {
					candidates = append(candidates, f)
				}
			}
			if best := d.pickBestContentFile(candidates); best != "" {
				files = append(files, best)
			}
		}
		return files
	}

	// No chapter directories: flat top-level collection
	topLevel, _ := filepath.Glob(filepath.Join(d.root, "*.md"))

	var files []string
	for _, filePath := range topLevel {
		name := filepath.Base(filePath)
		if strings.HasPrefix(name, "_") {
			continue
		}
		if d.cfg.IsManifestFile(name) {
			continue
		}
		if d.cfg.IsIntroFile(name) {
			continue
		}
		if d.cfg.IsSkipFile(name) {
			continue
		}
		files = append(files, filePath)
	}
	return files
}

// pickBestContentFile selects one file from a chapter directory by the
// configured suffix priority; first matching suffix wins, otherwise the
// first file in listing order
func (d *Detector) pickBestContentFile(files []string) string {
	if len(files) == 0 {
		return ""
	}

	for _, suffix := range d.cfg.ContentFileSuffixes {
		for _, f := range files {
			if strings.HasSuffix(strings.ToLower(filepath.Base(f)), suffix) {
				return f
			}
		}
	}
	return files[0]
}

type sortKey struct {
	num  int
	name string
}

// sortKey derives the ordering key for a candidate file: a leading integer
// from the filename, then the configured chapter-naming patterns, with a
// sentinel when no number is present
func (d *Detector) sortKey(filePath string) sortKey {
	name := filepath.Base(filePath)
	key := sortKey{num: unnumberedSentinel, name: strings.ToLower(name)}

	if m := leadingDigits.FindString(stem(filePath)); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			key.num = n
			return key
		}
	}

	for _, pattern := range d.cfg.ChapterFilePatterns {
		m := pattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			key.num = n
			return key
		}
	}

	return key
}
