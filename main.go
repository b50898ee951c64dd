package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/geocine/mdreader/internal/config"
	"github.com/geocine/mdreader/internal/detector"
	"github.com/geocine/mdreader/internal/models"
	"github.com/geocine/mdreader/internal/reader"
	"github.com/geocine/mdreader/internal/writer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5FAFFF"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5FFF87"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	draftStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00"))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))
)

func main() {
	readCmd := flag.NewFlagSet("read", flag.ExitOnError)
	readRoot := readCmd.String("root", ".", "Root directory of the book")
	readChapter := readCmd.Int("chapter", -1, "Jump to specific chapter")

	tocCmd := flag.NewFlagSet("toc", flag.ExitOnError)
	tocRoot := tocCmd.String("root", ".", "Root directory of the book")

	infoCmd := flag.NewFlagSet("info", flag.ExitOnError)
	infoRoot := infoCmd.String("root", ".", "Root directory of the book")

	initCmd := flag.NewFlagSet("init", flag.ExitOnError)
	initPath := initCmd.String("path", ".", "Path where to create the book")
	initTitle := initCmd.String("title", "", "Title of the book")
	initAuthor := initCmd.String("author", "", "Author name")

	newCmd := flag.NewFlagSet("new-chapter", flag.ExitOnError)
	newPath := newCmd.String("path", ".", "Path to book root")
	newTitle := newCmd.String("title", "", "Title of the chapter")
	newDraft := newCmd.Bool("draft", false, "Mark as draft")

	summaryCmd := flag.NewFlagSet("summary", flag.ExitOnError)
	summaryPath := summaryCmd.String("path", ".", "Path to book root")

	if len(os.Args) < 2 {
		fmt.Println("Usage: mdreader [command]")
		fmt.Println("Commands:")
		fmt.Println("  read         Read the book interactively")
		fmt.Println("  toc          Show the table of contents")
		fmt.Println("  info         Show detected book structure info")
		fmt.Println("  init         Initialize a new book")
		fmt.Println("  new-chapter  Add a new chapter with frontmatter")
		fmt.Println("  summary      Regenerate SUMMARY.md from chapters/")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "read":
		readCmd.Parse(os.Args[2:])
		handleRead(*readRoot, *readChapter)

	case "toc":
		tocCmd.Parse(os.Args[2:])
		handleToc(*tocRoot)

	case "info":
		infoCmd.Parse(os.Args[2:])
		handleInfo(*infoRoot)

	case "init":
		initCmd.Parse(os.Args[2:])
		handleInit(*initPath, *initTitle, *initAuthor)

	case "new-chapter":
		newCmd.Parse(os.Args[2:])
		handleNewChapter(*newPath, *newTitle, *newDraft)

	case "summary":
		summaryCmd.Parse(os.Args[2:])
		handleSummary(*summaryPath)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

// openBook validates the root, runs detection and wraps the result in a reader
func openBook(root string) *reader.Reader {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		log.Fatalf("Invalid book root: %v", err)
	}

	if !config.ValidateBookRoot(absRoot) {
		log.Fatalf("No markdown files found in: %s", absRoot)
	}

	d := detector.New(absRoot, config.DefaultDetection())
	structure, err := d.Detect()
	if err != nil {
		log.Fatalf("Failed to detect book structure: %v", err)
	}

	if len(structure.Chapters) == 0 {
		log.Fatalf("No chapters found in: %s", absRoot)
	}

	return reader.New(structure)
}

func handleRead(root string, chapter int) {
	r := openBook(root)
	if chapter >= 0 && !r.Jump(chapter) {
		log.Fatalf("Chapter %d not found", chapter)
	}

	if _, err := tea.NewProgram(newReadModel(r), tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("Failed to start reader: %v", err)
	}
}

func handleToc(root string) {
	r := openBook(root)

	fmt.Println(titleStyle.Render(r.BookTitle()))
	fmt.Println(dimStyle.Render("Format: " + r.Structure().Format.DisplayName()))
	fmt.Println()

	for _, n := range r.Numbers() {
		ch, _ := r.Chapter(n)
		fmt.Println(tocLine(ch))
	}
}

func tocLine(ch *models.Chapter) string {
	label := fmt.Sprintf("%5d", ch.Number)
	if ch.IsIntro {
		label = "Intro"
	}

	status := "Available"
	style := dimStyle
	if ch.IsDraft {
		status = "Draft"
		style = draftStyle
	} else if _, err := os.Stat(ch.Path); err != nil {
		status = "Missing"
		style = missingStyle
	}

	return fmt.Sprintf("  %s  %-50s %s", dimStyle.Render(label), ch.Title, style.Render(status))
}

func handleInfo(root string) {
	r := openBook(root)
	s := r.Structure()

	fmt.Println(titleStyle.Render("Book: " + r.BookTitle()))
	fmt.Printf("Root: %s\n", s.RootPath)
	fmt.Printf("Format: %s\n", s.Format.DisplayName())
	fmt.Printf("Chapters: %d\n\n", r.TotalChapters())

	for _, ch := range s.Chapters {
		prefix := fmt.Sprintf("Ch %d", ch.Number)
		if ch.IsIntro {
			prefix = "Intro"
		}
		draft := ""
		if ch.IsDraft {
			draft = draftStyle.Render(" (draft)")
		}
		fmt.Printf("  [%s] %s%s\n", prefix, ch.Title, draft)
		fmt.Printf("        %s\n", dimStyle.Render(ch.Path))
	}
}

func handleInit(path, title, author string) {
	root, err := filepath.Abs(path)
	if err != nil {
		log.Fatalf("Invalid path: %v", err)
	}

	if err := writer.Init(root, title, author); err != nil {
		log.Fatalf("Failed to initialize book: %v", err)
	}

	fmt.Printf("Created: %s\n", filepath.Join(root, "book.yaml"))
	fmt.Printf("Created: %s\n", filepath.Join(root, "SUMMARY.md"))
	fmt.Printf("Created: %s\n", filepath.Join(root, writer.ChaptersDir))
	fmt.Printf("\nBook initialized at %s\n", root)
	fmt.Println("Use 'mdreader new-chapter' to add chapters.")
}

func handleNewChapter(path, title string, draft bool) {
	if strings.TrimSpace(title) == "" {
		log.Fatal("Chapter title is required (-title)")
	}

	root, err := filepath.Abs(path)
	if err != nil {
		log.Fatalf("Invalid path: %v", err)
	}

	chapterPath, err := writer.NewChapter(root, title, draft)
	if err != nil {
		log.Fatalf("Failed to create chapter: %v", err)
	}

	fmt.Printf("Created: %s\n", chapterPath)
	fmt.Printf("Updated: %s\n", filepath.Join(root, "SUMMARY.md"))
}

func handleSummary(path string) {
	root, err := filepath.Abs(path)
	if err != nil {
		log.Fatalf("Invalid path: %v", err)
	}

	entries, err := writer.RegenerateSummary(root)
	if err != nil {
		log.Fatalf("Failed to regenerate SUMMARY.md: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No chapters found in chapters/ directory.")
		return
	}

	fmt.Printf("Regenerated: %s\n", filepath.Join(root, "SUMMARY.md"))
	fmt.Printf("Found %d chapter(s):\n", len(entries))
	for _, e := range entries {
		marker := ""
		if e.Draft {
			marker = draftStyle.Render(" [DRAFT]")
		}
		fmt.Printf("  %2d. %s%s\n", e.Number, e.Title, marker)
	}
}
