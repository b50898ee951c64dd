package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// MdBookConfig mirrors the parts of an mdBook book.toml the detector consumes
type MdBookConfig struct {
	Book MdBookBook `toml:"book"`
}

// MdBookBook is the [book] table of book.toml
type MdBookBook struct {
	Title   string   `toml:"title"`
	Authors []string `toml:"authors"`
	Src     string   `toml:"src"`
}

// FirstAuthor returns the first configured author, or ""
func (b MdBookBook) FirstAuthor() string {
	if len(b.Authors) == 0 {
		return ""
	}
	return b.Authors[0]
}

// LoadMdBookConfig loads and parses a book.toml file
func LoadMdBookConfig(path string) (*MdBookConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &MdBookConfig{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// BookMeta is the book.yaml metadata written and read by the writer tool
type BookMeta struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
	Created     string `yaml:"created"`
}

// LoadBookMeta loads book.yaml; a missing or unparsable file yields the
// fallback title so SUMMARY regeneration never fails on metadata
func LoadBookMeta(path string) BookMeta {
	meta := BookMeta{Title: "Summary"}

	data, err := os.ReadFile(path)
	if err != nil {
		return meta
	}

	var loaded BookMeta
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return meta
	}
	if loaded.Title == "" {
		loaded.Title = "Summary"
	}
	return loaded
}

// SaveBookMeta writes book.yaml
func SaveBookMeta(path string, meta BookMeta) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal book metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	return nil
}
