// Package seed loads the sample projects used to populate a fresh store.
package seed

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Arun225295196/SIT725/internal/projects/domain"
)

//go:embed samples.yaml
var defaultSamples []byte

// Entry is one project in a seed file.
type Entry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category,omitempty"`
	Image       string `yaml:"image,omitempty"`
	Link        string `yaml:"link,omitempty"`
}

func (e Entry) input() domain.CreateInput {
	return domain.CreateInput{
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Image:       e.Image,
		Link:        e.Link,
	}
}

// Defaults returns the built-in sample projects.
func Defaults() []domain.CreateInput {
	samples, err := Parse(defaultSamples)
	if err != nil {
		panic(fmt.Sprintf("seed: embedded samples are invalid: %v", err))
	}
	return samples
}

// Load reads samples from path, or the built-in samples when path is empty.
func Load(path string) ([]domain.CreateInput, error) {
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	samples, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return samples, nil
}

// Parse decodes a YAML list of projects and validates every entry.
func Parse(data []byte) ([]domain.CreateInput, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}

	out := make([]domain.CreateInput, 0, len(entries))
	for i, e := range entries {
		in := e.input()
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		out = append(out, in)
	}
	return out, nil
}

// Export writes projects as a seed file that Load can read back.
func Export(w io.Writer, projects []domain.Project) error {
	entries := make([]Entry, 0, len(projects))
	for _, p := range projects {
		entries = append(entries, Entry{
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category,
			Image:       p.Image,
			Link:        p.Link,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode seed yaml: %w", err)
	}
	return enc.Close()
}
