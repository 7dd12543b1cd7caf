package ideas

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	headingPattern   = regexp.MustCompile(`^\s{0,3}#{2,3}\s+(.+?)\s*$`)
	bulletPattern    = regexp.MustCompile(`^\s*[-*]\s+(.+?)\s*$`)
	extensionPattern = regexp.MustCompile(`\.[A-Za-z0-9]+$`)
	indexPattern     = regexp.MustCompile(`^(?:\d{1,2}_)*\d{1,2}_`)
	spacesPattern    = regexp.MustCompile(`\s+`)
)

// Exporter builds the ideas file for one run-date from the rendered
// images directory, taking titles from the social script markdown when
// it has any, and from the image filenames otherwise.
type Exporter struct {
	imagesDir  string
	socialPath string
	outFile    string
	date       string
}

func NewExporter(imagesDir, socialPath, outFile, date string) *Exporter {
	return &Exporter{
		imagesDir:  imagesDir,
		socialPath: socialPath,
		outFile:    outFile,
		date:       date,
	}
}

func (e *Exporter) Run() error {
	if _, err := os.Stat(e.imagesDir); os.IsNotExist(err) {
		slog.Warn("Images directory not found, no ideas exported", "dir", e.imagesDir)
		return nil
	}

	images, err := filepath.Glob(filepath.Join(e.imagesDir, "*.png"))
	if err != nil {
		return fmt.Errorf("failed to list images: %w", err)
	}
	if len(images) == 0 {
		slog.Warn("No PNG images found, no ideas exported", "dir", e.imagesDir)
		return nil
	}

	sort.Slice(images, func(i, j int) bool {
		return strings.ToLower(filepath.Base(images[i])) < strings.ToLower(filepath.Base(images[j]))
	})

	titles := ExtractTitles(e.socialPath)

	list := make([]Idea, 0, len(images))
	for idx, img := range images {
		title := ""
		if idx < len(titles) {
			title = titles[idx]
		} else {
			title = SlugToTitle(filepath.Base(img))
		}

		list = append(list, Idea{
			Title:       title,
			Description: fmt.Sprintf("Social visual for %s", e.date),
			Metrics:     map[string]float64{"views": 0, "score": 0},
			ImagePath:   filepath.ToSlash(img),
		})
	}

	if err := Save(e.outFile, list); err != nil {
		return err
	}

	slog.Info("Ideas exported", "count", len(list), "file", e.outFile)
	return nil
}

// ExtractTitles pulls level-2/3 headings from a markdown file, falling
// back to bullet lines when there are no headings. A missing file means
// no titles, not an error.
func ExtractTitles(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var titles []string
	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			titles = append(titles, strings.TrimSpace(m[1]))
		}
	}
	if len(titles) > 0 {
		return titles
	}

	for _, line := range lines {
		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			titles = append(titles, strings.TrimSpace(m[1]))
		}
	}
	return titles
}

// SlugToTitle recovers a readable title from an image filename:
// extension and numeric index prefixes stripped, separators turned into
// spaces, first rune upper-cased.
func SlugToTitle(name string) string {
	name = extensionPattern.ReplaceAllString(name, "")
	name = indexPattern.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.TrimSpace(spacesPattern.ReplaceAllString(name, " "))
	if name == "" {
		return "Idea"
	}

	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
