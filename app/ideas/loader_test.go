package ideas

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBareArray(t *testing.T) {
	path := writeTemp(t, "ideas.json", `[
  {"title": "A", "description": "first", "metrics": {"views": 10, "score": 2}, "image_path": "out/a.png"},
  {"title": "B", "description": "second", "metrics": {}}
]`)

	list, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 ideas, got %d", len(list))
	}
	if list[0].Title != "A" || list[0].Metrics["views"] != 10 {
		t.Errorf("Unexpected first idea: %+v", list[0])
	}
	if list[0].Image() != "out/a.png" {
		t.Errorf("Expected image 'out/a.png', got '%s'", list[0].Image())
	}
}

func TestLoadEmptyArray(t *testing.T) {
	path := writeTemp(t, "ideas.json", `[]`)

	list, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("Expected empty list, got %+v", list)
	}
}

func TestLoadWrappedObject(t *testing.T) {
	path := writeTemp(t, "ideas.json", `{"ideas": [{"title": "Wrapped", "metrics": {"score": 5}}]}`)

	list, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Title != "Wrapped" {
		t.Errorf("Unexpected ideas: %+v", list)
	}
}

func TestLoadMalformedShapeIsFatal(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"object without ideas key", `{"count": 3}`},
		{"scalar", `42`},
		{"string", `"ideas"`},
		{"top-level null", `null`},
		{"null ideas key", `{"ideas": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "ideas.json", tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Expected error for malformed ideas file")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	original := []Idea{
		{
			Title:       "Round trip",
			Description: "keeps everything",
			Metrics:     map[string]float64{"views": 120, "score": 8.5, "shares": 3},
			ImagePath:   "social_images_out/2025-03-14/01_round_trip.png",
		},
	}

	path := filepath.Join(t.TempDir(), "ideas.json")
	if err := Save(path, original); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Errorf("Round trip mismatch:\n  saved  %+v\n  loaded %+v", original, loaded)
	}
}

func TestExtractTitles(t *testing.T) {
	md := `# Social script 2025-03-14

## First idea title

some text

### Second idea title
`
	path := writeTemp(t, "social.md", md)
	titles := ExtractTitles(path)
	want := []string{"First idea title", "Second idea title"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("Expected %v, got %v", want, titles)
	}
}

func TestExtractTitlesBulletFallback(t *testing.T) {
	path := writeTemp(t, "social.md", "intro line\n- bullet one\n* bullet two\n")
	titles := ExtractTitles(path)
	want := []string{"bullet one", "bullet two"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("Expected %v, got %v", want, titles)
	}
}

func TestExtractTitlesMissingFile(t *testing.T) {
	if titles := ExtractTitles(filepath.Join(t.TempDir(), "absent.md")); titles != nil {
		t.Errorf("Expected nil for missing file, got %v", titles)
	}
}

func TestSlugToTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01_01_gw29_wildcard_draft.png", "Gw29 wildcard draft"},
		{"02_captain-picks.png", "Captain picks"},
		{"no_prefix.png", "No prefix"},
		{"03_.png", "Idea"},
	}

	for _, tt := range tests {
		if got := SlugToTitle(tt.in); got != tt.want {
			t.Errorf("SlugToTitle(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
