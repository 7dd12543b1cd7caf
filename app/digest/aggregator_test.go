package digest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fplradar/radar/app/feed"
)

func atomFeed(entries ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns="http://www.w3.org/2005/Atom">
  <title>Test Channel</title>
` + strings.Join(entries, "\n") + `
</feed>`
}

func atomEntry(id, title, url, published string) string {
	return fmt.Sprintf(`  <entry>
    <id>yt:video:%s</id>
    <title>%s</title>
    <link rel="alternate" href="%s"/>
    <published>%s</published>
  </entry>`, id, title, url, published)
}

func watchEntry(id, title string, published time.Time) string {
	return atomEntry(id, title, "https://www.youtube.com/watch?v="+id, published.Format(time.RFC3339))
}

func newTestServer(t *testing.T, feeds map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		channelID := r.URL.Query().Get("channel_id")
		body, ok := feeds[channelID]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAggregatorEndToEnd(t *testing.T) {
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	var channelA []string
	for i := 0; i < 5; i++ {
		channelA = append(channelA, watchEntry(fmt.Sprintf("a%d", i), fmt.Sprintf("Video A%d", i), base.Add(-time.Duration(i)*time.Hour)))
	}

	server := newTestServer(t, map[string]string{
		"A": atomFeed(channelA...),
		// "B" is absent: the server answers 500, simulating a fetch failure.
	})

	digestPath := filepath.Join(t.TempDir(), "fpl_digest_2025-03-14.md")
	writer := NewWriter(digestPath, time.Millisecond)
	fetcher := feed.NewFetcher(server.Client(), server.URL, "test-agent")
	aggregator := NewAggregator(fetcher, writer, 2)

	combined := aggregator.Run(context.Background(), []string{"A", "B"})

	if len(combined) != 2 {
		t.Fatalf("Expected exactly 2 records, got %d", len(combined))
	}
	for _, video := range combined {
		if !strings.HasPrefix(video.ID, "yt:video:a") {
			t.Errorf("Expected only channel A records, got '%s'", video.ID)
		}
	}
	if combined[0].ID != "yt:video:a0" || combined[1].ID != "yt:video:a1" {
		t.Errorf("Expected most recent two videos from A, got %s then %s", combined[0].ID, combined[1].ID)
	}

	data, err := os.ReadFile(digestPath)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	sectionA := strings.Index(content, "# Channel A")
	sectionB := strings.Index(content, "# Channel B")
	if sectionA < 0 || sectionB < 0 {
		t.Fatalf("Expected both channel headers, digest:\n%s", content)
	}
	if sectionA > sectionB {
		t.Error("Expected channel A's section before channel B's")
	}
	if !strings.Contains(content[sectionA:sectionB], "## 2025-03-14 - Video A0") {
		t.Errorf("Expected a video entry under channel A, digest:\n%s", content)
	}
	if strings.Contains(content[sectionB:], "## ") {
		t.Errorf("Expected no video entries under channel B, digest:\n%s", content)
	}
}

func TestAggregatorPreservesChannelGrouping(t *testing.T) {
	old := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	server := newTestServer(t, map[string]string{
		"first":  atomFeed(watchEntry("f1", "Old video", old)),
		"second": atomFeed(watchEntry("s1", "Recent video", recent)),
	})

	writer := NewWriter(filepath.Join(t.TempDir(), "digest.md"), time.Millisecond)
	fetcher := feed.NewFetcher(server.Client(), server.URL, "test-agent")
	aggregator := NewAggregator(fetcher, writer, 5)

	combined := aggregator.Run(context.Background(), []string{"first", "second"})

	if len(combined) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(combined))
	}
	// No global re-sort by date: the first-listed channel leads even
	// though its video is older.
	if combined[0].ID != "yt:video:f1" || combined[1].ID != "yt:video:s1" {
		t.Errorf("Expected channel grouping preserved, got %s then %s", combined[0].ID, combined[1].ID)
	}
}

func TestAggregatorFiltersShorts(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	server := newTestServer(t, map[string]string{
		"A": atomFeed(
			watchEntry("a1", "Keep me", ts),
			atomEntry("a2", "Short", "https://www.youtube.com/shorts/a2", ts.Format(time.RFC3339)),
		),
	})

	writer := NewWriter(filepath.Join(t.TempDir(), "digest.md"), time.Millisecond)
	fetcher := feed.NewFetcher(server.Client(), server.URL, "test-agent")
	aggregator := NewAggregator(fetcher, writer, 5)

	combined := aggregator.Run(context.Background(), []string{"A"})
	if len(combined) != 1 || combined[0].ID != "yt:video:a1" {
		t.Errorf("Expected Shorts entry filtered out, got %+v", combined)
	}
}

func TestWriterSummaryLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.md")
	writer := NewWriter(path, time.Millisecond)

	videos := []feed.Video{{
		ID:          "v1",
		Title:       "GW29 Wildcard picks",
		URL:         "https://www.youtube.com/watch?v=v1",
		PublishedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}}

	if err := writer.WriteSection(context.Background(), "A", videos); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.Contains(content, "GW29 Wildcard picks (GW29, Wildcard, Picks)") {
		t.Errorf("Expected synthesized summary in digest, got:\n%s", content)
	}
	if !strings.Contains(content, "---") {
		t.Error("Expected horizontal rule after each entry")
	}
}
