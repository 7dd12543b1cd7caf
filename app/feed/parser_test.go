package feed

import (
	"testing"
	"time"
)

const youtubeAtomFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015"
      xmlns:media="http://search.yahoo.com/mrss/"
      xmlns="http://www.w3.org/2005/Atom">
  <id>yt:channel:UCabc</id>
  <yt:channelId>UCabc</yt:channelId>
  <title>FPL Test Channel</title>
  <entry>
    <id>yt:video:vid001</id>
    <yt:videoId>vid001</yt:videoId>
    <title>GW29 Wildcard draft and captain picks</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=vid001"/>
    <published>2025-03-14T09:26:53+00:00</published>
    <updated>2025-03-14T11:00:00+00:00</updated>
  </entry>
  <entry>
    <id>yt:video:vid002</id>
    <yt:videoId>vid002</yt:videoId>
    <title>Quick tip</title>
    <link rel="alternate" href="https://www.youtube.com/shorts/vid002"/>
    <published>2025-03-13T18:00:00+00:00</published>
  </entry>
</feed>`

func TestParserRunYouTubeAtom(t *testing.T) {
	entries, err := NewParser().Run([]byte(youtubeAtomFixture))
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if id, ok := first.GetString(FieldID); !ok || id != "yt:video:vid001" {
		t.Errorf("Expected id 'yt:video:vid001', got '%s' (ok=%t)", id, ok)
	}
	if title, ok := first.GetString(FieldTitle); !ok || title != "GW29 Wildcard draft and captain picks" {
		t.Errorf("Unexpected title '%s' (ok=%t)", title, ok)
	}
	if link, ok := first.GetString(FieldLink); !ok || link != "https://www.youtube.com/watch?v=vid001" {
		t.Errorf("Unexpected link '%s' (ok=%t)", link, ok)
	}

	parsed, ok := first.GetTime()
	if !ok {
		t.Fatal("Expected a pre-parsed publication time")
	}
	want := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	if !parsed.UTC().Equal(want) {
		t.Errorf("Expected %v, got %v", want, parsed.UTC())
	}

	if raw, ok := first.GetString(FieldPublished); !ok || raw != "2025-03-14T09:26:53+00:00" {
		t.Errorf("Expected raw published string to be exposed, got '%s' (ok=%t)", raw, ok)
	}

	if link, _ := entries[1].GetString(FieldLink); link != "https://www.youtube.com/shorts/vid002" {
		t.Errorf("Expected shorts link for second entry, got '%s'", link)
	}
}

func TestParserRunInvalidData(t *testing.T) {
	_, err := NewParser().Run([]byte("<html><body>not a feed</body></html>"))
	if err == nil {
		t.Error("Expected error for data that is not a feed")
	}
}

func TestParserThenCollector(t *testing.T) {
	entries, err := NewParser().Run([]byte(youtubeAtomFixture))
	if err != nil {
		t.Fatal(err)
	}

	videos := NewCollector().Run(entries)
	if len(videos) != 2 {
		t.Fatalf("Expected 2 videos, got %d", len(videos))
	}
	if videos[0].ID != "yt:video:vid001" {
		t.Errorf("Expected most recent video first, got '%s'", videos[0].ID)
	}

	kept := FilterShorts(videos)
	if len(kept) != 1 {
		t.Fatalf("Expected Shorts filter to drop one video, got %d kept", len(kept))
	}
	if kept[0].ID != "yt:video:vid001" {
		t.Errorf("Expected 'yt:video:vid001' to survive, got '%s'", kept[0].ID)
	}
}
