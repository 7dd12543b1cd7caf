package feed

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses raw feed data and returns one Entry per item. The adapter
// resolves the attribute-vs-mapping lookup ambiguity here, at the
// boundary, so downstream code works against the Entry interface only.
func (p *Parser) Run(data []byte) ([]Entry, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		entries = append(entries, &gofeedEntry{item: item})
	}

	return entries, nil
}

// gofeedEntry adapts a gofeed item to the Entry interface. Typed struct
// fields are tried first; the item's namespaced extensions and custom
// map second, because entries in the same feed may expose a field either
// way (YouTube puts the video id in the yt namespace, for instance).
type gofeedEntry struct {
	item *gofeed.Item
}

func (e *gofeedEntry) GetString(field string) (string, bool) {
	switch field {
	case FieldID:
		if e.item.GUID != "" {
			return e.item.GUID, true
		}
		return e.extensionValue("videoId", "videoid")
	case FieldTitle:
		if e.item.Title != "" {
			return e.item.Title, true
		}
		return e.customValue(FieldTitle)
	case FieldLink:
		if e.item.Link != "" {
			return e.item.Link, true
		}
		if len(e.item.Links) > 0 && e.item.Links[0] != "" {
			return e.item.Links[0], true
		}
		return e.customValue(FieldLink)
	case FieldPublished:
		if e.item.Published != "" {
			return e.item.Published, true
		}
		return e.customValue(FieldPublished)
	case FieldUpdated:
		if e.item.Updated != "" {
			return e.item.Updated, true
		}
		return e.customValue(FieldUpdated)
	}

	return e.customValue(field)
}

func (e *gofeedEntry) GetTime() (time.Time, bool) {
	if e.item.PublishedParsed != nil {
		return *e.item.PublishedParsed, true
	}
	return time.Time{}, false
}

func (e *gofeedEntry) extensionValue(names ...string) (string, bool) {
	for _, exts := range e.item.Extensions {
		for _, name := range names {
			for _, ext := range exts[name] {
				if ext.Value != "" {
					return ext.Value, true
				}
			}
		}
	}
	return e.customValue(names[0])
}

func (e *gofeedEntry) customValue(field string) (string, bool) {
	if v, ok := e.item.Custom[field]; ok && v != "" {
		return v, true
	}
	return "", false
}
