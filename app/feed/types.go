package feed

import (
	"time"
)

// Video is the canonical unit of work handed to the digest, social and
// report stages. PublishedAt is always UTC; a Video is never built
// without one.
type Video struct {
	ID          string
	Title       string
	URL         string
	PublishedAt time.Time
}

// Entry is the capability surface of one raw feed entry. The two lookup
// strategies (typed field, then mapping lookup) are resolved once by the
// adapter, so the normalizer only deals in field names.
type Entry interface {
	// GetString returns the value of a named field, trying the typed
	// representation first and the entry's extension maps second.
	GetString(field string) (string, bool)
	// GetTime returns the entry's pre-parsed publication time, if the
	// feed parser produced one.
	GetTime() (time.Time, bool)
}

// Field names understood by the Entry adapters.
const (
	FieldID        = "id"
	FieldTitle     = "title"
	FieldLink      = "link"
	FieldPublished = "published"
	FieldUpdated   = "updated"
)
