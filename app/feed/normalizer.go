package feed

type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Run builds a Video from one raw entry. The publication date is the
// only hard gate: entries without a resolvable date are dropped, never
// defaulted. Empty id/title/url values pass through untouched.
func (n *Normalizer) Run(e Entry) (Video, bool) {
	publishedAt, ok := ResolveTime(e)
	if !ok {
		return Video{}, false
	}

	id, _ := e.GetString(FieldID)
	title, _ := e.GetString(FieldTitle)
	url, _ := e.GetString(FieldLink)

	return Video{
		ID:          id,
		Title:       title,
		URL:         url,
		PublishedAt: publishedAt,
	}, true
}
