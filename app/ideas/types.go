package ideas

import "cmp"

// Idea is a displayable unit in the daily report, decoupled from the
// feed's video records. Metrics is an open mapping: any key may appear,
// and an absent key contributes neither to means nor to ranking.
type Idea struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Metrics     map[string]float64 `json:"metrics"`
	ImagePath   string             `json:"image_path,omitempty"`
	ImageURL    string             `json:"image_url,omitempty"`
}

// Image returns the idea's image reference, preferring the URL form.
func (i Idea) Image() string {
	return cmp.Or(i.ImageURL, i.ImagePath)
}

// Metric returns the named metric, with 0 for an absent key.
func (i Idea) Metric(key string) (float64, bool) {
	v, ok := i.Metrics[key]
	return v, ok
}
