package report

import (
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"strings"

	"github.com/fplradar/radar/app/ideas"
)

type reportView struct {
	Summary  Summary
	TopViews []rankedView
	TopScore []rankedView
	Cards    []cardView
}

type rankedView struct {
	Title string
	Value string
}

type cardView struct {
	Title       string
	Description string
	Image       string
	Views       string
	Score       string
	Extras      []metricView
}

type metricView struct {
	Key   string
	Value string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>FPL Radar - Daily report</title>
<style>
body{font-family:Segoe UI,Arial,sans-serif;background:#fafafa;color:#111;margin:24px;}
.wrap{max-width:1000px;margin:0 auto;display:flex;flex-direction:column;gap:16px}
.grid{display:grid;grid-template-columns:repeat(3,minmax(0,1fr));gap:8px}
.chip{background:#eef2ff;color:#3730a3;padding:6px 10px;border-radius:999px;display:inline-block}
h1{margin:.2em 0}
</style>
</head>
<body>
  <div class="wrap">
    <header>
      <h1>FPL Radar - Daily report</h1>
      <div class="grid">
        <span class="chip">Generated: {{.Summary.GeneratedAt}}</span>
        <span class="chip">Ideas: {{.Summary.Count}}</span>
        <span class="chip">Avg views: {{.Summary.AvgViews}}</span>
      </div>
      <div style="display:flex;gap:24px;flex-wrap:wrap;margin-top:8px">
        <div>
          <h3>Top views</h3>
          <ol>{{range .TopViews}}<li>{{.Title}} ({{.Value}})</li>{{end}}</ol>
        </div>
        <div>
          <h3>Top score</h3>
          <ol>{{range .TopScore}}<li>{{.Title}} ({{.Value}})</li>{{end}}</ol>
        </div>
      </div>
    </header>
    <hr style="border:none;border-top:1px solid #e5e7eb;margin:8px 0 16px 0"/>
    <section>
      <h2>Ideas</h2>
      <div style="display:flex;flex-direction:column;gap:12px">
{{range .Cards}}        <div style="border:1px solid #e5e7eb;border-radius:16px;padding:16px;display:flex;gap:16px;align-items:flex-start;">
          {{if .Image}}<img src="{{.Image}}" alt="image" style="max-width:320px;border-radius:12px;border:1px solid #ddd;" />{{end}}
          <div style="flex:1;min-width:0">
            <h3 style="margin:0 0 8px 0">{{.Title}}</h3>
            <p style="margin:0 0 8px 0;opacity:.9">{{.Description}}</p>
            <div style="display:flex;gap:16px;margin-top:8px;flex-wrap:wrap">
              <div><strong>Views:</strong> {{.Views}}</div>
              <div><strong>Score:</strong> {{.Score}}</div>
{{range .Extras}}              <div><span style="opacity:.7">{{.Key}}:</span> {{.Value}}</div>
{{end}}            </div>
          </div>
        </div>
{{end}}      </div>
    </section>
  </div>
</body>
</html>
`))

// RenderHTML produces the full report document for the given summary
// and ideas.
func RenderHTML(summary Summary, list []ideas.Idea) (string, error) {
	view := reportView{
		Summary:  summary,
		TopViews: rankedViews(summary.TopViews, "views"),
		TopScore: rankedViews(summary.TopScore, "score"),
	}
	for _, idea := range list {
		view.Cards = append(view.Cards, newCardView(idea))
	}

	var b strings.Builder
	if err := reportTemplate.Execute(&b, view); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return b.String(), nil
}

func rankedViews(list []ideas.Idea, key string) []rankedView {
	views := make([]rankedView, 0, len(list))
	for _, idea := range list {
		value := ""
		if v, ok := idea.Metric(key); ok {
			value = formatMetric(v)
		}
		views = append(views, rankedView{Title: idea.Title, Value: value})
	}
	return views
}

func newCardView(idea ideas.Idea) cardView {
	card := cardView{
		Title:       idea.Title,
		Description: idea.Description,
		Image:       idea.Image(),
	}
	if v, ok := idea.Metric("views"); ok {
		card.Views = formatMetric(v)
	}
	if v, ok := idea.Metric("score"); ok {
		card.Score = formatMetric(v)
	}

	keys := make([]string, 0, len(idea.Metrics))
	for k := range idea.Metrics {
		if k == "views" || k == "score" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		card.Extras = append(card.Extras, metricView{Key: k, Value: formatMetric(idea.Metrics[k])})
	}
	return card
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
