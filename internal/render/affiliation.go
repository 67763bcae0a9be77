// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/pdiddy/astro-digest/internal/digest"
)

// affPaper is the per-paper view for the affiliation digest templates.
type affPaper struct {
	Title      string
	URL        string
	Category   string
	Matched    string
	AuthorsAll string
	Abstract   string
	TitleRule  string
}

// affCategory groups papers under one arXiv category heading.
type affCategory struct {
	Name   string
	Papers []affPaper
}

// affView is the root view for the affiliation digest templates.
type affView struct {
	Label      string
	DateRange  string
	Total      int
	Plural     string
	Categories []affCategory
}

var affHTMLTmpl = htmltemplate.Must(htmltemplate.New("aff-html").Parse(`<html>
<body style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #c5050c; border-bottom: 2px solid #c5050c; padding-bottom: 10px;">
    {{.Label}} Astro-ph Digest
  </h1>
  <p style="color: #666;">Papers from {{.DateRange}}</p>
{{if .Categories}}  <p style="font-size: 18px;"><strong>{{.Total}}</strong> paper{{.Plural}} with {{.Label}} affiliated authors</p>
{{range .Categories}}  <h2 style="color: #333; margin-top: 30px;">{{.Name}} ({{len .Papers}})</h2>
{{range .Papers}}  <div style="margin-bottom: 20px; padding: 15px; border-left: 3px solid #c5050c; background-color: #f9f9f9;">
    <h3 style="margin: 0 0 8px 0;">
      <a href="{{.URL}}" style="color: #0479a8; text-decoration: none;">{{.Title}}</a>
    </h3>
    <p style="margin: 0 0 8px 0; color: #c5050c; font-size: 14px;">
      <strong>{{$.Label}}:</strong> {{.Matched}}
    </p>
    <p style="margin: 0 0 8px 0; color: #666; font-size: 14px;">
      <strong>All Authors:</strong> {{.AuthorsAll}}
    </p>
    <p style="margin: 0 0 8px 0; color: #666; font-size: 14px;">
      <strong>Category:</strong> {{.Category}}
    </p>
    <p style="margin: 0; font-size: 14px; line-height: 1.5;">
      {{.Abstract}}
    </p>
  </div>
{{end}}{{end}}
  <hr style="margin-top: 40px; border: none; border-top: 1px solid #ddd;">
  <p style="color: #999; font-size: 12px;">
    This digest is automatically generated using NASA ADS (astronomy database filter).
  </p>
{{else}}  <p>No papers with {{.Label}} affiliated authors were found in ADS (astronomy database) for this window.</p>
{{end}}</body>
</html>
`))

var affTextTmpl = template.Must(template.New("aff-text").Parse(`{{.Label}} Astro-ph Digest
{{.DateRange}}
{{if .Categories}}
{{.Total}} paper{{.Plural}} with {{.Label}} affiliated authors
{{range .Categories}}
============================================================
{{.Name}} ({{len .Papers}})
============================================================
{{range .Papers}}
{{.Title}}
{{.TitleRule}}
{{$.Label}}: {{.Matched}}
All Authors: {{.AuthorsAll}}
Category: {{.Category}}
Link: {{.URL}}

{{.Abstract}}
{{end}}{{end}}{{else}}
No papers found this week.
{{end}}`))

// Affiliation renders the affiliation digest, grouped by arXiv category.
// label names the institution in headings and matched-author lines, e.g.
// "UW-Madison".
func Affiliation(entries []digest.Entry, now time.Time, daysBack int, label string) (Email, error) {
	byCategory := map[string][]affPaper{}
	for _, e := range entries {
		cat := e.Record.Category()
		byCategory[cat] = append(byCategory[cat], affPaperView(e))
	}
	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	view := affView{
		Label:     label,
		DateRange: dateRange(now, daysBack),
		Total:     len(entries),
		Plural:    plural(len(entries)),
	}
	for _, name := range names {
		view.Categories = append(view.Categories, affCategory{Name: name, Papers: byCategory[name]})
	}

	subject := fmt.Sprintf("%s Astro-ph Digest: No papers this week", label)
	if len(entries) > 0 {
		subject = fmt.Sprintf("%s Astro-ph Digest: %d paper%s this week", label, len(entries), view.Plural)
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := affHTMLTmpl.Execute(&htmlBuf, view); err != nil {
		return Email{}, fmt.Errorf("rendering affiliation HTML: %w", err)
	}
	if err := affTextTmpl.Execute(&textBuf, view); err != nil {
		return Email{}, fmt.Errorf("rendering affiliation text: %w", err)
	}
	return Email{Subject: subject, HTML: htmlBuf.String(), Text: textBuf.String()}, nil
}

func affPaperView(e digest.Entry) affPaper {
	title := e.Record.Title
	if title == "" {
		title = "Untitled"
	}
	abstract := e.Record.Abstract
	if abstract == "" {
		abstract = "No abstract available."
	}
	matched := strings.Join(e.Annotation.MatchedAuthors, ", ")
	if matched == "" {
		matched = "Unknown"
	}
	return affPaper{
		Title:      title,
		URL:        e.Record.URL(),
		Category:   e.Record.Category(),
		Matched:    matched,
		AuthorsAll: joinAuthors(e.Record.Authors, 10),
		Abstract:   truncate(abstract, 500),
		TitleRule:  titleRule(title),
	}
}
