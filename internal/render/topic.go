// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"text/template"
	"time"

	"github.com/pdiddy/astro-digest/internal/digest"
	"github.com/pdiddy/astro-digest/pkg/types"
)

// topicPaper is the per-paper view for the topic digest templates.
type topicPaper struct {
	Title           string
	URL             string
	Category        string
	Emoji           string
	Label           string
	Color           string
	Background      string
	AuthorsHTML     string
	AuthorsText     string
	AbstractShort   string
	AbstractFull    string
	TitleRule       string
	Priority        bool
	PriorityAuthors string
}

// topicView is the root view for the topic digest templates.
type topicView struct {
	DateRange string
	Welcome   string
	Total     int
	MustRead  int
	Relevant  int
	Somewhat  int
	General   int
	Papers    []topicPaper
	Treasure  Treasure
}

var topicHTMLTmpl = htmltemplate.Must(htmltemplate.New("topic-html").Parse(`<html>
<body style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #0479a8; border-bottom: 2px solid #0479a8; padding-bottom: 10px;">
    Daily Astro-ph Topic Digest
  </h1>

  <div style="background-color: #f0f8ff; padding: 15px; border-radius: 10px; margin-bottom: 20px; font-size: 16px; line-height: 1.5;">
    {{.Welcome}}
  </div>

  <p style="color: #666;">Papers from {{.DateRange}}</p>
{{if .Papers}}
  <div style="background-color: #f5f5f5; padding: 15px; border-radius: 10px; margin-bottom: 25px;">
    <p style="margin: 0; font-size: 18px;">
      <strong>{{.Total}} papers</strong> today:
      <span style="margin-left: 15px;">🔴 {{.MustRead}} must-read</span>
      <span style="margin-left: 10px;">🟠 {{.Relevant}} relevant</span>
      <span style="margin-left: 10px;">🟡 {{.Somewhat}} interesting</span>
      <span style="margin-left: 10px;">⚪ {{.General}} general</span>
    </p>
  </div>
{{range .Papers}}
  <div style="margin-bottom: 25px; padding: 15px; border-left: 6px solid {{.Color}}; background-color: {{.Background}};">
    <div style="margin-bottom: 10px;">
      <span style="font-size: 24px; margin-right: 10px;">{{.Emoji}}</span>
      <span style="background-color: {{.Color}}; color: white; padding: 3px 10px; border-radius: 12px; font-size: 12px; font-weight: bold;">
        {{.Label}}
      </span>
      <span style="color: #888; font-size: 12px; margin-left: 10px;">{{.Category}}</span>
    </div>
    <h3 style="margin: 0 0 8px 0;">
      <a href="{{.URL}}" style="color: #0479a8; text-decoration: none;">{{.Title}}</a>
    </h3>
{{if .Priority}}    <p style="margin: 0 0 8px 0; color: #c5050c; font-weight: bold; font-size: 14px;">
      ⭐ {{if .PriorityAuthors}}{{.PriorityAuthors}}{{else}}Priority author{{end}}
    </p>
{{end}}    <p style="margin: 0 0 10px 0; color: #666; font-size: 14px;">
      {{.AuthorsHTML}}
    </p>
    <p style="margin: 0; font-size: 14px; line-height: 1.5; color: #444;">
      {{.AbstractShort}} <a href="{{.URL}}" style="color: #0479a8; text-decoration: none;">[read more]</a>
    </p>
  </div>
{{end}}
  <div style="margin-top: 50px; padding: 20px; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); border-radius: 15px; color: white; text-align: center;">
    <h2 style="margin: 0 0 10px 0;">{{.Treasure.Title}}</h2>
    <p style="margin: 0; font-size: 14px; line-height: 1.6;">
      {{.Treasure.Body}}
    </p>
  </div>

  <hr style="margin-top: 40px; border: none; border-top: 1px solid #ddd;">
  <p style="color: #999; font-size: 12px;">
    This digest is automatically generated using NASA ADS. Keep climbing! 🏔️
  </p>
{{else}}
  <p>No papers matching your interests were found today. Rest day for your brain! 🧘</p>
{{end}}</body>
</html>
`))

var topicTextTmpl = template.Must(template.New("topic-text").Parse(`Daily Astro-ph Topic Digest
{{.DateRange}}

{{.Welcome}}
{{if .Papers}}
{{.Total}} papers today:
  🔴 {{.MustRead}} must-read
  🟠 {{.Relevant}} relevant
  🟡 {{.Somewhat}} interesting
  ⚪ {{.General}} general

============================================================
{{range .Papers}}
{{.Emoji}} [{{.Label}}]
{{.Title}}
{{.TitleRule}}
{{if .Priority}}⭐ PRIORITY AUTHOR{{if .PriorityAuthors}}: {{.PriorityAuthors}}{{end}}
{{end}}Authors: {{.AuthorsText}}
Category: {{.Category}}
Link: {{.URL}}

{{.AbstractFull}}
{{end}}
============================================================
{{.Treasure.Title}}
============================================================
{{.Treasure.Body}}
{{else}}
No papers found today.
{{end}}`))

// Topic renders the topic digest with a randomly chosen welcome message and
// bottom treasure.
func Topic(entries []digest.Entry, now time.Time, daysBack int) (Email, error) {
	return renderTopic(entries, now, daysBack, randomWelcome(), randomTreasure())
}

func renderTopic(entries []digest.Entry, now time.Time, daysBack int, welcome string, treasure Treasure) (Email, error) {
	counts := digest.TierCounts(entries)
	view := topicView{
		DateRange: dateRange(now, daysBack),
		Welcome:   welcome,
		Total:     len(entries),
		MustRead:  counts[types.TierMustRead],
		Relevant:  counts[types.TierRelevant],
		Somewhat:  counts[types.TierSomewhat],
		General:   counts[types.TierGeneral],
		Treasure:  treasure,
	}
	for _, e := range entries {
		view.Papers = append(view.Papers, topicPaperView(e))
	}

	subject := "Astro-ph Topic Digest: No papers today"
	if len(entries) > 0 {
		subject = fmt.Sprintf("Astro-ph Digest: %d🔴 %d🟠 %d🟡 (%d total)",
			view.MustRead, view.Relevant, view.Somewhat, view.Total)
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := topicHTMLTmpl.Execute(&htmlBuf, view); err != nil {
		return Email{}, fmt.Errorf("rendering topic HTML: %w", err)
	}
	if err := topicTextTmpl.Execute(&textBuf, view); err != nil {
		return Email{}, fmt.Errorf("rendering topic text: %w", err)
	}
	return Email{Subject: subject, HTML: htmlBuf.String(), Text: textBuf.String()}, nil
}

func topicPaperView(e digest.Entry) topicPaper {
	title := e.Record.Title
	if title == "" {
		title = "Untitled"
	}
	abstract := e.Record.Abstract
	if abstract == "" {
		abstract = "No abstract available."
	}
	return topicPaper{
		Title:           title,
		URL:             e.Record.URL(),
		Category:        e.Record.Category(),
		Emoji:           e.Annotation.Tier.Emoji(),
		Label:           e.Annotation.Tier.Label(),
		Color:           e.Annotation.Tier.Color(),
		Background:      e.Annotation.Tier.Background(),
		AuthorsHTML:     joinAuthorsMore(e.Record.Authors, 6),
		AuthorsText:     joinAuthors(e.Record.Authors, 15),
		AbstractShort:   truncateAtWord(abstract, 400),
		AbstractFull:    abstract,
		TitleRule:       titleRule(title),
		Priority:        e.Annotation.Priority,
		PriorityAuthors: joinAuthors(e.Annotation.PriorityAuthors, len(e.Annotation.PriorityAuthors)),
	}
}
