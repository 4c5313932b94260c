// Package page assembles the static portal document from resolved entries.
//
// Interpolated text is escaped only by replacing double quotes with the
// HTML entity, which keeps attributes intact. Nothing else is sanitized:
// the input file is operator-controlled and this tool does not defend
// against script injection through its own data.
package page

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/jacortez/portalgen/internal/portal"
)

type pageData struct {
	Title       string
	Description string
	Date        string
	Cards       []cardData
}

type cardData struct {
	Title      string
	Desc       string
	URL        string
	Asset      string
	TitleLower string
	DescLower  string
	URLLower   string
}

// Build renders the full document. Cards appear in input order, one per
// entry; entries without a resolved asset get a blank placeholder block
// instead of an image tag.
func Build(entries []portal.Entry, portalTitle, portalDesc string) (string, error) {
	data := pageData{
		Title:       escapeAttr(portalTitle),
		Description: escapeAttr(portalDesc),
		Date:        time.Now().Format("2006-01-02"),
		Cards:       make([]cardData, 0, len(entries)),
	}
	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = e.URL
		}
		card := cardData{
			Title: escapeAttr(title),
			Desc:  escapeAttr(e.Description),
			URL:   escapeAttr(e.URL),
			Asset: e.ResolvedAsset,
		}
		card.TitleLower = strings.ToLower(card.Title)
		card.DescLower = strings.ToLower(card.Desc)
		card.URLLower = strings.ToLower(card.URL)
		data.Cards = append(data.Cards, card)
	}

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}
	return sb.String(), nil
}

// escapeAttr neutralizes double quotes so interpolated text cannot break
// out of an HTML attribute.
func escapeAttr(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}

var pageTemplate = template.Must(template.New("portal").Parse(portalHTML))
