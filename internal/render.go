package internal

import (
	"fmt"
	"html"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// maxListEntries caps the ranked list regardless of snapshot size.
	maxListEntries = 10
	// entryListPath locates the daily ranking inside a snapshot document.
	entryListPath = "boxOfficeResult.dailyBoxOfficeList"
)

// PageRenderer turns snapshot documents into HTML fragments. Fragments are
// append-only: the handler accumulates them in order and never rewrites
// earlier output, so whatever was rendered before a failure stays visible.
type PageRenderer struct {
	printer *message.Printer
}

func NewPageRenderer() *PageRenderer {
	return &PageRenderer{printer: message.NewPrinter(language.Korean)}
}

// SnapshotFragment renders the whole snapshot as pretty-printed JSON.
func (r *PageRenderer) SnapshotFragment(raw []byte) string {
	text := strings.TrimSpace(string(pretty.Pretty(raw)))
	return "<pre>" + html.EscapeString(text) + "</pre>\n"
}

// TopListFragment renders the heading and ranked list for the daily ranking.
// Returns "" when the snapshot carries no ranking at the expected path, or
// when the value there is not an array; that is not an error.
func (r *PageRenderer) TopListFragment(date string, raw []byte) string {
	list := gjson.GetBytes(raw, entryListPath)
	if !list.IsArray() {
		return ""
	}

	entries := list.Array()
	n := len(entries)
	if n > maxListEntries {
		n = maxListEntries
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>🎬 일별 박스오피스 TOP %d (기준일: %s)</h2>\n", n, html.EscapeString(date))
	b.WriteString("<ol>\n")
	for _, e := range entries[:n] {
		// Entries are numbered by their own rank field, not by position.
		rank := e.Get("rank").String()
		name := e.Get("movieNm").String()
		// audiCnt arrives as a number or a numeric string depending on the
		// upstream; either way it is grouped with locale separators.
		audience := r.printer.Sprintf("%d", e.Get("audiCnt").Int())
		fmt.Fprintf(&b, "  <li>%s. %s - %s명</li>\n",
			html.EscapeString(rank), html.EscapeString(name), audience)
	}
	b.WriteString("</ol>\n")
	return b.String()
}

// ErrorFragment renders the single visible error paragraph.
func (r *PageRenderer) ErrorFragment(err error) string {
	return `<p style="color:#c00">` + html.EscapeString(err.Error()) + "</p>\n"
}

// Document wraps body fragments in the page shell, preserving their order.
func (r *PageRenderer) Document(fragments ...string) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html lang=\"ko\">\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n  <title>K-Movie Archive</title>\n")
	b.WriteString("</head>\n<body>\n")
	for _, f := range fragments {
		b.WriteString(f)
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
