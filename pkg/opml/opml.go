// Package opml renders subscription lists as OPML 2.0 documents, the
// interchange format feed readers import and export.
package opml

import (
	"encoding/xml"
	"io"
	"sort"

	"github.com/feedtools/subsync/pkg/errors"
	"github.com/feedtools/subsync/pkg/subscriptions"
)

// Document is an OPML document: a head with a title and a body holding
// one outline per subscription, optionally nested inside a single
// folder outline.
type Document struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    Head     `xml:"head"`
	Body    Body     `xml:"body"`
}

// Head is the OPML document header.
type Head struct {
	Title string `xml:"title"`
}

// Body holds the document outlines.
type Body struct {
	Outlines []Outline `xml:"outline"`
}

// Outline is a single OPML outline element. Feed outlines carry the
// feed URL in xmlUrl; folder outlines carry child outlines instead.
type Outline struct {
	Text     string    `xml:"text,attr"`
	Title    string    `xml:"title,attr,omitempty"`
	Type     string    `xml:"type,attr,omitempty"`
	XMLURL   string    `xml:"xmlUrl,attr,omitempty"`
	Outlines []Outline `xml:"outline,omitempty"`
}

// Options control document construction.
type Options struct {
	// Title is the head title of the document.
	Title string

	// Folder, when non-empty, nests all feed outlines inside one
	// wrapping outline carrying the folder name as both title and text.
	Folder string

	// SortByURL orders feed outlines by feed URL.
	SortByURL bool
}

// Build constructs a Document from the given items.
func Build(items []subscriptions.Item, opts Options) *Document {
	if opts.SortByURL {
		sorted := make([]subscriptions.Item, len(items))
		copy(sorted, items)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].URL < sorted[j].URL })
		items = sorted
	}

	feeds := make([]Outline, 0, len(items))
	for _, item := range items {
		feeds = append(feeds, Outline{
			Text:   item.Title,
			Title:  item.Title,
			Type:   "rss",
			XMLURL: item.URL,
		})
	}

	doc := &Document{
		Version: "2.0",
		Head:    Head{Title: opts.Title},
	}

	if opts.Folder != "" {
		doc.Body.Outlines = []Outline{{
			Text:     opts.Folder,
			Title:    opts.Folder,
			Outlines: feeds,
		}}
	} else {
		doc.Body.Outlines = feeds
	}

	return doc
}

// Render writes the document as indented XML with the standard header.
func (d *Document) Render(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.WrapIO("write", "opml header", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.WrapParse("opml", "", err)
	}

	// Encoder does not emit a trailing newline.
	_, err := io.WriteString(w, "\n")
	return errors.WrapIO("write", "opml body", err)
}
