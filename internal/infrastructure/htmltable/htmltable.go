// Package htmltable extracts the statement's transaction table from
// an HTML dump as rows of cell text. The rest of the system never
// touches markup.
package htmltable

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Source reads statement rows from an HTML file containing the
// statement's <table> element.
type Source struct {
	path string
}

// NewSource creates a Source for the given file path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Rows returns one entry per <tr> of the document's first <tbody>,
// each holding the trimmed text of its <td>/<th> cells.
func (s *Source) Rows() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open statement: %w", err)
	}
	defer f.Close()

	rows, err := ParseRows(f)
	if err != nil {
		return nil, fmt.Errorf("statement %s: %w", s.path, err)
	}
	return rows, nil
}

// ParseRows parses HTML from r and extracts the first table body's
// rows.
func ParseRows(r io.Reader) ([][]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	body := findElement(doc, "tbody")
	if body == nil {
		return nil, fmt.Errorf("no tbody element found")
	}

	var rows [][]string
	for tr := body.FirstChild; tr != nil; tr = tr.NextSibling {
		if tr.Type != html.ElementNode || tr.Data != "tr" {
			continue
		}
		var cells []string
		for td := tr.FirstChild; td != nil; td = td.NextSibling {
			if td.Type != html.ElementNode || (td.Data != "td" && td.Data != "th") {
				continue
			}
			cells = append(cells, strings.TrimSpace(text(td)))
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return rows, nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(text(c))
	}
	return b.String()
}
