package listing

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// anchors returns the href of every <a> element in document order.
func anchors(r io.Reader) ([]string, error) {
	var hrefs []string
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, errors.Wrap(err, "tokenize listing")
			}
			return hrefs, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom != atom.A {
				continue
			}
			for _, attr := range tok.Attr {
				if attr.Key == "href" {
					if href := strings.TrimSpace(attr.Val); href != "" {
						hrefs = append(hrefs, href)
					}
					break
				}
			}
		}
	}
}
