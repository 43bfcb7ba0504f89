package source

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// extractHTML parses the document and returns its visible text, skipping
// script and style subtrees.
func extractHTML(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				b.WriteString(text)
				b.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return b.String(), nil
}
