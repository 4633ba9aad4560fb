package analyze

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Traversal helpers over the parsed tree. The tree is owned by the parser
// and consumed read-only: parent links are traversal-only back-references,
// children are the sole ownership path, and no helper mutates a node.

// attr returns the value of the named attribute, matched case-insensitively.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attr(n, key)
	return ok
}

// hasAriaAttr reports whether any aria-* attribute is present.
func hasAriaAttr(n *html.Node) bool {
	for _, a := range n.Attr {
		if strings.HasPrefix(strings.ToLower(a.Key), "aria-") {
			return true
		}
	}
	return false
}

// isControl reports whether n is a control-like element: an input, textarea,
// or select capable of receiving user input.
func isControl(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Input, atom.Textarea, atom.Select:
		return true
	}
	return false
}

// findAllByTag finds all elements matching any of the given tags, in
// document order.
func findAllByTag(root *html.Node, tags ...atom.Atom) []*html.Node {
	var results []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, tag := range tags {
				if n.DataAtom == tag {
					results = append(results, n)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return results
}

// walkElements visits every element node in document order.
func walkElements(root *html.Node, fn func(*html.Node)) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			fn(n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}

// parentElement returns the nearest element ancestor, or nil.
func parentElement(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

// findAncestor returns the nearest ancestor with one of the given tags.
func findAncestor(n *html.Node, tags ...atom.Atom) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		for _, tag := range tags {
			if p.DataAtom == tag {
				return p
			}
		}
	}
	return nil
}

// hasDescendant reports whether the subtree rooted at n contains an element
// with the given tag (n itself excluded).
func hasDescendant(n *html.Node, tag atom.Atom) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == tag {
			return true
		}
		if hasDescendant(c, tag) {
			return true
		}
	}
	return false
}

// findLabelFor returns the first label element within scope whose for
// attribute equals id.
func findLabelFor(scope *html.Node, id string) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Label {
			if v, ok := attr(n, "for"); ok && v == id {
				found = n
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(scope)
	return found
}

// collectText extracts the flattened visible text of a subtree.
func collectText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// renderNode serializes a node subtree back to markup.
func renderNode(n *html.Node) string {
	var buf bytes.Buffer
	html.Render(&buf, n)
	return buf.String()
}

// voidTags never take a closing tag.
var voidTags = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Source: true, atom.Track: true,
	atom.Wbr: true,
}

// prettyNode serializes a node subtree with one tag or text run per line,
// indented by depth. Used for the human-facing snippet of an issue.
func prettyNode(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node, int)
	walk = func(n *html.Node, depth int) {
		indent := strings.Repeat(" ", depth)
		switch n.Type {
		case html.TextNode:
			text := strings.TrimSpace(n.Data)
			if text != "" {
				sb.WriteString(indent)
				sb.WriteString(text)
				sb.WriteByte('\n')
			}
		case html.ElementNode:
			sb.WriteString(indent)
			sb.WriteByte('<')
			sb.WriteString(n.Data)
			for _, a := range n.Attr {
				sb.WriteByte(' ')
				sb.WriteString(a.Key)
				sb.WriteString(`="`)
				sb.WriteString(a.Val)
				sb.WriteByte('"')
			}
			sb.WriteString(">\n")
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c, depth+1)
			}
			if !voidTags[n.DataAtom] {
				sb.WriteString(indent)
				sb.WriteString("</")
				sb.WriteString(n.Data)
				sb.WriteString(">\n")
			}
		default:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c, depth)
			}
		}
	}
	walk(n, 0)
	return sb.String()
}

// snippetFor pretty-prints the element's immediate context: its parent
// element when one exists, the element itself otherwise.
func snippetFor(n *html.Node) string {
	if p := parentElement(n); p != nil {
		return prettyNode(p)
	}
	return prettyNode(n)
}
