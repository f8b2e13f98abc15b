package formatter

import (
	"cmp"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/avl"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSS class names used in HTML output.
const (
	TreeClass  = "avl-tree"
	KeyClass   = "key"
	EmptyClass = "empty"
)

// HTMLNode creates an HTML element for a tree: an unordered list with class
// TreeClass holding the root. Every node is a list item carrying its height
// and balance factor as data attributes, with its key in a span of class
// KeyClass, followed by a nested list of its children. A missing child next to
// an existing one is an empty list item of class EmptyClass, so left and right
// children can be told apart.
//
// An empty tree results in a list without items.
func HTMLNode[K cmp.Ordered](tree *avl.Tree[K]) *html.Node {
	ul := element(atom.Ul, html.Attribute{Key: "class", Val: TreeClass})
	if root := tree.Root(); root.Valid() {
		ul.AppendChild(htmlItem(root))
	}
	return ul
}

// WriteHTML renders a tree as HTML (see HTMLNode) to w.
func WriteHTML[K cmp.Ordered](w io.Writer, tree *avl.Tree[K]) error {
	if err := html.Render(w, HTMLNode(tree)); err != nil {
		tracer().Errorf("tree HTML: %s", err.Error())
		return err
	}
	return nil
}

func htmlItem[K cmp.Ordered](v avl.NodeView[K]) *html.Node {
	li := element(atom.Li,
		html.Attribute{Key: "data-height", Val: strconv.Itoa(v.Height())},
		html.Attribute{Key: "data-balance", Val: strconv.Itoa(v.Balance())},
	)
	span := element(atom.Span, html.Attribute{Key: "class", Val: KeyClass})
	span.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(v.Key())})
	li.AppendChild(span)
	if v.IsLeaf() {
		return li
	}
	ul := element(atom.Ul)
	for _, child := range [2]avl.NodeView[K]{v.Left(), v.Right()} {
		if child.Valid() {
			ul.AppendChild(htmlItem(child))
		} else {
			ul.AppendChild(element(atom.Li, html.Attribute{Key: "class", Val: EmptyClass}))
		}
	}
	li.AppendChild(ul)
	return li
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
}
