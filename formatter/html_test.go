package formatter

import (
	"slices"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func collectKeys(n *html.Node, keys *[]string, empty *int) {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "class" && a.Val == KeyClass && n.FirstChild != nil {
				*keys = append(*keys, n.FirstChild.Data)
			}
			if a.Key == "class" && a.Val == EmptyClass {
				*empty++
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectKeys(c, keys, empty)
	}
}

func TestHTMLRoundTrip(t *testing.T) {
	tree := makeTree(12, 3, 9, 4, 6, 2)
	var b strings.Builder
	if err := WriteHTML(&b, tree); err != nil {
		t.Fatal(err)
	}
	t.Logf("%s", b.String())
	nodes, err := html.ParseFragment(strings.NewReader(b.String()), nil)
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	empty := 0
	for _, n := range nodes {
		collectKeys(n, &keys, &empty)
	}
	if want := []string{"4", "3", "2", "9", "6", "12"}; !slices.Equal(keys, want) {
		t.Errorf("keys in pre-order: got %v, want %v", keys, want)
	}
	if empty != 1 {
		t.Errorf("expected one empty slot (right child of 3), got %d", empty)
	}
	if !strings.Contains(b.String(), `<li data-height="3" data-balance="0">`) {
		t.Errorf("root item lacks data attributes")
	}
}

func TestHTMLEmptyTree(t *testing.T) {
	var b strings.Builder
	if err := WriteHTML(&b, makeTree[string]()); err != nil {
		t.Fatal(err)
	}
	if b.String() != `<ul class="avl-tree"></ul>` {
		t.Errorf("got %q for empty tree", b.String())
	}
}

func TestHTMLEscapesKeys(t *testing.T) {
	var b strings.Builder
	if err := WriteHTML(&b, makeTree("<b>", "a&b")); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "<b>") || !strings.Contains(b.String(), "&lt;b&gt;") {
		t.Errorf("keys not escaped: %s", b.String())
	}
}
