package formatter

import (
	"io"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/avl"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func makeTree[K int | string](keys ...K) *avl.Tree[K] {
	tree := avl.NewTree[K]()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func TestConsoleShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	color.NoColor = true
	//
	tree := makeTree(12, 3, 9, 4, 6, 2)
	var b strings.Builder
	if err := WriteConsole(&b, tree, &Config{Context: uax11.LatinContext}); err != nil {
		t.Fatal(err)
	}
	want := "4\n" +
		"├─L 3\n" +
		"│   └─L 2\n" +
		"└─R 9\n" +
		"    ├─L 6\n" +
		"    └─R 12\n"
	if b.String() != want {
		t.Errorf("console output:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestConsoleAnnotations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	color.NoColor = true
	//
	tree := makeTree(12, 3, 9, 4, 6, 2)
	var b strings.Builder
	config := &Config{Annotate: true, Glyphs: &ASCIIGlyphs, Context: uax11.LatinContext}
	if err := WriteConsole(&b, tree, config); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", b.String())
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	col := -1
	for _, line := range lines {
		i := strings.Index(line, "h=")
		if i < 0 {
			t.Fatalf("missing annotation in %q", line)
		}
		if c := utf8.RuneCountInString(line[:i]); col < 0 {
			col = c
		} else if c != col {
			t.Errorf("annotation of %q at column %d, expected %d", line, c, col)
		}
	}
	if !strings.HasSuffix(lines[0], "h=3 b=0") || !strings.HasSuffix(lines[5], "h=1 b=0") {
		t.Errorf("unexpected annotations: %q, %q", lines[0], lines[5])
	}
}

func TestConsoleNarrowLineDropsAnnotations(t *testing.T) {
	color.NoColor = true
	tree := makeTree("apple", "banana", "cherry")
	var b strings.Builder
	config := &Config{Annotate: true, LineWidth: 12, Glyphs: &ASCIIGlyphs}
	if err := WriteConsole(&b, tree, config); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "h=") {
		t.Errorf("annotations should be dropped for narrow lines:\n%s", b.String())
	}
	want := "banana\n|-L apple\n`-R cherry\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestConsoleEmptyTree(t *testing.T) {
	var b strings.Builder
	if err := WriteConsole(&b, avl.NewTree[int](), nil); err != nil {
		t.Fatal(err)
	}
	if b.String() != avl.EmptyMarker+"\n" {
		t.Errorf("got %q for empty tree", b.String())
	}
}

func TestConsoleColors(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()
	tree := makeTree(1, 2)
	var b strings.Builder
	palette := Palette{0: color.New(color.FgGreen)}
	if err := WriteConsole(&b, tree, &Config{Palette: palette}); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "\x1b[32m2") {
		t.Errorf("expected balanced leaf 2 to be green: %q", out)
	}
	if !strings.HasPrefix(out, "1\n") {
		t.Errorf("root with balance -1 has no palette entry and should be plain: %q", out)
	}
}

func TestMeasure(t *testing.T) {
	for _, c := range []struct {
		s string
		w int
	}{
		{"4", 1},
		{"12", 2},
		{"x12", 3},
		{"`-R 12", 6},
		{"#*", 2},
		{"├─L 3", 5},
		{"世界", 4},
		{"`-R 世界", 8},
		{"", 0},
	} {
		if w := measure(c.s, uax11.LatinContext); w != c.w {
			t.Errorf("width of %q is %d, expected %d", c.s, w, c.w)
		}
	}
}

func TestConsoleWideKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	color.NoColor = true
	//
	tree := makeTree("b", "a", "世界")
	var b strings.Builder
	config := &Config{Annotate: true, Glyphs: &ASCIIGlyphs, Context: uax11.LatinContext}
	if err := WriteConsole(&b, tree, config); err != nil {
		t.Fatal(err)
	}
	want := "b         h=2 b=0\n" +
		"|-L a     h=1 b=0\n" +
		"`-R 世界  h=1 b=0\n"
	if b.String() != want {
		t.Errorf("console output:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestPrintConsole(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	color.NoColor = true
	//
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdout := os.Stdout
	os.Stdout = w
	err = PrintConsole(makeTree(2, 1, 3), nil)
	os.Stdout = stdout
	w.Close()
	if err != nil {
		t.Fatal(err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "2 ") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	for _, line := range lines {
		if !strings.Contains(line, "h=") {
			t.Errorf("expected annotations by default, have %q", line)
		}
	}
}
