package formatter

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/avl"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Glyphs holds the connector strings drawn in front of child keys.
// All connectors and indents must have the same width.
type Glyphs struct {
	Branch, Last string // connector for a child with/without a following sibling
	Pipe, Space  string // indent below a child with/without a following sibling
}

// DefaultGlyphs uses Unicode box-drawing characters.
var DefaultGlyphs = Glyphs{
	Branch: "├─",
	Last:   "└─",
	Pipe:   "│   ",
	Space:  "    ",
}

// ASCIIGlyphs is for terminals without Unicode support.
var ASCIIGlyphs = Glyphs{
	Branch: "|-",
	Last:   "`-",
	Pipe:   "|   ",
	Space:  "    ",
}

// Palette maps balance factors to colors. Balance factors without an entry
// are printed uncolored.
type Palette map[int]*color.Color

// DefaultPalette colors balanced nodes green, leaning nodes yellow and
// anything out of balance red.
func DefaultPalette() Palette {
	return Palette{
		-2: color.New(color.FgRed, color.Bold),
		-1: color.New(color.FgYellow),
		0:  color.New(color.FgGreen),
		1:  color.New(color.FgYellow),
		2:  color.New(color.FgRed, color.Bold),
	}
}

// Config configures console output.
type Config struct {
	LineWidth int            // target line length in en; 0 means unlimited
	Annotate  bool           // append height and balance factor to every key
	Context   *uax11.Context // context for measuring character widths
	Glyphs    *Glyphs        // connectors, nil for DefaultGlyphs
	Palette   Palette        // colors, nil for DefaultPalette
}

var setupGraphemes sync.Once

// consoleLine is a single key as it will be printed.
type consoleLine struct {
	prefix  string // indent and connector
	label   string // the key
	height  int
	balance int
	width   int // of prefix+label, in en
}

// PrintConsole outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func PrintConsole[K cmp.Ordered](tree *avl.Tree[K], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
		config.Annotate = true
	}
	return WriteConsole(os.Stdout, tree, config)
}

// WriteConsole outputs a tree to w, one key per line. An empty tree is
// written as avl.EmptyMarker.
func WriteConsole[K cmp.Ordered](w io.Writer, tree *avl.Tree[K], config *Config) error {
	if config == nil {
		config = &Config{}
	}
	if tree.IsEmpty() {
		_, err := fmt.Fprintln(w, avl.EmptyMarker)
		return err
	}
	glyphs := config.Glyphs
	if glyphs == nil {
		glyphs = &DefaultGlyphs
	}
	palette := config.Palette
	if palette == nil {
		palette = DefaultPalette()
	}
	lines := collectLines(tree.Root(), glyphs)
	column := 0
	for i := range lines {
		lines[i].width = measure(lines[i].prefix+lines[i].label, config.Context)
		column = max(column, lines[i].width)
	}
	column += 2
	annotate := config.Annotate
	if annotate && config.LineWidth > 0 && column+len("h=99 b=+1") > config.LineWidth {
		tracer().P("format", "console").Infof("line width %d too small for annotations", config.LineWidth)
		annotate = false
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.prefix)
		if c, ok := palette[line.balance]; ok && c != nil {
			c.Fprint(&b, line.label)
		} else {
			b.WriteString(line.label)
		}
		if annotate {
			b.WriteString(strings.Repeat(" ", column-line.width))
			fmt.Fprintf(&b, "h=%d b=%s", line.height, signed(line.balance))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// collectLines walks the tree in pre-order, left child before right child.
func collectLines[K cmp.Ordered](root avl.NodeView[K], glyphs *Glyphs) []consoleLine {
	var lines []consoleLine
	var walk func(v avl.NodeView[K], prefix, connector, indent string)
	walk = func(v avl.NodeView[K], prefix, connector, indent string) {
		lines = append(lines, consoleLine{
			prefix:  prefix + connector,
			label:   fmt.Sprint(v.Key()),
			height:  v.Height(),
			balance: v.Balance(),
		})
		type child struct {
			view avl.NodeView[K]
			side string
		}
		var children []child
		if l := v.Left(); l.Valid() {
			children = append(children, child{l, "L"})
		}
		if r := v.Right(); r.Valid() {
			children = append(children, child{r, "R"})
		}
		for i, c := range children {
			if i == len(children)-1 {
				walk(c.view, prefix+indent, glyphs.Last+c.side+" ", glyphs.Space)
			} else {
				walk(c.view, prefix+indent, glyphs.Branch+c.side+" ", glyphs.Pipe)
			}
		}
	}
	walk(root, "", "", "")
	return lines
}

// measure returns the display width of s in en.
func measure(s string, context *uax11.Context) int {
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		// uax11 takes digits, '#' and '*' for emoji keycaps of 2 en
		if len(g) == 1 && g[0] < utf8.RuneSelf {
			w++
			continue
		}
		w += uax11.Width([]byte(g), context)
	}
	return w
}

func signed(b int) string {
	if b > 0 {
		return fmt.Sprintf("+%d", b)
	}
	return fmt.Sprintf("%d", b)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal returns a Config with LineWidth set to the width of the
// terminal attached to stdout, but at least 10 en. If stdout is not a terminal
// or its size is unknown, lines are limited to 65 en.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
