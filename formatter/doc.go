/*
Package formatter renders AVL trees for human inspection.

Console output draws the tree top-down with box-drawing connectors, one key
per line, optionally annotated with subtree height and balance factor:

	4           h=3 b=0
	├─L 3       h=2 b=+1
	│   └─L 2   h=1 b=0
	└─R 9       h=2 b=0
	    ├─L 6   h=1 b=0
	    └─R 12  h=1 b=0

Keys are colored by their balance factor. Widths are measured in fixed-width
character positions (“en”s), respecting East Asian wide characters in keys.

HTML output renders the tree as nested unordered lists, to be styled by CSS.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}
