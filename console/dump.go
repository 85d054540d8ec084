package console

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls the layout of a dump.
type Config struct {
	LineWidth int            // maximum line length in en; lines are cut with '…'
	Context   *uax11.Context // context for display widths; nil means Latin
	Palette   []*color.Color // colors per level, cycling; nil prints without color
}

// DefaultPalette colors levels alternating in blue, green and magenta.
func DefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
	}
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are used for
// terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 80}
	if term.IsTerminal(1) {
		if w, _, err := term.GetSize(1); err == nil && w > 10 {
			config.LineWidth = w
		}
		config.Palette = DefaultPalette()
		config.Context = uax11.ContextFromEnvironment()
	}
	tracer().P("dump", "console").Debugf("setting line length to %d en", config.LineWidth)
	return config
}

var setupGraphemes sync.Once

// Dump writes the levels of tree to w. If config is nil, it is derived from
// the terminal with ConfigFromTerminal.
func Dump[T any](w io.Writer, tree *segtree.Tree[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(func() {
		grapheme.SetupGraphemeClasses()
	})
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	levels := make([][]string, tree.Height())
	colwidth := 0
	tree.EachNode(func(n segtree.Node[T]) bool {
		cell := fmt.Sprintf("%v[%d,%d]", n.Value, n.Start, n.End)
		levels[n.Depth] = append(levels[n.Depth], cell)
		colwidth = max(colwidth, displayWidth(cell, context))
		return true
	})
	for depth, cells := range levels {
		line := layoutLevel(depth, cells, colwidth, config.LineWidth, context)
		if len(config.Palette) > 0 {
			line = config.Palette[depth%len(config.Palette)].Sprint(line)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// layoutLevel renders one level, padding cells to colwidth and cutting the
// line if it would exceed linewidth.
func layoutLevel(depth int, cells []string, colwidth, linewidth int, context *uax11.Context) string {
	line := fmt.Sprintf("L%d", depth)
	used := displayWidth(line, context)
	for _, cell := range cells {
		if linewidth > 0 && used+2+colwidth > linewidth {
			return strings.TrimRight(line, " ") + " …"
		}
		pad := colwidth - displayWidth(cell, context)
		line += "  " + cell + strings.Repeat(" ", pad)
		used += 2 + colwidth
	}
	return strings.TrimRight(line, " ")
}

// displayWidth measures s in en. uax11 classifies ASCII digits as emoji
// components of width 2, but terminals print every ASCII character narrow.
func displayWidth(s string, context *uax11.Context) int {
	if len(s) > grapheme.MaxByteLen {
		s = s[:grapheme.MaxByteLen]
	}
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if len(g) == 1 && g[0] < utf8.RuneSelf {
			w++
			continue
		}
		w += uax11.Width([]byte(g), context)
	}
	return w
}
