package format

import "github.com/pseudomuto/sqlfmt/pkg/style"

type listMode int

const (
	// inline keeps every item on the current line, separated by ", ".
	inline listMode = iota
	// onePerLine starts every item after the first on a new line at the
	// layout's depth. The caller positions the first item.
	onePerLine
)

// list emits n items separated according to the style's comma placement.
// With CommaBefore every item after the first is prefixed with ", "; with
// CommaAfter every item except the last is followed by ",".
func (l layout) list(n int, mode listMode, item func(i int)) {
	before := l.style.CommaPlacement == style.CommaBefore

	for i := range n {
		if i > 0 {
			if mode == onePerLine {
				l.line()
			}

			switch {
			case before:
				l.comma()
				l.space()
			case mode == inline:
				l.space()
			}
		}

		item(i)

		if !before && i < n-1 {
			l.comma()
		}
	}
}
