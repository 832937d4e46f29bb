package canvas

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Continuation marks the right half of a fullwidth character.
const Continuation uint32 = 0x000ffffe

// Ambiguous-width characters are narrow regardless of the locale so that
// layout does not depend on the environment.
var widthCondition = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// IsFullwidth reports whether ch occupies two cells.
func IsFullwidth(ch uint32) bool {
	if ch < 0x1100 || ch > unicode.MaxRune || ch == Continuation {
		return false
	}
	return widthCondition.RuneWidth(rune(ch)) == 2
}

// CharWidth returns the number of cells ch occupies: 1 or 2.
func CharWidth(ch uint32) int {
	if IsFullwidth(ch) {
		return 2
	}
	return 1
}
