package entity

import (
	"strings"
)

const (
	WinScore = 1000

	ScoreWinnerX = -WinScore
	ScoreWinnerO = +WinScore
)

// Lines returns every column, row and diagonal long enough to hold a winning run,
// each as the string of its marks. Columns come first, then rows, then down-left
// and down-right diagonals.
func (that *Board) Lines() []string {
	lines := make([]string, 0, 3*(that.width+that.height))

	for x := range that.width {
		lines = that.appendLine(lines, Coord{X: x}, 0, 1)
	}
	for y := range that.height {
		lines = that.appendLine(lines, Coord{Y: y}, 1, 0)
	}

	for x := range that.width {
		lines = that.appendLine(lines, Coord{X: x}, -1, 1)
	}
	for y := 1; y < that.height; y++ {
		lines = that.appendLine(lines, Coord{X: that.width - 1, Y: y}, -1, 1)
	}

	for x := range that.width {
		lines = that.appendLine(lines, Coord{X: x}, 1, 1)
	}
	for y := 1; y < that.height; y++ {
		lines = that.appendLine(lines, Coord{Y: y}, 1, 1)
	}

	return lines
}

func (that *Board) appendLine(lines []string, from Coord, dx, dy int) []string {
	var line strings.Builder
	for c := from; that.IsInBounds(c.X, c.Y); c = (Coord{X: c.X + dx, Y: c.Y + dy}) {
		line.WriteByte(byte(that.At(c)))
	}

	if line.Len() < that.winningLength {
		return lines
	}

	return append(lines, line.String())
}

// patterns lists the substrings that qualify a player for one scoring tier.
type patterns func(player Mark) []string

// Score evaluates the position: negative favours X, positive favours O, zero is neutral.
// Tiers are tried strongest first and the first one owned by exactly one player decides.
func (that *Board) Score() int {
	lines := that.Lines()
	n := that.winningLength

	won := func(player Mark) []string {
		return []string{run(player, n)}
	}
	if player, ok := tierOwner(lines, won); ok {
		return signed(player, WinScore)
	}

	doubleOpen := func(player Mark) []string {
		return []string{run(EmptyCell, 1) + run(player, n-1) + run(EmptyCell, 1)}
	}
	if player, ok := tierOwner(lines, doubleOpen); ok {
		return signed(player, WinScore-1)
	}

	for blank := 1; blank < n-2; blank++ {
		streak := func(player Mark) []string {
			return []string{
				run(player, n-blank) + run(EmptyCell, blank),
				run(EmptyCell, blank) + run(player, n-blank),
			}
		}
		if player, ok := tierOwner(lines, streak); ok {
			return signed(player, WinScore*(n-blank)/n)
		}
	}

	return 0
}

// tierOwner reports the single player whose patterns occur in lines.
// A tier held by both players or by neither has no owner.
func tierOwner(lines []string, tier patterns) (Mark, bool) {
	hasX := containsAny(lines, tier(PlayerX))
	hasO := containsAny(lines, tier(PlayerO))

	switch {
	case hasX && !hasO:
		return PlayerX, true
	case hasO && !hasX:
		return PlayerO, true
	default:
		return NoResult, false
	}
}

func containsAny(lines, needles []string) bool {
	for _, line := range lines {
		for _, needle := range needles {
			if strings.Contains(line, needle) {
				return true
			}
		}
	}

	return false
}

func run(mark Mark, length int) string {
	return strings.Repeat(string(rune(mark)), length)
}

func signed(player Mark, value int) int {
	if player == PlayerX {
		return -value
	}

	return value
}
