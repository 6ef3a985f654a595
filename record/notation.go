package record

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"termfour/board"
)

// Notation:
// - Columns: a, b, c, ... from left to right
// - Rows: 1, 2, 3, ... from the bottom
// - Example: d1 is the bottom cell of the fourth column
//
// Board coordinates are 0-indexed with a bottom-left origin, so (3, 0) is d1.

// MaxColumns is the widest board the notation can name.
const MaxColumns = 26

// ColumnName returns the letter for a 0-indexed column: 0 -> "a", 3 -> "d".
func ColumnName(column int) string {
	if column < 0 || column >= MaxColumns {
		return "?"
	}
	return string(rune('a' + column))
}

// Square returns the notation for a cell: (3, 0) -> "d1".
func Square(c board.Coord) string {
	return fmt.Sprintf("%s%d", ColumnName(c.Column), c.Row+1)
}

// ParseColumn converts a column name to a 0-indexed column on a board of the
// given width. Letters (case-insensitive) and 1-based numbers are accepted:
// "d", "D" and "4" all map to 3.
func ParseColumn(s string, width int) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, errors.New("empty column")
	}

	var col int
	if r := rune(s[0]); len(s) == 1 && r >= 'a' && r <= 'z' {
		col = int(r - 'a')
	} else {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, errors.Errorf("invalid column: %s", s)
		}
		col = n - 1
	}

	if col < 0 || col >= width {
		return 0, errors.Errorf("column out of bounds: %s", s)
	}
	return col, nil
}

// ParseMoves reads a move list such as "ddce", "4 4 3 5" or "d,d,c,e" into
// 0-indexed columns. Without separators every character is one move, so
// numbers above 9 need spaces or commas between them.
func ParseMoves(s string, width int) ([]int, error) {
	var tokens []string
	if strings.ContainsAny(s, " ,\t") {
		tokens = strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	} else {
		for _, ch := range s {
			tokens = append(tokens, string(ch))
		}
	}

	moves := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		col, err := ParseColumn(tok, width)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		moves = append(moves, col)
	}
	return moves, nil
}

// FormatMoves is the inverse of ParseMoves for letter notation.
func FormatMoves(columns []int) string {
	var b strings.Builder
	for _, c := range columns {
		b.WriteString(ColumnName(c))
	}
	return b.String()
}

// FormatResult renders a result the way game records do: "1-0" when the
// first player won, "0-1" for the second, "1/2-1/2" for a draw and "*" while
// the game is still running.
func FormatResult(r board.WinResult) string {
	switch r.Outcome {
	case board.Win:
		if r.Player == board.First {
			return "1-0"
		}
		return "0-1"
	case board.Draw:
		return "1/2-1/2"
	}
	return "*"
}

// DescribeResult returns a sentence for the status line.
func DescribeResult(r board.WinResult) string {
	switch r.Outcome {
	case board.Win:
		return fmt.Sprintf("%s wins (%s %s-%s)", r.Player, r.Direction,
			Square(r.Cells[0]), Square(r.Cells[len(r.Cells)-1]))
	case board.Draw:
		return "Draw, the board is full"
	}
	return "In progress"
}
