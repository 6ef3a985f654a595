package board

// RunLength is the number of aligned tokens needed to win.
const RunLength = 4

// Direction is one of the four scan families, anchored at the played cell.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
	DiagonalUpRight
	DiagonalDownRight
)

// Directions lists the scan families in evaluation order.
var Directions = [...]Direction{Vertical, Horizontal, DiagonalUpRight, DiagonalDownRight}

var deltas = [...]Coord{
	Vertical:          {Column: 0, Row: 1},
	Horizontal:        {Column: 1, Row: 0},
	DiagonalUpRight:   {Column: 1, Row: 1},
	DiagonalDownRight: {Column: 1, Row: -1},
}

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case DiagonalUpRight:
		return "diagonal up-right"
	case DiagonalDownRight:
		return "diagonal down-right"
	}
	return "unknown"
}

// Run returns the RunLength coordinates starting at start, start included.
func (d Direction) Run(start Coord) [RunLength]Coord {
	var run [RunLength]Coord
	delta := deltas[d]
	for i := range run {
		run[i] = Coord{Column: start.Column + i*delta.Column, Row: start.Row + i*delta.Row}
	}
	return run
}

// Outcome classifies a WinResult.
type Outcome int

const (
	NoWin Outcome = iota
	Win
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	}
	return "no win"
}

// WinResult is computed after each move. Player, Direction and Cells are
// only meaningful when Outcome is Win.
type WinResult struct {
	Outcome   Outcome
	Player    Player
	Direction Direction
	Cells     []Coord
}

// Ended reports whether the result terminates the game.
func (r WinResult) Ended() bool {
	return r.Outcome != NoWin
}

// Detect checks for a winning run through the just-played cell. For each
// direction in Directions the window starting at the anchor is tried first,
// then the windows shifted back one cell at a time, so a move that completes
// a run from its middle or far end is still reported. Cells are always
// listed in scan order. When no run exists a full grid is a Draw.
func Detect(g *Grid, anchor Coord) WinResult {
	owner, ok := g.OwnerAt(anchor.Column, anchor.Row)
	if ok {
		for _, d := range Directions {
			delta := deltas[d]
			for back := 0; back < RunLength; back++ {
				start := Coord{Column: anchor.Column - back*delta.Column, Row: anchor.Row - back*delta.Row}
				run := d.Run(start)
				if isRun(g, run, owner) {
					return WinResult{Outcome: Win, Player: owner, Direction: d, Cells: run[:]}
				}
			}
		}
	}
	if g.IsFull() {
		return WinResult{Outcome: Draw}
	}
	return WinResult{Outcome: NoWin}
}

func isRun(g *Grid, run [RunLength]Coord, owner Player) bool {
	for _, c := range run {
		if p, _ := g.OwnerAt(c.Column, c.Row); p != owner {
			return false
		}
	}
	return true
}
