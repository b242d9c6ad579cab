package crates

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel errors for parsing and simulation.
var (
	// ErrMalformedMove is returned for a move line outside the grammar.
	ErrMalformedMove = errors.New("crates: malformed move line")

	// ErrBadMove is returned when a move references a missing stack or
	// more crates than the source holds.
	ErrBadMove = errors.New("crates: move not executable")

	// ErrNoStacks is returned when the input contains no crate drawing.
	ErrNoStacks = errors.New("crates: no stacks in input")
)

// Move is one rearrangement instruction: Count crates, one at a time,
// from stack From to stack To (1-based).
type Move struct {
	Count int
	From  int
	To    int
}

var moveRe = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

// Yard holds the numbered crate stacks. Stacks are kept top-first.
type Yard struct {
	stacks [][]byte
}

// Parse reads the crate drawing and the move list. Drawing lines are
// consumed while they contain a '[' bracket; each crate letter sits at
// column 4·i+1 for stack i+1. Lines mentioning "move" must match the
// move grammar; anything else (stack numbers, blanks) is skipped.
func Parse(r io.Reader) (*Yard, []Move, error) {
	y := &Yard{}
	var moves []Move

	sc := bufio.NewScanner(r)
	inDrawing := true
	for sc.Scan() {
		line := sc.Text()
		if inDrawing && strings.Contains(line, "[") {
			y.addDrawingRow(line)
			continue
		}
		inDrawing = false
		if !strings.Contains(line, "move") {
			continue
		}
		m := moveRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, nil, fmt.Errorf("%w: %q", ErrMalformedMove, line)
		}
		count, _ := strconv.Atoi(m[1])
		from, _ := strconv.Atoi(m[2])
		to, _ := strconv.Atoi(m[3])
		moves = append(moves, Move{Count: count, From: from, To: to})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if len(y.stacks) == 0 {
		return nil, nil, ErrNoStacks
	}

	return y, moves, nil
}

// addDrawingRow appends one drawing row to the stacks. Rows arrive top
// to bottom, and stacks are stored top-first, so appending preserves
// order.
func (y *Yard) addDrawingRow(line string) {
	for pos := 0; pos+1 < len(line); pos += 4 {
		if line[pos] != '[' {
			continue
		}
		idx := pos / 4
		for len(y.stacks) <= idx {
			y.stacks = append(y.stacks, nil)
		}
		y.stacks[idx] = append(y.stacks[idx], line[pos+1])
	}
}

// Stacks returns the number of stacks in the yard.
func (y *Yard) Stacks() int { return len(y.stacks) }

// Stack returns the crates of 1-based stack i, top first, as a string.
func (y *Yard) Stack(i int) string {
	if i < 1 || i > len(y.stacks) {
		return ""
	}

	return string(y.stacks[i-1])
}

// Apply executes one move, relocating crates one at a time: each hop
// takes the top of From and drops it on top of To, so multi-crate moves
// reverse order.
func (y *Yard) Apply(m Move) error {
	if m.From < 1 || m.From > len(y.stacks) || m.To < 1 || m.To > len(y.stacks) {
		return fmt.Errorf("%w: %d stacks, move %+v", ErrBadMove, len(y.stacks), m)
	}
	if m.Count < 0 || m.Count > len(y.stacks[m.From-1]) {
		return fmt.Errorf("%w: stack %d holds %d crates, move %+v",
			ErrBadMove, m.From, len(y.stacks[m.From-1]), m)
	}

	for i := 0; i < m.Count; i++ {
		src := y.stacks[m.From-1]
		crate := src[0]
		y.stacks[m.From-1] = src[1:]
		y.stacks[m.To-1] = append([]byte{crate}, y.stacks[m.To-1]...)
	}

	return nil
}

// TopCrates returns the top crate of every non-empty stack, left to
// right — the puzzle's answer string.
func (y *Yard) TopCrates() string {
	var sb strings.Builder
	for _, stack := range y.stacks {
		if len(stack) > 0 {
			sb.WriteByte(stack[0])
		}
	}

	return sb.String()
}
