package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/stoverp/advent2022/blueprint"
	"github.com/stoverp/advent2022/mineral"
	"github.com/stoverp/advent2022/search"
)

// Sentinel errors for trace rendering.
var (
	// ErrNilState is returned when there is no final state to narrate
	// (searches that open zero geodes have none).
	ErrNilState = errors.New("trace: nil final state")

	// ErrNilBlueprint is returned for a nil or incomplete blueprint.
	ErrNilBlueprint = errors.New("trace: nil or incomplete blueprint")
)

// Decisions returns the robot kind started on each minute of final's
// recorded path, nil entries for build-nothing minutes. Index 0 is the
// first minute. A nil final yields a nil list.
func Decisions(final *search.State) []*mineral.Resource {
	if final == nil {
		return nil
	}
	path := final.Path()
	decisions := make([]*mineral.Resource, 0, len(path)-1)
	for _, s := range path[1:] {
		decisions = append(decisions, s.Built)
	}

	return decisions
}

// printer accumulates the first write error so the narration body stays
// free of per-line error plumbing.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Narrate writes a minute-by-minute account of the best-found schedule
// to w: what is spent, what each robot collects, and when new robots
// come online. Minutes beyond the recorded path follow the greedy
// geode-building completion (see the package comment).
func Narrate(w io.Writer, final *search.State, bp *blueprint.Blueprint, minutes int) error {
	if final == nil {
		return ErrNilState
	}
	if bp == nil || !bp.Complete() {
		return ErrNilBlueprint
	}

	path := final.Path()
	p := printer{w: w}

	materials := mineral.Amounts{}
	robots := mineral.Amounts{Ore: 1}
	for minute := 1; minute <= minutes; minute++ {
		p.printf("\n== Minute %d ==\n", minute)

		var built *mineral.Resource
		switch {
		case minute < len(path):
			built = path[minute].Built
		case bp.CostOf(mineral.Geode).AtMost(materials):
			g := mineral.Geode
			built = &g
		}

		if built != nil {
			materials = materials.Sub(bp.CostOf(*built))
			p.printf("Spend %s to start building a %s-collecting robot.\n", bp.CostOf(*built), *built)
		}

		materials = materials.Add(robots)
		for _, kind := range mineral.Kinds {
			n := robots.Of(kind)
			if n == 0 {
				continue
			}
			noun, verb := "robot", "collects"
			if n > 1 {
				noun, verb = "robots", "collect"
			}
			p.printf("%d %s-collecting %s %s %d %s; you now have %d %s.\n",
				n, kind, noun, verb, n, kind, materials.Of(kind), kind)
		}

		if built != nil {
			robots = robots.WithOneMore(*built)
			p.printf("The new %s-collecting robot is ready; you now have %d of them.\n",
				*built, robots.Of(*built))
		}
	}

	return p.err
}
