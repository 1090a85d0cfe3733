package mines

type Outcome int

const (
	Continue Outcome = iota
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

type RevealResult struct {
	Outcome Outcome
	// Affected holds every cell whose Revealed flag flipped, each once.
	Affected []Point
}

func (b *Board) show(p Point, affected *[]Point) bool {
	c := b.at(p)
	if c.Revealed {
		return false
	}
	c.Revealed = true
	*affected = append(*affected, p)
	return true
}

// Reveal opens the cell at p. A zero cell floods through its connected zero
// region, then the region's hidden non-mine border is shown without being
// expanded. Mines are only ever revealed when targeted directly. Flags do
// not protect a cell.
func Reveal(b *Board, p Point) (RevealResult, error) {
	if err := b.checkBounds(p); err != nil {
		return RevealResult{}, err
	}

	var res RevealResult
	if !b.show(p, &res.Affected) {
		return res, nil
	}

	target := b.at(p)
	if target.Mine {
		res.Outcome = Lost
		return res, nil
	}
	if target.NearbyMines != 0 {
		return res, nil
	}

	region := b.flood(p, &res.Affected)
	b.exposeBorder(region, &res.Affected)

	return res, nil
}

// flood walks the zero region containing start, revealing every zero cell
// it reaches, and returns the region. Revealed doubles as the visited set.
func (b *Board) flood(start Point, affected *[]Point) []Point {
	region := []Point{start}
	pending := []Point{start}
	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for n := range b.neighbors(p) {
			c := b.at(n)
			if c.Mine || c.NearbyMines != 0 || c.Revealed {
				continue
			}
			b.show(n, affected)
			region = append(region, n)
			pending = append(pending, n)
		}
	}
	return region
}

func (b *Board) exposeBorder(region []Point, affected *[]Point) {
	for _, p := range region {
		for n := range b.neighbors(p) {
			if !b.at(n).Mine {
				b.show(n, affected)
			}
		}
	}
}

// RevealAll exposes every hidden cell, mines and flagged cells included,
// and returns the points it changed.
func RevealAll(b *Board) []Point {
	var affected []Point
	for i := range b.cells {
		b.show(b.cells[i].Point, &affected)
	}
	return affected
}
