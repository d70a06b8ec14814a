package physics

import (
	"github.com/tomz197/ballpit/internal/object"
	"github.com/tomz197/ballpit/internal/spatial"
)

// Pass runs the broad phase over a walled arena of fixed size.
//
// The indexes it holds are rebuilt from the current positions on every call
// and only reference particles by slice index; their memory is reused across
// calls.
type Pass struct {
	width, height float64

	tree *spatial.Quadtree
	grid *spatial.Grid

	seen       map[uint64]struct{}
	candidates []int
}

// NewPass creates a collision pass for a width x height arena. capacity is
// the quadtree leaf capacity.
func NewPass(width, height float64, capacity, maxDepth int) *Pass {
	arena := spatial.NewBoundary(0, 0, width, height)
	return &Pass{
		width:  width,
		height: height,
		tree:   spatial.NewQuadtree(arena, capacity, maxDepth),
		grid:   spatial.NewGrid(width, height, 0),
		seen:   make(map[uint64]struct{}),
	}
}

// Run resolves every candidate pair produced by s and returns the number of
// pair checks performed.
func (p *Pass) Run(s Strategy, particles []*object.Particle, r Resolver) int {
	return p.Pairs(s, particles, r.Resolve)
}

// Pairs calls visit once for every candidate pair produced by s and returns
// the number of pairs visited. Each unordered pair is visited at most once.
// visit may move the particles. Candidates always come from the indexes built
// from the positions at the start of the call, while the quadtree queries of
// later particles are centered on their current, possibly moved, positions.
func (p *Pass) Pairs(s Strategy, particles []*object.Particle, visit func(a, b *object.Particle)) int {
	switch s {
	case Quadtree:
		return p.quadtreePairs(particles, visit)
	case Grid:
		return p.gridPairs(particles, visit)
	default:
		return exhaustivePairs(particles, visit)
	}
}

func exhaustivePairs(particles []*object.Particle, visit func(a, b *object.Particle)) int {
	checks := 0
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			visit(particles[i], particles[j])
			checks++
		}
	}
	return checks
}

// quadtreePairs queries a square of half extent r+maxRadius around each
// particle. Any body that could touch it has its center in that square.
func (p *Pass) quadtreePairs(particles []*object.Particle, visit func(a, b *object.Particle)) int {
	p.tree.Reset(p.rootFor(particles))
	for i, b := range particles {
		p.tree.Insert(i, b.Pos)
	}

	maxRadius := MaxRadius(particles)
	clear(p.seen)
	checks := 0

	for _, b1 := range particles {
		rng := spatial.Around(b1.Pos, b1.Radius+maxRadius)
		p.candidates = p.tree.Query(rng, p.candidates[:0])

		for _, j := range p.candidates {
			b2 := particles[j]
			if b1 == b2 {
				continue
			}
			key := PairKey(b1.ID, b2.ID)
			if _, ok := p.seen[key]; ok {
				continue
			}
			p.seen[key] = struct{}{}
			visit(b1, b2)
			checks++
		}
	}
	return checks
}

// rootFor returns the arena grown to cover every position, so a body pushed
// outside the walls is still indexed. Growth is padded by one unit to keep
// the outermost body clear of rounding at the root edge.
func (p *Pass) rootFor(particles []*object.Particle) spatial.Boundary {
	minX, minY, maxX, maxY := 0.0, 0.0, p.width, p.height
	for _, b := range particles {
		if !b.Pos.IsFinite() {
			continue
		}
		if b.Pos.X < minX {
			minX = b.Pos.X - 1
		}
		if b.Pos.Y < minY {
			minY = b.Pos.Y - 1
		}
		if b.Pos.X > maxX {
			maxX = b.Pos.X + 1
		}
		if b.Pos.Y > maxY {
			maxY = b.Pos.Y + 1
		}
	}
	return spatial.NewBoundary(minX, minY, maxX, maxY)
}

// gridPairs uses a grid with cells two max radii wide, so every contact lies
// in the 3x3 neighborhood. Pairs are emitted from the lower index only.
func (p *Pass) gridPairs(particles []*object.Particle, visit func(a, b *object.Particle)) int {
	cell := 2 * MaxRadius(particles)
	if cell != p.grid.CellSize() {
		p.grid.Resize(p.width, p.height, cell)
	} else {
		p.grid.Clear()
	}
	for i, b := range particles {
		p.grid.Insert(b.Pos.X, b.Pos.Y, i)
	}

	checks := 0
	for i, b1 := range particles {
		p.grid.QueryAround(b1.Pos.X, b1.Pos.Y, func(j int) bool {
			if j <= i {
				return false // Skip self and already-checked pairs
			}
			visit(b1, particles[j])
			checks++
			return false
		})
	}
	return checks
}
