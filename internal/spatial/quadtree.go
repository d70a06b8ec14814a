package spatial

import "github.com/tomz197/ballpit/internal/vec"

// Default quadtree tuning.
const (
	DefaultCapacity = 5
	DefaultMaxDepth = 16
)

// noChildren marks a leaf node.
const noChildren = -1

// node is one region of the tree. Children, once created, are stored as
// four consecutive arena entries starting at first.
type node struct {
	bounds Boundary
	items  []int
	first  int
	depth  int
}

func (n *node) divided() bool { return n.first != noChildren }

// Quadtree is a region quadtree over point positions.
//
// All nodes live in a single arena slice. Reset truncates the arena and keeps
// every node's item slice, so rebuilding the tree each tick does not allocate
// once it has warmed up.
type Quadtree struct {
	nodes    []node
	pos      []vec.Vec2 // Position of each inserted item, by item id
	capacity int
	maxDepth int
	count    int
}

// NewQuadtree creates an empty tree covering root.
// capacity is the number of items a leaf holds before it splits.
func NewQuadtree(root Boundary, capacity, maxDepth int) *Quadtree {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	qt := &Quadtree{capacity: capacity, maxDepth: maxDepth}
	qt.Reset(root)
	return qt
}

// Reset empties the tree and sets a new root boundary without releasing the
// memory held by previous builds.
func (qt *Quadtree) Reset(root Boundary) {
	qt.nodes = qt.nodes[:0]
	qt.pos = qt.pos[:0]
	qt.count = 0
	qt.newNode(root, 0)
}

// Bounds returns the root boundary.
func (qt *Quadtree) Bounds() Boundary {
	return qt.nodes[0].bounds
}

// Len returns the number of items in the tree.
func (qt *Quadtree) Len() int {
	return qt.count
}

// Depth returns the depth of the deepest node (the root is depth 0).
func (qt *Quadtree) Depth() int {
	d := 0
	for i := range qt.nodes {
		if qt.nodes[i].depth > d {
			d = qt.nodes[i].depth
		}
	}
	return d
}

// newNode appends a node to the arena, reusing a previous node's item slice
// when the arena has spare capacity. It returns the node index.
func (qt *Quadtree) newNode(b Boundary, depth int) int {
	idx := len(qt.nodes)
	if idx < cap(qt.nodes) {
		qt.nodes = qt.nodes[:idx+1]
	} else {
		qt.nodes = append(qt.nodes, node{})
	}
	n := &qt.nodes[idx]
	n.bounds = b
	n.items = n.items[:0]
	n.first = noChildren
	n.depth = depth
	return idx
}

// Insert adds item id at position p. It returns false only when p is outside
// the root boundary; otherwise the item is placed at the deepest node that
// accepts it.
func (qt *Quadtree) Insert(id int, p vec.Vec2) bool {
	if id < 0 {
		return false
	}
	for len(qt.pos) <= id {
		qt.pos = append(qt.pos, vec.Zero)
	}
	qt.pos[id] = p

	if !qt.insert(0, id) {
		return false
	}
	qt.count++
	return true
}

func (qt *Quadtree) insert(ni, id int) bool {
	if !qt.nodes[ni].bounds.Contains(qt.pos[id]) {
		return false
	}

	n := &qt.nodes[ni]
	if !n.divided() && (len(n.items) < qt.capacity || n.depth >= qt.maxDepth) {
		n.items = append(n.items, id)
		return true
	}

	if !n.divided() {
		qt.subdivide(ni)
	}

	if qt.insertIntoChild(ni, id) {
		return true
	}

	// Fits no single child: keep it here as overflow.
	n = &qt.nodes[ni]
	n.items = append(n.items, id)
	return true
}

// insertIntoChild tries the four children in NW, NE, SW, SE order.
func (qt *Quadtree) insertIntoChild(ni, id int) bool {
	first := qt.nodes[ni].first
	for c := 0; c < 4; c++ {
		if qt.insert(first+c, id) {
			return true
		}
	}
	return false
}

// subdivide creates the four children of node ni and pushes its items down.
// Items that no child accepts stay at ni.
func (qt *Quadtree) subdivide(ni int) {
	quads := qt.nodes[ni].bounds.Quadrants()
	depth := qt.nodes[ni].depth + 1

	first := qt.newNode(quads[0], depth)
	for c := 1; c < 4; c++ {
		qt.newNode(quads[c], depth)
	}
	qt.nodes[ni].first = first

	// The arena may have reallocated above; take the items afterwards.
	// held aliases the node's backing array, and kept reuses it in place:
	// kept never runs ahead of the read index.
	held := qt.nodes[ni].items
	kept := held[:0]
	for _, id := range held {
		if !qt.insertIntoChild(ni, id) {
			kept = append(kept, id)
		}
	}
	qt.nodes[ni].items = kept
}

// Query appends to dst every item held by a node whose boundary intersects r
// and returns the extended slice. Results are candidates: an item may lie
// outside r itself, so callers must apply their own precise test.
func (qt *Quadtree) Query(r Boundary, dst []int) []int {
	return qt.query(0, r, dst)
}

func (qt *Quadtree) query(ni int, r Boundary, dst []int) []int {
	n := &qt.nodes[ni]
	if !n.bounds.Intersects(r) {
		return dst
	}
	dst = append(dst, n.items...)
	if n.divided() {
		first := n.first
		for c := 0; c < 4; c++ {
			dst = qt.query(first+c, r, dst)
		}
	}
	return dst
}

// Walk calls fn for every node in depth-first order with the node's boundary
// and the items it holds directly. The slice must not be retained.
func (qt *Quadtree) Walk(fn func(b Boundary, items []int)) {
	qt.walk(0, fn)
}

func (qt *Quadtree) walk(ni int, fn func(Boundary, []int)) {
	n := &qt.nodes[ni]
	fn(n.bounds, n.items)
	if n.divided() {
		first := n.first
		for c := 0; c < 4; c++ {
			qt.walk(first+c, fn)
		}
	}
}
