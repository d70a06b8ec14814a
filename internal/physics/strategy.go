package physics

import (
	"fmt"
	"strings"
)

// Strategy selects how the collision pass generates candidate pairs.
type Strategy int

const (
	// Exhaustive checks every unordered pair.
	Exhaustive Strategy = iota
	// Quadtree queries a per-tick region quadtree around each particle.
	Quadtree
	// Grid looks up the 3x3 neighborhood of a per-tick uniform grid.
	Grid

	numStrategies
)

var strategyNames = [numStrategies]string{
	Exhaustive: "brute-force",
	Quadtree:   "quadtree",
	Grid:       "grid",
}

// String returns the strategy name as used in config files and the HUD.
func (s Strategy) String() string {
	if s < 0 || s >= numStrategies {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Next returns the strategy that follows s in the toggle cycle.
func (s Strategy) Next() Strategy {
	return (s + 1) % numStrategies
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	return s >= 0 && s < numStrategies
}

// ParseStrategy parses a strategy name. "exhaustive" is accepted as an alias
// for brute-force.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "exhaustive" {
		return Exhaustive, nil
	}
	for s, sn := range strategyNames {
		if n == sn {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("unknown collision strategy %q (want brute-force, quadtree or grid)", name)
}
