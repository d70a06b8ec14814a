package config

import "time"

// Arena - the rectangle the bodies live in, in pixels.
const (
	ArenaWidth  = 800
	ArenaHeight = 600
)

// Population
const (
	BodyCount     = 67
	RadiusMin     = 15.0
	RadiusMax     = 25.0
	MaxSpeed      = 80.0 // Per axis, pixels per second
	MassPerRadius = 1.0  // mass = radius * MassPerRadius
	SpawnMargin   = 10.0 // Spawn positions start this far from the origin edges
)

// Physics
const (
	Timestep        = 0.01  // Seconds per fixed tick
	Damping         = 0.999 // Verlet velocity retention per tick
	Restitution     = 0.95  // Ball-ball
	WallRestitution = 0.95
	Gravity         = 0.0 // Pixels per second², +y is down
)

// Collision
const (
	Strategy     = "quadtree"
	QuadCapacity = 5
	QuadMaxDepth = 16
)

// Interactive demo
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	ShoveAccel      = 4000.0 // Acceleration applied while an arrow key is held
	GravityToggle   = 980.0  // Gravity switched on with the gravity key
)

// Environment variables
const (
	EnvConfigPath = "BALLPIT_CONFIG"
	EnvLogPath    = "BALLPIT_LOG"
	EnvLogLevel   = "BALLPIT_LOG_LEVEL"
)
