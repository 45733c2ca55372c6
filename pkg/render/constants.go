package render

// Camera constants
const (
	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0

	// MouseSensitivity scales raw cursor deltas into degrees
	MouseSensitivity = 0.1

	// DefaultMoveSensitivity is the world units travelled per second of held movement
	DefaultMoveSensitivity = 3.0
)

// Projection constants shared by every example
const (
	FOV  = 45.0
	Near = 0.1
	Far  = 100.0
)
