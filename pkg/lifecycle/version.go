package lifecycle

// Version information for the lifecycle module.
const (
	// Version is the current version of the lifecycle module.
	// 2.0.0 replaced the agent states with the sampling-pass states.
	Version = "2.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "2.0.0"
)
