package hankel

// Default transform parameters
const (
	defaultInterval = 1.0 // Sampling interval d
	defaultOrder    = 0.0 // Bessel order ν
	defaultScale    = 1.0 // Kernel scale b
)

// LastAxis selects the last dimension of the input array.
const LastAxis = -1

// Array limits
const (
	minRank       = 1 // Arrays must have at least one dimension
	channelsRank  = 2 // Rank of a channels × samples array
	channelsAxis  = 1 // Sample axis of a channels × samples array
	complexParts  = 2 // Real and imaginary transforms per complex input
	minTransformN = 1 // Smallest usable transform length
)
