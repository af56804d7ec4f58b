package domain

// LoadAverage represents the system load averaged over 1, 5 and 15 minutes
type LoadAverage struct {
	One     float64
	Five    float64
	Fifteen float64
}

// MemoryStats represents memory usage, every field is in kilobytes
type MemoryStats struct {
	Total   uint64
	Free    uint64
	Avail   uint64
	Buffers uint64
	Cached  uint64
}
