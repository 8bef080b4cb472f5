package hashtables

type Stats struct {
	Size     int
	Capacity int

	// Open addressing only.
	Tombstones              int
	TombstonesCapacityRatio float32

	// Chaining only.
	PoolSize  int
	FreeNodes int

	LoadFactor float32
	// Bytes of slot, pool and metadata storage owned by the table.
	Bytes uintptr
}

func makeStats(size, capacity int) Stats {
	return Stats{
		Size:       size,
		Capacity:   capacity,
		LoadFactor: float32(size) / float32(capacity),
	}
}
