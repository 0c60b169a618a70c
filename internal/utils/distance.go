package utils

import "hash/fnv"

const (
	minDistance = 1
	maxDistance = 50
)

// EstimateDistance is a placeholder for real routing: a stable hash of both
// labels folded into [1, 50]. Identical labels give the minimum.
func EstimateDistance(pickup, drop string) float64 {
	diff := int64(labelHash(pickup)) - int64(labelHash(drop))
	if diff < 0 {
		diff = -diff
	}
	return float64(diff%(maxDistance-minDistance+1) + minDistance)
}

func labelHash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
