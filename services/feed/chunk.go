package feed

import "ard/models"

// Chunk partitions the ranked feed into fixed-size carousel groups, rank
// order preserved: group i holds ranked positions [i*size, i*size+size).
// The final group may be short; 13 ads at size 6 yield groups of 6, 6 and 1.
func Chunk(ranked []models.Ad, size int) [][]models.Ad {
	if size <= 0 || len(ranked) == 0 {
		return nil
	}
	groups := make([][]models.Ad, 0, (len(ranked)+size-1)/size)
	for start := 0; start < len(ranked); start += size {
		end := start + size
		if end > len(ranked) {
			end = len(ranked)
		}
		groups = append(groups, ranked[start:end])
	}
	return groups
}
