package word2vec

import "math/rand"

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so neighbouring streams are uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// workerRNG returns the random source of worker k in the given epoch.
// Streams never repeat across (epoch, worker) pairs for fewer than 2^32 workers.
func workerRNG(seed int64, epoch, k int) *rand.Rand {
	stream := uint64(epoch)<<32 | uint64(uint32(k))
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}
