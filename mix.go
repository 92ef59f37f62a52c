package qvortex

import "math/bits"

// The five 64-bit odd mixing primes (the xxHash64 constants).
const (
	prime1 uint64 = 0x9E3779B185EBCA87
	prime2 uint64 = 0xC2B2AE3D27D4EB4F
	prime3 uint64 = 0x165667B19E3779F9
	prime4 uint64 = 0x85EBCA77C2B2AE63
	prime5 uint64 = 0x27D4EB2F165667C5
)

func rotl(x uint64, r int) uint64 { return bits.RotateLeft64(x, r) }

// mix64 is the MurmurHash3 64-bit finalizer. Used for key derivation and for
// regenerating the output word during expansion.
func mix64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed598ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// avalanche fully diffuses the merged accumulator before output expansion.
func avalanche(h uint64) uint64 {
	h ^= h >> 33
	h *= prime2
	h ^= h >> 29
	h *= prime3
	h ^= h >> 32
	return h
}

// round is the canonical block-lane transform. Every block-processing path
// must stay bit-identical to it.
func round(acc, input uint64) uint64 {
	return rotl(acc+input*prime2, 31) * prime1
}

func mergeRound(acc, val uint64) uint64 {
	acc ^= round(0, val)
	return acc*prime1 + prime4
}
