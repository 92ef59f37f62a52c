package qvortex

import (
	"encoding/binary"
	"math/bits"
)

// Straight-line model of the hash, written directly from the round formulas.
// It shares nothing with the engine beyond the prime constants and is the
// oracle the streaming and one-shot paths are tested against.

func rol(x uint64, r int) uint64 { return bits.RotateLeft64(x, r) }

func refMix(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed598ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

func refRound(acc, input uint64) uint64 {
	acc += input * prime2
	acc = rol(acc, 31)
	acc *= prime1
	return acc
}

func refSeed(key []byte) uint64 {
	if len(key) == 0 {
		return 0
	}
	var seed uint64
	for _, b := range key {
		seed = rol(seed, 5) ^ uint64(b)
	}
	return refMix(seed)
}

func refExpand(h, step uint64, n int) []byte {
	out := make([]byte, n)
	var word [8]byte
	for i := 0; i < n; i += 8 {
		binary.LittleEndian.PutUint64(word[:], h)
		copy(out[i:], word[:])
		h = refMix(h + step)
	}
	return out
}

func refHash(key, data []byte, outLen int) []byte {
	seed := refSeed(key)
	v1 := seed + prime1 + prime2
	v2 := seed + prime2
	v3 := seed
	v4 := seed - prime1

	p := data
	for len(p) >= 32 {
		v1 = refRound(v1, binary.LittleEndian.Uint64(p[0:]))
		v2 = refRound(v2, binary.LittleEndian.Uint64(p[8:]))
		v3 = refRound(v3, binary.LittleEndian.Uint64(p[16:]))
		v4 = refRound(v4, binary.LittleEndian.Uint64(p[24:]))
		p = p[32:]
	}

	var h uint64
	if len(data) >= 32 {
		h = rol(v1, 1) + rol(v2, 7) + rol(v3, 12) + rol(v4, 18)
		for _, v := range [4]uint64{v1, v2, v3, v4} {
			h ^= refRound(0, v)
			h = h*prime1 + prime4
		}
	} else {
		h = v3 + prime5
	}
	h += uint64(len(data))

	for len(p) >= 8 {
		h ^= refRound(0, binary.LittleEndian.Uint64(p))
		h = rol(h, 27)*prime1 + prime4
		p = p[8:]
	}
	if len(p) >= 4 {
		h ^= uint64(binary.LittleEndian.Uint32(p)) * prime1
		h = rol(h, 23)*prime2 + prime3
		p = p[4:]
	}
	for _, c := range p {
		h ^= uint64(c) * prime5
		h = rol(h, 11) * prime1
	}

	h ^= h >> 33
	h *= prime2
	h ^= h >> 29
	h *= prime3
	h ^= h >> 32

	return refExpand(h, prime5, outLen)
}

func refSmall(key, data []byte, outLen int) []byte {
	if len(data) > 16 {
		return refHash(key, data, outLen)
	}
	h := refSeed(key) + prime5 + uint64(len(data))
	for _, c := range data {
		h ^= uint64(c) * prime5
		h = rol(h, 11) * prime1
	}
	return refExpand(refMix(h), 1, outLen)
}
