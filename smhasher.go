package qvortex

import "encoding/binary"

// Seeded computes a fixed 32-byte digest of data under a 32-bit seed,
// matching the (key, len, seed, out) calling convention of SMHasher-style
// test harnesses. The seed is packed little-endian into a 4-byte key and
// hashed through HashSmall.
func Seeded(seed uint32, data []byte) [Size]byte {
	var key [4]byte
	binary.LittleEndian.PutUint32(key[:], seed)
	var out [Size]byte
	HashSmall(key[:], data, out[:])
	return out
}
