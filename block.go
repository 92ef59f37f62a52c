package qvortex

import "encoding/binary"

// processBlock folds one BlockSize-byte block into the four accumulator
// lanes, one little-endian 8-byte word per lane. This is round() from mix.go
// unrolled across the lanes; the two forms must remain bit-identical, which
// the package tests assert over random blocks.
func processBlock(v *[4]uint64, p *[BlockSize]byte) {
	i0 := binary.LittleEndian.Uint64(p[0:8])
	i1 := binary.LittleEndian.Uint64(p[8:16])
	i2 := binary.LittleEndian.Uint64(p[16:24])
	i3 := binary.LittleEndian.Uint64(p[24:32])

	v[0] = rotl(v[0]+i0*prime2, 31) * prime1
	v[1] = rotl(v[1]+i1*prime2, 31) * prime1
	v[2] = rotl(v[2]+i2*prime2, 31) * prime1
	v[3] = rotl(v[3]+i3*prime2, 31) * prime1
}
