// Package qvortex implements the Qvortex non-cryptographic hash: a keyed,
// streaming, four-lane 64-bit hash with extensible output, built for
// hash-table fingerprinting and SMHasher-grade distribution rather than
// cryptographic strength.
//
// Input is consumed in 32-byte blocks across four accumulator lanes; the
// finalized value expands to any requested output length, and requesting a
// longer output never changes the leading bytes. A separate short-input path
// (HashSmall) covers inputs of at most 16 bytes with its own, distinct
// output stream.
//
// Not for security: Qvortex offers no preimage or collision resistance and
// must not be used for authentication.
package qvortex

import "encoding/binary"

const (
	// BlockSize is the input block size in bytes, consumed atomically by the
	// lane transform.
	BlockSize = 32

	// Size and Size512 are the conventional digest sizes. They are
	// suggestions only: Sum accepts any output length.
	Size    = 32
	Size512 = 64
)

// Hasher states. The zero value of Hasher is uninitialized; New or Reset
// moves it to ready, Sum to done.
const (
	stateUninitialized = iota
	stateReady
	stateDone
)

// Hasher is a streaming Qvortex hasher. Designed for stack allocation: it
// holds no pointers and may be copied freely before its first Write.
//
// A Hasher is single-use per initialization. Sum consumes it; Reset is the
// only way to start a new computation on the same value. It must not be
// used concurrently without external locking.
type Hasher struct {
	v        [4]uint64
	totalLen uint64
	buf      [BlockSize]byte
	n        int // bytes buffered, always < BlockSize between calls
	state    uint8
}

// New returns a Hasher keyed with key. A nil or empty key selects the
// all-zero seed.
func New(key []byte) *Hasher {
	h := new(Hasher)
	h.Reset(key)
	return h
}

// Reset re-derives the lane state from key and makes the Hasher ready for a
// fresh computation, discarding any absorbed input.
func (h *Hasher) Reset(key []byte) {
	seed := deriveSeed(key)
	h.v[0] = seed + prime1 + prime2
	h.v[1] = seed + prime2
	h.v[2] = seed
	h.v[3] = seed - prime1
	h.totalLen = 0
	h.n = 0
	h.state = stateReady
}

// deriveSeed folds an arbitrary-length key into a single 64-bit seed.
func deriveSeed(key []byte) uint64 {
	if len(key) == 0 {
		return 0
	}
	var seed uint64
	for _, b := range key {
		seed = rotl(seed, 5) ^ uint64(b)
	}
	return mix64(seed)
}

// Write absorbs p into the hash. It implements io.Writer and never fails.
// The digest is independent of how the input is split across Write calls.
// Write panics if the Hasher is uninitialized or already finalized.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.state != stateReady {
		panic(h.misuse("Write"))
	}
	written := len(p)
	h.totalLen += uint64(written)

	// Not enough for a full block yet: buffer and return.
	if h.n+len(p) < BlockSize {
		h.n += copy(h.buf[h.n:], p)
		return written, nil
	}

	// Top off the buffered partial block.
	if h.n > 0 {
		p = p[copy(h.buf[h.n:], p):]
		processBlock(&h.v, &h.buf)
		h.n = 0
	}

	// Full blocks straight from the input, no copy.
	for len(p) >= BlockSize {
		processBlock(&h.v, (*[BlockSize]byte)(p))
		p = p[BlockSize:]
	}

	h.n = copy(h.buf[:], p)
	return written, nil
}

// Sum finalizes the hash and writes exactly len(out) digest bytes. The
// output length is unbounded, and for any two lengths the shorter output is
// a prefix of the longer one.
//
// Sum consumes the Hasher: subsequent Write or Sum calls panic until Reset.
func (h *Hasher) Sum(out []byte) {
	if h.state != stateReady {
		panic(h.misuse("Sum"))
	}
	h.state = stateDone

	var h64 uint64
	if h.totalLen >= BlockSize {
		h64 = rotl(h.v[0], 1) + rotl(h.v[1], 7) + rotl(h.v[2], 12) + rotl(h.v[3], 18)
		h64 = mergeRound(h64, h.v[0])
		h64 = mergeRound(h64, h.v[1])
		h64 = mergeRound(h64, h.v[2])
		h64 = mergeRound(h64, h.v[3])
	} else {
		// No block was ever processed; the third lane still holds the raw seed.
		h64 = h.v[2] + prime5
	}
	h64 += h.totalLen

	// Fold in the leftover bytes at decreasing granularity: 8-byte words,
	// then one 4-byte word, then single bytes.
	b := h.buf[:h.n]
	for ; len(b) >= 8; b = b[8:] {
		h64 ^= round(0, binary.LittleEndian.Uint64(b))
		h64 = rotl(h64, 27)*prime1 + prime4
	}
	if len(b) >= 4 {
		h64 ^= uint64(binary.LittleEndian.Uint32(b)) * prime1
		h64 = rotl(h64, 23)*prime2 + prime3
		b = b[4:]
	}
	for _, c := range b {
		h64 ^= uint64(c) * prime5
		h64 = rotl(h64, 11) * prime1
	}

	expand(out, avalanche(h64), prime5)
}

func (h *Hasher) misuse(op string) string {
	if h.state == stateDone {
		return "qvortex: " + op + " after Sum; Reset the Hasher to reuse it"
	}
	return "qvortex: " + op + " on uninitialized Hasher"
}

// expand writes successive little-endian words of h into out, regenerating h
// between words via mix64(h + step) and truncating the last word to the
// remaining length. The word sequence depends only on the starting value, so
// a shorter output is always a prefix of a longer one.
func expand(out []byte, h, step uint64) {
	for len(out) > 8 {
		binary.LittleEndian.PutUint64(out, h)
		out = out[8:]
		h = mix64(h + step)
	}
	var last [8]byte
	binary.LittleEndian.PutUint64(last[:], h)
	copy(out, last[:])
}

// Hash computes the keyed Qvortex digest of data in one call, writing
// exactly len(out) bytes. Equivalent to New(key), Write(data), Sum(out),
// with the Hasher kept on the stack. Zero heap allocations.
func Hash(key, data, out []byte) {
	var h Hasher
	h.Reset(key)
	h.Write(data)
	h.Sum(out)
}

// Sum256 computes the unkeyed 32-byte digest of data.
func Sum256(data []byte) [Size]byte {
	var out [Size]byte
	Hash(nil, data, out[:])
	return out
}

// Sum512 computes the unkeyed 64-byte digest of data.
func Sum512(data []byte) [Size512]byte {
	var out [Size512]byte
	Hash(nil, data, out[:])
	return out
}
