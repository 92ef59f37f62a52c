package qvortex

// smallMax is the largest input length the short-input path handles itself.
const smallMax = 16

// HashSmall computes the keyed digest of data through the short-input path:
// a single running word folded byte by byte, with no lane state and no block
// buffering. Inputs longer than 16 bytes delegate to Hash.
//
// The short path is a distinct hash from the full pipeline. For the same
// key and data the two produce unrelated outputs, and its expansion stream
// uses a different regeneration step; callers must not mix the two paths for
// the same table or fingerprint namespace.
func HashSmall(key, data, out []byte) {
	if len(data) > smallMax {
		Hash(key, data, out)
		return
	}

	h := deriveSeed(key) + prime5 + uint64(len(data))
	for _, c := range data {
		h ^= uint64(c) * prime5
		h = rotl(h, 11) * prime1
	}
	expand(out, mix64(h), 1)
}
