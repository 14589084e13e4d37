// Package haraka provides an implementation of the [Haraka v2] family of
// short-input hash functions: the 256-bit and 512-bit hashes and the keyed
// 512-bit variant used as a building block by proof-of-work hash chains.
//
// On amd64 CPUs with AES instructions, it uses an optimized assembly
// implementation. Elsewhere (or with the purego build tag), it uses a
// bitsliced software implementation of the AES round which attempts to be
// constant time.
//
// [Haraka v2]: https://eprint.iacr.org/2016/098.pdf
package haraka

const (
	// Rounds is the round count of the Haraka v2 reference construction.
	Rounds = 5

	// MaxRounds is the largest supported round count. The round-constant
	// table holds exactly 8*MaxRounds entries, so higher counts have no
	// defined constants.
	MaxRounds = 5
)

// Haraka256 computes the 32-byte Haraka-256 v2 digest of a 32-byte input
// using the reference round count.
func Haraka256(dst, src *[32]byte) {
	haraka256(dst, src, Rounds)
}

// Haraka512 computes the 32-byte Haraka-512 v2 digest of a 64-byte input
// using the reference round count.
func Haraka512(dst *[32]byte, src *[64]byte) {
	haraka512(dst, src, Rounds)
}

// Haraka512Keyed computes the 32-byte Haraka-512 v2 digest of a 64-byte input
// XORed with a 64-byte key, using the reference round count. The feed-forward
// covers the keyed state, so an all-zero key makes Haraka512Keyed identical to
// Haraka512.
func Haraka512Keyed(dst *[32]byte, state, key *[64]byte) {
	haraka512Keyed(dst, state, key, Rounds)
}

// Haraka256Rounds is Haraka256 with an explicit round count in
// [0, MaxRounds]. It panics if rounds is out of range.
func Haraka256Rounds(dst, src *[32]byte, rounds int) {
	checkRounds(rounds)
	haraka256(dst, src, rounds)
}

// Haraka512Rounds is Haraka512 with an explicit round count in
// [0, MaxRounds]. It panics if rounds is out of range.
func Haraka512Rounds(dst *[32]byte, src *[64]byte, rounds int) {
	checkRounds(rounds)
	haraka512(dst, src, rounds)
}

// Haraka512KeyedRounds is Haraka512Keyed with an explicit round count in
// [0, MaxRounds]. It panics if rounds is out of range.
func Haraka512KeyedRounds(dst *[32]byte, state, key *[64]byte, rounds int) {
	checkRounds(rounds)
	haraka512Keyed(dst, state, key, rounds)
}

func checkRounds(rounds int) {
	if rounds < 0 || rounds > MaxRounds {
		panic("haraka: round count out of range")
	}
}
