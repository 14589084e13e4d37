//go:build !amd64 || purego

package haraka

// useAESNI is set if the current CPU supports AES instructions.
var useAESNI = false //nolint:gochecknoglobals // should only check once

func haraka256(dst, src *[32]byte, rounds int) {
	haraka256Generic(dst, src, rounds)
}

func haraka512(dst *[32]byte, src *[64]byte, rounds int) {
	haraka512Generic(dst, src, rounds)
}

func haraka512Keyed(dst *[32]byte, state, key *[64]byte, rounds int) {
	haraka512KeyedGeneric(dst, state, key, rounds)
}
