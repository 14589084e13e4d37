//go:build amd64 && !purego

package haraka

import "golang.org/x/sys/cpu"

// useAESNI is set if the current CPU supports AES instructions.
var useAESNI = cpu.X86.HasAES //nolint:gochecknoglobals // should only check once

//go:noescape
func haraka256Asm(dst, src *[32]byte, rounds int)

//go:noescape
func haraka512Asm(dst *[32]byte, src *[64]byte, rounds int)

//go:noescape
func haraka512KeyedAsm(dst *[32]byte, state, key *[64]byte, rounds int)

func haraka256(dst, src *[32]byte, rounds int) {
	if useAESNI {
		haraka256Asm(dst, src, rounds)
	} else {
		haraka256Generic(dst, src, rounds)
	}
}

func haraka512(dst *[32]byte, src *[64]byte, rounds int) {
	if useAESNI {
		haraka512Asm(dst, src, rounds)
	} else {
		haraka512Generic(dst, src, rounds)
	}
}

func haraka512Keyed(dst *[32]byte, state, key *[64]byte, rounds int) {
	if useAESNI {
		haraka512KeyedAsm(dst, state, key, rounds)
	} else {
		haraka512KeyedGeneric(dst, state, key, rounds)
	}
}
