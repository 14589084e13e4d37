package haraka

import "github.com/codahale/haraka/internal/aesni"

// lane is one 128-bit quarter (Haraka-512) or half (Haraka-256) of the
// permutation state, held as 16 consecutive bytes.
type lane [16]byte

func loadLane(b []byte) (l lane) {
	copy(l[:], b)
	return l
}

func (l lane) store(out []byte) {
	copy(out, l[:])
}

func (l lane) xor(m lane) lane {
	for i := range l {
		l[i] ^= m[i]
	}
	return l
}

// aesRound applies one AES encryption round (SubBytes, ShiftRows, MixColumns,
// AddRoundKey) to the lane with rk as the round key.
func (l lane) aesRound(rk lane) lane {
	return aesni.AESENC(l, rk)
}
