package haraka_test

import (
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/codahale/haraka"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzHaraka512Keyed feeds fuzzer-chosen states, keys, and round counts to
// the keyed permutation and checks determinism and the zero-key equivalence
// with the unkeyed permutation.
func FuzzHaraka512Keyed(f *testing.F) {
	drbg := sha3.NewShake128()
	_, _ = drbg.Write([]byte("haraka keyed fuzz"))

	for i := 0; i < 10; i++ {
		seed := make([]byte, 256)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		roundsRaw, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		rounds := int(roundsRaw) % (haraka.MaxRounds + 1)

		stateBytes, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		keyBytes, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		var state, key, zero [64]byte
		copy(state[:], stateBytes)
		copy(key[:], keyBytes)

		var a, b [32]byte
		haraka.Haraka512KeyedRounds(&a, &state, &key, rounds)
		haraka.Haraka512KeyedRounds(&b, &state, &key, rounds)
		if a != b {
			t.Fatalf("non-deterministic digest for state=%x key=%x rounds=%d: %x != %x",
				state, key, rounds, a, b)
		}

		var keyed, unkeyed [32]byte
		haraka.Haraka512KeyedRounds(&keyed, &state, &zero, rounds)
		haraka.Haraka512Rounds(&unkeyed, &state, rounds)
		if keyed != unkeyed {
			t.Fatalf("zero-key divergence for state=%x rounds=%d: keyed = %x, unkeyed = %x",
				state, rounds, keyed, unkeyed)
		}
	})
}
