package haraka

// aesMix4 applies one round of the Haraka-512 round function: two AES rounds
// per lane, consuming the eight constants rc[c..c+8), followed by the MIX4
// cross-lane word shuffle. The AES rounds diffuse within each lane; MIX4 is
// what spreads that diffusion across lanes.
func aesMix4(s0, s1, s2, s3 lane, c int) (lane, lane, lane, lane) {
	s0 = s0.aesRound(rc[c]).aesRound(rc[c+4])
	s1 = s1.aesRound(rc[c+1]).aesRound(rc[c+5])
	s2 = s2.aesRound(rc[c+2]).aesRound(rc[c+6])
	s3 = s3.aesRound(rc[c+3]).aesRound(rc[c+7])
	return mix4(s0, s1, s2, s3)
}

// aesMix2 is the two-lane round function of Haraka-256, consuming the four
// constants rc[c..c+4).
func aesMix2(s0, s1 lane, c int) (lane, lane) {
	s0 = s0.aesRound(rc[c]).aesRound(rc[c+2])
	s1 = s1.aesRound(rc[c+1]).aesRound(rc[c+3])
	return mix2(s0, s1)
}

// mix4 redistributes the 32-bit words of four lanes. Each output lane draws
// one word from every input lane, matching the reference implementation's
// sequence of PUNPCKLDQ/PUNPCKHDQ shuffles.
func mix4(s0, s1, s2, s3 lane) (m0, m1, m2, m3 lane) {
	copy(m0[0:4], s0[12:16])
	copy(m0[4:8], s2[12:16])
	copy(m0[8:12], s1[12:16])
	copy(m0[12:16], s3[12:16])

	copy(m1[0:4], s2[0:4])
	copy(m1[4:8], s0[0:4])
	copy(m1[8:12], s3[0:4])
	copy(m1[12:16], s1[0:4])

	copy(m2[0:4], s2[4:8])
	copy(m2[4:8], s0[4:8])
	copy(m2[8:12], s3[4:8])
	copy(m2[12:16], s1[4:8])

	copy(m3[0:4], s0[8:12])
	copy(m3[4:8], s2[8:12])
	copy(m3[8:12], s1[8:12])
	copy(m3[12:16], s3[8:12])
	return m0, m1, m2, m3
}

// mix2 interleaves the 32-bit words of two lanes.
func mix2(s0, s1 lane) (m0, m1 lane) {
	copy(m0[0:4], s0[0:4])
	copy(m0[4:8], s1[0:4])
	copy(m0[8:12], s0[4:8])
	copy(m0[12:16], s1[4:8])

	copy(m1[0:4], s0[8:12])
	copy(m1[4:8], s1[8:12])
	copy(m1[8:12], s0[12:16])
	copy(m1[12:16], s1[12:16])
	return m0, m1
}

// truncStore writes the canonical 32-byte truncation of a 64-byte state:
// bytes 8..16 of lane 0, 8..16 of lane 1, 0..8 of lane 2, 0..8 of lane 3.
func truncStore(dst *[32]byte, s0, s1, s2, s3 lane) {
	copy(dst[0:8], s0[8:16])
	copy(dst[8:16], s1[8:16])
	copy(dst[16:24], s2[0:8])
	copy(dst[24:32], s3[0:8])
}

func haraka256Generic(dst, src *[32]byte, rounds int) {
	s0 := loadLane(src[0:16])
	s1 := loadLane(src[16:32])
	t0, t1 := s0, s1

	for r := 0; r < rounds; r++ {
		s0, s1 = aesMix2(s0, s1, 4*r)
	}

	s0 = s0.xor(t0)
	s1 = s1.xor(t1)
	s0.store(dst[0:16])
	s1.store(dst[16:32])
}

func haraka512Generic(dst *[32]byte, src *[64]byte, rounds int) {
	s0 := loadLane(src[0:16])
	s1 := loadLane(src[16:32])
	s2 := loadLane(src[32:48])
	s3 := loadLane(src[48:64])
	t0, t1, t2, t3 := s0, s1, s2, s3

	for r := 0; r < rounds; r++ {
		s0, s1, s2, s3 = aesMix4(s0, s1, s2, s3, 8*r)
	}

	s0 = s0.xor(t0)
	s1 = s1.xor(t1)
	s2 = s2.xor(t2)
	s3 = s3.xor(t3)
	truncStore(dst, s0, s1, s2, s3)
}

func haraka512KeyedGeneric(dst *[32]byte, state, key *[64]byte, rounds int) {
	s0 := loadLane(state[0:16]).xor(loadLane(key[0:16]))
	s1 := loadLane(state[16:32]).xor(loadLane(key[16:32]))
	s2 := loadLane(state[32:48]).xor(loadLane(key[32:48]))
	s3 := loadLane(state[48:64]).xor(loadLane(key[48:64]))

	// The feed-forward covers the keyed state, not the raw input.
	t0, t1, t2, t3 := s0, s1, s2, s3

	for r := 0; r < rounds; r++ {
		s0, s1, s2, s3 = aesMix4(s0, s1, s2, s3, 8*r)
	}

	s0 = s0.xor(t0)
	s1 = s1.xor(t1)
	s2 = s2.xor(t2)
	s3 = s3.xor(t3)
	truncStore(dst, s0, s1, s2, s3)
}
