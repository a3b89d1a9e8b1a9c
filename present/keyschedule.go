package present

// UpdateRoundKey advances the 80-bit key register by one schedule step: a
// 19-bit right rotation of the register, an S-box substitution of the
// resulting top nibble, and an XOR of the round counter r into bits 15..19.
//
// r must be called with 1, 2, ..., 31 in strictly increasing order, once per
// value; the schedule's output for any other call sequence is undefined. The
// byte-level rotation recipe below is the contract: it must be reproduced
// exactly as written for bit-exact compatibility with the published PRESENT
// test vectors, independent of any cleaner derivation of the same rotation
// from first principles.
func UpdateRoundKey(key *[KeySize]byte, r uint8) {
	tmp0, tmp1, tmp2 := key[0], key[1], key[2]

	key[0] = key[2]>>3 | key[3]<<5
	key[1] = key[3]>>3 | key[4]<<5
	key[2] = key[4]>>3 | key[5]<<5
	key[3] = key[5]>>3 | key[6]<<5
	key[4] = key[6]>>3 | key[7]<<5
	key[5] = key[7]>>3 | key[8]<<5
	key[6] = key[8]>>3 | key[9]<<5
	key[7] = key[9]>>3 | tmp0<<5
	key[8] = tmp0>>3 | tmp1<<5
	key[9] = tmp1>>3 | tmp2<<5

	key[9] = (key[9] & 0x0F) | (Sbox[key[9]>>4] << 4)

	key[1] ^= r << 7
	key[2] ^= r >> 1
}
