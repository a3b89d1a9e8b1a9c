package bitsliced

import "github.com/daleksla/present/present"

// bitReplicate holds the two values a single round-key bit replicates to
// across all 32 lanes of a parallel block: 0 if the bit is 0, all-ones if
// the bit is 1.
var bitReplicate = [2]uint32{0x00000000, 0xFFFFFFFF}

// AddRoundKey XORs the 8-byte round key (the 64-bit window roundkey) into
// the 64-lane state. Round-key bit i, if set, XORs all-ones into lane i —
// replicating that single bit across all 32 parallel blocks at once.
func AddRoundKey(state *State, roundkey *[present.BlockSize]byte) {
	for i := 0; i < StateBits; i++ {
		bit := (roundkey[i/8] >> uint(i%8)) & 1
		state[i] ^= bitReplicate[bit]
	}
}
