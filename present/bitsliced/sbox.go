package bitsliced

// sbox0..sbox3 are the normal algebraic form of PRESENT's S-box, each a
// Boolean function of the four input planes computed over a 32-bit lane
// (one bit per parallel block). Together they replace a single quartet of
// lanes (x0,x1,x2,x3) — 32 parallel 4-bit nibbles, bit 0 in x0 through bit 3
// in x3 — with its S-box image (y0,y1,y2,y3). All four are derived from the
// same four inputs, so a quartet must be overwritten atomically (the caller
// captures x0..x3 into locals before writing any output lane).

func sbox0(x0, x1, x2, x3 uint32) uint32 {
	return x0 ^ (x1 & x2) ^ x2 ^ x3
}

func sbox1(x0, x1, x2, x3 uint32) uint32 {
	return (x0 & x1 & x2) ^ (x0 & x1 & x3) ^ (x1 & x3) ^ x1 ^ (x0 & x2 & x3) ^ (x2 & x3) ^ x3
}

func sbox2(x0, x1, x2, x3 uint32) uint32 {
	return ^((x0 & x1) ^ (x0 & x1 & x3) ^ (x1 & x3) ^ x2 ^ (x0 & x3) ^ (x0 & x2 & x3) ^ x3)
}

func sbox3(x0, x1, x2, x3 uint32) uint32 {
	return ^((x0 & x1 & x2) ^ (x0 & x1 & x3) ^ (x0 & x2 & x3) ^ x0 ^ x1 ^ (x1 & x2) ^ x3)
}

// SboxLayer applies the Boolean S-box to every quartet of the 64-lane state.
// The 64 lanes are partitioned into 16 quartets (lane[4k], lane[4k+1],
// lane[4k+2], lane[4k+3]); each quartet is replaced independently.
func SboxLayer(state *State) {
	var out State
	for k := 0; k < StateBits/4; k++ {
		x0 := state[4*k+0]
		x1 := state[4*k+1]
		x2 := state[4*k+2]
		x3 := state[4*k+3]

		out[4*k+0] = sbox0(x0, x1, x2, x3)
		out[4*k+1] = sbox1(x0, x1, x2, x3)
		out[4*k+2] = sbox2(x0, x1, x2, x3)
		out[4*k+3] = sbox3(x0, x1, x2, x3)
	}
	*state = out
}
