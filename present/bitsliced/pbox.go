package bitsliced

import "github.com/daleksla/present/present"

// PboxLayer applies PRESENT's bit permutation as a pure lane-index remap:
// bit position p in the scalar view corresponds to lane p in the bitsliced
// view, so state_out[Permute(p)] = state_in[p] for p = 0..63. Lane 63 is a
// fixed point. A scratch array is required: writing in place would clobber
// lanes the loop has not yet read, since the permutation is not its own
// inverse in general.
func PboxLayer(state *State) {
	var out State
	for p := 0; p < StateBits; p++ {
		out[present.Permute(p)] = state[p]
	}
	*state = out
}
