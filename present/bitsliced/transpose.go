package bitsliced

import "github.com/daleksla/present/present"

// Enslice transposes 256 input bytes (32 blocks of 8 bytes each) into a
// bitsliced State of 64 lanes. Lane j bit i is bit (j mod 8) of byte
// 8*i + j/8 of in — i.e. each output lane collects one fixed bit position
// across all 32 blocks. The returned state is zeroed before any bit is
// written, since bits are set one at a time.
func Enslice(in *[BufferSize]byte) State {
	var state State
	for i := 0; i < Width; i++ {
		for j := 0; j < StateBits; j++ {
			bit := (in[i*present.BlockSize+j/8] >> uint(j%8)) & 1
			if bit == 1 {
				state[j] |= 1 << uint(i)
			}
		}
	}
	return state
}

// Unslice is the exact inverse of Enslice: it writes bit i of lane j to bit
// (j mod 8) of byte 8*i + j/8 of the returned 256-byte buffer.
func Unslice(state *State) [BufferSize]byte {
	var out [BufferSize]byte
	for i := 0; i < Width; i++ {
		for j := 0; j < StateBits; j++ {
			bit := (state[j] >> uint(i)) & 1
			if bit == 1 {
				out[i*present.BlockSize+j/8] |= 1 << uint(j%8)
			}
		}
	}
	return out
}
