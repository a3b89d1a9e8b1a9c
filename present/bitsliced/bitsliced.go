// Package bitsliced implements the 32-way parallel, branch-free sibling of
// package present: the same PRESENT-80 round structure, but applied to 32
// independent 64-bit blocks at once by transposing bit-planes across
// 32-bit lanes. Every lane's bit i carries block i's bit at that position,
// so the S-box becomes a Boolean circuit instead of a table lookup and the
// P-box becomes a lane-index remap — no data-dependent branches or memory
// indices anywhere in the per-round hot path, at the cost of the transpose
// (Enslice/Unslice) at the boundary.
//
// The key schedule is identical to the scalar engine's and is not
// reimplemented here: it is shared via present.UpdateRoundKey and
// present.Sbox, the same way the source C shares one update_round_key body
// between its scalar and bitsliced translation units.
package bitsliced

import "github.com/daleksla/present/present"

const (
	// Width is the number of independent 64-bit blocks the engine encrypts
	// in parallel (the bitslice lane width).
	Width = 32
	// StateBits is the number of bit-plane lanes in the bitsliced state,
	// one per bit position of a PRESENT block.
	StateBits = present.BlockSize * 8
	// BufferSize is the size in bytes of the lane buffer the engine
	// operates on: Width blocks of present.BlockSize bytes each, laid out
	// contiguously block by block.
	BufferSize = Width * present.BlockSize
)

// State is the bitsliced internal representation: 64 lanes, each a 32-bit
// word. The invariant State[j] bit i == bit j of block i holds on entry to
// and exit from every round.
type State [StateBits]uint32

// EncryptBlocks encrypts 32 blocks in place, laid out as 32 contiguous
// 8-byte blocks in blocks, under the 10-byte key register key. Semantically
// equivalent to calling present.Encrypt independently on each of the 32
// blocks with a fresh copy of key; key is left in its post-round-31
// schedule state exactly as present.Encrypt leaves it.
func EncryptBlocks(blocks *[BufferSize]byte, key *[present.KeySize]byte) {
	state := Enslice(blocks)

	var roundKey [present.BlockSize]byte
	for r := uint8(1); r <= present.Rounds; r++ {
		copy(roundKey[:], key[2:2+present.BlockSize])
		AddRoundKey(&state, &roundKey)
		SboxLayer(&state)
		PboxLayer(&state)
		present.UpdateRoundKey(key, r)
	}
	copy(roundKey[:], key[2:2+present.BlockSize])
	AddRoundKey(&state, &roundKey)

	*blocks = Unslice(&state)
}

// Encrypt is a slice-accepting convenience wrapper around EncryptBlocks for
// callers that do not have fixed-size arrays in hand. blocks must be exactly
// BufferSize bytes and key exactly present.KeySize bytes; violations panic
// with BufferSizeError/KeySizeError, per spec.md §7's programmer-error rule
// for slice-based entry points.
func Encrypt(blocks []byte, key []byte) {
	if len(blocks) != BufferSize {
		panic(BufferSizeError(len(blocks)))
	}
	if len(key) != present.KeySize {
		panic(KeySizeError(len(key)))
	}

	var fixedBlocks [BufferSize]byte
	var fixedKey [present.KeySize]byte
	copy(fixedBlocks[:], blocks)
	copy(fixedKey[:], key)

	EncryptBlocks(&fixedBlocks, &fixedKey)

	copy(blocks, fixedBlocks[:])
	copy(key, fixedKey[:])
}
