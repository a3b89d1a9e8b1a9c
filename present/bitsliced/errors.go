package bitsliced

import "fmt"

// KeySizeError indicates a key register of the wrong length was supplied.
// PRESENT-80 keys are exactly 10 bytes (80 bits).
type KeySizeError int

// Error returns a formatted error message describing the invalid key size.
func (k KeySizeError) Error() string {
	return fmt.Sprintf("present/bitsliced: invalid key size %d, must be 10 bytes", int(k))
}

// BufferSizeError indicates a lane buffer of the wrong length was supplied.
// The bitsliced engine operates on exactly Width*present.BlockSize bytes
// (32 blocks of 8 bytes each).
type BufferSizeError int

// Error returns a formatted error message describing the invalid buffer size.
func (b BufferSizeError) Error() string {
	return fmt.Sprintf("present/bitsliced: invalid buffer size %d, must be %d bytes", int(b), BufferSize)
}
