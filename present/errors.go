package present

import "fmt"

// KeySizeError indicates a key register of the wrong length was supplied to
// a slice-based entry point. PRESENT-80 keys are exactly 10 bytes (80 bits).
type KeySizeError int

// Error returns a formatted error message describing the invalid key size.
func (k KeySizeError) Error() string {
	return fmt.Sprintf("present: invalid key size %d, must be 10 bytes", int(k))
}

// BlockSizeError indicates a block buffer of the wrong length was supplied
// to a slice-based entry point. PRESENT operates on 8-byte (64-bit) blocks.
type BlockSizeError int

// Error returns a formatted error message describing the invalid block size.
func (b BlockSizeError) Error() string {
	return fmt.Sprintf("present: invalid block size %d, must be 8 bytes", int(b))
}

// DecryptNotSupportedError is the value Cipher.Decrypt panics with.
// The source this kernel is ported from provides encryption only.
type DecryptNotSupportedError struct{}

// Error returns a message explaining that decryption is out of scope.
func (DecryptNotSupportedError) Error() string {
	return "present: decryption is not supported, this engine provides encryption only"
}
