package present

import "testing"

func BenchmarkEncrypt(b *testing.B) {
	var block [BlockSize]byte
	var key [KeySize]byte
	for i := range key {
		key[i] = byte(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		roundKey := key
		Encrypt(&block, &roundKey)
	}
}

func BenchmarkCipherEncrypt(b *testing.B) {
	c, err := NewCipher(make([]byte, KeySize))
	if err != nil {
		b.Fatal(err)
	}
	src := make([]byte, BlockSize)
	dst := make([]byte, BlockSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Encrypt(dst, src)
	}
}

func BenchmarkSboxLayer(b *testing.B) {
	var block [BlockSize]byte
	for i := 0; i < b.N; i++ {
		SboxLayer(&block)
	}
}

func BenchmarkPboxLayer(b *testing.B) {
	var block [BlockSize]byte
	for i := 0; i < b.N; i++ {
		PboxLayer(&block)
	}
}
