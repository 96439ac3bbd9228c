// Cipher algorithm descriptor for ARIA.
//
// Mode drivers (ECB, CBC, CTR, GCM, ...) do not call the cipher
// directly: they are handed a CipherAlgo value and go through its
// function references. This keeps the coupling between a mode layer
// and the cipher core down to one table.

package aria

// CipherAlgo describes a block cipher to a generic mode layer: the
// algorithm name, the block size and the four entry points of the
// context lifecycle.
type CipherAlgo struct {
	Name      string
	BlockSize int

	// New allocates a fresh context for Init.
	New func() *Aria

	Init         func(ctx *Aria, key []byte) error
	EncryptBlock func(ctx *Aria, dst, src []byte)
	DecryptBlock func(ctx *Aria, dst, src []byte)
	Deinit       func(ctx *Aria)
}

// AriaCipherAlgo is the descriptor mode layers consume.
var AriaCipherAlgo = CipherAlgo{
	Name:         "ARIA",
	BlockSize:    BlockSize,
	New:          func() *Aria { return new(Aria) },
	Init:         (*Aria).Init,
	EncryptBlock: (*Aria).Encrypt,
	DecryptBlock: (*Aria).Decrypt,
	Deinit:       (*Aria).Deinit,
}
