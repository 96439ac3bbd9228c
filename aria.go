//
// ~=  ARIA  =~
//
// Implementation of block cipher ARIA, RFC 5794.
//
// Free software, distribution unlimited.
//
// Supplementary files:
//		tables.go
//		algo.go
//
// ARIA is 128-bit block cipher with keys of 128, 192 and 256 bits,
// standardized in the Republic of Korea (KS X 1213-1) and published
// as RFC 5794. The cipher is a substitution-permutation network with
// 12, 14 or 16 rounds depending on key length. Encryption and
// decryption share one round structure: decryption round keys are
// derived from the encryption round keys by pushing the diffusion
// layer through the reversed key sequence.
//
// This version implements standard interface for crypto/cipher package.
// Particularly - with GCM and CTR modules.
//
// General usage:
// c, err := NewCipher(key) - creates and initializes new instance with
// key given. Returns cipher.Block with ARIA;
// c.Encrypt(dst,src), c.Decrypt(dst,src) - block encryption
// and decryption methods;
//
// aria.DoEncrypt(block, nr, round_keys) - cipher encrypt procedure,
// low level;
// aria.DoDecrypt(block, nr, round_keys) - cipher decrypt procedure,
// low level.
//
// Other functions:
// aria.StretchKey(key) - expands master key to 17 encryption round keys;
// aria.GetDecryptRoundKeys(nr, ek) - derives round keys for decryption.
//
// More usage examples:
// ---
// nr, ek, err := aria.StretchKey(MainKey)
// CipherText = aria.DoEncrypt(PlainText, nr, ek)
// dk := aria.GetDecryptRoundKeys(nr, ek)
// PlainText = aria.DoDecrypt(CipherText, nr, dk)
// ---
//
// To use in GCM mode of operation:
// ---
// import "crypto/cipher"
//
// aCipher, err := NewCipher(key)
// ariaGCM, err := cipher.NewGCM(aCipher)
// [...]
// ariaGCM.Seal(...), ariaGCM.Open(...)
// ---
//
// All table lookups use constant indices into flat 256-byte arrays and
// all round control flow depends only on the key length, never on key
// or data values.
//
// Reference:
// Cipher informational RFC 5794 - https://tools.ietf.org/html/rfc5794
// Modes and OIDs RFC 6209 - https://tools.ietf.org/html/rfc6209

package aria

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"strconv"
)

// 128-bit block cipher.
const BlockSize = 16

// The key schedule always produces 17 round keys; a context uses the
// first nr+1 of them.
const MaxRoundKeys = 17

// Aria holds the expanded key material for one master key. A context is
// owned by its caller: Encrypt and Decrypt never write to it after Init,
// so a single context may be shared between goroutines for block
// operations. Init and Deinit require exclusive access.
type Aria struct {
	nr int
	ek [MaxRoundKeys][4]uint32
	dk [MaxRoundKeys][4]uint32
}

// Standard error-info construction (from crypto/aes)
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aria: invalid key size " + strconv.Itoa(int(k)) + ", must be 16, 24 or 32 bytes"
}

// ErrInvalidParameter is returned when a nil context or nil key is
// passed where a valid one is required.
var ErrInvalidParameter = errors.New("aria: invalid parameter")

// xor128 XORs 128-bit word b into a.
func xor128(a, b [4]uint32) [4]uint32 {
	a[0] ^= b[0]
	a[1] ^= b[1]
	a[2] ^= b[2]
	a[3] ^= b[3]
	return a
}

// rol128 rotates 128-bit word a left by n bits.
func rol128(a [4]uint32, n uint) (b [4]uint32) {
	q := n / 32
	r := n % 32
	for i := uint(0); i < 4; i++ {
		b[i] = a[(q+i)%4]<<r | a[(q+i+1)%4]>>(32-r)
	}
	return b
}

// SL1 is the type-1 substitution layer: the pattern SB1, SB2, SB3, SB4
// applied to the four bytes of each word.
func SL1(x [4]uint32) (y [4]uint32) {
	for i := 0; i < 4; i++ {
		y[i] = uint32(sb1_table[x[i]>>24])<<24 |
			uint32(sb2_table[x[i]>>16&0xFF])<<16 |
			uint32(sb3_table[x[i]>>8&0xFF])<<8 |
			uint32(sb4_table[x[i]&0xFF])
	}
	return y
}

// SL2 is the type-2 substitution layer: the inverse pattern SB3, SB4,
// SB1, SB2 applied to the four bytes of each word.
func SL2(x [4]uint32) (y [4]uint32) {
	for i := 0; i < 4; i++ {
		y[i] = uint32(sb3_table[x[i]>>24])<<24 |
			uint32(sb4_table[x[i]>>16&0xFF])<<16 |
			uint32(sb1_table[x[i]>>8&0xFF])<<8 |
			uint32(sb2_table[x[i]&0xFF])
	}
	return y
}

// A is the diffusion layer of RFC 5794 section 2.4.3: a 16x16 binary
// matrix over bytes where every output byte is the XOR of seven input
// bytes. A is an involution, which is what lets decryption reuse the
// encryption round structure.
func A(x [4]uint32) (y [4]uint32) {
	var t [16]uint32
	for i := 0; i < 16; i++ {
		t[i] = x[i/4] >> uint((3-i%4)*8) & 0xFF
	}
	y[0] = (t[3]^t[4]^t[6]^t[8]^t[9]^t[13]^t[14])<<24 |
		(t[2]^t[5]^t[7]^t[8]^t[9]^t[12]^t[15])<<16 |
		(t[1]^t[4]^t[6]^t[10]^t[11]^t[12]^t[15])<<8 |
		(t[0] ^ t[5] ^ t[7] ^ t[10] ^ t[11] ^ t[13] ^ t[14])
	y[1] = (t[0]^t[2]^t[5]^t[8]^t[11]^t[14]^t[15])<<24 |
		(t[1]^t[3]^t[4]^t[9]^t[10]^t[14]^t[15])<<16 |
		(t[0]^t[2]^t[7]^t[9]^t[10]^t[12]^t[13])<<8 |
		(t[1] ^ t[3] ^ t[6] ^ t[8] ^ t[11] ^ t[12] ^ t[13])
	y[2] = (t[0]^t[1]^t[4]^t[7]^t[10]^t[13]^t[15])<<24 |
		(t[0]^t[1]^t[5]^t[6]^t[11]^t[12]^t[14])<<16 |
		(t[2]^t[3]^t[5]^t[6]^t[8]^t[13]^t[15])<<8 |
		(t[2] ^ t[3] ^ t[4] ^ t[7] ^ t[9] ^ t[12] ^ t[14])
	y[3] = (t[1]^t[2]^t[6]^t[7]^t[9]^t[11]^t[12])<<24 |
		(t[0]^t[3]^t[6]^t[7]^t[8]^t[10]^t[13])<<16 |
		(t[0]^t[3]^t[4]^t[5]^t[9]^t[11]^t[14])<<8 |
		(t[1] ^ t[2] ^ t[4] ^ t[5] ^ t[8] ^ t[10] ^ t[15])
	return y
}

// OF is the odd round function: D <- A(SL1(D XOR RK)).
func OF(d, rk [4]uint32) [4]uint32 {
	return A(SL1(xor128(d, rk)))
}

// EF is the even round function: D <- A(SL2(D XOR RK)).
func EF(d, rk [4]uint32) [4]uint32 {
	return A(SL2(xor128(d, rk)))
}

// StretchKey expands the master key to the round count nr and the 17
// encryption round keys ek1..ek17 (RFC 5794 section 2.5.2). A context
// uses only the first nr+1 keys but all 17 are always computed, so the
// schedule does the same work for every key of a given length.
// Key must be 16, 24 or 32 bytes long.
func StretchKey(key []byte) (int, [MaxRoundKeys][4]uint32, error) {
	var ek [MaxRoundKeys][4]uint32
	var nr int
	var c1, c2, c3 int

	// Round count and constant selection depend on key length only.
	switch len(key) {
	case 16:
		nr = 12
		c1, c2, c3 = 0, 4, 8
	case 24:
		nr = 14
		c1, c2, c3 = 4, 8, 0
	case 32:
		nr = 16
		c1, c2, c3 = 8, 0, 4
	default:
		return 0, ek, KeySizeError(len(key))
	}

	var ck1, ck2, ck3 [4]uint32
	copy(ck1[:], ks_constants[c1:c1+4])
	copy(ck2[:], ks_constants[c2:c2+4])
	copy(ck3[:], ks_constants[c3:c3+4])

	// KL is the first 128 bits of the key, KR the rest zero-padded.
	var w [4][4]uint32
	var kr [4]uint32
	for i := 0; i < len(key)/4; i++ {
		v := binary.BigEndian.Uint32(key[i*4:])
		if i < 4 {
			w[0][i] = v
		} else {
			kr[i-4] = v
		}
	}

	// Intermediate values W0, W1, W2, W3.
	w[1] = xor128(OF(w[0], ck1), kr)
	w[2] = xor128(EF(w[1], ck2), w[0])
	w[3] = xor128(OF(w[2], ck3), w[1])

	// ek(n+1) = (W((n+1) mod 4) <<< rot) XOR W(n mod 4), with the
	// rotation amount stepping through 109, 97, 61, 31 and 19 every
	// four keys.
	rot := [5]uint{109, 97, 61, 31, 19}
	for n := 0; n < MaxRoundKeys; n++ {
		ek[n] = xor128(rol128(w[(n+1)%4], rot[n/4]), w[n%4])
	}

	// Wipe the key-dependent intermediates.
	for i := range w {
		w[i] = [4]uint32{}
	}
	kr = [4]uint32{}

	return nr, ek, nil
}

// GetDecryptRoundKeys derives the decryption round keys from the
// encryption round keys: the sequence is reversed and the diffusion
// layer is applied to every key except the two endpoints. With these
// keys decryption runs through exactly the same block procedure as
// encryption.
func GetDecryptRoundKeys(nr int, ek [MaxRoundKeys][4]uint32) [MaxRoundKeys][4]uint32 {
	var dk [MaxRoundKeys][4]uint32
	dk[0] = ek[nr]
	for i := 1; i < nr; i++ {
		dk[i] = A(ek[nr-i])
	}
	dk[nr] = ek[0]
	return dk
}

// doRounds walks one 16-byte block through the cipher with the given
// round keys. The first nr-1 rounds alternate the odd and even round
// functions; the final round omits the diffusion layer and XORs the
// last two round keys around SL2. Encryption and decryption differ
// only in which key table is passed in.
func doRounds(block [16]uint8, nr int, rk *[MaxRoundKeys][4]uint32) [16]uint8 {
	var p [4]uint32
	p[0] = binary.BigEndian.Uint32(block[0:4])
	p[1] = binary.BigEndian.Uint32(block[4:8])
	p[2] = binary.BigEndian.Uint32(block[8:12])
	p[3] = binary.BigEndian.Uint32(block[12:16])

	for r := 0; r < nr-2; r += 2 {
		p = OF(p, rk[r])
		p = EF(p, rk[r+1])
	}
	p = OF(p, rk[nr-2])

	// Abbreviated final round.
	p = xor128(SL2(xor128(p, rk[nr-1])), rk[nr])

	var out [16]uint8
	binary.BigEndian.PutUint32(out[0:4], p[0])
	binary.BigEndian.PutUint32(out[4:8], p[1])
	binary.BigEndian.PutUint32(out[8:12], p[2])
	binary.BigEndian.PutUint32(out[12:16], p[3])
	return out
}

// DoEncrypt encrypts one block with the encryption round keys produced
// by StretchKey. Low level procedure, value in - value out.
func DoEncrypt(block [16]uint8, nr int, rkeys [MaxRoundKeys][4]uint32) [16]uint8 {
	return doRounds(block, nr, &rkeys)
}

// DoDecrypt decrypts one block with the decryption round keys produced
// by GetDecryptRoundKeys. Same procedure as DoEncrypt - the key
// sequence alone reverses the cipher.
func DoDecrypt(block [16]uint8, nr int, rkeys [MaxRoundKeys][4]uint32) [16]uint8 {
	return doRounds(block, nr, &rkeys)
}

// Init populates the context from the master key. Key length selects
// 12, 14 or 16 rounds; any other length returns KeySizeError and a nil
// key or context returns ErrInvalidParameter. On error the context is
// left untouched.
func (c *Aria) Init(key []byte) error {
	if c == nil || key == nil {
		return ErrInvalidParameter
	}
	nr, ek, err := StretchKey(key)
	if err != nil {
		return err
	}
	c.nr = nr
	c.ek = ek
	c.dk = GetDecryptRoundKeys(nr, ek)
	return nil
}

// Deinit zeroises all key material held by the context. Idempotent; the
// context may be reused after another Init.
func (c *Aria) Deinit() {
	if c == nil {
		return
	}
	c.nr = 0
	for i := range c.ek {
		c.ek[i] = [4]uint32{}
		c.dk[i] = [4]uint32{}
	}
}

func NewCipher(key []byte) (cipher.Block, error) {
	// Function to create a new cipher.
	// While using with crypto/cipher we need cipher.Block to pass as
	// block cipher to mode routines (see test/test_aria.go for examples).
	c := new(Aria)
	if err := c.Init(key); err != nil {
		return nil, err
	}
	return c, nil
}

// BlockSize returns block size of cipher. Interface for cipher.Block.
func (c *Aria) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts given block src into dst with current round keys.
// Dst and src may be the same buffer.
func (c *Aria) Encrypt(dst, src []byte) {
	var block [16]uint8

	if len(src) < BlockSize {
		panic("aria: input length less than full block!")
	}
	if len(dst) < BlockSize {
		panic("aria: output length less than full block!")
	}
	copy(block[:], src[:16])
	block = doRounds(block, c.nr, &c.ek)
	copy(dst, block[:])
}

// Decrypt decrypts given block src into dst.
// Dst and src may be the same buffer.
func (c *Aria) Decrypt(dst, src []byte) {
	var block [16]uint8

	if len(src) < BlockSize {
		panic("aria: input length less than full block!")
	}
	if len(dst) < BlockSize {
		panic("aria: output length less than full block!")
	}
	copy(block[:], src[:16])
	block = doRounds(block, c.nr, &c.dk)
	copy(dst, block[:])
}
