package aria

import (
	"bytes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"
	"math/bits"
	"math/rand"
	"testing"
)

// RFC 5794 appendix vectors: the same plaintext encrypted under the
// three sequential test keys.
var blockVectors = []struct {
	key string
	pt  string
	ct  string
}{
	{
		"000102030405060708090a0b0c0d0e0f",
		"00112233445566778899aabbccddeeff",
		"d718fbd6ab644c739da95f3be6451778",
	},
	{
		"000102030405060708090a0b0c0d0e0f1011121314151617",
		"00112233445566778899aabbccddeeff",
		"26449c1805dbe7aa25a468ce263a9e79",
	},
	{
		"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		"00112233445566778899aabbccddeeff",
		"f92bd7c79fb72e2f2b8f80c1972d24fc",
	},
}

// Encryption round keys ek1..ek17 for the 128-bit test key, RFC 5794
// appendix A.1.
var roundKeys128 = []string{
	"d415a75c794b85c5e0d2a0b3cb793bf6",
	"369c65e4b11777ab713a3e1e6601b8f4",
	"0368d4f13d14497b6529ad7ac809e7d0",
	"c644552b549a263fb8d0b50906229eec",
	"5f9c434951f2d2ef342787b1a781794c",
	"afea2c0ce71db6de42a47461f4323c54",
	"324286db44ba4db6c44ac306f2a84b2c",
	"7f9fa93574d842b9101a58063771eb7b",
	"aab9c57731fcd213ad5677458fcfe6d4",
	"2f4423bb06465abada5694a19eb88459",
	"9f8772808f5d580d810ef8ddac13abeb",
	"8684946a155be77ef810744847e35fad",
	"0f0aa16daee61bd7dfee5a599970fb35",
	"ef23798408e861e134824a3f918c1ca5",
	"c6e85b5e07b90de43e4fb1ce714a39a9",
	"e5873628f0dec3ba9e16d30fa7637e6c",
	"53a1f2b932efa836d504747e092459d0",
}

// Decryption round keys dk1..dk13 for the 128-bit test key, RFC 5794
// appendix A.3.
var decryptKeys128 = []string{
	"0f0aa16daee61bd7dfee5a599970fb35",
	"ccb3a0230b6dac1d53eef49d961aa57f",
	"60ea3252ac3ea9bc9ac78e79df20b5b5",
	"5794eadaece652f8a2ccbf68ee82a730",
	"468a335e49ec1db45d112aaf2109e5bf",
	"938ebbda880c6bb87fa01c97e68811a9",
	"bfda5018ab33d14cc538ea5c81bd1011",
	"b5a90e77d5b94bb56e47af759fcfa05e",
	"21a6c28c5e1175a4378cd34dd3195a83",
	"8d726063ca2ceddc92afb45dd7db643e",
	"27efd355eb17e90e5963c46515016f8d",
	"d000e81367819b077b0a657f6740e8e4",
	"d415a75c794b85c5e0d2a0b3cb793bf6",
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex in test vector: %v", err)
	}
	return b
}

func rkHex(rk [4]uint32) string {
	return fmt.Sprintf("%08x%08x%08x%08x", rk[0], rk[1], rk[2], rk[3])
}

func TestBlockVectors(t *testing.T) {
	for _, tt := range blockVectors {
		key := mustHex(t, tt.key)
		pt := mustHex(t, tt.pt)

		c, err := NewCipher(key)
		if err != nil {
			t.Fatalf("NewCipher(%d-byte key): %v", len(key), err)
		}

		ct := make([]byte, BlockSize)
		c.Encrypt(ct, pt)
		if hex.EncodeToString(ct) != tt.ct {
			t.Errorf("ARIA-%d(%s) = %x, want %s", len(key)*8, tt.pt, ct, tt.ct)
		}

		back := make([]byte, BlockSize)
		c.Decrypt(back, ct)
		if !bytes.Equal(back, pt) {
			t.Errorf("ARIA-%d decrypt = %x, want %s", len(key)*8, back, tt.pt)
		}
	}
}

func TestRoundKeys128(t *testing.T) {
	key := mustHex(t, blockVectors[0].key)
	nr, ek, err := StretchKey(key)
	if err != nil {
		t.Fatalf("StretchKey: %v", err)
	}
	if nr != 12 {
		t.Fatalf("nr = %d, want 12", nr)
	}
	for i, want := range roundKeys128 {
		if got := rkHex(ek[i]); got != want {
			t.Errorf("ek%d = %s, want %s", i+1, got, want)
		}
	}
}

func TestDecryptRoundKeys128(t *testing.T) {
	key := mustHex(t, blockVectors[0].key)
	nr, ek, err := StretchKey(key)
	if err != nil {
		t.Fatalf("StretchKey: %v", err)
	}
	dk := GetDecryptRoundKeys(nr, ek)
	for i, want := range decryptKeys128 {
		if got := rkHex(dk[i]); got != want {
			t.Errorf("dk%d = %s, want %s", i+1, got, want)
		}
	}
}

// refDiffusion applies the RFC 5794 section 2.4.3 byte matrix directly:
// output byte i is the XOR of the seven input bytes listed in row i.
// Kept independent of the A function so the two can check each other.
func refDiffusion(rk [4]uint32) [4]uint32 {
	spans := [16][7]int{
		{3, 4, 6, 8, 9, 13, 14},
		{2, 5, 7, 8, 9, 12, 15},
		{1, 4, 6, 10, 11, 12, 15},
		{0, 5, 7, 10, 11, 13, 14},
		{0, 2, 5, 8, 11, 14, 15},
		{1, 3, 4, 9, 10, 14, 15},
		{0, 2, 7, 9, 10, 12, 13},
		{1, 3, 6, 8, 11, 12, 13},
		{0, 1, 4, 7, 10, 13, 15},
		{0, 1, 5, 6, 11, 12, 14},
		{2, 3, 5, 6, 8, 13, 15},
		{2, 3, 4, 7, 9, 12, 14},
		{1, 2, 6, 7, 9, 11, 12},
		{0, 3, 6, 7, 8, 10, 13},
		{0, 3, 4, 5, 9, 11, 14},
		{1, 2, 4, 5, 8, 10, 15},
	}
	var in, out [16]uint8
	for i := 0; i < 16; i++ {
		in[i] = uint8(rk[i/4] >> uint((3-i%4)*8))
	}
	for i, row := range spans {
		for _, j := range row {
			out[i] ^= in[j]
		}
	}
	var y [4]uint32
	for i := 0; i < 16; i++ {
		y[i/4] |= uint32(out[i]) << uint((3-i%4)*8)
	}
	return y
}

func TestDecryptKeyDerivation(t *testing.T) {
	prng := rand.New(rand.NewSource(7))
	for _, keyLen := range []int{16, 24, 32} {
		key := make([]byte, keyLen)
		prng.Read(key)

		nr, ek, err := StretchKey(key)
		if err != nil {
			t.Fatalf("StretchKey(%d-byte key): %v", keyLen, err)
		}
		dk := GetDecryptRoundKeys(nr, ek)

		if dk[0] != ek[nr] {
			t.Errorf("keyLen %d: dk1 != ek%d", keyLen, nr+1)
		}
		if dk[nr] != ek[0] {
			t.Errorf("keyLen %d: dk%d != ek1", keyLen, nr+1)
		}
		for i := 1; i < nr; i++ {
			if dk[i] != refDiffusion(ek[nr-i]) {
				t.Errorf("keyLen %d: dk%d != A(ek%d)", keyLen, i+1, nr-i+1)
			}
		}
	}
}

func TestDiffusionInvolution(t *testing.T) {
	prng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		x := [4]uint32{prng.Uint32(), prng.Uint32(), prng.Uint32(), prng.Uint32()}
		if A(A(x)) != x {
			t.Fatalf("A(A(%08x)) != identity", x)
		}
		if A(x) != refDiffusion(x) {
			t.Fatalf("A(%08x) disagrees with the matrix definition", x)
		}
	}
}

func TestSboxInversion(t *testing.T) {
	for b := 0; b < 256; b++ {
		if sb3_table[sb1_table[b]] != uint8(b) {
			t.Errorf("SB3(SB1(%#02x)) = %#02x", b, sb3_table[sb1_table[b]])
		}
		if sb4_table[sb2_table[b]] != uint8(b) {
			t.Errorf("SB4(SB2(%#02x)) = %#02x", b, sb4_table[sb2_table[b]])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	prng := rand.New(rand.NewSource(13))
	for _, keyLen := range []int{16, 24, 32} {
		for trial := 0; trial < 64; trial++ {
			key := make([]byte, keyLen)
			prng.Read(key)
			var pt [16]byte
			prng.Read(pt[:])

			nr, ek, err := StretchKey(key)
			if err != nil {
				t.Fatalf("StretchKey: %v", err)
			}
			dk := GetDecryptRoundKeys(nr, ek)

			ct := DoEncrypt(pt, nr, ek)
			if got := DoDecrypt(ct, nr, dk); got != pt {
				t.Fatalf("keyLen %d: D(E(P)) != P for key %x", keyLen, key)
			}
			// The cipher is a permutation, so the composition holds the
			// other way around as well.
			if got := DoEncrypt(DoDecrypt(pt, nr, dk), nr, ek); got != pt {
				t.Fatalf("keyLen %d: E(D(P)) != P for key %x", keyLen, key)
			}
		}
	}
}

func TestKeySizeRejection(t *testing.T) {
	for n := 0; n <= 64; n++ {
		if n == 16 || n == 24 || n == 32 {
			continue
		}
		var c Aria
		before := c
		err := c.Init(make([]byte, n))
		if err == nil {
			t.Fatalf("Init accepted %d-byte key", n)
		}
		if _, ok := err.(KeySizeError); !ok {
			t.Errorf("Init(%d-byte key) = %v, want KeySizeError", n, err)
		}
		if c != before {
			t.Errorf("Init(%d-byte key) modified the context", n)
		}
	}
}

func TestInvalidParameter(t *testing.T) {
	var c Aria
	before := c
	if err := c.Init(nil); err != ErrInvalidParameter {
		t.Errorf("Init(nil) = %v, want ErrInvalidParameter", err)
	}
	if c != before {
		t.Error("Init(nil) modified the context")
	}

	var nilCtx *Aria
	if err := nilCtx.Init(make([]byte, 16)); err != ErrInvalidParameter {
		t.Errorf("nil context Init = %v, want ErrInvalidParameter", err)
	}
	nilCtx.Deinit()
}

func TestDeinitZeroises(t *testing.T) {
	var c Aria
	if err := c.Init(mustHex(t, blockVectors[0].key)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if c.nr == 0 || c.ek == ([MaxRoundKeys][4]uint32{}) {
		t.Fatal("context not populated after Init")
	}

	c.Deinit()
	if c != (Aria{}) {
		t.Errorf("context holds residue after Deinit: %+v", c)
	}
	c.Deinit() // idempotent
	if c != (Aria{}) {
		t.Error("second Deinit disturbed the context")
	}
}

func TestAvalanche(t *testing.T) {
	prng := rand.New(rand.NewSource(17))
	key := make([]byte, 16)
	prng.Read(key)
	nr, ek, err := StretchKey(key)
	if err != nil {
		t.Fatalf("StretchKey: %v", err)
	}

	const trials = 10000
	total := 0
	for i := 0; i < trials; i++ {
		var pt [16]byte
		prng.Read(pt[:])
		flipped := pt
		bit := prng.Intn(128)
		flipped[bit/8] ^= 1 << uint(bit%8)

		a := DoEncrypt(pt, nr, ek)
		b := DoEncrypt(flipped, nr, ek)
		for j := 0; j < 16; j++ {
			total += bits.OnesCount8(a[j] ^ b[j])
		}
	}

	avg := float64(total) / trials
	// The per-trial mean is 64 with a standard error around 0.06 over
	// 10000 trials, so this window is generous.
	if avg < 62 || avg > 66 {
		t.Errorf("avalanche average %.2f bits, want about 64", avg)
	}
}

func TestEncryptInPlace(t *testing.T) {
	prng := rand.New(rand.NewSource(19))
	for _, keyLen := range []int{16, 24, 32} {
		key := make([]byte, keyLen)
		prng.Read(key)
		pt := make([]byte, BlockSize)
		prng.Read(pt)

		c, err := NewCipher(key)
		if err != nil {
			t.Fatalf("NewCipher: %v", err)
		}

		separate := make([]byte, BlockSize)
		c.Encrypt(separate, pt)

		inPlace := append([]byte(nil), pt...)
		c.Encrypt(inPlace, inPlace)
		if !bytes.Equal(inPlace, separate) {
			t.Errorf("keyLen %d: in-place encryption differs", keyLen)
		}

		c.Decrypt(inPlace, inPlace)
		if !bytes.Equal(inPlace, pt) {
			t.Errorf("keyLen %d: in-place decryption differs", keyLen)
		}
	}
}

func TestShortBufferPanics(t *testing.T) {
	c, err := NewCipher(make([]byte, 16))
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	for _, f := range []func(dst, src []byte){c.Encrypt, c.Decrypt} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("no panic on short input buffer")
				}
			}()
			f(make([]byte, BlockSize), make([]byte, BlockSize-1))
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Error("no panic on short output buffer")
				}
			}()
			f(make([]byte, BlockSize-1), make([]byte, BlockSize))
		}()
	}
}

// The descriptor must drive the full context lifecycle the same way
// direct method calls do.
func TestCipherAlgoDescriptor(t *testing.T) {
	algo := AriaCipherAlgo
	if algo.Name != "ARIA" || algo.BlockSize != BlockSize {
		t.Fatalf("descriptor = %q/%d, want ARIA/%d", algo.Name, algo.BlockSize, BlockSize)
	}

	ctx := algo.New()
	if err := algo.Init(ctx, mustHex(t, blockVectors[0].key)); err != nil {
		t.Fatalf("descriptor Init: %v", err)
	}

	ct := make([]byte, BlockSize)
	algo.EncryptBlock(ctx, ct, mustHex(t, blockVectors[0].pt))
	if hex.EncodeToString(ct) != blockVectors[0].ct {
		t.Errorf("descriptor encrypt = %x, want %s", ct, blockVectors[0].ct)
	}

	pt := make([]byte, BlockSize)
	algo.DecryptBlock(ctx, pt, ct)
	if hex.EncodeToString(pt) != blockVectors[0].pt {
		t.Errorf("descriptor decrypt = %x, want %s", pt, blockVectors[0].pt)
	}

	algo.Deinit(ctx)
	if *ctx != (Aria{}) {
		t.Error("descriptor Deinit left residue")
	}
}

// ARIA through stdlib GCM and CTR, the way mode collaborators consume
// the cipher.Block interface.
func TestModesOverBlock(t *testing.T) {
	prng := rand.New(rand.NewSource(23))
	key := make([]byte, 32)
	prng.Read(key)

	c, err := NewCipher(key)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	gcm, err := cipher.NewGCM(c)
	if err != nil {
		t.Fatalf("NewGCM: %v", err)
	}
	nonce := make([]byte, gcm.NonceSize())
	prng.Read(nonce)
	pt := []byte("Search the big white ship.")
	ad := []byte("TO: Seaport")

	sealed := gcm.Seal(nil, nonce, pt, ad)
	opened, err := gcm.Open(nil, nonce, sealed, ad)
	if err != nil {
		t.Fatalf("GCM open: %v", err)
	}
	if !bytes.Equal(opened, pt) {
		t.Errorf("GCM round trip = %q, want %q", opened, pt)
	}
	if _, err := gcm.Open(nil, nonce, sealed, []byte("TO: Airport")); err == nil {
		t.Error("GCM accepted manipulated additional data")
	}

	iv := make([]byte, BlockSize)
	prng.Read(iv)
	msg := make([]byte, 1000)
	prng.Read(msg)
	ct := make([]byte, len(msg))
	cipher.NewCTR(c, iv).XORKeyStream(ct, msg)
	back := make([]byte, len(ct))
	cipher.NewCTR(c, iv).XORKeyStream(back, ct)
	if !bytes.Equal(back, msg) {
		t.Error("CTR round trip failed")
	}
}

func BenchmarkEncrypt(b *testing.B) {
	c, _ := NewCipher(make([]byte, 16))
	buf := make([]byte, BlockSize)
	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Encrypt(buf, buf)
	}
}

func BenchmarkDecrypt(b *testing.B) {
	c, _ := NewCipher(make([]byte, 16))
	buf := make([]byte, BlockSize)
	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Decrypt(buf, buf)
	}
}

func BenchmarkStretchKey(b *testing.B) {
	key := make([]byte, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nr, ek, _ := StretchKey(key)
		_ = GetDecryptRoundKeys(nr, ek)
	}
}
