// Various tests and examples for block cipher ARIA, RFC 5794, implementation.
// Includes part with GCM: AEAD mode for cipher.
// Free software, distribution unlimited.

package main

import (
	"bytes"
	"crypto/cipher"
	"fmt"
	"math/rand"
	"time"

	"dxdt.ru/aria"
)

func main() {

	// Test vectors.
	// Standard test keys of the three supported lengths (RFC 5794).
	var test_K128 = []uint8{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}
	var test_K192 = []uint8{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17}
	var test_K256 = []uint8{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
		0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f}
	// Standard test plain text block and corresponding cipher texts.
	var test_PT = [16]uint8{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	var reference_CT128 = [16]uint8{
		0xd7, 0x18, 0xfb, 0xd6, 0xab, 0x64, 0x4c, 0x73,
		0x9d, 0xa9, 0x5f, 0x3b, 0xe6, 0x45, 0x17, 0x78}
	var reference_CT192 = [16]uint8{
		0x26, 0x44, 0x9c, 0x18, 0x05, 0xdb, 0xe7, 0xaa,
		0x25, 0xa4, 0x68, 0xce, 0x26, 0x3a, 0x9e, 0x79}
	var reference_CT256 = [16]uint8{
		0xf9, 0x2b, 0xd7, 0xc7, 0x9f, 0xb7, 0x2e, 0x2f,
		0x2b, 0x8f, 0x80, 0xc1, 0x97, 0x2d, 0x24, 0xfc}

	// Test vectors for GCM.
	var GCM_nonce = []byte{0x3c, 0x81, 0x9d, 0x9a, 0x9b, 0xed, 0x08, 0x76, 0x15, 0x03, 0x0b, 0x65}
	var GCM_example_AD = []byte("TO: Seaport, agent Zorka")
	var GCM_example_AD_m = []byte("TO: Seaport, agent Dasha")
	var GCM_example_PT = []byte("Search the big white ship.")
	// 16 blocks used in simple performance test.
	var rand_PT [16][16]uint8

	fmt.Printf("\nARIA (RFC 5794) test\n\n")

	standard := []struct {
		name string
		key  []uint8
		ct   [16]uint8
	}{
		{"ARIA-128", test_K128, reference_CT128},
		{"ARIA-192", test_K192, reference_CT192},
		{"ARIA-256", test_K256, reference_CT256},
	}

	fmt.Printf("---\n\n(1) Standard key vectors\n")
	for i, v := range standard {
		nr, rkeys, err := aria.StretchKey(v.key)
		if err != nil {
			fmt.Printf("StretchKey failed: %v\n", err)
			return
		}
		dec_rkeys := aria.GetDecryptRoundKeys(nr, rkeys)

		test_CT := aria.DoEncrypt(test_PT, nr, rkeys)
		fmt.Printf("(1.%d) %s cipher text:\t%X - ", i+1, v.name, test_CT)
		if test_CT != v.ct {
			fmt.Printf("FAILED! [Not equal to reference cipher text!]\n")
		} else {
			fmt.Printf("OK\n")
		}

		test_2PT := aria.DoDecrypt(test_CT, nr, dec_rkeys)
		fmt.Printf("      %s decrypted:\t%X - ", v.name, test_2PT)
		if test_2PT != test_PT {
			fmt.Printf("FAILED! [PT != D(E(PT,K),K)]\n")
		} else {
			fmt.Printf("OK\n")
		}
	}

	fmt.Printf("\n---\n\n(1a) Incorrect key test\n")
	bad_K := append([]uint8{}, test_K128...)
	bad_K[15] ^= 0x02
	badCipher, _ := aria.NewCipher(bad_K)
	var wrong_PT [16]uint8
	badCipher.Decrypt(wrong_PT[:], reference_CT128[:])
	fmt.Printf("(1a.1) Plain text decrypted (key_1):\t%X - ", wrong_PT)
	if wrong_PT != test_PT {
		fmt.Printf("OK (different plain text)\n")
	} else {
		fmt.Printf("FAILED!\n")
	}

	fmt.Printf("\n---\n\nTesting GCM (and cipher.Block interface) implementation.\n")

	aCipher, err := aria.NewCipher(test_K256)
	if err != nil {
		fmt.Printf("NewCipher failed!\n")
	}

	ariaGCM, err := cipher.NewGCM(aCipher)
	if err != nil {
		fmt.Printf("NewGCM failed!\n")
	}

	GCM_sealed := ariaGCM.Seal(nil, GCM_nonce, GCM_example_PT, GCM_example_AD)

	fmt.Printf("GCM:\n Plain text: %s\n Additional Data: %s\n Nonce: %X\n Encryption result (CT+Tag): %X\n",
		GCM_example_PT, GCM_example_AD, GCM_nonce, GCM_sealed)

	GCM_opened, err := ariaGCM.Open(nil, GCM_nonce, GCM_sealed, GCM_example_AD)

	fmt.Printf(" GCM open result: %s - ", GCM_opened)
	if !bytes.Equal(GCM_opened, GCM_example_PT) {
		fmt.Printf("FAILED! [Not equal to reference plain text!]\n")
	} else {
		fmt.Printf("OK\n")
	}

	fmt.Printf(" GCM Manipulated AD check result: ")

	_, err = ariaGCM.Open(nil, GCM_nonce, GCM_sealed, GCM_example_AD_m)

	if err != nil {
		fmt.Printf(" [decryption failed] - OK (correct: must fail!)\n")
	} else {
		fmt.Printf(" [decrypted] - FAILED!\n")
	}

	fmt.Printf("\n---\n\nMeasuring speed.\nSimple block operations (DoEncrypt()/DoDecrypt()):\n")

	PRNG := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))

	example_K := make([]uint8, 32)
	for t := range example_K {
		example_K[t] = uint8(PRNG.Uint32())
	}
	nr, rkeys, _ := aria.StretchKey(example_K)
	dec_rkeys := aria.GetDecryptRoundKeys(nr, rkeys)

	for i := 0; i < 16; i++ {
		for t := range rand_PT[i] {
			rand_PT[i][t] = uint8(PRNG.Uint32())
		}
	}

	measure_start := time.Now()
	var counter int = 0
	var test_CT [16]uint8

	for i := 0; i < 500000; i++ {
		for t := range rand_PT {
			test_CT = aria.DoEncrypt(rand_PT[t], nr, rkeys)
			counter++
		}
	}

	elapsed := time.Since(measure_start)
	eSec := int(elapsed.Seconds())

	fmt.Printf(" Encryption - %d blocks (%d bytes), time: %s", counter, counter*16, elapsed)
	if eSec > 0 {
		fmt.Printf(" (~%d MB/sec)\n", ((counter * 16) / eSec / 1048576))
	} else {
		fmt.Printf("\n")
	}

	measure_start = time.Now()
	counter = 0

	for i := 0; i < 500000; i++ {
		for t := range rand_PT {
			test_CT = aria.DoDecrypt(rand_PT[t], nr, dec_rkeys)
			counter++
		}
	}
	_ = test_CT

	elapsed = time.Since(measure_start)
	eSec = int(elapsed.Seconds())

	fmt.Printf(" Decryption - %d blocks (%d bytes), time: %s", counter, counter*16, elapsed)
	if eSec > 0 {
		fmt.Printf(" (~%d MB/sec)\n", ((counter * 16) / eSec / 1048576))
	} else {
		fmt.Printf("\n")
	}

	fmt.Printf("ARIA-GCM:\n")
	LongBuffer := make([]byte, 1048576)
	LongResult := make([]byte, 1048576)

	for t := range LongBuffer {
		LongBuffer[t] = byte(PRNG.Uint32())
	}

	measure_start = time.Now()

	for i := 0; i < 100; i++ {

		for k := range GCM_nonce {
			GCM_nonce[k] = byte(PRNG.Uint32())
		}
		res_buf := ariaGCM.Seal(nil, GCM_nonce, LongBuffer, GCM_example_AD)
		LongResult, err = ariaGCM.Open(nil, GCM_nonce, res_buf, GCM_example_AD)
		if err != nil {
			fmt.Printf("GCM.Open Failed!\n")
		}
		if !bytes.Equal(LongBuffer, LongResult) {
			fmt.Printf("Failed: decrypted cipher text is not equal to source plain text!\n")
		}
	}

	elapsed = time.Since(measure_start)
	eSec = int(elapsed.Seconds())
	fmt.Printf(" 100 encrypt/decrypt operations on 1M buffer, time: %s", elapsed)
	if eSec > 0 {
		fmt.Printf(" (~%d MB/sec)\n", (200 / eSec))
	} else {
		fmt.Printf("\n")
	}

	fmt.Printf("\nDone!\n\n")

}
