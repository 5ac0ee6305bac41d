package tst

import (
	"math/rand/v2"
	"testing"

	"github.com/openacid/testkeys"
)

// this file contains helpers for other test functions

const (
	alphaSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	// few symbols and short keys give many shared prefixes
	denseSymbols = "abc"
)

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 1_000
	}
	return 50_000
}

func newPRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 42))
}

// randomKey returns a key of 1 to maxLen symbols drawn from symbols.
func randomKey(prng *rand.Rand, maxLen int, symbols string) string {
	b := make([]byte, 1+prng.IntN(maxLen))
	for i := range b {
		b[i] = symbols[prng.IntN(len(symbols))]
	}
	return string(b)
}

func randomKeys(prng *rand.Rand, n, maxLen int, symbols string) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = randomKey(prng, maxLen, symbols)
	}
	return keys
}

var cache = map[string][]string{}

func getKeys(fn string) []string {
	ss, ok := cache[fn]
	if ok {
		return ss
	}
	ks := testkeys.Load(fn)
	cache[fn] = ks
	return ks
}
