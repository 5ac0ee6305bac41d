package tst

import (
	"testing"

	"github.com/openacid/testkeys"
)

func benchBigKeySet(b *testing.B, f func(b *testing.B, typ string, keys []string)) {
	for _, fn := range testkeys.AssetNames() {
		keys := getKeys(fn)

		n := len(keys)
		if n < 1000 {
			continue
		}

		b.Run(fn, func(b *testing.B) {
			f(b, fn, keys)
		})
	}
}

func buildTrie(keys []string) *Trie[int] {
	tr := New[int]()
	for i, k := range keys {
		if k != "" {
			tr.Put(k, i)
		}
	}
	return tr
}

func BenchmarkWordsTreePut(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			buildTrie(keys)
		}
	})
}

func BenchmarkWordsTreeGetHit(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		tr := buildTrie(keys)
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tr.Get(keys[i%n])
		}
	})
}

func BenchmarkWordsTreeGetMiss(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		tr := buildTrie(keys)
		prng := newPRNG(5)
		misses := randomKeys(prng, 1024, 12, "~!@#$%^&*")
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tr.Get(misses[i%len(misses)])
		}
	})
}

func BenchmarkWordsTreePrefixSearch(b *testing.B) {
	prefixs := []string{
		"abcdefghijklmnopqrstuvwxyz",
		"0123456789",
	}

	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		tr := buildTrie(keys)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for _, prefix := range prefixs {
				for j := 0; j < len(prefix); j++ {
					tr.KeysWithPrefix(prefix[j : j+1])
				}
			}
		}
	})
}

func BenchmarkWordsTreeKeys(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		tr := buildTrie(keys)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tr.Keys()
		}
	})
}
