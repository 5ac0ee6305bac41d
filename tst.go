package tst

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey      = errors.New("key cannot be empty")
	ErrNilValue      = errors.New("value cannot be nil")
	ErrNoMoreEntries = errors.New("there are no more entries in the trie")
)

type (
	// Trie is an ordered map from non-empty string keys to values, stored as a
	// ternary search trie. The zero value is an empty trie ready to use.
	//
	// A Trie is not safe for concurrent use; callers that share one across
	// goroutines must serialize mutating calls themselves.
	Trie[V any] struct {
		root  *node[V]
		size  int
		nodes int
	}

	// Entry is a key/value pair copied out of a Trie.
	Entry[V any] struct {
		Key   string
		Value V
	}

	// Each node owns its three child slots. lo and hi hold symbols that
	// compare less and greater than c at the same key position; eq continues
	// the key one position further on.
	node[V any] struct {
		c     byte
		set   bool
		value V
		lo    *node[V]
		eq    *node[V]
		hi    *node[V]
	}

	// visitor is called for every node carrying a value during a walk, with
	// the key accumulated so far. The key buffer is reused by the walk.
	visitor[V any] func(key []byte, n *node[V]) traverseAction

	traverseAction int
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

func newNode[V any](c byte) *node[V] {
	return &node[V]{c: c}
}

// String summarizes the trie as its key and node counts.
func (t *Trie[V]) String() string {
	return fmt.Sprintf("keys = %d nodes = %d", t.Size(), t.Nodes())
}
