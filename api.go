// Package tst implements a ternary search trie: an ordered, string-keyed map
// whose nodes branch three ways on a single byte of the key.
//
// Each node holds one byte and links to the nodes for smaller and greater
// bytes at the same position and to the node for the next position. Only the
// bytes actually used by stored keys get nodes, so the trie needs no
// knowledge of the key alphabet. A search hit costs one comparison per key
// byte plus the branching on the way down; misses tend to stop high in the
// tree, about 1.39*log(n) comparisons for keys inserted in random order.
//
// Keys are enumerated in ascending byte order, the order of sort.Strings.
package tst

type Iterator[V any] interface {
	HasNext() bool
	Next() (Entry[V], error)
}

// New returns an empty trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{}
}
