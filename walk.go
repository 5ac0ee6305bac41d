package tst

import "iter"

type (
	// walkFrame is one pending step of a depth-first walk. A frame first
	// schedules the lo subtree, then itself with visit set, and the hi
	// subtree below both; when the visit frame pops, the node's symbol is
	// written at depth and its eq subtree is scheduled.
	walkFrame[V any] struct {
		node  *node[V]
		depth int
		visit bool
	}

	// walker enumerates value-carrying nodes in ascending key order, keeping
	// its own stack so that long keys and skewed trees cannot exhaust the
	// goroutine stack.
	walker[V any] struct {
		stack []walkFrame[V]
		key   []byte
	}

	iterator[V any] struct {
		walker   *walker[V]
		nextNode *node[V]
		nextKey  string
	}
)

func newWalker[V any](root *node[V], prefix []byte) *walker[V] {
	w := &walker[V]{
		key: append(make([]byte, 0, len(prefix)+16), prefix...),
	}
	if root != nil {
		w.stack = append(w.stack, walkFrame[V]{node: root, depth: len(prefix)})
	}
	return w
}

// next advances to the following node that carries a value and returns it,
// or nil once the walk is over. w.key holds its key until the next call.
func (w *walker[V]) next() *node[V] {
	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		f := w.stack[top]
		w.stack = w.stack[:top]
		n := f.node

		if !f.visit {
			if n.hi != nil {
				w.stack = append(w.stack, walkFrame[V]{node: n.hi, depth: f.depth})
			}
			w.stack = append(w.stack, walkFrame[V]{node: n, depth: f.depth, visit: true})
			if n.lo != nil {
				w.stack = append(w.stack, walkFrame[V]{node: n.lo, depth: f.depth})
			}
			continue
		}

		w.key = append(w.key[:f.depth], n.c)
		if n.eq != nil {
			w.stack = append(w.stack, walkFrame[V]{node: n.eq, depth: f.depth + 1})
		}
		if n.set {
			return n
		}
	}
	return nil
}

// walk calls fn for every value under root, where prefix is the key that
// leads to root.
func walk[V any](root *node[V], prefix []byte, fn visitor[V]) traverseAction {
	w := newWalker(root, prefix)
	for n := w.next(); n != nil; n = w.next() {
		if fn(w.key, n) == traverseStop {
			return traverseStop
		}
	}
	return traverseContinue
}

func (t *Trie[V]) rootNode() *node[V] {
	if t == nil {
		return nil
	}
	return t.root
}

// Keys returns a copy of every key, in ascending order.
func (t *Trie[V]) Keys() []string {
	keys := make([]string, 0, t.Size())
	walk(t.rootNode(), nil, func(key []byte, _ *node[V]) traverseAction {
		keys = append(keys, string(key))
		return traverseContinue
	})
	return keys
}

// Values returns every value in key order, one element per key: keys that
// map to equal values each contribute their own element.
func (t *Trie[V]) Values() []V {
	values := make([]V, 0, t.Size())
	walk(t.rootNode(), nil, func(_ []byte, n *node[V]) traverseAction {
		values = append(values, n.value)
		return traverseContinue
	})
	return values
}

// Entries returns every key/value pair in key order.
func (t *Trie[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, t.Size())
	walk(t.rootNode(), nil, func(key []byte, n *node[V]) traverseAction {
		entries = append(entries, Entry[V]{Key: string(key), Value: n.value})
		return traverseContinue
	})
	return entries
}

// All returns an iterator over the key/value pairs in key order. The trie
// must not be modified while the iteration is in progress.
func (t *Trie[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		walk(t.rootNode(), nil, func(key []byte, n *node[V]) traverseAction {
			if !yield(string(key), n.value) {
				return traverseStop
			}
			return traverseContinue
		})
	}
}

// Map copies the trie into a Go map.
func (t *Trie[V]) Map() map[string]V {
	m := make(map[string]V, t.Size())
	for k, v := range t.All() {
		m[k] = v
	}
	return m
}

// KeysWithPrefix returns, in ascending order, every key that starts with
// prefix, including prefix itself when it is a key.
func (t *Trie[V]) KeysWithPrefix(prefix string) []string {
	if prefix == "" {
		return t.Keys()
	}

	keys := make([]string, 0)
	n := t.find(prefix)
	if n == nil {
		return keys
	}
	if n.set {
		keys = append(keys, prefix)
	}
	walk(n.eq, []byte(prefix), func(key []byte, _ *node[V]) traverseAction {
		keys = append(keys, string(key))
		return traverseContinue
	})
	return keys
}

// ContainsValueFunc reports whether match returns true for any stored value.
// The search stops at the first match.
func (t *Trie[V]) ContainsValueFunc(match func(V) bool) bool {
	return walk(t.rootNode(), nil, func(_ []byte, n *node[V]) traverseAction {
		if match(n.value) {
			return traverseStop
		}
		return traverseContinue
	}) == traverseStop
}

// ContainsValue reports whether any key of t maps to value.
func ContainsValue[V comparable](t *Trie[V], value V) bool {
	return t.ContainsValueFunc(func(v V) bool {
		return v == value
	})
}

// Iterator returns an iterator over the entries of t in key order. Modifying
// t invalidates the iterator.
func (t *Trie[V]) Iterator() Iterator[V] {
	it := &iterator[V]{walker: newWalker(t.rootNode(), nil)}
	it.advance()
	return it
}

func (it *iterator[V]) HasNext() bool {
	return it != nil && it.nextNode != nil
}

func (it *iterator[V]) Next() (Entry[V], error) {
	if !it.HasNext() {
		return Entry[V]{}, ErrNoMoreEntries
	}
	cur := Entry[V]{Key: it.nextKey, Value: it.nextNode.value}
	it.advance()
	return cur, nil
}

func (it *iterator[V]) advance() {
	it.nextNode = it.walker.next()
	if it.nextNode != nil {
		it.nextKey = string(it.walker.key)
	}
}
