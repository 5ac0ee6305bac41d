package tst

func (t *Trie[V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *Trie[V]) IsEmpty() bool {
	return t.Size() == 0
}

// Nodes returns the number of nodes currently allocated by the trie.
func (t *Trie[V]) Nodes() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.nodes
}

// Clear drops every key. The node graph is released as a whole.
func (t *Trie[V]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.size = 0
	t.nodes = 0
}

// Put stores value under key and returns the value it replaced, if any.
// Nodes missing on the path of key are created on the way down.
func (t *Trie[V]) Put(key string, value V) (prev V, replaced bool, err error) {
	if len(key) == 0 {
		return prev, false, ErrEmptyKey
	}
	if isNil(value) {
		return prev, false, ErrNilValue
	}

	slot, pos := &t.root, 0
	for {
		curr := *slot
		if curr == nil {
			curr = newNode[V](key[pos])
			replaceRef(slot, curr)
			t.nodes++
		}

		next, match := curr.child(key[pos])
		if match {
			pos++
			if pos == len(key) {
				prev, replaced = curr.store(value)
				if !replaced {
					t.size++
				}
				return prev, replaced, nil
			}
		}
		slot = next
	}
}

// Get returns the value stored under key. The empty key is never present.
func (t *Trie[V]) Get(key string) (V, bool) {
	if n := t.find(key); n != nil && n.set {
		return n.value, true
	}
	var zero V
	return zero, false
}

func (t *Trie[V]) ContainsKey(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// find returns the node at which key ends, whether or not it stores a value.
func (t *Trie[V]) find(key string) *node[V] {
	if t == nil || len(key) == 0 {
		return nil
	}

	curr, pos := t.root, 0
	for curr != nil {
		next, match := curr.child(key[pos])
		if match {
			pos++
			if pos == len(key) {
				return curr
			}
		}
		curr = *next
	}
	return nil
}

// Remove deletes key and returns the value it held. Removing a missing key
// changes nothing.
//
// Only the value of the terminal node is dropped, so keys that extend key
// through its eq subtree survive. Nodes left without a value and without
// children are then unlinked bottom-up.
func (t *Trie[V]) Remove(key string) (V, bool) {
	var zero V
	if t == nil || len(key) == 0 {
		return zero, false
	}

	// slots walked from the root down to the terminal node
	path := make([]**node[V], 0, len(key))

	slot, pos := &t.root, 0
	for *slot != nil {
		curr := *slot
		path = append(path, slot)

		next, match := curr.child(key[pos])
		if match {
			pos++
			if pos == len(key) {
				prev, ok := curr.clear()
				if !ok {
					return zero, false
				}
				t.size--
				t.prune(path)
				return prev, true
			}
		}
		slot = next
	}
	return zero, false
}

// prune unlinks dead nodes, starting from the last slot of path, until it
// meets a node that still stores a value or still has a child.
func (t *Trie[V]) prune(path []**node[V]) {
	for i := len(path) - 1; i >= 0; i-- {
		slot := path[i]
		if !(*slot).dead() {
			return
		}
		replaceRef(slot, nil)
		t.nodes--
	}
}
