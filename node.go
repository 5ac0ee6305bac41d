package tst

import "reflect"

// isNil reports whether v is nil, either as an interface or as a nil
// pointer, map, slice, func or chan held by one.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// dead reports whether n stores no key and leads to no other node.
func (n *node[V]) dead() bool {
	return !n.set && n.lo == nil && n.eq == nil && n.hi == nil
}

// clear drops the value of n and returns the one it held.
func (n *node[V]) clear() (V, bool) {
	var zero V
	prev, ok := n.value, n.set
	n.value, n.set = zero, false
	return prev, ok
}

// store sets the value of n and returns the one it replaced.
func (n *node[V]) store(value V) (V, bool) {
	prev, ok := n.value, n.set
	n.value, n.set = value, true
	return prev, ok
}

// child returns the slot to follow from n for symbol c at the current key
// position, and whether c matched n, in which case the key position advances.
func (n *node[V]) child(c byte) (**node[V], bool) {
	switch {
	case c < n.c:
		return &n.lo, false
	case c > n.c:
		return &n.hi, false
	}
	return &n.eq, true
}

func replaceRef[V any](slot **node[V], n *node[V]) {
	*slot = n
}
