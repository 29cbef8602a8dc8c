package ordered

// SetIterator is a pull iterator over strictly increasing keys.
//
// Next returns the next key and true, or the zero key and false once the
// sequence is exhausted; every later call must also return false. Stop
// releases the iterator and may be called at any time, more than once.
// After Stop, Next returns false.
type SetIterator[K any] interface {
	Next() (K, bool)
	Stop()
}

// MapIterator is a pull iterator over key/value pairs strictly increasing by key.
// It follows the same rules as SetIterator.
type MapIterator[K, V any] interface {
	Next() (K, V, bool)
	Stop()
}

// KeyValuePair is a single map entry, used when a map sequence is collected
// into a slice.
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}
