package module

import "slices"

// registry is a string-keyed map that remembers insertion order.
//
// Overwriting an existing key keeps its original position.
type registry[T any] struct {
	keys  []string
	items map[string]T
}

func (r *registry[T]) set(key string, item T) {
	if r.items == nil {
		r.items = make(map[string]T)
	}
	if _, exists := r.items[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.items[key] = item
}

func (r *registry[T]) get(key string) (T, bool) {
	item, ok := r.items[key]
	return item, ok
}

func (r *registry[T]) remove(key string) {
	if _, exists := r.items[key]; !exists {
		return
	}
	delete(r.items, key)
	if i := slices.Index(r.keys, key); i >= 0 {
		r.keys = slices.Delete(r.keys, i, i+1)
	}
}

func (r *registry[T]) size() int {
	return len(r.keys)
}
