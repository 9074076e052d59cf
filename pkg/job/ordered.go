package job

import "github.com/elliotchance/orderedmap"

// OrderedMap is a string keyed map that remembers the order in which keys
// were first set. Setting an existing key replaces its value in place.
type OrderedMap struct {
	m *orderedmap.OrderedMap
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{
		m: orderedmap.NewOrderedMap(),
	}
}

// Set stores value under key.
func (o *OrderedMap) Set(key, value string) {
	o.m.Set(key, value)
}

// Get returns the value stored under key.
func (o *OrderedMap) Get(key string) (string, bool) {
	value, ok := o.m.Get(key)
	if !ok {
		return "", false
	}
	return value.(string), true
}

// Len returns the number of keys.
func (o *OrderedMap) Len() int {
	return o.m.Len()
}

// Keys returns a copy of the keys in insertion order.
func (o *OrderedMap) Keys() []string {
	keys := make([]string, 0, o.m.Len())
	for _, key := range o.m.Keys() {
		keys = append(keys, key.(string))
	}
	return keys
}

// Each calls fn for every entry in insertion order.
func (o *OrderedMap) Each(fn func(key, value string)) {
	for _, key := range o.Keys() {
		value, _ := o.Get(key)
		fn(key, value)
	}
}
