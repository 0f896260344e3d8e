package collection

import (
	"encoding/json"
	"maps"
)

// Collection is the top-level mapping built from one block. Keys keep the
// order in which rows produced them.
type Collection struct {
	keys   []string
	values map[string]any
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{values: make(map[string]any)}
}

// Set stores v under key. An existing key keeps its position.
func (c *Collection) Set(key string, v any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = v
}

// Has reports whether key is present.
func (c *Collection) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Get returns the value stored under key.
func (c *Collection) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (c *Collection) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Len returns the number of keys.
func (c *Collection) Len() int {
	return len(c.keys)
}

// Map returns a shallow copy of the collection as a plain map.
func (c *Collection) Map() map[string]any {
	if c.values == nil {
		return map[string]any{}
	}
	return maps.Clone(c.values)
}

// MarshalYAML implements yaml.Marshaler.
func (c *Collection) MarshalYAML() (any, error) {
	return YAMLNode(c.Map())
}

// MarshalJSON implements json.Marshaler.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Map())
}
