/*
 * declcheck - Declaration checking for a language with generics and interfaces
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package orderedmap

// OrderedMap is a map which remembers the insertion order of its keys.
// The zero value is an empty map.
type OrderedMap[K comparable, V any] struct {
	indices map[K]int
	keys    []K
	values  []V
}

// New returns an empty map with room for the given number of entries.
func New[K comparable, V any](size int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		indices: make(map[K]int, size),
		keys:    make([]K, 0, size),
		values:  make([]V, 0, size),
	}
}

// Get returns the value of the given key, and whether the key is present.
func (om *OrderedMap[K, V]) Get(key K) (value V, present bool) {
	if om == nil {
		return
	}
	index, present := om.indices[key]
	if !present {
		return
	}
	return om.values[index], true
}

func (om *OrderedMap[K, V]) Contains(key K) bool {
	if om == nil {
		return false
	}
	_, present := om.indices[key]
	return present
}

// Set associates the value with the given key, and returns the previous value, if any.
// Updating a key keeps its position.
func (om *OrderedMap[K, V]) Set(key K, value V) (previous V, present bool) {
	if index, ok := om.indices[key]; ok {
		previous = om.values[index]
		om.values[index] = value
		return previous, true
	}

	if om.indices == nil {
		om.indices = map[K]int{}
	}
	om.indices[key] = len(om.keys)
	om.keys = append(om.keys, key)
	om.values = append(om.values, value)
	return
}

// SetIfAbsent associates the value with the given key, unless the key is present.
// It returns true if the value was added.
func (om *OrderedMap[K, V]) SetIfAbsent(key K, value V) bool {
	if om.Contains(key) {
		return false
	}
	om.Set(key, value)
	return true
}

func (om *OrderedMap[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.keys)
}

// Keys returns a copy of the keys, in insertion order.
func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, om.Len())
	if om != nil {
		copy(keys, om.keys)
	}
	return keys
}

// Foreach calls f for every entry, in insertion order.
func (om *OrderedMap[K, V]) Foreach(f func(key K, value V)) {
	if om == nil {
		return
	}
	for index, key := range om.keys {
		f(key, om.values[index])
	}
}
