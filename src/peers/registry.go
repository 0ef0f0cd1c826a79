package peers

import (
	"sort"

	"github.com/open-libra/open-libra/src/common"
)

// Registry maps peer IDs to V. An ID can be inserted once; there is no update
// and no removal.
type Registry[V any] struct {
	entries map[string]V
}

// ConsensusPeers is the consensus registry.
type ConsensusPeers = Registry[ConsensusPeerInfo]

// NetworkPeers is the network registry.
type NetworkPeers = Registry[NetworkPeerInfo]

// NewRegistry ...
func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{
		entries: make(map[string]V),
	}
}

// Insert adds v under id, or returns a DuplicatePeer error and leaves the
// registry untouched if id is already present.
func (r *Registry[V]) Insert(id string, v V) error {
	if _, ok := r.entries[id]; ok {
		return common.NewGenesisErr(common.DuplicatePeer, id, nil)
	}
	r.entries[id] = v
	return nil
}

// Get ...
func (r *Registry[V]) Get(id string) (V, bool) {
	v, ok := r.entries[id]
	return v, ok
}

// Contains ...
func (r *Registry[V]) Contains(id string) bool {
	_, ok := r.entries[id]
	return ok
}

// Len returns the number of peers in the registry.
func (r *Registry[V]) Len() int {
	return len(r.entries)
}

// IDs returns the peer IDs in lexicographic order.
func (r *Registry[V]) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Map returns a copy of the underlying map.
func (r *Registry[V]) Map() map[string]V {
	m := make(map[string]V, len(r.entries))
	for id, v := range r.entries {
		m[id] = v
	}
	return m
}
