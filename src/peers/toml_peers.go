package peers

import (
	"path/filepath"
	"sync"

	"github.com/open-libra/open-libra/src/common"
)

// Registry file names.
const (
	DefaultConsensusPeersFile = "consensus_peers.config.toml"
	DefaultNetworkPeersFile   = "network_peers.config.toml"
)

type peersFile[V any] struct {
	Peers map[string]V `toml:"peers"`
}

// TOMLPeers persists a Registry to a TOML file, as a [peers] table keyed by
// peer ID.
type TOMLPeers[V any] struct {
	l    sync.Mutex
	path string
}

// NewTOMLPeers ...
func NewTOMLPeers[V any](path string) *TOMLPeers[V] {
	return &TOMLPeers[V]{
		path: path,
	}
}

// NewConsensusPeersFile returns the consensus registry file of dir.
func NewConsensusPeersFile(dir string) *TOMLPeers[ConsensusPeerInfo] {
	return NewTOMLPeers[ConsensusPeerInfo](filepath.Join(dir, DefaultConsensusPeersFile))
}

// NewNetworkPeersFile returns the network registry file of dir.
func NewNetworkPeersFile(dir string) *TOMLPeers[NetworkPeerInfo] {
	return NewTOMLPeers[NetworkPeerInfo](filepath.Join(dir, DefaultNetworkPeersFile))
}

// Path ...
func (t *TOMLPeers[V]) Path() string {
	return t.path
}

// Write persists the registry.
func (t *TOMLPeers[V]) Write(r *Registry[V]) error {
	t.l.Lock()
	defer t.l.Unlock()

	return common.SaveTOML(t.path, peersFile[V]{Peers: r.Map()}, common.PublicFileMode)
}

// Registry reads the file back into a Registry.
func (t *TOMLPeers[V]) Registry() (*Registry[V], error) {
	t.l.Lock()
	defer t.l.Unlock()

	var f peersFile[V]
	if err := common.LoadTOML(t.path, &f); err != nil {
		return nil, err
	}

	r := NewRegistry[V]()
	for id, v := range f.Peers {
		if err := r.Insert(id, v); err != nil {
			return nil, err
		}
	}
	return r, nil
}
