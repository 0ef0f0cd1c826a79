package peers

import (
	"github.com/open-libra/open-libra/src/common"
)

// GenesisUsage is the invocation hint carried by the NoPeers error.
const GenesisUsage = "open-libra genesis peer1.toml peer2.toml ..."

// Merge folds descriptors, in order, into a consensus and a network registry.
// A peer ID already present in either registry aborts the merge with a
// DuplicatePeer error naming it; no partially merged registry is returned.
// Merging nothing is a NoPeers error.
func Merge(infos []*PeerInfo) (*ConsensusPeers, *NetworkPeers, error) {
	consensus := NewRegistry[ConsensusPeerInfo]()
	network := NewRegistry[NetworkPeerInfo]()

	for _, info := range infos {
		if consensus.Contains(info.ID) || network.Contains(info.ID) {
			return nil, nil, common.NewGenesisErr(common.DuplicatePeer, info.ID, nil)
		}

		if err := consensus.Insert(info.ID, info.Consensus); err != nil {
			return nil, nil, err
		}
		if err := network.Insert(info.ID, info.Network); err != nil {
			return nil, nil, err
		}
	}

	if consensus.Len() == 0 || network.Len() == 0 {
		return nil, nil, common.NewGenesisErr(common.NoPeers, GenesisUsage, nil)
	}

	return consensus, network, nil
}
