// Package peers defines the peer descriptor exchanged between validator
// operators and the registries a genesis is assembled from.
//
// Every validator operator runs "open-libra config" on their own machine. It
// writes a peer_info.toml descriptor (PeerInfo) with the validator's peer ID and
// public keys, and nothing secret. The descriptors are sent to a coordinator
// who runs "open-libra genesis" over all of them.
//
// The genesis pipeline merges the descriptors, in the order given, into two
// registries keyed by peer ID: the consensus registry
// (consensus_peers.config.toml) and the network registry
// (network_peers.config.toml). Registries are write-once: inserting a peer ID
// that is already present is an error, never an overwrite, and a duplicate in
// either registry aborts the whole merge.
//
// The validator-set of the genesis transaction is derived from the two
// registries. Only peer IDs present in both are validators, and the set is
// sorted by peer ID so that the same descriptors always give the same genesis.
package peers
