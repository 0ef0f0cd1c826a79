package peers

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/open-libra/open-libra/src/common"
	"github.com/open-libra/open-libra/src/crypto/keys"
)

// DefaultPeerInfoFile is the name of the descriptor written by the config
// pipeline.
const DefaultPeerInfoFile = "peer_info.toml"

// ConsensusPeerInfo is the consensus public key material of a peer.
type ConsensusPeerInfo struct {
	ConsensusPubkey string `toml:"consensus_pubkey"`
}

// NetworkPeerInfo is the network public key material of a peer.
type NetworkPeerInfo struct {
	NetworkSigningPubkey  string `toml:"network_signing_pubkey"`
	NetworkIdentityPubkey string `toml:"network_identity_pubkey"`
}

// PeerInfo is the portable descriptor of one validator.
type PeerInfo struct {
	ID        string            `toml:"id"`
	Consensus ConsensusPeerInfo `toml:"consensus"`
	Network   NetworkPeerInfo   `toml:"network"`
}

// NewPeerInfo ...
func NewPeerInfo(id string, consensus ConsensusPeerInfo, network NetworkPeerInfo) *PeerInfo {
	return &PeerInfo{
		ID:        id,
		Consensus: consensus,
		Network:   network,
	}
}

// NewPeerInfoFromKeys builds the descriptor of the validator owning k.
func NewPeerInfoFromKeys(k *keys.ValidatorKeys) (*PeerInfo, error) {
	id, err := k.PeerID()
	if err != nil {
		return nil, err
	}

	networkKeys, err := k.NetworkKeyPairs()
	if err != nil {
		return nil, err
	}

	return NewPeerInfo(
		id.String(),
		ConsensusPeerInfo{
			ConsensusPubkey: keys.PublicKeyHex(&k.Consensus.PublicKey),
		},
		NetworkPeerInfo{
			NetworkSigningPubkey:  networkKeys.NetworkSigningPublicKey,
			NetworkIdentityPubkey: networkKeys.NetworkIdentityPublicKey,
		},
	), nil
}

// Validate checks that every key parses and that the peer ID is set. The ID is
// opaque here: two descriptors sharing one are caught by Merge.
func (p *PeerInfo) Validate() error {
	if _, err := keys.ParsePublicKeyHex(p.Consensus.ConsensusPubkey); err != nil {
		return fmt.Errorf("consensus_pubkey: %v", err)
	}

	signingRaw, err := common.DecodeFromString(p.Network.NetworkSigningPubkey)
	if err != nil {
		return fmt.Errorf("network_signing_pubkey: %v", err)
	}
	if _, err := keys.ParseSigningPublicKey(signingRaw); err != nil {
		return fmt.Errorf("network_signing_pubkey: %v", err)
	}

	identity, err := common.DecodeFromString(p.Network.NetworkIdentityPubkey)
	if err != nil {
		return fmt.Errorf("network_identity_pubkey: %v", err)
	}
	if len(identity) != 32 {
		return fmt.Errorf("network_identity_pubkey: need 32 bytes, got %d", len(identity))
	}

	if p.ID == "" {
		return errors.New("id is empty")
	}

	return nil
}

// Save writes the descriptor into dir under DefaultPeerInfoFile and returns the
// path.
func (p *PeerInfo) Save(dir string) (string, error) {
	path := filepath.Join(dir, DefaultPeerInfoFile)
	return path, common.SaveTOML(path, p, common.PublicFileMode)
}

// LoadPeerInfo reads and validates a descriptor file.
func LoadPeerInfo(path string) (*PeerInfo, error) {
	var p PeerInfo
	if err := common.LoadTOML(path, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, common.NewGenesisErr(common.Encoding, path, err)
	}
	return &p, nil
}

// LoadPeerInfos loads descriptor files in order, stopping at the first error.
func LoadPeerInfos(paths []string) ([]*PeerInfo, error) {
	infos := make([]*PeerInfo, 0, len(paths))
	for _, path := range paths {
		info, err := LoadPeerInfo(path)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
