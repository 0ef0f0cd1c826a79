package keys

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/libp2p/go-libp2p-core/crypto"
	"github.com/libp2p/go-libp2p-core/peer"
)

// ValidatorKeys holds the private keys of the three roles of one validator.
type ValidatorKeys struct {
	Consensus       *ecdsa.PrivateKey
	NetworkSigning  crypto.PrivKey
	NetworkIdentity *IdentityKey
}

// GenerateValidatorKeys derives every role key from seed.
func GenerateValidatorKeys(seed Seed) (*ValidatorKeys, error) {
	consensus, err := GenerateConsensusKey(seed.Reader(ConsensusRole))
	if err != nil {
		return nil, fmt.Errorf("consensus key: %v", err)
	}

	signing, err := GenerateSigningKey(seed.Reader(NetworkSigningRole))
	if err != nil {
		return nil, fmt.Errorf("network signing key: %v", err)
	}

	identity, err := GenerateIdentityKey(seed.Reader(NetworkIdentityRole))
	if err != nil {
		return nil, fmt.Errorf("network identity key: %v", err)
	}

	return &ValidatorKeys{
		Consensus:       consensus,
		NetworkSigning:  signing,
		NetworkIdentity: identity,
	}, nil
}

// PeerID returns the peer ID of the validator.
func (k *ValidatorKeys) PeerID() (peer.ID, error) {
	return PeerID(k.NetworkSigning.GetPublic())
}

// ConsensusKeyPair returns the record persisted in the consensus key file.
func (k *ValidatorKeys) ConsensusKeyPair() ConsensusKeyPair {
	return NewConsensusKeyPair(k.Consensus)
}

// NetworkKeyPairs returns the record persisted in the network key file.
func (k *ValidatorKeys) NetworkKeyPairs() (NetworkKeyPairs, error) {
	return NewNetworkKeyPairs(k.NetworkSigning, k.NetworkIdentity)
}
