package keys

import (
	"crypto/ecdsa"
	"errors"

	"github.com/libp2p/go-libp2p-core/crypto"
	"github.com/open-libra/open-libra/src/common"
)

// Default key file names, relative to the node's output directory.
const (
	DefaultConsensusKeypairFile = "consensus_keypair.config.toml"
	DefaultNetworkKeypairsFile  = "network_keypairs.config.toml"
)

// ConsensusKeyPair is the content of the consensus key file.
type ConsensusKeyPair struct {
	ConsensusPrivateKey string `toml:"consensus_private_key"`
	ConsensusPublicKey  string `toml:"consensus_public_key"`
}

// NewConsensusKeyPair ...
func NewConsensusKeyPair(priv *ecdsa.PrivateKey) ConsensusKeyPair {
	return ConsensusKeyPair{
		ConsensusPrivateKey: common.EncodeToString(DumpPrivateKey(priv)),
		ConsensusPublicKey:  PublicKeyHex(&priv.PublicKey),
	}
}

// PrivateKey parses the private key and checks it against the stored public
// key.
func (c ConsensusKeyPair) PrivateKey() (*ecdsa.PrivateKey, error) {
	d, err := common.DecodeFromString(c.ConsensusPrivateKey)
	if err != nil {
		return nil, err
	}
	priv, err := ParsePrivateKey(d)
	if err != nil {
		return nil, err
	}
	if PublicKeyHex(&priv.PublicKey) != c.ConsensusPublicKey {
		return nil, errors.New("consensus public key does not match private key")
	}
	return priv, nil
}

// NetworkKeyPairs is the content of the network key file.
type NetworkKeyPairs struct {
	NetworkSigningPrivateKey  string `toml:"network_signing_private_key"`
	NetworkSigningPublicKey   string `toml:"network_signing_public_key"`
	NetworkIdentityPrivateKey string `toml:"network_identity_private_key"`
	NetworkIdentityPublicKey  string `toml:"network_identity_public_key"`
}

// NewNetworkKeyPairs ...
func NewNetworkKeyPairs(signing crypto.PrivKey, identity *IdentityKey) (NetworkKeyPairs, error) {
	signingRaw, err := signing.Raw()
	if err != nil {
		return NetworkKeyPairs{}, err
	}
	signingPubRaw, err := signing.GetPublic().Raw()
	if err != nil {
		return NetworkKeyPairs{}, err
	}

	return NetworkKeyPairs{
		NetworkSigningPrivateKey:  common.EncodeToString(signingRaw),
		NetworkSigningPublicKey:   common.EncodeToString(signingPubRaw),
		NetworkIdentityPrivateKey: common.EncodeToString(identity.Private[:]),
		NetworkIdentityPublicKey:  common.EncodeToString(identity.Public[:]),
	}, nil
}

// SigningKey parses the network signing private key.
func (n NetworkKeyPairs) SigningKey() (crypto.PrivKey, error) {
	raw, err := common.DecodeFromString(n.NetworkSigningPrivateKey)
	if err != nil {
		return nil, err
	}
	return ParseSigningKey(raw)
}

// IdentityKey parses the network identity private key.
func (n NetworkKeyPairs) IdentityKey() (*IdentityKey, error) {
	raw, err := common.DecodeFromString(n.NetworkIdentityPrivateKey)
	if err != nil {
		return nil, err
	}
	return ParseIdentityKey(raw)
}
