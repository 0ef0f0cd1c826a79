package keys

import (
	"fmt"
	"io"

	"github.com/libp2p/go-libp2p-core/crypto"
	"github.com/libp2p/go-libp2p-core/peer"
	"golang.org/x/crypto/curve25519"
)

// GenerateSigningKey creates an Ed25519 key from the 32 bytes it reads from r.
// It serves the network signing role and the faucet.
func GenerateSigningKey(r io.Reader) (crypto.PrivKey, error) {
	priv, _, err := crypto.GenerateEd25519Key(r)
	if err != nil {
		return nil, err
	}
	return priv, nil
}

// ParseSigningKey decodes the raw form of an Ed25519 private key, as returned
// by its Raw method.
func ParseSigningKey(raw []byte) (crypto.PrivKey, error) {
	return crypto.UnmarshalEd25519PrivateKey(raw)
}

// ParseSigningPublicKey decodes a raw 32-byte Ed25519 public key.
func ParseSigningPublicKey(raw []byte) (crypto.PubKey, error) {
	return crypto.UnmarshalEd25519PublicKey(raw)
}

// PeerID derives the network-wide peer ID of the owner of a signing key.
func PeerID(pub crypto.PubKey) (peer.ID, error) {
	return peer.IDFromPublicKey(pub)
}

// IdentityKey is an X25519 key pair.
type IdentityKey struct {
	Private [32]byte
	Public  [32]byte
}

// GenerateIdentityKey creates an X25519 key from the 32 bytes it reads from r.
func GenerateIdentityKey(r io.Reader) (*IdentityKey, error) {
	scalar := make([]byte, 32)
	if _, err := io.ReadFull(r, scalar); err != nil {
		return nil, err
	}
	return ParseIdentityKey(scalar)
}

// ParseIdentityKey rebuilds the key pair from its private scalar.
func ParseIdentityKey(scalar []byte) (*IdentityKey, error) {
	if len(scalar) != 32 {
		return nil, fmt.Errorf("invalid length, need 32 bytes, got %d", len(scalar))
	}

	pub, err := curve25519.X25519(scalar, curve25519.Basepoint)
	if err != nil {
		return nil, err
	}

	k := &IdentityKey{}
	copy(k.Private[:], scalar)
	copy(k.Public[:], pub)

	return k, nil
}
