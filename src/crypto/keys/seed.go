package keys

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/open-libra/open-libra/src/common"
	"golang.org/x/crypto/hkdf"
)

// SeedSize is the size in bytes of a key seed.
const SeedSize = 32

// Key roles. Each one names an independent HKDF stream derived from a Seed.
const (
	ConsensusRole       = "consensus"
	NetworkSigningRole  = "network_signing"
	NetworkIdentityRole = "network_identity"
	FaucetRole          = "faucet"
)

// Seed is the root secret from which key pairs are derived.
type Seed [SeedSize]byte

// NewSeed fills a seed from the entropy source r. A short or failed read is an
// Entropy error; there is no fallback to a weaker source.
func NewSeed(r io.Reader) (Seed, error) {
	var s Seed
	if _, err := io.ReadFull(r, s[:]); err != nil {
		return Seed{}, common.NewGenesisErr(common.Entropy, "seed", err)
	}
	return s, nil
}

// RandomSeed draws a seed from the OS.
func RandomSeed() (Seed, error) {
	return NewSeed(rand.Reader)
}

// ParseSeed decodes a hex seed, with or without the 0X prefix.
func ParseSeed(s string) (Seed, error) {
	b, err := common.DecodeFromString(s)
	if err != nil {
		return Seed{}, fmt.Errorf("invalid seed: %v", err)
	}
	if len(b) != SeedSize {
		return Seed{}, fmt.Errorf("invalid seed: need %d bytes, got %d", SeedSize, len(b))
	}
	var seed Seed
	copy(seed[:], b)
	return seed, nil
}

// Hex ...
func (s Seed) Hex() string {
	return common.EncodeToString(s[:])
}

// Reader returns the deterministic key stream of role.
func (s Seed) Reader(role string) io.Reader {
	return hkdf.New(sha256.New, s[:], nil, []byte(role))
}
