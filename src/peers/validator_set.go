package peers

import (
	"fmt"

	"github.com/open-libra/open-libra/src/common"
	"github.com/open-libra/open-libra/src/crypto"
)

// DefaultVotingPower is the consensus voting power of every genesis validator.
const DefaultVotingPower = 1

// ValidatorInfo is one entry of the genesis validator-set.
type ValidatorInfo struct {
	PeerID                   string `codec:"peer_id"`
	ConsensusPublicKey       []byte `codec:"consensus_public_key"`
	ConsensusVotingPower     uint64 `codec:"consensus_voting_power"`
	NetworkSigningPublicKey  []byte `codec:"network_signing_public_key"`
	NetworkIdentityPublicKey []byte `codec:"network_identity_public_key"`
}

// ValidatorSet is the ordered list of genesis validators.
type ValidatorSet struct {
	Validators []ValidatorInfo `codec:"validators"`
}

// DeriveValidatorSet pairs the entries of both registries. A peer ID missing
// from either registry is left out. Validators are sorted by peer ID.
func DeriveValidatorSet(consensus *ConsensusPeers, network *NetworkPeers) (*ValidatorSet, error) {
	set := &ValidatorSet{
		Validators: []ValidatorInfo{},
	}

	for _, id := range consensus.IDs() {
		n, ok := network.Get(id)
		if !ok {
			continue
		}
		c, _ := consensus.Get(id)

		v, err := newValidatorInfo(id, c, n)
		if err != nil {
			return nil, common.NewGenesisErr(common.Encoding, fmt.Sprintf("validator %s", id), err)
		}

		set.Validators = append(set.Validators, v)
	}

	return set, nil
}

func newValidatorInfo(id string, c ConsensusPeerInfo, n NetworkPeerInfo) (ValidatorInfo, error) {
	consensusKey, err := common.DecodeFromString(c.ConsensusPubkey)
	if err != nil {
		return ValidatorInfo{}, err
	}
	signingKey, err := common.DecodeFromString(n.NetworkSigningPubkey)
	if err != nil {
		return ValidatorInfo{}, err
	}
	identityKey, err := common.DecodeFromString(n.NetworkIdentityPubkey)
	if err != nil {
		return ValidatorInfo{}, err
	}

	return ValidatorInfo{
		PeerID:                   id,
		ConsensusPublicKey:       consensusKey,
		ConsensusVotingPower:     DefaultVotingPower,
		NetworkSigningPublicKey:  signingKey,
		NetworkIdentityPublicKey: identityKey,
	}, nil
}

// Len returns the number of validators.
func (vs *ValidatorSet) Len() int {
	return len(vs.Validators)
}

// IDs returns the validators' peer IDs, in set order.
func (vs *ValidatorSet) IDs() []string {
	res := make([]string, 0, len(vs.Validators))
	for _, v := range vs.Validators {
		res = append(res, v.PeerID)
	}
	return res
}

// Hash identifies a ValidatorSet. It chains the SHA3 hashes of every
// validator's peer ID and consensus key, in set order.
func (vs *ValidatorSet) Hash() []byte {
	hash := []byte{}
	for _, v := range vs.Validators {
		hash = crypto.SHA3(hash, []byte(v.PeerID), v.ConsensusPublicKey)
	}
	return hash
}

// Hex is the hexadecimal representation of Hash
func (vs *ValidatorSet) Hex() string {
	return common.EncodeToString(vs.Hash())
}
