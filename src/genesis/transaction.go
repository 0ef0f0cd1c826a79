package genesis

import (
	"bytes"
	"errors"
	"math"

	"github.com/libp2p/go-libp2p-core/crypto"
	olcrypto "github.com/open-libra/open-libra/src/crypto"
	"github.com/open-libra/open-libra/src/crypto/keys"
	"github.com/open-libra/open-libra/src/peers"
)

// Fixed parameters of the genesis transaction.
const (
	GenesisSequenceNumber uint64 = 0
	GenesisMaxGasAmount   uint64 = 1000000
	GenesisGasUnitPrice   uint64 = 0
	GenesisExpirationTime uint64 = math.MaxUint64
)

// RawTransactionSalt is prepended to an encoded RawTransaction before it is
// hashed for signing.
const RawTransactionSalt = "RawTransaction@@$$LIBRA$$@@"

// GenesisPayload is what the genesis transaction installs: the initial
// validator set and the faucet account.
type GenesisPayload struct {
	ValidatorSet    peers.ValidatorSet `codec:"validator_set"`
	FaucetPublicKey []byte             `codec:"faucet_public_key"`
}

// RawTransaction is the unsigned genesis transaction.
type RawTransaction struct {
	Sender         []byte         `codec:"sender"`
	SequenceNumber uint64         `codec:"sequence_number"`
	Payload        GenesisPayload `codec:"payload"`
	MaxGasAmount   uint64         `codec:"max_gas_amount"`
	GasUnitPrice   uint64         `codec:"gas_unit_price"`
	ExpirationTime uint64         `codec:"expiration_time"`
}

// AccountAddress returns the address of the account owning pub.
func AccountAddress(pub []byte) []byte {
	return olcrypto.SHA3(pub)
}

// NewGenesisTransaction builds the transaction sent by the faucet account to
// install set.
func NewGenesisTransaction(faucet crypto.PubKey, set *peers.ValidatorSet) (*RawTransaction, error) {
	pub, err := faucet.Raw()
	if err != nil {
		return nil, err
	}

	return &RawTransaction{
		Sender:         AccountAddress(pub),
		SequenceNumber: GenesisSequenceNumber,
		Payload: GenesisPayload{
			ValidatorSet:    *set,
			FaucetPublicKey: pub,
		},
		MaxGasAmount:   GenesisMaxGasAmount,
		GasUnitPrice:   GenesisGasUnitPrice,
		ExpirationTime: GenesisExpirationTime,
	}, nil
}

// Marshal ...
func (r *RawTransaction) Marshal() ([]byte, error) {
	return marshal(r)
}

// Unmarshal ...
func (r *RawTransaction) Unmarshal(data []byte) error {
	return unmarshal(data, r)
}

// signingHash is the digest that gets signed for an encoded RawTransaction.
func signingHash(raw []byte) []byte {
	return olcrypto.SHA3([]byte(RawTransactionSalt), raw)
}

// Sign encodes the transaction and signs it with priv.
func (r *RawTransaction) Sign(priv crypto.PrivKey) (*SignedTransaction, error) {
	raw, err := r.Marshal()
	if err != nil {
		return nil, err
	}

	sig, err := priv.Sign(signingHash(raw))
	if err != nil {
		return nil, err
	}

	pub, err := priv.GetPublic().Raw()
	if err != nil {
		return nil, err
	}

	return &SignedTransaction{
		RawTransaction: raw,
		PublicKey:      pub,
		Signature:      sig,
	}, nil
}

// SignedTransaction is the content of genesis.blob. RawTransaction holds the
// exact bytes that were signed.
type SignedTransaction struct {
	RawTransaction []byte `codec:"raw_txn"`
	PublicKey      []byte `codec:"public_key"`
	Signature      []byte `codec:"signature"`
}

// Marshal ...
func (s *SignedTransaction) Marshal() ([]byte, error) {
	return marshal(s)
}

// Unmarshal ...
func (s *SignedTransaction) Unmarshal(data []byte) error {
	return unmarshal(data, s)
}

// Verify checks the signature and that the sender is the signer's account,
// and returns the decoded transaction.
func (s *SignedTransaction) Verify() (*RawTransaction, error) {
	pub, err := keys.ParseSigningPublicKey(s.PublicKey)
	if err != nil {
		return nil, err
	}

	ok, err := pub.Verify(signingHash(s.RawTransaction), s.Signature)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("invalid signature")
	}

	var r RawTransaction
	if err := r.Unmarshal(s.RawTransaction); err != nil {
		return nil, err
	}

	if !bytes.Equal(r.Sender, AccountAddress(s.PublicKey)) {
		return nil, errors.New("sender is not the signer's account")
	}

	return &r, nil
}
