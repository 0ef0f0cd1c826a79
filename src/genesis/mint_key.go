package genesis

import (
	"bytes"
	"errors"

	"github.com/libp2p/go-libp2p-core/crypto"
	"github.com/open-libra/open-libra/src/common"
	"github.com/open-libra/open-libra/src/crypto/keys"
)

// DefaultMintKeyFile is the name of the faucet key file.
const DefaultMintKeyFile = "mint.key"

// MintKey is the faucet key pair as persisted in mint.key.
type MintKey struct {
	PrivateKey []byte `codec:"private_key"`
	PublicKey  []byte `codec:"public_key"`
}

// NewMintKey ...
func NewMintKey(priv crypto.PrivKey) (*MintKey, error) {
	privRaw, err := priv.Raw()
	if err != nil {
		return nil, err
	}

	pubRaw, err := priv.GetPublic().Raw()
	if err != nil {
		return nil, err
	}

	return &MintKey{
		PrivateKey: privRaw,
		PublicKey:  pubRaw,
	}, nil
}

// Marshal ...
func (m *MintKey) Marshal() ([]byte, error) {
	return marshal(m)
}

// Unmarshal ...
func (m *MintKey) Unmarshal(data []byte) error {
	return unmarshal(data, m)
}

// SigningKey parses the private key and checks it against the stored public
// key.
func (m *MintKey) SigningKey() (crypto.PrivKey, error) {
	priv, err := keys.ParseSigningKey(m.PrivateKey)
	if err != nil {
		return nil, err
	}

	pub, err := priv.GetPublic().Raw()
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(pub, m.PublicKey) {
		return nil, errors.New("public key does not match private key")
	}

	return priv, nil
}

// SaveMintKey writes the faucet key to path, readable by its owner only.
func SaveMintKey(path string, priv crypto.PrivKey) error {
	m, err := NewMintKey(priv)
	if err != nil {
		return common.NewGenesisErr(common.Encoding, path, err)
	}

	data, err := m.Marshal()
	if err != nil {
		return common.NewGenesisErr(common.Encoding, path, err)
	}

	return common.WriteFile(path, data, common.PrivateFileMode)
}

// LoadMintKey reads a faucet key written by SaveMintKey. Like other key files,
// it is rejected if group or others have access to it.
func LoadMintKey(path string) (crypto.PrivKey, error) {
	if err := keys.NewKeyfile(path).CheckFileInfo(); err != nil {
		return nil, err
	}

	data, err := common.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m MintKey
	if err := m.Unmarshal(data); err != nil {
		return nil, common.NewGenesisErr(common.Encoding, path, err)
	}

	priv, err := m.SigningKey()
	if err != nil {
		return nil, common.NewGenesisErr(common.Encoding, path, err)
	}

	return priv, nil
}
