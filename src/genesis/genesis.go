package genesis

import (
	"crypto/rand"
	"io"
	"path/filepath"

	"github.com/libp2p/go-libp2p-core/crypto"
	"github.com/open-libra/open-libra/src/common"
	"github.com/open-libra/open-libra/src/config"
	"github.com/open-libra/open-libra/src/crypto/keys"
	"github.com/open-libra/open-libra/src/peers"
	"github.com/sirupsen/logrus"
)

// DefaultGenesisFile is the name of the encoded genesis transaction.
const DefaultGenesisFile = "genesis.blob"

// EncodeGenesisTransaction builds the genesis transaction installing set,
// signs it with the faucet key and returns the encoded SignedTransaction.
func EncodeGenesisTransaction(faucet crypto.PrivKey, set *peers.ValidatorSet) ([]byte, error) {
	raw, err := NewGenesisTransaction(faucet.GetPublic(), set)
	if err != nil {
		return nil, common.NewGenesisErr(common.Encoding, "genesis transaction", err)
	}

	signed, err := raw.Sign(faucet)
	if err != nil {
		return nil, common.NewGenesisErr(common.Encoding, "genesis transaction", err)
	}

	blob, err := signed.Marshal()
	if err != nil {
		return nil, common.NewGenesisErr(common.Encoding, "genesis transaction", err)
	}

	return blob, nil
}

// DecodeSignedTransaction ...
func DecodeSignedTransaction(blob []byte) (*SignedTransaction, error) {
	var s SignedTransaction
	if err := s.Unmarshal(blob); err != nil {
		return nil, common.NewGenesisErr(common.Encoding, DefaultGenesisFile, err)
	}
	return &s, nil
}

// Verify decodes a genesis blob, checks its signature and returns the
// transaction.
func Verify(blob []byte) (*RawTransaction, error) {
	s, err := DecodeSignedTransaction(blob)
	if err != nil {
		return nil, err
	}

	r, err := s.Verify()
	if err != nil {
		return nil, common.NewGenesisErr(common.Encoding, DefaultGenesisFile, err)
	}

	return r, nil
}

// GeneratorConfig configures the genesis pipeline.
type GeneratorConfig struct {
	OutputDir string

	// MintKeyFile, when set, is an existing mint.key used as the faucet key.
	MintKeyFile string

	// Seed, when set and MintKeyFile is not, makes the faucet key
	// deterministic. Otherwise the key is drawn from Entropy.
	Seed *keys.Seed

	Entropy io.Reader

	Logger *logrus.Entry
}

// NewDefaultGeneratorConfig ...
func NewDefaultGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		OutputDir: config.DefaultOutputDir,
		Entropy:   rand.Reader,
		Logger:    logrus.New().WithField("prefix", "genesis"),
	}
}

// Generator merges peer descriptors into the genesis artifacts. Like the
// config Builder, it computes everything before writing anything.
type Generator struct {
	Config *GeneratorConfig

	PeerInfos      []*peers.PeerInfo
	ConsensusPeers *peers.ConsensusPeers
	NetworkPeers   *peers.NetworkPeers
	ValidatorSet   *peers.ValidatorSet
	FaucetKey      crypto.PrivKey
	Blob           []byte

	logger *logrus.Entry
}

// NewGenerator ...
func NewGenerator(conf *GeneratorConfig) *Generator {
	logger := conf.Logger
	if logger == nil {
		logger = logrus.New().WithField("prefix", "genesis")
	}

	return &Generator{
		Config: conf,
		logger: logger,
	}
}

func (g *Generator) initPeers(paths []string) error {
	infos, err := peers.LoadPeerInfos(paths)
	if err != nil {
		return err
	}
	g.PeerInfos = infos

	consensus, network, err := peers.Merge(infos)
	if err != nil {
		return err
	}
	g.ConsensusPeers = consensus
	g.NetworkPeers = network

	set, err := peers.DeriveValidatorSet(consensus, network)
	if err != nil {
		return err
	}
	g.ValidatorSet = set

	g.logger.WithFields(logrus.Fields{
		"validators": set.Len(),
		"hash":       set.Hex(),
	}).Debug("Derived validator set")

	return nil
}

func (g *Generator) initFaucetKey() error {
	if g.Config.MintKeyFile != "" {
		priv, err := LoadMintKey(g.Config.MintKeyFile)
		if err != nil {
			return err
		}
		g.FaucetKey = priv
		g.logger.WithField("path", g.Config.MintKeyFile).Debug("Loaded faucet key")
		return nil
	}

	var seed keys.Seed
	if g.Config.Seed != nil {
		seed = *g.Config.Seed
	} else {
		s, err := keys.NewSeed(g.Config.Entropy)
		if err != nil {
			return err
		}
		seed = s
	}

	priv, err := keys.GenerateSigningKey(seed.Reader(keys.FaucetRole))
	if err != nil {
		return common.NewGenesisErr(common.Encoding, "faucet key", err)
	}
	g.FaucetKey = priv

	return nil
}

func (g *Generator) initBlob() error {
	blob, err := EncodeGenesisTransaction(g.FaucetKey, g.ValidatorSet)
	if err != nil {
		return err
	}
	g.Blob = blob
	return nil
}

func (g *Generator) generated(path string) {
	g.logger.WithField("path", path).Info("Generated")
}

func (g *Generator) writeArtifacts() error {
	dir := g.Config.OutputDir

	if err := common.MkdirAll(dir); err != nil {
		return err
	}

	blobPath := filepath.Join(dir, DefaultGenesisFile)
	if err := common.WriteFile(blobPath, g.Blob, common.PublicFileMode); err != nil {
		return err
	}
	g.generated(blobPath)

	mintPath := filepath.Join(dir, DefaultMintKeyFile)
	if err := SaveMintKey(mintPath, g.FaucetKey); err != nil {
		return err
	}
	g.generated(mintPath)

	consensusFile := peers.NewConsensusPeersFile(dir)
	if err := consensusFile.Write(g.ConsensusPeers); err != nil {
		return err
	}
	g.generated(consensusFile.Path())

	networkFile := peers.NewNetworkPeersFile(dir)
	if err := networkFile.Write(g.NetworkPeers); err != nil {
		return err
	}
	g.generated(networkFile.Path())

	return nil
}

// Generate loads the descriptors at paths and writes genesis.blob, mint.key
// and both peer registries. Duplicate peers, an empty peer list, and key or
// encoding failures are reported before anything is written. A failed write
// leaves the files written before it in place.
func (g *Generator) Generate(paths []string) error {
	if err := g.initPeers(paths); err != nil {
		return err
	}

	if err := g.initFaucetKey(); err != nil {
		return err
	}

	if err := g.initBlob(); err != nil {
		return err
	}

	return g.writeArtifacts()
}
