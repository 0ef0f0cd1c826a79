package builder

import (
	"fmt"
	"path/filepath"

	"github.com/open-libra/open-libra/src/common"
	"github.com/open-libra/open-libra/src/config"
	"github.com/open-libra/open-libra/src/crypto/keys"
	"github.com/open-libra/open-libra/src/peers"
	"github.com/sirupsen/logrus"
)

// Builder generates the keys, descriptor and node configuration of one
// validator. Everything is computed before the first file is written.
type Builder struct {
	Config *BuilderConfig

	Seed       keys.Seed
	Keys       *keys.ValidatorKeys
	PeerInfo   *peers.PeerInfo
	NodeConfig *config.NodeConfig

	logger *logrus.Entry
}

// NewBuilder ...
func NewBuilder(conf *BuilderConfig) *Builder {
	logger := conf.Logger
	if logger == nil {
		logger = logrus.New().WithField("prefix", "config")
	}

	return &Builder{
		Config: conf,
		logger: logger,
	}
}

func (b *Builder) checkRequest() error {
	if b.Config.Validators != DefaultValidators {
		return common.NewGenesisErr(
			common.Unsupported,
			fmt.Sprintf("%d validators, only %d is supported", b.Config.Validators, DefaultValidators),
			nil,
		)
	}

	if b.Config.Variant != config.ValidatorPermissioned {
		return common.NewGenesisErr(common.Unsupported, b.Config.Variant.String(), nil)
	}

	return nil
}

func (b *Builder) initSeed() error {
	if b.Config.Seed != nil {
		b.Seed = *b.Config.Seed
		return nil
	}

	seed, err := keys.NewSeed(b.Config.Entropy)
	if err != nil {
		return err
	}
	b.Seed = seed

	return nil
}

func (b *Builder) initKeys() error {
	k, err := keys.GenerateValidatorKeys(b.Seed)
	if err != nil {
		return common.NewGenesisErr(common.Encoding, "validator keys", err)
	}
	b.Keys = k

	info, err := peers.NewPeerInfoFromKeys(k)
	if err != nil {
		return common.NewGenesisErr(common.Encoding, "peer info", err)
	}
	b.PeerInfo = info

	b.logger.WithField("peer_id", info.ID).Debug("Generated validator keys")

	return nil
}

func (b *Builder) initNodeConfig() {
	listen := b.Config.ListenAddr
	if listen == nil {
		listen = config.DefaultMultiaddr()
	}

	advertise := b.Config.AdvertiseAddr
	if advertise == nil {
		advertise = config.DefaultMultiaddr()
	}

	b.NodeConfig = config.NewNodeConfig(
		b.Config.Variant,
		b.Config.OutputDir,
		b.PeerInfo.ID,
		listen,
		advertise,
		keys.DefaultConsensusKeypairFile,
		peers.DefaultConsensusPeersFile,
		keys.DefaultNetworkKeypairsFile,
		peers.DefaultNetworkPeersFile,
	)
}

func (b *Builder) writeKeys() error {
	consensusFile := keys.NewKeyfile(filepath.Join(b.Config.OutputDir, keys.DefaultConsensusKeypairFile))
	if err := consensusFile.Write(b.Keys.ConsensusKeyPair()); err != nil {
		return err
	}
	b.generated(consensusFile.Path())

	networkKeys, err := b.Keys.NetworkKeyPairs()
	if err != nil {
		return common.NewGenesisErr(common.Encoding, "network keys", err)
	}

	networkFile := keys.NewKeyfile(filepath.Join(b.Config.OutputDir, keys.DefaultNetworkKeypairsFile))
	if err := networkFile.Write(networkKeys); err != nil {
		return err
	}
	b.generated(networkFile.Path())

	return nil
}

func (b *Builder) generated(path string) {
	b.logger.WithField("path", path).Info("Generated")
}

// Build runs the pipeline. Unsupported requests and entropy failures are
// reported before anything is written. Files already written stay on disk if
// a later write fails.
func (b *Builder) Build() error {
	if err := b.checkRequest(); err != nil {
		return err
	}

	if err := b.initSeed(); err != nil {
		return err
	}

	if err := b.initKeys(); err != nil {
		return err
	}

	b.initNodeConfig()

	if err := common.MkdirAll(b.Config.OutputDir); err != nil {
		return err
	}

	if err := b.writeKeys(); err != nil {
		return err
	}

	path, err := b.PeerInfo.Save(b.Config.OutputDir)
	if err != nil {
		return err
	}
	b.generated(path)

	path, err = b.NodeConfig.Save(b.Config.OutputDir)
	if err != nil {
		return err
	}
	b.generated(path)

	return nil
}
