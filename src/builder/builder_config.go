package builder

import (
	"crypto/rand"
	"io"

	ma "github.com/multiformats/go-multiaddr"
	"github.com/open-libra/open-libra/src/config"
	"github.com/open-libra/open-libra/src/crypto/keys"
	"github.com/sirupsen/logrus"
)

// DefaultValidators is the only supported number of validators per
// invocation.
const DefaultValidators = 1

// BuilderConfig configures the generation of a single node.
type BuilderConfig struct {
	// OutputDir receives every generated file. It is created with its
	// parents.
	OutputDir string

	// Seed, when set, makes the generated keys deterministic. Otherwise a
	// seed is drawn from Entropy.
	Seed *keys.Seed

	// Entropy is the source of randomness used when Seed is nil.
	Entropy io.Reader

	ListenAddr    ma.Multiaddr
	AdvertiseAddr ma.Multiaddr

	Variant config.Variant

	// Validators is the number of validators requested. Only
	// DefaultValidators is supported.
	Validators int

	Logger *logrus.Entry
}

// NewDefaultBuilderConfig returns a config writing to the current directory
// with OS entropy, default addresses, and a logger with prefix "config".
func NewDefaultBuilderConfig() *BuilderConfig {
	return &BuilderConfig{
		OutputDir:     config.DefaultOutputDir,
		Entropy:       rand.Reader,
		ListenAddr:    config.DefaultMultiaddr(),
		AdvertiseAddr: config.DefaultMultiaddr(),
		Variant:       config.ValidatorPermissioned,
		Validators:    DefaultValidators,
		Logger:        logrus.New().WithField("prefix", "config"),
	}
}
