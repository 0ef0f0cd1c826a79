package config

import (
	"path/filepath"

	ma "github.com/multiformats/go-multiaddr"
	"github.com/open-libra/open-libra/src/common"
)

// DefaultNodeConfigFile is the name of the node configuration written next to
// the key files.
const DefaultNodeConfigFile = "node.config.toml"

// BaseConfig ...
type BaseConfig struct {
	DataDir string `toml:"data_dir"`
	Role    string `toml:"role"`
}

// ConsensusConfig points at the consensus key file and the consensus peers
// registry.
type ConsensusConfig struct {
	ConsensusKeypairFile string `toml:"consensus_keypair_file"`
	ConsensusPeersFile   string `toml:"consensus_peers_file"`
}

// NetworkConfig describes one network the node takes part in.
type NetworkConfig struct {
	PeerID              string `toml:"peer_id"`
	Role                string `toml:"role"`
	ListenAddress       string `toml:"listen_address"`
	AdvertisedAddress   string `toml:"advertised_address"`
	IsPermissioned      bool   `toml:"is_permissioned"`
	NetworkKeypairsFile string `toml:"network_keypairs_file"`
	NetworkPeersFile    string `toml:"network_peers_file"`
}

// NodeConfig is the configuration of a single node, persisted as
// node.config.toml.
type NodeConfig struct {
	Base      BaseConfig      `toml:"base"`
	Consensus ConsensusConfig `toml:"consensus"`
	Networks  []NetworkConfig `toml:"networks"`
}

// NewNodeConfig returns the configuration of a node of the given variant, with
// data directory dataDir and default file names. The peers files are the ones
// the genesis pipeline produces.
func NewNodeConfig(
	variant Variant,
	dataDir string,
	peerID string,
	listen ma.Multiaddr,
	advertised ma.Multiaddr,
	consensusKeypairFile string,
	consensusPeersFile string,
	networkKeypairsFile string,
	networkPeersFile string,
) *NodeConfig {
	return &NodeConfig{
		Base: BaseConfig{
			DataDir: dataDir,
			Role:    variant.Role(),
		},
		Consensus: ConsensusConfig{
			ConsensusKeypairFile: consensusKeypairFile,
			ConsensusPeersFile:   consensusPeersFile,
		},
		Networks: []NetworkConfig{
			{
				PeerID:              peerID,
				Role:                variant.Role(),
				ListenAddress:       listen.String(),
				AdvertisedAddress:   advertised.String(),
				IsPermissioned:      variant.IsPermissioned(),
				NetworkKeypairsFile: networkKeypairsFile,
				NetworkPeersFile:    networkPeersFile,
			},
		},
	}
}

// ParseAddress parses a multiaddr, turning failures into Unsupported errors
// that name the address.
func ParseAddress(addr string) (ma.Multiaddr, error) {
	m, err := ma.NewMultiaddr(addr)
	if err != nil {
		return nil, common.NewGenesisErr(common.Unsupported, "address "+addr, err)
	}
	return m, nil
}

// DefaultMultiaddr returns DefaultAddress as a Multiaddr.
func DefaultMultiaddr() ma.Multiaddr {
	m, err := ma.NewMultiaddr(DefaultAddress)
	if err != nil {
		panic(err)
	}
	return m
}

// Save writes the node config into dir and returns the path.
func (n *NodeConfig) Save(dir string) (string, error) {
	path := filepath.Join(dir, DefaultNodeConfigFile)
	return path, common.SaveTOML(path, n, common.PublicFileMode)
}

// LoadNodeConfig ...
func LoadNodeConfig(path string) (*NodeConfig, error) {
	var n NodeConfig
	if err := common.LoadTOML(path, &n); err != nil {
		return nil, err
	}
	return &n, nil
}
