package commands

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/open-libra/open-libra/src/common"
	"github.com/open-libra/open-libra/src/config"
	"github.com/open-libra/open-libra/src/crypto/keys"
	"github.com/open-libra/open-libra/src/genesis"
	"github.com/open-libra/open-libra/src/peers"
	"github.com/open-libra/open-libra/src/version"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const (
	seed1 = "0101010101010101010101010101010101010101010101010101010101010101"
	seed2 = "0202020202020202020202020202020202020202020202020202020202020202"
)

// execute runs a fresh root command and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	c := NewDefaultCLIConfig()
	c.logger = common.NewTestLogger(t)
	return executeWith(c, args...)
}

func executeWith(c *CLIConfig, args ...string) (string, error) {
	rootCmd := newRootCmd(c)
	rootCmd.SilenceUsage = true

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "open-libra")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	return dir
}

func TestConfigCmd(t *testing.T) {
	root := tempDir(t)
	defer os.RemoveAll(root)

	dir := filepath.Join(root, "node")

	if _, err := execute(t, "config", "-o", dir); err != nil {
		t.Fatalf("err: %v", err)
	}

	files := []string{
		keys.DefaultConsensusKeypairFile,
		keys.DefaultNetworkKeypairsFile,
		peers.DefaultPeerInfoFile,
		config.DefaultNodeConfigFile,
	}
	for _, f := range files {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Fatalf("%s should have been generated: %v", f, err)
		}
	}

	info, err := peers.LoadPeerInfo(filepath.Join(dir, peers.DefaultPeerInfoFile))
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	nc, err := config.LoadNodeConfig(filepath.Join(dir, config.DefaultNodeConfigFile))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if nc.Networks[0].PeerID != info.ID {
		t.Fatalf("node config and descriptor disagree on the peer ID")
	}
	if nc.Networks[0].ListenAddress != config.DefaultAddress {
		t.Fatalf("listen address should default to %s", config.DefaultAddress)
	}
}

func TestConfigCmdStatusLines(t *testing.T) {
	root := tempDir(t)
	defer os.RemoveAll(root)

	c := NewDefaultCLIConfig()
	c.logger = common.NewTestLogger(t)
	hook := test.NewLocal(c.logger)

	if _, err := executeWith(c, "config", "-o", filepath.Join(root, "node")); err != nil {
		t.Fatalf("err: %v", err)
	}

	var generated int
	for _, e := range hook.AllEntries() {
		if e.Message == "Generated" {
			generated++
		}
	}
	if generated != 4 {
		t.Fatalf("expected 4 Generated entries, got %d", generated)
	}

	last := hook.LastEntry()
	if last == nil || last.Level != logrus.InfoLevel || !strings.HasPrefix(last.Message, "Success") {
		t.Fatalf("last entry should be the Success line, got %v", last)
	}
	if last.Data["prefix"] != "config" {
		t.Fatalf("Success line should carry the config prefix")
	}
}

func TestConfigCmdSeed(t *testing.T) {
	root := tempDir(t)
	defer os.RemoveAll(root)

	var ids []string
	for _, d := range []string{"a", "b"} {
		dir := filepath.Join(root, d)
		if _, err := execute(t, "config", "-o", dir, "--seed", seed1); err != nil {
			t.Fatalf("err: %v", err)
		}

		info, err := peers.LoadPeerInfo(filepath.Join(dir, peers.DefaultPeerInfoFile))
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		ids = append(ids, info.ID)
	}

	if ids[0] != ids[1] {
		t.Fatalf("same seed should give the same peer ID")
	}

	if _, err := execute(t, "config", "-o", filepath.Join(root, "c"), "--seed", "0X1234"); !common.Is(err, common.Encoding) {
		t.Fatalf("short seed should be rejected, got %v", err)
	}
}

func TestConfigCmdConfigFile(t *testing.T) {
	root := tempDir(t)
	defer os.RemoveAll(root)

	confDir := filepath.Join(root, "conf")
	if err := os.MkdirAll(confDir, 0700); err != nil {
		t.Fatalf("err: %v", err)
	}

	out := filepath.Join(root, "from-file")
	toml := "seed = \"" + seed1 + "\"\nlisten = \"/ip4/0.0.0.0/tcp/6180\"\noutput = \"" + out + "\"\n"
	if err := ioutil.WriteFile(filepath.Join(confDir, "open-libra.toml"), []byte(toml), 0600); err != nil {
		t.Fatalf("err: %v", err)
	}

	if _, err := execute(t, "--config-dir", confDir, "config"); err != nil {
		t.Fatalf("err: %v", err)
	}

	nc, err := config.LoadNodeConfig(filepath.Join(out, config.DefaultNodeConfigFile))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if nc.Networks[0].ListenAddress != "/ip4/0.0.0.0/tcp/6180" {
		t.Fatalf("listen address should come from the config file, got %s", nc.Networks[0].ListenAddress)
	}

	// Flags win over the config file
	flagOut := filepath.Join(root, "from-flag")
	if _, err := execute(t, "--config-dir", confDir, "config", "-o", flagOut, "--seed", seed1); err != nil {
		t.Fatalf("err: %v", err)
	}

	fromFile, _ := peers.LoadPeerInfo(filepath.Join(out, peers.DefaultPeerInfoFile))
	fromFlag, err := peers.LoadPeerInfo(filepath.Join(flagOut, peers.DefaultPeerInfoFile))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if fromFile.ID != fromFlag.ID {
		t.Fatalf("seed from file and flag should give the same peer")
	}
}

func TestConfigCmdUnsupported(t *testing.T) {
	root := tempDir(t)
	defer os.RemoveAll(root)

	dir := filepath.Join(root, "node")

	requests := [][]string{
		{"config", "-o", dir, "--validators", "2"},
		{"config", "-o", dir, "--role", "full_node"},
		{"config", "-o", dir, "--permissioned=false"},
		{"config", "-o", dir, "--listen", "127.0.0.1:6180"},
	}

	for _, args := range requests {
		if _, err := execute(t, args...); !common.Is(err, common.Unsupported) {
			t.Fatalf("%v: expected Unsupported error, got %v", args, err)
		}
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Fatalf("%v: nothing should be written", args)
		}
	}
}

func TestGenesisCmd(t *testing.T) {
	root := tempDir(t)
	defer os.RemoveAll(root)

	n1 := filepath.Join(root, "node1")
	n2 := filepath.Join(root, "node2")
	if _, err := execute(t, "config", "-o", n1, "--seed", seed1); err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, err := execute(t, "config", "-o", n2, "--seed", seed2); err != nil {
		t.Fatalf("err: %v", err)
	}

	p1 := filepath.Join(n1, peers.DefaultPeerInfoFile)
	p2 := filepath.Join(n2, peers.DefaultPeerInfoFile)

	out := filepath.Join(root, "genesis")
	if _, err := execute(t, "genesis", "-o", out, p1, p2); err != nil {
		t.Fatalf("err: %v", err)
	}

	files := []string{
		genesis.DefaultGenesisFile,
		genesis.DefaultMintKeyFile,
		peers.DefaultConsensusPeersFile,
		peers.DefaultNetworkPeersFile,
	}
	for _, f := range files {
		if _, err := os.Stat(filepath.Join(out, f)); err != nil {
			t.Fatalf("%s should have been generated: %v", f, err)
		}
	}

	printed, err := execute(t, "verify", filepath.Join(out, genesis.DefaultGenesisFile))
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	for _, p := range []string{p1, p2} {
		info, err := peers.LoadPeerInfo(p)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if !strings.Contains(printed, info.ID) {
			t.Fatalf("verify should list %s:\n%s", info.ID, printed)
		}
	}

	// Reusing the mint key
	again := filepath.Join(root, "again")
	if _, err := execute(t, "genesis", "-o", again, "--mint-key", filepath.Join(out, genesis.DefaultMintKeyFile), p2, p1); err != nil {
		t.Fatalf("err: %v", err)
	}

	b1, _ := ioutil.ReadFile(filepath.Join(out, genesis.DefaultGenesisFile))
	b2, _ := ioutil.ReadFile(filepath.Join(again, genesis.DefaultGenesisFile))
	if !bytes.Equal(b1, b2) {
		t.Fatalf("same faucet key and peers should give the same genesis.blob")
	}
}

func TestGenesisCmdDuplicate(t *testing.T) {
	root := tempDir(t)
	defer os.RemoveAll(root)

	n1 := filepath.Join(root, "node1")
	if _, err := execute(t, "config", "-o", n1, "--seed", seed1); err != nil {
		t.Fatalf("err: %v", err)
	}
	p1 := filepath.Join(n1, peers.DefaultPeerInfoFile)

	info, err := peers.LoadPeerInfo(p1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	out := filepath.Join(root, "genesis")
	_, err = execute(t, "genesis", "-o", out, p1, p1)
	if !common.Is(err, common.DuplicatePeer) {
		t.Fatalf("expected DuplicatePeer error, got %v", err)
	}
	if !strings.Contains(err.Error(), "duplicate peer ID: "+info.ID) {
		t.Fatalf("unexpected message: %v", err)
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written when a peer is duplicated")
	}
}

func TestGenesisCmdSharedID(t *testing.T) {
	root := tempDir(t)
	defer os.RemoveAll(root)

	n1 := filepath.Join(root, "node1")
	n2 := filepath.Join(root, "node2")
	if _, err := execute(t, "config", "-o", n1, "--seed", seed1); err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, err := execute(t, "config", "-o", n2, "--seed", seed2); err != nil {
		t.Fatalf("err: %v", err)
	}

	p1 := filepath.Join(n1, peers.DefaultPeerInfoFile)
	p2 := filepath.Join(n2, peers.DefaultPeerInfoFile)

	first, err := peers.LoadPeerInfo(p1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	second, err := peers.LoadPeerInfo(p2)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// Another operator's keys under the same peer ID
	second.ID = first.ID
	if _, err := second.Save(n2); err != nil {
		t.Fatalf("err: %v", err)
	}

	out := filepath.Join(root, "genesis")
	_, err = execute(t, "genesis", "-o", out, p1, p2)
	if !common.Is(err, common.DuplicatePeer) {
		t.Fatalf("expected DuplicatePeer error, got %v", err)
	}
	if !strings.Contains(err.Error(), first.ID) {
		t.Fatalf("error should name %s: %v", first.ID, err)
	}

	if _, err := os.Stat(filepath.Join(out, genesis.DefaultGenesisFile)); !os.IsNotExist(err) {
		t.Fatalf("genesis.blob should not be written when a peer ID is shared")
	}
}

func TestGenesisCmdNoPeers(t *testing.T) {
	root := tempDir(t)
	defer os.RemoveAll(root)

	out := filepath.Join(root, "genesis")

	_, err := execute(t, "genesis", "-o", out)
	if !common.Is(err, common.NoPeers) {
		t.Fatalf("expected NoPeers error, got %v", err)
	}
	if err.Error() != "no peers given! Usage: open-libra genesis peer1.toml peer2.toml ..." {
		t.Fatalf("unexpected message: %v", err)
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written without peers")
	}
}

func TestVerifyCmdMissingFile(t *testing.T) {
	root := tempDir(t)
	defer os.RemoveAll(root)

	if _, err := execute(t, "verify", filepath.Join(root, genesis.DefaultGenesisFile)); !common.Is(err, common.IO) {
		t.Fatalf("expected IO error, got %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	printed, err := execute(t, "version")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if strings.TrimSpace(printed) != version.Version {
		t.Fatalf("expected %s, got %s", version.Version, printed)
	}
}
