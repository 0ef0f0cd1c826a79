package genesis

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/open-libra/open-libra/src/builder"
	"github.com/open-libra/open-libra/src/common"
	"github.com/open-libra/open-libra/src/crypto/keys"
	"github.com/open-libra/open-libra/src/peers"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy source closed")
}

func testSeed(b byte) *keys.Seed {
	var seed keys.Seed
	for i := range seed {
		seed[i] = b
	}
	return &seed
}

// initPeerInfo runs the config pipeline in root/name and returns the path of
// the generated descriptor.
func initPeerInfo(t *testing.T, root, name string, seed byte) string {
	conf := builder.NewDefaultBuilderConfig()
	conf.OutputDir = filepath.Join(root, name)
	conf.Seed = testSeed(seed)
	conf.Logger = common.NewTestEntry(t, "config")

	if err := builder.NewBuilder(conf).Build(); err != nil {
		t.Fatalf("err: %v", err)
	}

	return filepath.Join(conf.OutputDir, peers.DefaultPeerInfoFile)
}

func newTestGenerator(t *testing.T, dir string) *Generator {
	conf := NewDefaultGeneratorConfig()
	conf.OutputDir = dir
	conf.Logger = common.NewTestEntry(t, "genesis")
	return NewGenerator(conf)
}

func TestGenerate(t *testing.T) {
	root, err := ioutil.TempDir("", "open-libra")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer os.RemoveAll(root)

	p1 := initPeerInfo(t, root, "node1", 1)
	p2 := initPeerInfo(t, root, "node2", 2)

	out := filepath.Join(root, "genesis")

	g := newTestGenerator(t, out)
	if err := g.Generate([]string{p1, p2}); err != nil {
		t.Fatalf("err: %v", err)
	}

	blob, err := ioutil.ReadFile(filepath.Join(out, DefaultGenesisFile))
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	tx, err := Verify(blob)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	set := tx.Payload.ValidatorSet
	if set.Len() != 2 {
		t.Fatalf("validator set should have 2 entries, not %d", set.Len())
	}
	if !reflect.DeepEqual(set.IDs(), g.ValidatorSet.IDs()) {
		t.Fatalf("encoded validator set %v differs from %v", set.IDs(), g.ValidatorSet.IDs())
	}
	if tx.SequenceNumber != GenesisSequenceNumber {
		t.Fatalf("genesis sequence number should be %d", GenesisSequenceNumber)
	}

	faucetPub, _ := g.FaucetKey.GetPublic().Raw()
	if !bytes.Equal(tx.Payload.FaucetPublicKey, faucetPub) {
		t.Fatalf("payload should carry the faucet public key")
	}

	info, err := os.Stat(filepath.Join(out, DefaultMintKeyFile))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if info.Mode().Perm() != common.PrivateFileMode {
		t.Fatalf("mint.key should have mode %o, not %o", common.PrivateFileMode, info.Mode().Perm())
	}

	consensus, err := peers.NewConsensusPeersFile(out).Registry()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	network, err := peers.NewNetworkPeersFile(out).Registry()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if consensus.Len() != 2 || network.Len() != 2 {
		t.Fatalf("registries should hold 2 peers, got %d and %d", consensus.Len(), network.Len())
	}
}

func TestGenerateDuplicate(t *testing.T) {
	root, err := ioutil.TempDir("", "open-libra")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer os.RemoveAll(root)

	p1 := initPeerInfo(t, root, "node1", 1)
	p2 := initPeerInfo(t, root, "node2", 2)

	out := filepath.Join(root, "genesis")

	err = newTestGenerator(t, out).Generate([]string{p1, p2, p1})
	if !common.Is(err, common.DuplicatePeer) {
		t.Fatalf("expected DuplicatePeer error, got %v", err)
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written when a peer is duplicated")
	}
}

func TestGenerateNoPeers(t *testing.T) {
	root, err := ioutil.TempDir("", "open-libra")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer os.RemoveAll(root)

	out := filepath.Join(root, "genesis")

	err = newTestGenerator(t, out).Generate(nil)
	if !common.Is(err, common.NoPeers) {
		t.Fatalf("expected NoPeers error, got %v", err)
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written without peers")
	}
}

func TestGeneratePartialWrite(t *testing.T) {
	root, err := ioutil.TempDir("", "open-libra")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer os.RemoveAll(root)

	p1 := initPeerInfo(t, root, "node1", 1)
	out := filepath.Join(root, "genesis")

	// A directory where the last registry file goes
	blocked := filepath.Join(out, peers.DefaultNetworkPeersFile)
	if err := os.MkdirAll(blocked, 0700); err != nil {
		t.Fatalf("err: %v", err)
	}

	err = newTestGenerator(t, out).Generate([]string{p1})
	if !common.Is(err, common.IO) {
		t.Fatalf("expected IO error, got %v", err)
	}
	if !strings.Contains(err.Error(), blocked) {
		t.Fatalf("error should name %s: %v", blocked, err)
	}

	// Files written before the failure stay
	for _, f := range []string{DefaultGenesisFile, DefaultMintKeyFile, peers.DefaultConsensusPeersFile} {
		if _, err := os.Stat(filepath.Join(out, f)); err != nil {
			t.Fatalf("%s should still be on disk: %v", f, err)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	root, err := ioutil.TempDir("", "open-libra")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer os.RemoveAll(root)

	p1 := initPeerInfo(t, root, "node1", 1)
	p2 := initPeerInfo(t, root, "node2", 2)
	p3 := initPeerInfo(t, root, "node3", 3)

	orders := [][]string{
		{p1, p2, p3},
		{p3, p1, p2},
	}

	var blobs [][]byte
	for i, paths := range orders {
		g := newTestGenerator(t, filepath.Join(root, "genesis", string(rune('a'+i))))
		g.Config.Seed = testSeed(42)

		if err := g.Generate(paths); err != nil {
			t.Fatalf("err: %v", err)
		}
		blobs = append(blobs, g.Blob)
	}

	if !bytes.Equal(blobs[0], blobs[1]) {
		t.Fatalf("same seed and peers should give the same genesis.blob")
	}
}

func TestGenerateEntropyFailure(t *testing.T) {
	root, err := ioutil.TempDir("", "open-libra")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer os.RemoveAll(root)

	p1 := initPeerInfo(t, root, "node1", 1)
	out := filepath.Join(root, "genesis")

	g := newTestGenerator(t, out)
	g.Config.Entropy = failingReader{}

	if err := g.Generate([]string{p1}); !common.Is(err, common.Entropy) {
		t.Fatalf("expected Entropy error, got %v", err)
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written after an entropy failure")
	}
}

func TestGenerateWithMintKey(t *testing.T) {
	root, err := ioutil.TempDir("", "open-libra")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer os.RemoveAll(root)

	p1 := initPeerInfo(t, root, "node1", 1)

	first := newTestGenerator(t, filepath.Join(root, "first"))
	if err := first.Generate([]string{p1}); err != nil {
		t.Fatalf("err: %v", err)
	}

	second := newTestGenerator(t, filepath.Join(root, "second"))
	second.Config.MintKeyFile = filepath.Join(root, "first", DefaultMintKeyFile)
	if err := second.Generate([]string{p1}); err != nil {
		t.Fatalf("err: %v", err)
	}

	if !first.FaucetKey.Equals(second.FaucetKey) {
		t.Fatalf("reusing mint.key should reuse the faucet key")
	}
	if !bytes.Equal(first.Blob, second.Blob) {
		t.Fatalf("same faucet key and peers should give the same genesis.blob")
	}
}

func TestLoadMintKeyPermissions(t *testing.T) {
	root, err := ioutil.TempDir("", "open-libra")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer os.RemoveAll(root)

	priv, err := keys.GenerateSigningKey(testSeed(9).Reader(keys.FaucetRole))
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	path := filepath.Join(root, DefaultMintKeyFile)
	if err := SaveMintKey(path, priv); err != nil {
		t.Fatalf("err: %v", err)
	}

	loaded, err := LoadMintKey(path)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !priv.Equals(loaded) {
		t.Fatalf("loaded faucet key differs from the saved one")
	}

	if err := os.Chmod(path, 0644); err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, err := LoadMintKey(path); !common.Is(err, common.IO) {
		t.Fatalf("world readable mint.key should be rejected, got %v", err)
	}
}

func TestVerifyTampered(t *testing.T) {
	priv, err := keys.GenerateSigningKey(testSeed(5).Reader(keys.FaucetRole))
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	set := &peers.ValidatorSet{
		Validators: []peers.ValidatorInfo{
			{
				PeerID:                   "QmPeer",
				ConsensusPublicKey:       []byte{4, 1, 2, 3},
				ConsensusVotingPower:     peers.DefaultVotingPower,
				NetworkSigningPublicKey:  []byte{5, 6},
				NetworkIdentityPublicKey: []byte{7, 8},
			},
		},
	}

	blob, err := EncodeGenesisTransaction(priv, set)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, err := Verify(blob); err != nil {
		t.Fatalf("err: %v", err)
	}

	tamper := []func(s *SignedTransaction){
		func(s *SignedTransaction) { s.Signature[0] ^= 1 },
		func(s *SignedTransaction) { s.RawTransaction[len(s.RawTransaction)-1] ^= 1 },
		func(s *SignedTransaction) {
			other, _ := keys.GenerateSigningKey(testSeed(6).Reader(keys.FaucetRole))
			s.PublicKey, _ = other.GetPublic().Raw()
		},
	}

	for i, f := range tamper {
		s, err := DecodeSignedTransaction(blob)
		if err != nil {
			t.Fatalf("err: %v", err)
		}

		f(s)

		tampered, err := s.Marshal()
		if err != nil {
			t.Fatalf("err: %v", err)
		}

		if _, err := Verify(tampered); !common.Is(err, common.Encoding) {
			t.Fatalf("tamper %d: expected verification failure, got %v", i, err)
		}
	}

	if _, err := Verify([]byte("not a blob")); err == nil {
		t.Fatalf("garbage should not decode")
	}
}
