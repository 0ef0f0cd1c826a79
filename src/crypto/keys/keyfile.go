package keys

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/open-libra/open-libra/src/common"
)

// Keyfile reads and writes a private key record as TOML. Key files are only
// ever readable by their owner.
type Keyfile struct {
	l       sync.Mutex
	keyfile string
}

// NewKeyfile instantiates a new Keyfile with an underlying file
func NewKeyfile(keyfile string) *Keyfile {
	return &Keyfile{
		keyfile: keyfile,
	}
}

// Path ...
func (k *Keyfile) Path() string {
	return k.keyfile
}

// CheckFileInfo verifies that the file exists and has user permissions only.
func (k *Keyfile) CheckFileInfo() error {
	info, err := os.Stat(k.keyfile)
	if err != nil {
		return common.NewIOErr(k.keyfile, err)
	}

	// get file permissions
	perm := info.Mode().Perm()

	// build 000111111 mask
	var nonUserMask os.FileMode = (1 << 6) - 1

	// get permissions for 'groups' and 'others'
	nonUserPerm := perm & nonUserMask

	if nonUserPerm != 0 {
		return common.NewIOErr(k.keyfile,
			fmt.Errorf("key file permissions should exclude 'groups' and 'others'. Got %o", perm))
	}

	return nil
}

// Read decodes the key file into record, which must be a pointer to
// ConsensusKeyPair or NetworkKeyPairs.
func (k *Keyfile) Read(record interface{}) error {
	k.l.Lock()
	defer k.l.Unlock()

	if err := k.CheckFileInfo(); err != nil {
		return err
	}

	return common.LoadTOML(k.keyfile, record)
}

// Write persists record, creating the parent directory if needed.
func (k *Keyfile) Write(record interface{}) error {
	k.l.Lock()
	defer k.l.Unlock()

	if err := common.MkdirAll(filepath.Dir(k.keyfile)); err != nil {
		return err
	}

	return common.SaveTOML(k.keyfile, record, common.PrivateFileMode)
}
