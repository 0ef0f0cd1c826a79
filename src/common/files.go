package common

import (
	"bytes"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/toml"
)

// Permissions used for generated artifacts. Anything holding private key
// material is written with PrivateFileMode.
const (
	DirMode         os.FileMode = 0700
	PrivateFileMode os.FileMode = 0600
	PublicFileMode  os.FileMode = 0644
)

// WriteFile writes data to path and forces perm, even if the file already
// existed with wider permissions.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := ioutil.WriteFile(path, data, perm); err != nil {
		return NewIOErr(path, err)
	}
	if err := os.Chmod(path, perm); err != nil {
		return NewIOErr(path, err)
	}
	return nil
}

// ReadFile ...
func ReadFile(path string) ([]byte, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, NewIOErr(path, err)
	}
	return buf, nil
}

// MkdirAll creates dir and any missing parents.
func MkdirAll(dir string) error {
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return NewIOErr(dir, err)
	}
	return nil
}

// SaveTOML encodes record as TOML and writes it to path.
func SaveTOML(path string, record interface{}, perm os.FileMode) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(record); err != nil {
		return NewGenesisErr(Encoding, path, err)
	}
	return WriteFile(path, buf.Bytes(), perm)
}

// LoadTOML decodes the TOML file at path into record, which must be a
// pointer.
func LoadTOML(path string, record interface{}) error {
	buf, err := ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := toml.Decode(string(buf), record); err != nil {
		return NewGenesisErr(Encoding, path, err)
	}
	return nil
}
