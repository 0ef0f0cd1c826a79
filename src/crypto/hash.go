package crypto

import (
	"golang.org/x/crypto/sha3"
)

// SHA3 returns the SHA3-256 hash of the concatenation of data.
func SHA3(data ...[]byte) []byte {
	hasher := sha3.New256()
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}
