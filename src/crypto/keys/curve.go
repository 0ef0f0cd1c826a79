package keys

import (
	"crypto/elliptic"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

/*
Consensus keys are secp256k1 ECDSA keys, the curve Bitcoin and Ethereum use.
The network keys are Curve25519 based and live in network_key.go.
*/

//Parameters of the secp256k1 curve. They are used in other function to verify
//that a private key is valid.
var (
	secp256k1N, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
)

//Curve returns the consensus elliptic.Curve, btcsuite's implementation of
//secp256k1.
func Curve() elliptic.Curve {
	return btcec.S256()
}
