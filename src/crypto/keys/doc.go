// Package keys generates and stores the key material of a validator.
//
// A validator owns three independent key pairs:
//
//  consensus        secp256k1 ECDSA, signs consensus messages
//  network signing  Ed25519, authenticates the node on the network; the peer ID
//                   is derived from its public key
//  network identity X25519, used for the encrypted transport handshake
//
// All of them are derived from a single 32-byte Seed. A seed is either given by
// the operator, which makes key generation reproducible, or read from the OS
// entropy source. Each role reads its own HKDF stream from the seed, so the
// roles never share key bytes.
//
// Private keys are persisted in TOML key files that must only be readable by
// their owner (see Keyfile).
package keys
