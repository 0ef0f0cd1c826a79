// Package config defines the configuration shared by the open-libra commands
// and the node configuration they generate.
//
// Config carries the tool-wide settings (log level, audit log, configuration
// directory) and builds the logger. NodeConfig is the record written to
// node.config.toml for each generated node. It references the other files
// found in the node's directory:
//
//  consensus_keypair.config.toml // consensus private and public key
//  network_keypairs.config.toml  // network signing and identity keys
//  consensus_peers.config.toml   // consensus registry, produced by genesis
//  network_peers.config.toml     // network registry, produced by genesis
//
// Variant is the closed set of node configurations the tool can produce.
package config
