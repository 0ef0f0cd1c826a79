package config

import (
	"fmt"

	"github.com/open-libra/open-libra/src/common"
)

// Variant is a node configuration the generator knows how to produce. The set
// is closed: a request that maps to no Variant is rejected before anything is
// generated.
type Variant int

const (
	// ValidatorPermissioned is a validator on a permissioned validator
	// network.
	ValidatorPermissioned Variant = iota
)

// Role values as written in node.config.toml.
const (
	ValidatorRole = "validator"
	FullNodeRole  = "full_node"
)

// VariantFor maps a requested role and permissioning mode to a Variant.
func VariantFor(role string, permissioned bool) (Variant, error) {
	switch {
	case role == ValidatorRole && permissioned:
		return ValidatorPermissioned, nil
	case role == ValidatorRole:
		return 0, common.NewGenesisErr(common.Unsupported, "permissionless validator network", nil)
	case role == FullNodeRole:
		return 0, common.NewGenesisErr(common.Unsupported, "full node role", nil)
	default:
		return 0, common.NewGenesisErr(common.Unsupported, fmt.Sprintf("role %q", role), nil)
	}
}

// Role is the node role of the variant.
func (v Variant) Role() string {
	switch v {
	case ValidatorPermissioned:
		return ValidatorRole
	default:
		return ""
	}
}

// IsPermissioned ...
func (v Variant) IsPermissioned() bool {
	return v == ValidatorPermissioned
}

func (v Variant) String() string {
	switch v {
	case ValidatorPermissioned:
		return "ValidatorPermissioned"
	default:
		return "Unknown"
	}
}
