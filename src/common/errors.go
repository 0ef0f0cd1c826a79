package common

import (
	"errors"
	"fmt"
)

// GenesisErrType classifies the fatal conditions of the config and genesis
// pipelines.
type GenesisErrType uint32

const (
	// Entropy means the OS random source could not be read.
	Entropy GenesisErrType = iota
	// Unsupported is a configuration that is intentionally not implemented.
	Unsupported
	// DuplicatePeer means a peer ID was supplied more than once.
	DuplicatePeer
	// NoPeers means there was nothing to build a genesis from.
	NoPeers
	// IO is a failed directory creation, file read or file write.
	IO
	// Encoding is a failed (de)serialization or signature.
	Encoding
)

// GenesisErr is the error returned by every fatal condition. The subject is
// the thing the error is about: a path, a peer ID, or a configuration option.
type GenesisErr struct {
	errType GenesisErrType
	subject string
	cause   error
}

// NewGenesisErr ...
func NewGenesisErr(errType GenesisErrType, subject string, cause error) GenesisErr {
	return GenesisErr{
		errType: errType,
		subject: subject,
		cause:   cause,
	}
}

// NewIOErr wraps an I/O failure with the path it happened on.
func NewIOErr(path string, cause error) GenesisErr {
	return NewGenesisErr(IO, path, cause)
}

// Type returns the kind of error.
func (e GenesisErr) Type() GenesisErrType {
	return e.errType
}

// Subject returns the path, peer ID or option the error refers to.
func (e GenesisErr) Subject() string {
	return e.subject
}

// Error ...
func (e GenesisErr) Error() string {
	switch e.errType {
	case Entropy:
		return fmt.Sprintf("RNG failure: %v", e.cause)
	case Unsupported:
		return fmt.Sprintf("unsupported configuration: %s", e.subject)
	case DuplicatePeer:
		return fmt.Sprintf("duplicate peer ID: %s", e.subject)
	case NoPeers:
		return fmt.Sprintf("no peers given! Usage: %s", e.subject)
	case IO:
		return fmt.Sprintf("%s: %v", e.subject, e.cause)
	case Encoding:
		return fmt.Sprintf("encoding %s: %v", e.subject, e.cause)
	}
	return fmt.Sprintf("%s: %v", e.subject, e.cause)
}

// Unwrap returns the underlying cause, if any.
func (e GenesisErr) Unwrap() error {
	return e.cause
}

// Is checks that err, or any error it wraps, is a GenesisErr of type t.
func Is(err error, t GenesisErrType) bool {
	var genesisErr GenesisErr
	return errors.As(err, &genesisErr) && genesisErr.errType == t
}
