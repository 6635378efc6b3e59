package domain

import "errors"

var (
	// ErrUnsupportedChain is returned for operations on a network with no deployed contracts
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrCapsuleNotFound is returned when a capsule is not found
	ErrCapsuleNotFound = errors.New("capsule not found")
)
