package ledger

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/proofcapsule/pc-anchor/internal/domain"
)

// ContractSet holds the deployed contract addresses on one chain
type ContractSet struct {
	// NFT is the capsule token contract
	NFT common.Address
	// Registry is the per-user aggregate contract. The zero address means
	// the registry is not deployed on this chain.
	Registry common.Address
}

// Registry maps supported chains to their deployed contracts. Operations on
// a chain without an entry fail loudly rather than falling back to a default.
type Registry struct {
	contracts map[domain.Chain]ContractSet
}

// DefaultRegistry returns the registry with the production deployments
func DefaultRegistry() *Registry {
	return &Registry{
		contracts: map[domain.Chain]ContractSet{
			domain.ChainSonicMainnet: {
				NFT:      common.HexToAddress("0x8F840F2d5df100C5c3b0C3d181c3EFA3d6C5068A"),
				Registry: common.HexToAddress("0x45b1f38d1adfB5A9FFAA81b996a53bE78A33cF0c"),
			},
			domain.ChainSonicBlaze: {
				NFT: common.HexToAddress("0x075bECC2a2D3c2210a60b9C8503EBf18a1FA0Ca3"),
				// Registry not deployed on the testnet yet
			},
		},
	}
}

// NewRegistry builds a registry from an explicit chain-to-contracts map
func NewRegistry(contracts map[domain.Chain]ContractSet) *Registry {
	return &Registry{contracts: contracts}
}

// Contracts returns the contract set for a chain
func (r *Registry) Contracts(chain domain.Chain) (ContractSet, error) {
	set, ok := r.contracts[chain]
	if !ok {
		return ContractSet{}, fmt.Errorf("%w: %s (chain ID: %d)", domain.ErrUnsupportedChain, chain.Name(), uint64(chain))
	}
	return set, nil
}

// Supported reports whether a chain has a contract deployment
func (r *Registry) Supported(chain domain.Chain) bool {
	_, ok := r.contracts[chain]
	return ok
}
