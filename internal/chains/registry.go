// Package chains holds the static EVM network registry for the deposit flow:
// which testnets Gigboard accepts USDC deposits on, the USDC contract and the
// deposit escrow contract per network, and the calldata encoding for the
// ERC-20 approval step.
package chains

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// Network keys as they appear in frame payloads
const (
	NetworkOptimismSepolia = "optimism-sepolia"
	NetworkArbitrumSepolia = "arbitrum-sepolia"

	// DefaultNetwork is used when a frame request carries no network
	DefaultNetwork = NetworkOptimismSepolia

	// USDCDecimals is the smallest-unit scale of USDC on every supported network
	USDCDecimals = 6
)

// AssetInfo describes the USDC deployment on a network.
// Name and Version mirror the token's EIP-712 domain.
type AssetInfo struct {
	Address  common.Address
	Name     string
	Version  string
	Decimals int
}

// ChainConfig describes one supported network
type ChainConfig struct {
	Name            string
	ChainID         *big.Int
	DepositContract common.Address
	USDC            AssetInfo
}

// CAIP2 returns the CAIP-2 identifier, e.g. "eip155:11155420"
func (c ChainConfig) CAIP2() string {
	return fmt.Sprintf("eip155:%s", c.ChainID.String())
}

// chainConfigs is fixed at startup; deposits run on testnets only for now
var chainConfigs = map[string]ChainConfig{
	NetworkOptimismSepolia: {
		Name:            "OP Sepolia",
		ChainID:         big.NewInt(11155420),
		DepositContract: common.HexToAddress("0x3f6e8f076e4ad9abbc8fea4e35a14cb76f0d3aa7"),
		USDC: AssetInfo{
			Address:  common.HexToAddress("0x5fd84259d66Cd46123540766Be93DFE6D43130D7"),
			Name:     "USDC",
			Version:  "2",
			Decimals: USDCDecimals,
		},
	},
	NetworkArbitrumSepolia: {
		Name:            "Arbitrum Sepolia",
		ChainID:         big.NewInt(421614),
		DepositContract: common.HexToAddress("0x9a1fc8c0369d49f3040bf49c1490e7e6d6d5c832"),
		USDC: AssetInfo{
			Address:  common.HexToAddress("0x75faf114eafb1BDbe2F0316DF893fd58CE46AA4d"),
			Name:     "USDC",
			Version:  "2",
			Decimals: USDCDecimals,
		},
	},
}

// Registry resolves network keys to chain configuration
type Registry struct {
	configs map[string]ChainConfig
}

// NewRegistry creates a registry over the built-in network set
func NewRegistry() *Registry {
	return &Registry{configs: chainConfigs}
}

// Lookup returns the configuration for a network key.
// Matching is exact and case-sensitive.
func (r *Registry) Lookup(network string) (ChainConfig, error) {
	cfg, ok := r.configs[network]
	if !ok {
		return ChainConfig{}, fmt.Errorf("unsupported network: %s", network)
	}
	return cfg, nil
}

// Networks returns the supported network keys, sorted
func (r *Registry) Networks() []string {
	keys := make([]string, 0, len(r.configs))
	for k := range r.configs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
