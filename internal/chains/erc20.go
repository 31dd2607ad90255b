package chains

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ERC20ApproveABI is the approve(address,uint256) fragment returned to frame
// clients verbatim in the transaction response
var ERC20ApproveABI = []byte(`[{"inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"}]`)

// EncodeApprove builds calldata for approve(spender, amount):
// the 4-byte selector followed by two 32-byte words.
func EncodeApprove(spender common.Address, amount *big.Int) ([]byte, error) {
	if amount == nil {
		return nil, fmt.Errorf("approve amount is required")
	}

	parsedABI, err := abi.JSON(bytes.NewReader(ERC20ApproveABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ERC20 ABI: %w", err)
	}

	data, err := parsedABI.Pack("approve", spender, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to encode approve call: %w", err)
	}

	return data, nil
}
