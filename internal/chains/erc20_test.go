package chains

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeApprove(t *testing.T) {
	spender := common.HexToAddress("0x9a1fc8c0369d49f3040bf49c1490e7e6d6d5c832")
	amount := big.NewInt(1_000_000)

	data, err := EncodeApprove(spender, amount)
	require.NoError(t, err)

	// selector + spender word + amount word
	require.Len(t, data, 4+32+32)
	assert.Equal(t, "0x095ea7b3", hexutil.Encode(data[:4]))

	var spenderWord [32]byte
	copy(spenderWord[12:], spender.Bytes())
	assert.Equal(t, spenderWord[:], data[4:36])

	var amountWord [32]byte
	amount.FillBytes(amountWord[:])
	assert.Equal(t, amountWord[:], data[36:68])
}

func TestEncodeApprove_ZeroAmount(t *testing.T) {
	data, err := EncodeApprove(common.HexToAddress("0x3f6e8f076e4ad9abbc8fea4e35a14cb76f0d3aa7"), big.NewInt(0))
	require.NoError(t, err)
	require.Len(t, data, 68)

	var zeroWord [32]byte
	assert.Equal(t, zeroWord[:], data[36:68])
}

func TestEncodeApprove_NilAmount(t *testing.T) {
	_, err := EncodeApprove(common.Address{}, nil)
	require.Error(t, err)
}

func TestERC20ApproveABI_IsValidJSON(t *testing.T) {
	var fragments []map[string]interface{}
	require.NoError(t, json.Unmarshal(ERC20ApproveABI, &fragments))
	require.Len(t, fragments, 1)
	assert.Equal(t, "approve", fragments[0]["name"])
	assert.Equal(t, "function", fragments[0]["type"])
}
