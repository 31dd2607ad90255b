package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gigboard/gigboard-api/internal/chains"
	"github.com/gigboard/gigboard-api/internal/handlers"
	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The frame endpoint is tested against the real service and chain registry.
// Calldata is deterministic, so no mocks are needed.
func setupFrameRouter() *gin.Engine {
	handler := handlers.NewFrameHandler(services.NewFrameService(chains.NewRegistry()))
	router := gin.New()
	router.POST("/frames/deposit/approval", handler.PrepareDepositApproval)
	return router
}

func frameRequestBody(network, inputText string) map[string]interface{} {
	return map[string]interface{}{
		"untrustedData": map[string]interface{}{
			"fid":         42,
			"url":         "https://gigboard.xyz/frames/deposit",
			"messageHash": "0x10d1",
			"timestamp":   1700000000,
			"network":     network,
			"buttonIndex": 1,
			"inputText":   inputText,
		},
		"trustedData": map[string]interface{}{
			"messageBytes": "d2b1ddc6c88e865a33cb1a565e0058d757042974",
		},
	}
}

func postFrame(router *gin.Engine, reqBody interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/frames/deposit/approval", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestFrameHandler_PrepareDepositApproval_Defaults verifies the default
// network and deposit amount when the frame sends no input
func TestFrameHandler_PrepareDepositApproval_Defaults(t *testing.T) {
	router := setupFrameRouter()

	w := postFrame(router, frameRequestBody("", ""))

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.FrameTransactionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "eip155:11155420", resp.ChainID)
	assert.Equal(t, "eth_sendTransaction", resp.Method)
	assert.Equal(t, "0x5fd84259d66Cd46123540766Be93DFE6D43130D7", resp.Params.To)

	// approve(address,uint256): 4-byte selector plus two 32-byte words
	assert.Len(t, resp.Params.Data, 2+8+64+64)
	assert.True(t, strings.HasPrefix(resp.Params.Data, "0x095ea7b3"))
	assert.Contains(t, resp.Params.Data, "3f6e8f076e4ad9abbc8fea4e35a14cb76f0d3aa7")

	// 1 USDC with 6 decimals
	assert.True(t, strings.HasSuffix(resp.Params.Data, "f4240"))
}

// TestFrameHandler_PrepareDepositApproval_ArbitrumSepolia verifies network
// selection and a custom amount from the frame input
func TestFrameHandler_PrepareDepositApproval_ArbitrumSepolia(t *testing.T) {
	router := setupFrameRouter()

	w := postFrame(router, frameRequestBody("arbitrum-sepolia", "5"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.FrameTransactionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "eip155:421614", resp.ChainID)
	assert.Equal(t, "0x75faf114eafb1BDbe2F0316DF893fd58CE46AA4d", resp.Params.To)
	assert.Contains(t, resp.Params.Data, "9a1fc8c0369d49f3040bf49c1490e7e6d6d5c832")

	// 5 USDC with 6 decimals is 5000000
	assert.True(t, strings.HasSuffix(resp.Params.Data, "4c4b40"))
}

// TestFrameHandler_PrepareDepositApproval_MissingTrustedData verifies the
// uniform error body when the frame payload is incomplete
func TestFrameHandler_PrepareDepositApproval_MissingTrustedData(t *testing.T) {
	router := setupFrameRouter()

	reqBody := frameRequestBody("", "")
	delete(reqBody, "trustedData")

	w := postFrame(router, reqBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Failed to process frame request"}`, w.Body.String())
}

// TestFrameHandler_PrepareDepositApproval_UnsupportedNetwork verifies frame
// failures never leak the underlying cause to the client
func TestFrameHandler_PrepareDepositApproval_UnsupportedNetwork(t *testing.T) {
	router := setupFrameRouter()

	w := postFrame(router, frameRequestBody("base-mainnet", "1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Failed to process frame request"}`, w.Body.String())
}

// TestFrameHandler_PrepareDepositApproval_InvalidAmount verifies malformed
// frame input is rejected
func TestFrameHandler_PrepareDepositApproval_InvalidAmount(t *testing.T) {
	router := setupFrameRouter()

	for _, input := range []string{"abc", "-1", "1e6"} {
		w := postFrame(router, frameRequestBody("", input))

		assert.Equal(t, http.StatusBadRequest, w.Code, "input %q should be rejected", input)
		assert.JSONEq(t, `{"error": "Failed to process frame request"}`, w.Body.String())
	}
}
