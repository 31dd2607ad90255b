package services

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gigboard/gigboard-api/internal/chains"
	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/pkg/logger"
	"github.com/gigboard/gigboard-api/pkg/metrics"
	"go.uber.org/zap"
)

// defaultDepositAmount is the USDC amount used when the frame input is empty
const defaultDepositAmount = "1"

// FrameService prepares deposit transactions for frame clients
type FrameService struct {
	registry *chains.Registry
}

// NewFrameService creates a new frame service instance
func NewFrameService(registry *chains.Registry) *FrameService {
	return &FrameService{registry: registry}
}

// PrepareApproval builds the ERC-20 approve transaction a frame client must
// submit before depositing USDC into the escrow contract. The approval is
// sent to the USDC token contract with the escrow contract as spender.
func (s *FrameService) PrepareApproval(ctx context.Context, action *models.FrameActionData) (*models.FrameTransactionResponse, error) {
	network := action.Network
	if network == "" {
		network = chains.DefaultNetwork
	}

	chain, err := s.registry.Lookup(network)
	if err != nil {
		metrics.FrameTransactions.WithLabelValues(network, "unsupported_network").Inc()
		logger.Warn("Frame request for unsupported network",
			zap.String("network", network),
			zap.Int64("fid", action.FID))
		return nil, err
	}

	amountText := action.InputText
	if amountText == "" {
		amountText = defaultDepositAmount
	}

	amount, err := chains.ParseAmount(amountText, chain.USDC.Decimals)
	if err != nil {
		metrics.FrameTransactions.WithLabelValues(network, "invalid_amount").Inc()
		logger.Warn("Frame request with invalid amount",
			zap.String("network", network),
			zap.String("input_text", amountText),
			zap.Error(err))
		return nil, err
	}

	data, err := chains.EncodeApprove(chain.DepositContract, amount)
	if err != nil {
		metrics.FrameTransactions.WithLabelValues(network, "encode_failed").Inc()
		logger.Error("Failed to encode approve calldata",
			zap.String("network", network),
			zap.Error(err))
		return nil, err
	}

	metrics.FrameTransactions.WithLabelValues(network, "success").Inc()
	logger.Info("Prepared deposit approval transaction",
		zap.String("network", network),
		zap.String("amount", amount.String()),
		zap.Int64("fid", action.FID))

	return &models.FrameTransactionResponse{
		ChainID: chain.CAIP2(),
		Method:  "eth_sendTransaction",
		Params: models.FrameTransactionParams{
			ABI:  json.RawMessage(chains.ERC20ApproveABI),
			To:   chain.USDC.Address.Hex(),
			Data: hexutil.Encode(data),
		},
	}, nil
}
