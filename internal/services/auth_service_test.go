package services_test

import (
	"context"
	"crypto/ecdsa"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gigboard/gigboard-api/config"
	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			JWTSecret:           "test-secret",
			JWTIssuer:           "gigboard-api",
			SessionTTLHours:     24,
			ChallengeTTLMinutes: 5,
		},
	}
}

// signChallenge signs a challenge message the way a browser wallet does:
// EIP-191 personal_sign with the recovery id offset to 27/28.
func signChallenge(t *testing.T, key *ecdsa.PrivateKey, message string) string {
	t.Helper()

	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)

	sig[64] += 27
	return hexutil.Encode(sig)
}

func TestAuthService_RequestChallenge(t *testing.T) {
	mockRepo := new(MockFreelancerRepository)
	service := services.NewAuthService(mockRepo, authTestConfig())
	ctx := context.Background()

	wallet := "0xabcdef0123456789abcdef0123456789abcdef01"
	freelancer := &models.Freelancer{UUID: "uuid-1", Name: "Jane", WalletAddress: wallet}

	// Checksummed input is normalized before the lookup
	mockRepo.On("GetByWallet", ctx, wallet).Return(freelancer, nil).Once()

	resp, err := service.RequestChallenge(ctx, "0xAbCdEf0123456789abcdef0123456789ABCDEF01")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.Nonce, "gbn_"))
	assert.Contains(t, resp.Message, "Sign in to Gigboard")
	assert.Contains(t, resp.Message, wallet)
	assert.Contains(t, resp.Message, resp.Nonce)
	assert.Equal(t, 300, resp.ExpiresIn)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_RequestChallenge_UnknownWallet(t *testing.T) {
	mockRepo := new(MockFreelancerRepository)
	service := services.NewAuthService(mockRepo, authTestConfig())
	ctx := context.Background()

	wallet := "0xabcdef0123456789abcdef0123456789abcdef01"
	mockRepo.On("GetByWallet", ctx, wallet).Return(nil, assert.AnError).Once()

	resp, err := service.RequestChallenge(ctx, wallet)
	assert.ErrorIs(t, err, services.ErrFreelancerNotFound)
	assert.Nil(t, resp)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_VerifyWallet(t *testing.T) {
	mockRepo := new(MockFreelancerRepository)
	service := services.NewAuthService(mockRepo, authTestConfig())
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	wallet := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())

	freelancer := &models.Freelancer{UUID: "uuid-1", Name: "Jane", Slug: "jane", WalletAddress: wallet}
	mockRepo.On("GetByWallet", ctx, wallet).Return(freelancer, nil).Twice()

	challenge, err := service.RequestChallenge(ctx, wallet)
	require.NoError(t, err)

	verifyReq := &models.WalletVerifyRequest{
		WalletAddress: wallet,
		Signature:     signChallenge(t, key, challenge.Message),
	}

	session, token, err := service.VerifyWallet(ctx, verifyReq)
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, "uuid-1", session.FreelancerUUID)
	assert.Equal(t, wallet, session.Wallet)
	assert.Equal(t, "Jane", session.Name)
	assert.True(t, session.ExpiresAt.After(session.IssuedAt))

	// The issued token must round-trip through validation
	claims, err := service.GetTokenManager().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", claims.FreelancerUUID)
	assert.Equal(t, wallet, claims.Wallet)

	// Challenges are single-use
	_, _, err = service.VerifyWallet(ctx, verifyReq)
	assert.ErrorIs(t, err, services.ErrChallengeExpired)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_VerifyWallet_WrongKey(t *testing.T) {
	mockRepo := new(MockFreelancerRepository)
	service := services.NewAuthService(mockRepo, authTestConfig())
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	wallet := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())

	attackerKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	freelancer := &models.Freelancer{UUID: "uuid-1", Name: "Jane", WalletAddress: wallet}
	mockRepo.On("GetByWallet", ctx, wallet).Return(freelancer, nil).Once()

	challenge, err := service.RequestChallenge(ctx, wallet)
	require.NoError(t, err)

	verifyReq := &models.WalletVerifyRequest{
		WalletAddress: wallet,
		Signature:     signChallenge(t, attackerKey, challenge.Message),
	}

	session, _, err := service.VerifyWallet(ctx, verifyReq)
	assert.ErrorIs(t, err, services.ErrInvalidSignature)
	assert.Nil(t, session)
}

func TestAuthService_VerifyWallet_NoChallenge(t *testing.T) {
	mockRepo := new(MockFreelancerRepository)
	service := services.NewAuthService(mockRepo, authTestConfig())
	ctx := context.Background()

	verifyReq := &models.WalletVerifyRequest{
		WalletAddress: "0xabcdef0123456789abcdef0123456789abcdef01",
		Signature:     "0x" + strings.Repeat("ab", 65),
	}

	session, _, err := service.VerifyWallet(ctx, verifyReq)
	assert.ErrorIs(t, err, services.ErrChallengeExpired)
	assert.Nil(t, session)
}

func TestAuthService_VerifyWallet_NoJWTSecret(t *testing.T) {
	mockRepo := new(MockFreelancerRepository)
	cfg := authTestConfig()
	cfg.Session.JWTSecret = ""
	service := services.NewAuthService(mockRepo, cfg)
	ctx := context.Background()

	verifyReq := &models.WalletVerifyRequest{
		WalletAddress: "0xabcdef0123456789abcdef0123456789abcdef01",
		Signature:     "0x" + strings.Repeat("ab", 65),
	}

	_, _, err := service.VerifyWallet(ctx, verifyReq)
	assert.ErrorIs(t, err, services.ErrJWTSecretNotSet)
}
