package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gigboard/gigboard-api/config"
	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/internal/repository"
	"github.com/gigboard/gigboard-api/pkg/jwt"
	"github.com/gigboard/gigboard-api/pkg/logger"
	"github.com/gigboard/gigboard-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

var (
	ErrFreelancerNotFound = errors.New("freelancer not found")
	ErrChallengeExpired   = errors.New("challenge expired or not requested")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrJWTSecretNotSet    = errors.New("JWT secret not configured")
	ErrNonceGeneration    = errors.New("failed to generate challenge nonce")
)

// AuthService handles wallet-based freelancer authentication.
// Login is a two-step flow: the freelancer requests a challenge for their
// wallet, signs it with the wallet key, and submits the signature for
// verification. Challenges are single-use and expire after a short TTL.
type AuthService struct {
	freelancerRepo repository.FreelancerRepositoryInterface
	config         *config.Config
	tokenManager   *jwt.TokenManager
	challenges     *gocache.Cache
	challengeTTL   time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(freelancerRepo repository.FreelancerRepositoryInterface, cfg *config.Config) *AuthService {
	var tokenManager *jwt.TokenManager
	if cfg.Session.JWTSecret != "" {
		tokenManager = jwt.NewTokenManager(
			cfg.Session.JWTSecret,
			cfg.Session.JWTIssuer,
			cfg.Session.SessionTTLHours,
		)
	}

	challengeTTL := time.Duration(cfg.Session.ChallengeTTLMinutes) * time.Minute

	return &AuthService{
		freelancerRepo: freelancerRepo,
		config:         cfg,
		tokenManager:   tokenManager,
		challenges:     gocache.New(challengeTTL, 2*challengeTTL),
		challengeTTL:   challengeTTL,
	}
}

// RequestChallenge generates a sign-in challenge for a registered wallet
func (s *AuthService) RequestChallenge(ctx context.Context, walletAddress string) (*models.WalletChallengeResponse, error) {
	wallet := strings.ToLower(walletAddress)

	_, err := s.freelancerRepo.GetByWallet(ctx, wallet)
	if err != nil {
		logger.Warn("Challenge request for unknown wallet",
			zap.String("wallet", wallet),
			zap.Error(err))
		metrics.LoginAttempts.WithLabelValues("unknown_wallet").Inc()
		return nil, ErrFreelancerNotFound
	}

	nonce, err := generateNonce()
	if err != nil {
		logger.Error("Failed to generate challenge nonce", zap.Error(err))
		metrics.LoginAttempts.WithLabelValues("nonce_generation_failed").Inc()
		return nil, ErrNonceGeneration
	}

	// Single active challenge per wallet, new requests overwrite
	s.challenges.Set(wallet, nonce, gocache.DefaultExpiration)

	metrics.LoginAttempts.WithLabelValues("challenge_issued").Inc()
	logger.Info("Sign-in challenge issued", zap.String("wallet", wallet))

	return &models.WalletChallengeResponse{
		Success:   true,
		Message:   challengeMessage(wallet, nonce),
		Nonce:     nonce,
		ExpiresIn: int(s.challengeTTL.Seconds()),
	}, nil
}

// VerifyWallet verifies a signed challenge and creates a session
func (s *AuthService) VerifyWallet(ctx context.Context, req *models.WalletVerifyRequest) (*models.FreelancerSession, string, error) {
	start := time.Now()

	if s.tokenManager == nil {
		logger.Error("JWT secret not configured")
		metrics.LoginAttempts.WithLabelValues("not_configured").Inc()
		return nil, "", ErrJWTSecretNotSet
	}

	wallet := strings.ToLower(req.WalletAddress)

	nonceData, found := s.challenges.Get(wallet)
	if !found {
		logger.Warn("Verification without active challenge", zap.String("wallet", wallet))
		metrics.LoginAttempts.WithLabelValues("challenge_expired").Inc()
		return nil, "", ErrChallengeExpired
	}

	nonce, ok := nonceData.(string)
	if !ok {
		metrics.LoginAttempts.WithLabelValues("challenge_expired").Inc()
		return nil, "", ErrChallengeExpired
	}

	recovered, err := recoverSigner(challengeMessage(wallet, nonce), req.Signature)
	if err != nil {
		logger.Warn("Signature recovery failed",
			zap.String("wallet", wallet),
			zap.Error(err))
		metrics.LoginAttempts.WithLabelValues("invalid_signature").Inc()
		return nil, "", ErrInvalidSignature
	}

	if recovered != wallet {
		logger.Warn("Signature signed by different wallet",
			zap.String("wallet", wallet),
			zap.String("recovered", recovered))
		metrics.LoginAttempts.WithLabelValues("invalid_signature").Inc()
		return nil, "", ErrInvalidSignature
	}

	// Challenge is single-use
	s.challenges.Delete(wallet)

	freelancer, err := s.freelancerRepo.GetByWallet(ctx, wallet)
	if err != nil {
		logger.Warn("Verified wallet no longer registered", zap.String("wallet", wallet))
		metrics.LoginAttempts.WithLabelValues("unknown_wallet").Inc()
		return nil, "", ErrFreelancerNotFound
	}

	jwtToken, err := s.tokenManager.GenerateToken(freelancer.UUID, wallet, freelancer.Name)
	if err != nil {
		logger.Error("Failed to generate JWT",
			zap.String("uuid", freelancer.UUID),
			zap.Error(err))
		metrics.LoginAttempts.WithLabelValues("jwt_failed").Inc()
		return nil, "", fmt.Errorf("failed to generate session: %w", err)
	}

	now := time.Now()
	session := &models.FreelancerSession{
		FreelancerUUID: freelancer.UUID,
		Wallet:         wallet,
		Name:           freelancer.Name,
		IssuedAt:       now,
		ExpiresAt:      now.Add(s.tokenManager.GetExpirationTime()),
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	logger.Info("Wallet login successful",
		zap.String("uuid", freelancer.UUID),
		zap.Duration("duration", time.Since(start)))

	return session, jwtToken, nil
}

// GetSessionTTL returns the session TTL in seconds
func (s *AuthService) GetSessionTTL() int {
	return s.config.Session.SessionTTLHours * 3600
}

// GetCookieDomain returns the cookie domain
func (s *AuthService) GetCookieDomain() string {
	return s.config.Session.CookieDomain
}

// GetCookieSecure returns whether cookies should be secure
func (s *AuthService) GetCookieSecure() bool {
	return s.config.Session.CookieSecure
}

// GetTokenManager returns the JWT token manager
func (s *AuthService) GetTokenManager() *jwt.TokenManager {
	return s.tokenManager
}

// challengeMessage builds the message the wallet must sign.
// The wallet address is embedded lowercased so verification is not
// sensitive to checksum casing.
func challengeMessage(wallet, nonce string) string {
	return fmt.Sprintf("Sign in to Gigboard\n\nWallet: %s\nNonce: %s", wallet, nonce)
}

// recoverSigner recovers the lowercased address that signed message with
// an EIP-191 personal_sign signature.
func recoverSigner(message, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", fmt.Errorf("malformed signature: %w", err)
	}
	if len(sig) != 65 {
		return "", fmt.Errorf("invalid signature length: %d", len(sig))
	}

	// Wallets return the recovery id as 27/28, crypto.SigToPub expects 0/1
	if sig[64] >= 27 {
		sig = append([]byte{}, sig...)
		sig[64] -= 27
	}

	pubKey, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return "", fmt.Errorf("failed to recover public key: %w", err)
	}

	return strings.ToLower(crypto.PubkeyToAddress(*pubKey).Hex()), nil
}

// generateNonce creates a secure random challenge nonce
func generateNonce() (string, error) {
	// 32 random bytes (256 bits)
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	// Format: gbn_{random_hex}_{timestamp}
	return fmt.Sprintf("gbn_%s_%d", hex.EncodeToString(bytes), time.Now().Unix()), nil
}
