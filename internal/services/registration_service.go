package services

import (
	"context"
	"strings"

	"github.com/gigboard/gigboard-api/config"
	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/internal/repository"
	apperrors "github.com/gigboard/gigboard-api/pkg/errors"
	"github.com/gigboard/gigboard-api/pkg/httpclient"
	"github.com/gigboard/gigboard-api/pkg/logger"
	"github.com/gigboard/gigboard-api/pkg/metrics"
	"github.com/gigboard/gigboard-api/pkg/recaptcha"
	"github.com/gigboard/gigboard-api/pkg/slug"
	"github.com/gigboard/gigboard-api/pkg/webhook"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegistrationService handles freelancer registration
type RegistrationService struct {
	freelancerRepo repository.FreelancerRepositoryInterface
	verifier       recaptcha.VerifierInterface
	config         *config.Config
	notifier       *webhook.Notifier
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(
	freelancerRepo repository.FreelancerRepositoryInterface,
	verifier recaptcha.VerifierInterface,
	cfg *config.Config,
	httpClient httpclient.Client,
) *RegistrationService {
	return &RegistrationService{
		freelancerRepo: freelancerRepo,
		verifier:       verifier,
		config:         cfg,
		notifier:       webhook.NewNotifier(cfg.Webhooks.RegistrationWebhookURL, httpClient),
	}
}

// RegisterFreelancer handles the complete freelancer registration flow
func (s *RegistrationService) RegisterFreelancer(ctx context.Context, req *models.RegisterFreelancerRequest) (*models.RegisterFreelancerResponse, error) {
	// 1. Verify ReCAPTCHA when enabled
	if s.config.ReCAPTCHA.Enabled {
		if err := s.verifier.Verify(ctx, req.RecaptchaToken); err != nil {
			metrics.FreelancerRegistrations.WithLabelValues("captcha_failed").Inc()
			logger.Warn("ReCAPTCHA verification failed", zap.Error(err))
			return &models.RegisterFreelancerResponse{
				Success: false,
				Error:   "Captcha verification failed",
			}, err
		}
	}

	// 2. Normalize inputs. Wallet addresses are stored lowercased so the
	// unique constraint catches checksummed duplicates.
	name := strings.TrimSpace(req.FullName)
	wallet := strings.ToLower(req.WalletAddress)
	email := strings.TrimSpace(req.Email)

	// 3. Generate identity
	freelancerUUID := uuid.New().String()
	freelancerSlug := slug.GenerateFreelancerSlug(name, strings.SplitN(freelancerUUID, "-", 2)[0])

	freelancer := &models.Freelancer{
		UUID:          freelancerUUID,
		Slug:          freelancerSlug,
		Name:          name,
		Email:         email,
		Skills:        req.Skills,
		Experience:    req.Experience,
		HourlyRate:    req.HourlyRate,
		Portfolio:     req.Portfolio,
		Bio:           req.Bio,
		WalletAddress: wallet,
		IsVisible:     true,
	}

	// 4. Persist
	if err := s.freelancerRepo.Create(ctx, freelancer); err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			metrics.FreelancerRegistrations.WithLabelValues("conflict").Inc()
			logger.Warn("Registration for already-registered wallet",
				zap.String("wallet", wallet))
			return nil, err
		}

		metrics.FreelancerRegistrations.WithLabelValues("error").Inc()
		logger.Error("Failed to create freelancer", zap.Error(err))
		return nil, err
	}

	logger.Info("Freelancer registered",
		zap.String("uuid", freelancer.UUID),
		zap.String("slug", freelancer.Slug),
		zap.String("wallet", wallet))

	// 5. Notify downstream systems (non-blocking on failure)
	s.notifier.NotifyAsync(freelancer.UUID)

	// 6. Warm the cache entry for the new profile (non-blocking)
	go s.freelancerRepo.RefreshFreelancer(freelancer.Slug)

	metrics.FreelancerRegistrations.WithLabelValues("success").Inc()

	return &models.RegisterFreelancerResponse{
		Success:      true,
		Message:      "Registration received",
		FreelancerID: freelancer.UUID,
	}, nil
}
