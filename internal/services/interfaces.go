package services

import (
	"context"

	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/pkg/jwt"
)

// FreelancerServiceInterface defines the interface for freelancer directory operations
type FreelancerServiceInterface interface {
	GetAllFreelancers(ctx context.Context, opts models.FilterOptions) ([]*models.Freelancer, error)
	GetFreelancerBySlug(ctx context.Context, slug string, opts models.FilterOptions) (*models.Freelancer, error)
	GetAllSkills(ctx context.Context) ([]string, error)
}

// RegistrationServiceInterface defines the interface for registration service operations
type RegistrationServiceInterface interface {
	RegisterFreelancer(ctx context.Context, req *models.RegisterFreelancerRequest) (*models.RegisterFreelancerResponse, error)
}

// FrameServiceInterface defines the interface for frame transaction preparation
type FrameServiceInterface interface {
	PrepareApproval(ctx context.Context, action *models.FrameActionData) (*models.FrameTransactionResponse, error)
}

// AuthServiceInterface defines the interface for wallet authentication
type AuthServiceInterface interface {
	RequestChallenge(ctx context.Context, walletAddress string) (*models.WalletChallengeResponse, error)
	VerifyWallet(ctx context.Context, req *models.WalletVerifyRequest) (*models.FreelancerSession, string, error)
	GetSessionTTL() int
	GetCookieDomain() string
	GetCookieSecure() bool
	GetTokenManager() *jwt.TokenManager
}

// ProfileServiceInterface defines the interface for profile self-service operations
type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, freelancerUUID string) (*models.Freelancer, error)
	SaveProfile(ctx context.Context, freelancerUUID string, req *models.SaveProfileRequest) error
	UploadAvatar(ctx context.Context, freelancerUUID string, req *models.UploadAvatarRequest) (string, error)
}

// Ensure services implement their interfaces
var _ FreelancerServiceInterface = (*FreelancerService)(nil)
var _ RegistrationServiceInterface = (*RegistrationService)(nil)
var _ FrameServiceInterface = (*FrameService)(nil)
var _ AuthServiceInterface = (*AuthService)(nil)
var _ ProfileServiceInterface = (*ProfileService)(nil)
