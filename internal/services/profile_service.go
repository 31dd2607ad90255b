package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gigboard/gigboard-api/config"
	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/internal/repository"
	apperrors "github.com/gigboard/gigboard-api/pkg/errors"
	"github.com/gigboard/gigboard-api/pkg/logger"
	"github.com/gigboard/gigboard-api/pkg/metrics"
	"github.com/gigboard/gigboard-api/pkg/storage"
	"go.uber.org/zap"
)

// maxAvatarBytes limits decoded avatar uploads to 10 MiB
const maxAvatarBytes = 10 << 20

// StorageClient captures the storage operations the profile flow needs
type StorageClient interface {
	UploadImage(ctx context.Context, imageData, key, contentType string) (string, error)
}

type ProfileService struct {
	freelancerRepo repository.FreelancerRepositoryInterface
	storageClient  StorageClient
	config         *config.Config
}

func NewProfileService(
	freelancerRepo repository.FreelancerRepositoryInterface,
	storageClient StorageClient,
	cfg *config.Config,
) *ProfileService {
	return &ProfileService{
		freelancerRepo: freelancerRepo,
		storageClient:  storageClient,
		config:         cfg,
	}
}

// GetProfile returns the full profile of the session owner
func (s *ProfileService) GetProfile(ctx context.Context, freelancerUUID string) (*models.Freelancer, error) {
	return s.freelancerRepo.GetByUUID(ctx, freelancerUUID)
}

// SaveProfile updates the profile fields of the session owner
func (s *ProfileService) SaveProfile(ctx context.Context, freelancerUUID string, req *models.SaveProfileRequest) error {
	freelancer, err := s.freelancerRepo.GetByUUID(ctx, freelancerUUID)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"Name":       strings.TrimSpace(req.Name),
		"Skills":     req.Skills,
		"Experience": req.Experience,
		"HourlyRate": req.HourlyRate,
		"Portfolio":  req.Portfolio,
		"Bio":        req.Bio,
		"IsVisible":  *req.IsVisible,
	}

	if err := s.freelancerRepo.UpdateProfile(ctx, freelancer.Slug, updates); err != nil {
		metrics.ProfileUpdates.WithLabelValues("error").Inc()
		logger.Error("Failed to update freelancer profile",
			zap.Error(err),
			zap.String("uuid", freelancerUUID))
		return err
	}

	metrics.ProfileUpdates.WithLabelValues("success").Inc()
	logger.Info("Freelancer profile updated", zap.String("uuid", freelancerUUID))

	return nil
}

// UploadAvatar validates and stores an avatar image, then links it to the profile
func (s *ProfileService) UploadAvatar(ctx context.Context, freelancerUUID string, req *models.UploadAvatarRequest) (string, error) {
	if s.storageClient == nil {
		metrics.AvatarUploads.WithLabelValues("not_configured").Inc()
		return "", fmt.Errorf("object storage is not configured")
	}

	freelancer, err := s.freelancerRepo.GetByUUID(ctx, freelancerUUID)
	if err != nil {
		return "", err
	}

	if err := storage.ValidateImageType(req.ContentType); err != nil {
		metrics.AvatarUploads.WithLabelValues("invalid_type").Inc()
		return "", apperrors.InvalidInputError("image", err.Error())
	}

	if err := storage.ValidateImageSize(req.Image, maxAvatarBytes); err != nil {
		metrics.AvatarUploads.WithLabelValues("too_large").Inc()
		return "", apperrors.InvalidInputError("image", err.Error())
	}

	key := avatarKey(freelancer.UUID, req.ContentType)

	avatarURL, err := s.storageClient.UploadImage(ctx, req.Image, key, req.ContentType)
	if err != nil {
		metrics.AvatarUploads.WithLabelValues("error").Inc()
		logger.Error("Failed to upload avatar",
			zap.Error(err),
			zap.String("uuid", freelancerUUID))
		return "", fmt.Errorf("failed to upload image")
	}

	// Link asynchronously, the image is already stored
	go func() {
		if err := s.freelancerRepo.UpdateAvatar(context.Background(), freelancer.Slug, avatarURL); err != nil {
			logger.Error("Failed to link avatar to profile",
				zap.Error(err),
				zap.String("uuid", freelancerUUID))
		}
	}()

	metrics.AvatarUploads.WithLabelValues("success").Inc()
	logger.Info("Avatar uploaded",
		zap.String("uuid", freelancerUUID),
		zap.String("url", avatarURL))

	return avatarURL, nil
}

// avatarKey builds a deterministic storage key so re-uploads replace the
// previous avatar instead of accumulating objects.
func avatarKey(freelancerUUID, contentType string) string {
	ext := ".jpg"
	switch strings.ToLower(contentType) {
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	}

	return "avatars/" + freelancerUUID + ext
}
