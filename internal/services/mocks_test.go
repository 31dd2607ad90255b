package services_test

import (
	"context"
	"io"
	"net/http"

	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockFreelancerRepository is a mock implementation of FreelancerRepositoryInterface
type MockFreelancerRepository struct {
	mock.Mock
}

func (m *MockFreelancerRepository) GetAll(ctx context.Context, opts models.FilterOptions) ([]*models.Freelancer, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Freelancer), args.Error(1)
}

func (m *MockFreelancerRepository) GetBySlug(ctx context.Context, slug string, opts models.FilterOptions) (*models.Freelancer, error) {
	args := m.Called(ctx, slug, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Freelancer), args.Error(1)
}

func (m *MockFreelancerRepository) GetByWallet(ctx context.Context, wallet string) (*models.Freelancer, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Freelancer), args.Error(1)
}

func (m *MockFreelancerRepository) GetByUUID(ctx context.Context, uuid string) (*models.Freelancer, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Freelancer), args.Error(1)
}

func (m *MockFreelancerRepository) Create(ctx context.Context, f *models.Freelancer) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFreelancerRepository) UpdateProfile(ctx context.Context, slug string, updates map[string]interface{}) error {
	args := m.Called(ctx, slug, updates)
	return args.Error(0)
}

func (m *MockFreelancerRepository) UpdateAvatar(ctx context.Context, slug, avatarURL string) error {
	args := m.Called(ctx, slug, avatarURL)
	return args.Error(0)
}

func (m *MockFreelancerRepository) GetAllSkills(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFreelancerRepository) RefreshFreelancer(slug string) {
	m.Called(slug)
}

func (m *MockFreelancerRepository) InvalidateCache() {
	m.Called()
}

// MockVerifier is a mock implementation of recaptcha.VerifierInterface
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockStorageClient is a mock implementation of services.StorageClient
type MockStorageClient struct {
	mock.Mock
}

func (m *MockStorageClient) UploadImage(ctx context.Context, imageData, key, contentType string) (string, error) {
	args := m.Called(ctx, imageData, key, contentType)
	return args.String(0), args.Error(1)
}

// MockHTTPClient is a mock implementation of httpclient.Client
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	args := m.Called(url, contentType, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func (m *MockHTTPClient) Get(url string) (*http.Response, error) {
	args := m.Called(url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}
