package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gigboard/gigboard-api/config"
	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestFreelancerService_GetAllFreelancers(t *testing.T) {
	mockRepo := new(MockFreelancerRepository)
	cfg := &config.Config{}
	service := services.NewFreelancerService(mockRepo, cfg)
	ctx := context.Background()

	expectedFreelancers := []*models.Freelancer{
		{ID: 1, Name: "Freelancer 1"},
		{ID: 2, Name: "Freelancer 2"},
	}
	filterOpts := models.FilterOptions{OnlyVisible: true}

	mockRepo.On("GetAll", ctx, filterOpts).Return(expectedFreelancers, nil).Once()

	freelancers, err := service.GetAllFreelancers(ctx, filterOpts)
	assert.NoError(t, err)
	assert.Equal(t, expectedFreelancers, freelancers)
	mockRepo.AssertExpectations(t)
}

func TestFreelancerService_GetAllFreelancers_Error(t *testing.T) {
	mockRepo := new(MockFreelancerRepository)
	cfg := &config.Config{}
	service := services.NewFreelancerService(mockRepo, cfg)
	ctx := context.Background()

	mockError := errors.New("repository error")
	filterOpts := models.FilterOptions{OnlyVisible: true}

	mockRepo.On("GetAll", ctx, filterOpts).Return(nil, mockError).Once()

	freelancers, err := service.GetAllFreelancers(ctx, filterOpts)
	assert.Error(t, err)
	assert.Nil(t, freelancers)
	assert.EqualError(t, err, mockError.Error())
	mockRepo.AssertExpectations(t)
}

func TestFreelancerService_GetFreelancerBySlug(t *testing.T) {
	mockRepo := new(MockFreelancerRepository)
	cfg := &config.Config{}
	service := services.NewFreelancerService(mockRepo, cfg)
	ctx := context.Background()

	expectedFreelancer := &models.Freelancer{ID: 1, Slug: "freelancer-1"}
	filterOpts := models.FilterOptions{OnlyVisible: true}

	mockRepo.On("GetBySlug", ctx, "freelancer-1", filterOpts).Return(expectedFreelancer, nil).Once()

	freelancer, err := service.GetFreelancerBySlug(ctx, "freelancer-1", filterOpts)
	assert.NoError(t, err)
	assert.Equal(t, expectedFreelancer, freelancer)
	mockRepo.AssertExpectations(t)
}

func TestFreelancerService_GetFreelancerBySlug_NotFound(t *testing.T) {
	mockRepo := new(MockFreelancerRepository)
	cfg := &config.Config{}
	service := services.NewFreelancerService(mockRepo, cfg)
	ctx := context.Background()

	mockError := errors.New("freelancer not found")
	filterOpts := models.FilterOptions{OnlyVisible: true}

	mockRepo.On("GetBySlug", ctx, "missing", filterOpts).Return(nil, mockError).Once()

	freelancer, err := service.GetFreelancerBySlug(ctx, "missing", filterOpts)
	assert.Error(t, err)
	assert.Nil(t, freelancer)
	mockRepo.AssertExpectations(t)
}

func TestFreelancerService_GetAllSkills(t *testing.T) {
	mockRepo := new(MockFreelancerRepository)
	cfg := &config.Config{}
	service := services.NewFreelancerService(mockRepo, cfg)
	ctx := context.Background()

	expectedSkills := []string{"design", "go", "sql"}
	mockRepo.On("GetAllSkills", ctx).Return(expectedSkills, nil).Once()

	skills, err := service.GetAllSkills(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expectedSkills, skills)
	mockRepo.AssertExpectations(t)
}
