package models_test

import (
	"encoding/json"
	"testing"

	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFreelancerToPublicResponse(t *testing.T) {
	freelancer := &models.Freelancer{
		ID:            1,
		UUID:          "4f2c8a9e-1b7d-4a0e-9c6f-2d8e5b3a1c0f",
		Slug:          "jane-doe-4f2c8a9e",
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Skills:        []string{"Go", "PostgreSQL", "System Design"},
		Experience:    "3-5",
		HourlyRate:    85,
		Portfolio:     "https://janedoe.dev",
		Bio:           "Backend engineer focused on payments infrastructure",
		AvatarURL:     "https://cdn.gigboard.xyz/avatars/4f2c8a9e.png",
		IsVisible:     true,
		WalletAddress: "0xabcdef0123456789abcdef0123456789abcdef01",
	}

	baseURL := "https://gigboard.xyz"

	expected := models.PublicFreelancerResponse{
		Slug:       "jane-doe-4f2c8a9e",
		Name:       "Jane Doe",
		Skills:     "Go,PostgreSQL,System Design",
		Experience: "3-5",
		HourlyRate: 85,
		Portfolio:  "https://janedoe.dev",
		Bio:        "Backend engineer focused on payments infrastructure",
		AvatarURL:  "https://cdn.gigboard.xyz/avatars/4f2c8a9e.png",
		Link:       "https://gigboard.xyz/freelancer/jane-doe-4f2c8a9e",
	}

	result := freelancer.ToPublicResponse(baseURL)
	assert.Equal(t, expected, result)
}

// The public response must never carry contact or wallet details, so the
// struct itself has no fields for them. This test guards the JSON surface.
func TestFreelancerToPublicResponseHidesPrivateFields(t *testing.T) {
	freelancer := &models.Freelancer{
		Slug:          "jane-doe",
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		WalletAddress: "0xabcdef0123456789abcdef0123456789abcdef01",
	}

	result := freelancer.ToPublicResponse("https://gigboard.xyz")

	payload, err := json.Marshal(result)
	assert.NoError(t, err)
	assert.NotContains(t, string(payload), "jane@example.com")
	assert.NotContains(t, string(payload), "0xabcdef0123456789abcdef0123456789abcdef01")
}

func TestFreelancerToPublicResponseWithEmptySkills(t *testing.T) {
	freelancer := &models.Freelancer{
		Slug:   "jane-doe",
		Name:   "Jane Doe",
		Skills: []string{},
	}

	result := freelancer.ToPublicResponse("https://gigboard.xyz")
	assert.Equal(t, "", result.Skills, "Empty skills should result in empty string")
	assert.Equal(t, "https://gigboard.xyz/freelancer/jane-doe", result.Link)
}

func TestFreelancerHasSkill(t *testing.T) {
	freelancer := &models.Freelancer{
		Skills: []string{"Go", " PostgreSQL ", "System Design"},
	}

	tests := []struct {
		name     string
		skill    string
		expected bool
	}{
		{
			name:     "exact match",
			skill:    "Go",
			expected: true,
		},
		{
			name:     "case-insensitive match",
			skill:    "go",
			expected: true,
		},
		{
			name:     "whitespace folded",
			skill:    "postgresql",
			expected: true,
		},
		{
			name:     "no match",
			skill:    "Rust",
			expected: false,
		},
		{
			name:     "empty skill",
			skill:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, freelancer.HasSkill(tt.skill))
		})
	}
}
