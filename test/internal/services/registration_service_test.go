package services_test

import (
	"testing"

	"github.com/gigboard/gigboard-api/pkg/slug"
)

func TestRegistrationService_SlugGeneration(t *testing.T) {
	tests := []struct {
		name         string
		fullName     string
		suffix       string
		expectedSlug string
	}{
		{
			name:         "simple latin name",
			fullName:     "Jane Doe",
			suffix:       "9f8a3c21",
			expectedSlug: "jane-doe-9f8a3c21",
		},
		{
			name:         "cyrillic name",
			fullName:     "Иван Петров",
			suffix:       "4b2d11aa",
			expectedSlug: "ivan-petrov-4b2d11aa",
		},
		{
			name:         "name with special characters",
			fullName:     "Anna-Maria O'Brien",
			suffix:       "00ff00ff",
			expectedSlug: "annamaria-obrien-00ff00ff",
		},
		{
			name:         "single word name",
			fullName:     "Cher",
			suffix:       "12345678",
			expectedSlug: "cher-12345678",
		},
		{
			name:         "symbols only falls back",
			fullName:     "!!! ***",
			suffix:       "deadbeef",
			expectedSlug: "freelancer-deadbeef",
		},
		{
			name:         "extra whitespace collapsed",
			fullName:     "  Jane   Doe  ",
			suffix:       "9f8a3c21",
			expectedSlug: "jane-doe-9f8a3c21",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generatedSlug := slug.GenerateFreelancerSlug(tt.fullName, tt.suffix)
			if generatedSlug != tt.expectedSlug {
				t.Errorf("generated slug = %v, want %v", generatedSlug, tt.expectedSlug)
			}
		})
	}
}
