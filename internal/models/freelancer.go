package models

import (
	"strings"
	"time"
)

// Freelancer represents a freelancer profile in the system
type Freelancer struct {
	ID         int64     `json:"id"`
	UUID       string    `json:"uuid"`
	Slug       string    `json:"slug"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Skills     []string  `json:"skills"`
	Experience string    `json:"experience"`
	HourlyRate float64   `json:"hourlyRate"`
	Portfolio  string    `json:"portfolio"`
	Bio        string    `json:"bio"`
	AvatarURL  string    `json:"avatarUrl"`
	IsVisible  bool      `json:"isVisible"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Secure fields (cleared by repository unless ShowHidden is set)
	WalletAddress string `json:"walletAddress"`
}

// PublicFreelancerResponse represents the public API response format.
// Email and wallet address are never exposed here.
type PublicFreelancerResponse struct {
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	Skills     string  `json:"skills"`
	Experience string  `json:"experience"`
	HourlyRate float64 `json:"hourlyRate"`
	Portfolio  string  `json:"portfolio"`
	Bio        string  `json:"bio"`
	AvatarURL  string  `json:"avatarUrl"`
	Link       string  `json:"link"`
}

// ToPublicResponse converts a Freelancer to PublicFreelancerResponse
func (f *Freelancer) ToPublicResponse(baseURL string) PublicFreelancerResponse {
	return PublicFreelancerResponse{
		Slug:       f.Slug,
		Name:       f.Name,
		Skills:     strings.Join(f.Skills, ","),
		Experience: f.Experience,
		HourlyRate: f.HourlyRate,
		Portfolio:  f.Portfolio,
		Bio:        f.Bio,
		AvatarURL:  f.AvatarURL,
		Link:       baseURL + "/freelancer/" + f.Slug,
	}
}

// HasSkill reports whether the freelancer lists the skill (case-insensitive)
func (f *Freelancer) HasSkill(skill string) bool {
	for _, s := range f.Skills {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(skill)) {
			return true
		}
	}
	return false
}

// FilterOptions represents options for filtering freelancers
type FilterOptions struct {
	Skill        string
	OnlyVisible  bool
	ShowHidden   bool
	ForceRefresh bool
}
