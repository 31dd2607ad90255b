package models

// RegisterFreelancerRequest represents the registration form payload
type RegisterFreelancerRequest struct {
	FullName       string   `json:"fullName" binding:"required,min=2,max=100"`
	Email          string   `json:"email" binding:"required,email,max=255"`
	Skills         []string `json:"skills" binding:"required,min=1,max=20,dive,max=50"`
	Experience     string   `json:"experience" binding:"required,oneof=0-1 1-3 3-5 5+"`
	HourlyRate     float64  `json:"hourlyRate" binding:"gte=0,lte=10000"`
	Portfolio      string   `json:"portfolio" binding:"omitempty,url,max=500"`
	Bio            string   `json:"bio" binding:"max=2000"`
	WalletAddress  string   `json:"walletAddress" binding:"required,eth_addr"`
	RecaptchaToken string   `json:"recaptchaToken" binding:"omitempty,min=20"`
}

// RegisterFreelancerResponse represents the registration result
type RegisterFreelancerResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	FreelancerID string `json:"freelancerId,omitempty"`
	Error        string `json:"error,omitempty"`
}
