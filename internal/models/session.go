package models

import "time"

// FreelancerSession represents an authenticated freelancer session
type FreelancerSession struct {
	FreelancerUUID string    `json:"freelancerUuid"`
	Wallet         string    `json:"wallet"`
	Name           string    `json:"name"`
	IssuedAt       time.Time `json:"issuedAt"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// WalletChallengeRequest asks for a sign-in challenge for a wallet
type WalletChallengeRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required,eth_addr"`
}

// WalletChallengeResponse carries the message the wallet must sign
type WalletChallengeResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Nonce     string `json:"nonce"`
	ExpiresIn int    `json:"expiresIn"`
}

// WalletVerifyRequest submits the signed challenge
type WalletVerifyRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required,eth_addr"`
	Signature     string `json:"signature" binding:"required,min=130,max=134"`
}

// WalletVerifyResponse reports the verification outcome
type WalletVerifyResponse struct {
	Success   bool   `json:"success"`
	Name      string `json:"name,omitempty"`
	Slug      string `json:"slug,omitempty"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
	Error     string `json:"error,omitempty"`
}

// LogoutResponse confirms session termination
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
