package models

// SaveProfileRequest represents a profile update submitted by the owner
type SaveProfileRequest struct {
	Name       string   `json:"name" binding:"required,min=2,max=100"`
	Skills     []string `json:"skills" binding:"required,min=1,max=20,dive,max=50"`
	Experience string   `json:"experience" binding:"required,oneof=0-1 1-3 3-5 5+"`
	HourlyRate float64  `json:"hourlyRate" binding:"gte=0,lte=10000"`
	Portfolio  string   `json:"portfolio" binding:"omitempty,url,max=500"`
	Bio        string   `json:"bio" binding:"max=2000"`
	IsVisible  *bool    `json:"isVisible" binding:"required"`
}

// SaveProfileResponse reports the result of a profile update
type SaveProfileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UploadAvatarRequest carries an avatar image as a base64 payload
type UploadAvatarRequest struct {
	Image       string `json:"image" binding:"required"`
	FileName    string `json:"fileName" binding:"required,max=255"`
	ContentType string `json:"contentType" binding:"required,oneof=image/jpeg image/png image/webp"`
}

// UploadAvatarResponse reports the upload result
type UploadAvatarResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Error     string `json:"error,omitempty"`
}
