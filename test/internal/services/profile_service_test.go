package services_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/gigboard/gigboard-api/pkg/storage"
)

// The avatar upload path gates on content type and decoded size before
// touching object storage. These tests cover those gates.

func TestProfileService_AvatarTypeValidation(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantErr     bool
	}{
		{
			name:        "valid jpeg",
			contentType: "image/jpeg",
			wantErr:     false,
		},
		{
			name:        "valid png",
			contentType: "image/png",
			wantErr:     false,
		},
		{
			name:        "valid webp",
			contentType: "image/webp",
			wantErr:     false,
		},
		{
			name:        "uppercase content type accepted",
			contentType: "IMAGE/PNG",
			wantErr:     false,
		},
		{
			name:        "gif rejected",
			contentType: "image/gif",
			wantErr:     true,
		},
		{
			name:        "svg rejected",
			contentType: "image/svg+xml",
			wantErr:     true,
		},
		{
			name:        "empty content type rejected",
			contentType: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storage.ValidateImageType(tt.contentType)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImageType(%q) error = %v, wantErr %v", tt.contentType, err, tt.wantErr)
			}
		})
	}
}

func TestProfileService_AvatarSizeValidation(t *testing.T) {
	smallImage := base64.StdEncoding.EncodeToString([]byte("tiny image payload"))
	largeImage := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 2048)))

	tests := []struct {
		name      string
		imageData string
		maxBytes  int
		wantErr   bool
	}{
		{
			name:      "under the limit",
			imageData: smallImage,
			maxBytes:  1024,
			wantErr:   false,
		},
		{
			name:      "over the limit",
			imageData: largeImage,
			maxBytes:  1024,
			wantErr:   true,
		},
		{
			name:      "exactly at the limit",
			imageData: largeImage,
			maxBytes:  2048,
			wantErr:   false,
		},
		{
			name:      "not base64",
			imageData: "this is not base64!!!",
			maxBytes:  1024,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storage.ValidateImageSize(tt.imageData, tt.maxBytes)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImageSize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProfileService_AvatarDataURIDecoding(t *testing.T) {
	payload := []byte("png bytes here")
	encoded := base64.StdEncoding.EncodeToString(payload)

	tests := []struct {
		name      string
		imageData string
		want      []byte
		wantErr   bool
	}{
		{
			name:      "raw base64",
			imageData: encoded,
			want:      payload,
		},
		{
			name:      "data URI",
			imageData: "data:image/png;base64," + encoded,
			want:      payload,
		},
		{
			name:      "data URI without comma",
			imageData: "data:image/png;base64",
			wantErr:   true,
		},
		{
			name:      "invalid base64",
			imageData: "%%%not-base64%%%",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := storage.DecodeImage(tt.imageData)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeImage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(got) != string(tt.want) {
				t.Errorf("DecodeImage() = %q, want %q", got, tt.want)
			}
		})
	}
}
