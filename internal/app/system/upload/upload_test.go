package upload

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
)

func header(contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: "photo.png",
		Header:   h,
		Size:     size,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		header  *multipart.FileHeader
		max     int64
		wantErr string
	}{
		{
			name:   "png within icon ceiling",
			header: header("image/png", 1<<20),
			max:    MaxIconSize,
		},
		{
			name:   "jpeg exactly at ceiling",
			header: header("image/jpeg", MaxIconSize),
			max:    MaxIconSize,
		},
		{
			name:    "pdf rejected",
			header:  header("application/pdf", 1024),
			max:     MaxIconSize,
			wantErr: "Please select an image file",
		},
		{
			name:    "icon over 5MB",
			header:  header("image/png", MaxIconSize+1),
			max:     MaxIconSize,
			wantErr: "Image size should be less than 5MB",
		},
		{
			name:    "gallery asset over 10MB",
			header:  header("image/jpeg", MaxGallerySize+1),
			max:     MaxGallerySize,
			wantErr: "File size should not exceed 10MB",
		},
		{
			name:   "gallery asset between 5 and 10MB allowed",
			header: header("image/jpeg", 7<<20),
			max:    MaxGallerySize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.header, tt.max)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error %q", tt.wantErr)
			}
			if !resource.IsValidation(err) {
				t.Errorf("Validate() error type = %T, want ValidationError", err)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}
