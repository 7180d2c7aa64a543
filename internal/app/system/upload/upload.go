// Package upload validates image uploads before any byte reaches the
// backend: MIME type by Content-Type prefix, size against a per-purpose
// ceiling. A rejected file costs no network call.
package upload

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
)

// Size ceilings by upload purpose.
const (
	// MaxIconSize applies to profile images and technology icons.
	MaxIconSize = 5 << 20
	// MaxGallerySize applies to project images, blog covers, and library assets.
	MaxGallerySize = 10 << 20
)

// Validation messages shown inline on the form.
const (
	msgNotAnImage    = "Please select an image file"
	msgIconTooLarge  = "Image size should be less than 5MB"
	msgAssetTooLarge = "File size should not exceed 10MB"
)

// File reads one uploaded image from the form, enforcing the type check and
// the given size ceiling. The returned multipart.File must be closed by the
// caller. Validation failures come back as resource.ValidationError.
func File(r *http.Request, field string, maxBytes int64) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, resource.Invalid(msgNotAnImage)
	}

	if err := Validate(header, maxBytes); err != nil {
		file.Close()
		return nil, nil, err
	}
	return file, header, nil
}

// Validate checks an already-parsed upload header against the image type
// requirement and the size ceiling.
func Validate(header *multipart.FileHeader, maxBytes int64) error {
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return resource.Invalid(msgNotAnImage)
	}
	if header.Size > maxBytes {
		if maxBytes <= MaxIconSize {
			return resource.Invalid(msgIconTooLarge)
		}
		return resource.Invalid(msgAssetTooLarge)
	}
	return nil
}
