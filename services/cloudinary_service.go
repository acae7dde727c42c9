package services

import (
	"context"
	"fmt"
	"math/rand"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Upload constraints enforced before any bytes leave the server.
const (
	MaxAttachmentSize = 10 * 1024 * 1024 // 10 MB per file
)

var (
	// allowedImageTypes restricts product images
	allowedImageTypes = map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
	}

	// allowedAttachmentTypes restricts quote reference files
	allowedAttachmentTypes = map[string]bool{
		"image/jpeg":      true,
		"image/jpg":       true,
		"image/png":       true,
		"application/pdf": true,
		"image/svg+xml":   true,
	}
)

// AllowedProductImage reports whether a product image upload is acceptable
func AllowedProductImage(contentType string) bool {
	return allowedImageTypes[strings.ToLower(contentType)]
}

// AllowedQuoteAttachment validates type and size of a quote reference file
func AllowedQuoteAttachment(contentType string, size int64) error {
	if !allowedAttachmentTypes[strings.ToLower(contentType)] {
		return fmt.Errorf("tipo de archivo no permitido: %s", contentType)
	}
	if size > MaxAttachmentSize {
		return fmt.Errorf("el tamaño máximo es 10MB por archivo")
	}
	return nil
}

// BuildObjectKey derives a collision-resistant storage key for an upload:
// owner id + millisecond timestamp + random suffix + original extension.
func BuildObjectKey(ownerID, originalName string) string {
	return buildObjectKey(ownerID, originalName, time.Now(), randomSuffix())
}

func buildObjectKey(ownerID, originalName string, now time.Time, suffix string) string {
	ext := strings.TrimPrefix(filepath.Ext(originalName), ".")
	key := fmt.Sprintf("%s-%d-%s", ownerID, now.UnixMilli(), suffix)
	if ext != "" {
		key = key + "." + strings.ToLower(ext)
	}
	return key
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

// CloudinaryService wraps the Cloudinary SDK for image and attachment uploads
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

var cloudinaryService *CloudinaryService

// InitCloudinary wires the shared Cloudinary service at startup
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// GetCloudinaryService returns the shared Cloudinary service
func GetCloudinaryService() *CloudinaryService {
	return cloudinaryService
}

// UploadFile uploads a single file under the derived key and returns the
// secure URL. Failure at any step aborts the remaining steps for this file;
// already-uploaded bytes are not cleaned up.
func (s *CloudinaryService) UploadFile(ctx context.Context, file multipart.File, key string, folder string) (string, error) {
	unique := false // key already carries timestamp + random suffix
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		PublicID:       key,
		ResourceType:   "auto",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}

// DeleteFile deletes an uploaded file using its public ID
func (s *CloudinaryService) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

// ExtractPublicIDFromURL extracts the Cloudinary public ID from a full URL
// Example: https://res.cloudinary.com/demo/image/upload/v1234/seriprint/products/abc-123.jpg
// Returns: seriprint/products/abc-123
func ExtractPublicIDFromURL(url string) string {
	if url == "" {
		return ""
	}

	uploadIndex := strings.Index(url, "/upload/")
	if uploadIndex == -1 {
		return ""
	}

	afterUpload := url[uploadIndex+8:] // +8 to skip "/upload/"

	// Skip version if present (e.g., "v1234567890/")
	if strings.HasPrefix(afterUpload, "v") {
		versionEndIndex := strings.Index(afterUpload, "/")
		if versionEndIndex != -1 {
			afterUpload = afterUpload[versionEndIndex+1:]
		}
	}

	// Remove file extension
	lastDotIndex := strings.LastIndex(afterUpload, ".")
	if lastDotIndex != -1 {
		afterUpload = afterUpload[:lastDotIndex]
	}

	return afterUpload
}
