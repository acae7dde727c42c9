package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowedProductImage(t *testing.T) {
	assert.True(t, AllowedProductImage("image/png"))
	assert.True(t, AllowedProductImage("image/jpeg"))
	assert.True(t, AllowedProductImage("IMAGE/PNG"))

	assert.False(t, AllowedProductImage("image/gif"))
	assert.False(t, AllowedProductImage("application/pdf"))
	assert.False(t, AllowedProductImage(""))
}

func TestAllowedQuoteAttachment(t *testing.T) {
	assert.NoError(t, AllowedQuoteAttachment("image/png", 1024))
	assert.NoError(t, AllowedQuoteAttachment("application/pdf", MaxAttachmentSize))
	assert.NoError(t, AllowedQuoteAttachment("image/svg+xml", 500))

	err := AllowedQuoteAttachment("video/mp4", 1024)
	assert.ErrorContains(t, err, "tipo de archivo no permitido")

	err = AllowedQuoteAttachment("image/png", MaxAttachmentSize+1)
	assert.ErrorContains(t, err, "el tamaño máximo es 10MB por archivo")
}

func TestBuildObjectKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	key := buildObjectKey("owner-1", "diseño final.PNG", now, "abc123")
	assert.Equal(t, "owner-1-1700000000000-abc123.png", key)

	// No extension on the original name means no extension on the key
	key = buildObjectKey("owner-1", "README", now, "abc123")
	assert.Equal(t, "owner-1-1700000000000-abc123", key)
}

func TestExtractPublicIDFromURL(t *testing.T) {
	url := "https://res.cloudinary.com/demo/image/upload/v1700000000/seriprint/products/abc/key.png"
	assert.Equal(t, "seriprint/products/abc/key", ExtractPublicIDFromURL(url))

	// No version segment
	url = "https://res.cloudinary.com/demo/image/upload/seriprint/quotes/q1/file.pdf"
	assert.Equal(t, "seriprint/quotes/q1/file", ExtractPublicIDFromURL(url))

	assert.Equal(t, "", ExtractPublicIDFromURL(""))
	assert.Equal(t, "", ExtractPublicIDFromURL("https://example.com/no-upload-segment.png"))
}
