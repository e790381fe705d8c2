package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFilename(t *testing.T) {
	got := normalizeFilename("Eid Mubarak (final).png")
	assert.True(t, strings.HasPrefix(got, "Eid_Mubarak_final_"), got)
	assert.True(t, strings.HasSuffix(got, ".png"), got)
	assert.NotContains(t, got, " ")
	assert.NotContains(t, got, "(")
}

func TestNormalizeFilenameEmptyBase(t *testing.T) {
	got := normalizeFilename("???.jpg")
	assert.True(t, strings.HasPrefix(got, "artwork_"), got)
}

func TestGetContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", getContentType("a.JPG"))
	assert.Equal(t, "image/png", getContentType("poster.png"))
	assert.Equal(t, "image/webp", getContentType("x.webp"))
	assert.Equal(t, "application/octet-stream", getContentType("x.pdf"))
}
