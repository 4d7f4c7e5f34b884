package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47}

func TestQRCodeService_GenerateCourseQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://academy.example.com/")

	png, err := svc.GenerateCourseQR(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestQRCodeService_DefaultsApplied(t *testing.T) {
	// Zero size and an unknown correction level fall back to defaults.
	svc := NewQRCodeService(0, "X", "https://academy.example.com")

	png, err := svc.GenerateCourseQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
