package raster

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePNM_ASCIIGray(t *testing.T) {
	data := []byte("P2\n# a comment\n2 2\n255\n0 128\n255 64\n")

	img, format, err := image.Decode(bytes.NewReader(data))

	require.NoError(t, err)
	assert.Equal(t, "pnm", format)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())

	gray, ok := img.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, uint8(0), gray.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(128), gray.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(255), gray.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(64), gray.GrayAt(1, 1).Y)
}

func TestDecodePNM_ASCIIColor(t *testing.T) {
	data := []byte("P3\n1 2\n255\n255 0 0\n0 0 255\n")

	img, _, err := image.Decode(bytes.NewReader(data))

	require.NoError(t, err)
	nrgba, ok := img.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, nrgba.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, nrgba.NRGBAAt(0, 1))
}

func TestDecodePNM_RawGray(t *testing.T) {
	data := append([]byte("P5\n2 1\n255\n"), 10, 200)

	img, _, err := image.Decode(bytes.NewReader(data))

	require.NoError(t, err)
	gray, ok := img.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, uint8(10), gray.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(200), gray.GrayAt(1, 0).Y)
}

func TestDecodePNM_RawColor(t *testing.T) {
	data := append([]byte("P6\n1 1\n255\n"), 1, 2, 3)

	img, _, err := image.Decode(bytes.NewReader(data))

	require.NoError(t, err)
	nrgba, ok := img.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 255}, nrgba.NRGBAAt(0, 0))
}

func TestDecodePNM_RawGray16Bit(t *testing.T) {
	// One 16-bit sample of 0xFFFF with maxval 65535 scales to 255.
	data := append([]byte("P5\n1 1\n65535\n"), 0xFF, 0xFF)

	img, _, err := image.Decode(bytes.NewReader(data))

	require.NoError(t, err)
	gray, ok := img.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, uint8(255), gray.GrayAt(0, 0).Y)
}

func TestDecodePNM_ScalesLowMaxval(t *testing.T) {
	data := []byte("P2\n1 1\n15\n15\n")

	img, _, err := image.Decode(bytes.NewReader(data))

	require.NoError(t, err)
	gray := img.(*image.Gray)
	assert.Equal(t, uint8(255), gray.GrayAt(0, 0).Y)
}

func TestDecodePNMConfig(t *testing.T) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader([]byte("P6\n640 480\n255\n")))

	require.NoError(t, err)
	assert.Equal(t, "pnm", format)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, color.NRGBAModel, cfg.ColorModel)
}

func TestDecodePNM_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated header", []byte("P5\n2")},
		{"zero width", []byte("P2\n0 2\n255\n")},
		{"maxval too large", []byte("P2\n1 1\n70000\n0\n")},
		{"short raw data", append([]byte("P6\n2 2\n255\n"), 1, 2, 3)},
		{"ascii sample exceeds maxval", []byte("P2\n1 1\n100\n200\n")},
		{"garbage token", []byte("P2\n1 x\n255\n0\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := image.Decode(bytes.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}
