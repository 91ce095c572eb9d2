package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Decoder for the netpbm formats cjxl accepts as input: P2/P5 (PGM) and
// P3/P6 (PPM), both ASCII and raw variants, with 8- or 16-bit samples.

func init() {
	for _, magic := range []string{"P2", "P3", "P5", "P6"} {
		image.RegisterFormat("pnm", magic, decodePNM, decodePNMConfig)
	}
}

type pnmHeader struct {
	format string // "P2", "P3", "P5", "P6"
	width  int
	height int
	maxVal int
}

func (h pnmHeader) color() bool { return h.format == "P3" || h.format == "P6" }
func (h pnmHeader) ascii() bool { return h.format == "P2" || h.format == "P3" }

func decodePNMConfig(r io.Reader) (image.Config, error) {
	h, _, err := readPNMHeader(r)
	if err != nil {
		return image.Config{}, err
	}

	var model color.Model = color.GrayModel
	if h.color() {
		model = color.NRGBAModel
	}
	return image.Config{ColorModel: model, Width: h.width, Height: h.height}, nil
}

func decodePNM(r io.Reader) (image.Image, error) {
	h, br, err := readPNMHeader(r)
	if err != nil {
		return nil, err
	}

	samplesPerPixel := 1
	if h.color() {
		samplesPerPixel = 3
	}
	n := h.width * h.height * samplesPerPixel

	samples := make([]int, n)
	if h.ascii() {
		err = readASCIISamples(br, samples, h.maxVal)
	} else {
		err = readRawSamples(br, samples, h.maxVal)
	}
	if err != nil {
		return nil, err
	}

	// Scale every sample to 8 bits for display.
	scale := func(v int) uint8 {
		return uint8(v * 255 / h.maxVal)
	}

	if h.color() {
		img := image.NewNRGBA(image.Rect(0, 0, h.width, h.height))
		for i := 0; i < h.width*h.height; i++ {
			img.SetNRGBA(i%h.width, i/h.width, color.NRGBA{
				R: scale(samples[3*i]),
				G: scale(samples[3*i+1]),
				B: scale(samples[3*i+2]),
				A: 255,
			})
		}
		return img, nil
	}

	img := image.NewGray(image.Rect(0, 0, h.width, h.height))
	for i, v := range samples {
		img.SetGray(i%h.width, i/h.width, color.Gray{Y: scale(v)})
	}
	return img, nil
}

// readPNMHeader consumes the magic, dimensions and maximum sample value,
// including the single whitespace byte that separates the header from raw
// sample data. The returned reader is positioned at the first sample.
func readPNMHeader(r io.Reader) (pnmHeader, *bufio.Reader, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, 2)
	if _, err := io.ReadFull(br, magic); err != nil {
		return pnmHeader{}, nil, fmt.Errorf("pnm: short header: %w", err)
	}
	format := string(magic)
	switch format {
	case "P2", "P3", "P5", "P6":
	default:
		return pnmHeader{}, nil, fmt.Errorf("pnm: unknown magic %q", format)
	}

	width, err := readPNMInt(br)
	if err != nil {
		return pnmHeader{}, nil, fmt.Errorf("pnm: bad width: %w", err)
	}
	height, err := readPNMInt(br)
	if err != nil {
		return pnmHeader{}, nil, fmt.Errorf("pnm: bad height: %w", err)
	}
	maxVal, err := readPNMInt(br)
	if err != nil {
		return pnmHeader{}, nil, fmt.Errorf("pnm: bad maxval: %w", err)
	}

	if width <= 0 || height <= 0 {
		return pnmHeader{}, nil, fmt.Errorf("pnm: invalid dimensions %dx%d", width, height)
	}
	if maxVal <= 0 || maxVal > 65535 {
		return pnmHeader{}, nil, fmt.Errorf("pnm: invalid maxval %d", maxVal)
	}

	return pnmHeader{format: format, width: width, height: height, maxVal: maxVal}, br, nil
}

// readPNMInt reads one whitespace-delimited decimal token, skipping `#`
// comments. The terminating whitespace byte is consumed, which for raw
// variants is exactly the separator before sample data.
func readPNMInt(br *bufio.Reader) (int, error) {
	v := 0
	seen := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && seen {
				return v, nil
			}
			return 0, err
		}
		switch {
		case b == '#' && !seen:
			if _, err := br.ReadString('\n'); err != nil {
				return 0, err
			}
		case b >= '0' && b <= '9':
			seen = true
			v = v*10 + int(b-'0')
			if v > 1<<24 {
				return 0, fmt.Errorf("value too large")
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if seen {
				return v, nil
			}
		default:
			return 0, fmt.Errorf("unexpected byte %q", b)
		}
	}
}

func readASCIISamples(br *bufio.Reader, out []int, maxVal int) error {
	for i := range out {
		v, err := readPNMInt(br)
		if err != nil {
			return fmt.Errorf("pnm: sample %d: %w", i, err)
		}
		if v > maxVal {
			return fmt.Errorf("pnm: sample %d exceeds maxval", i)
		}
		out[i] = v
	}
	return nil
}

func readRawSamples(br *bufio.Reader, out []int, maxVal int) error {
	bytesPerSample := 1
	if maxVal > 255 {
		bytesPerSample = 2
	}

	buf := make([]byte, len(out)*bytesPerSample)
	if _, err := io.ReadFull(br, buf); err != nil {
		return fmt.Errorf("pnm: short sample data: %w", err)
	}

	if bytesPerSample == 1 {
		for i := range out {
			out[i] = int(buf[i])
		}
		return nil
	}
	for i := range out {
		// 16-bit samples are big-endian per the netpbm spec.
		out[i] = int(buf[2*i])<<8 | int(buf[2*i+1])
	}
	return nil
}
