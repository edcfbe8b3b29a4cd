// Package imageprep turns a stored upload into classifier input and a
// resized preview.
package imageprep

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

const (
	// Size is the square edge, in pixels, the classifier was trained on.
	Size     = 224
	Channels = 3
)

// Tensor is a batch of one NHWC image with values in [0, 1].
type Tensor struct {
	Shape []int64
	Data  []float32
}

// Len is the number of values a Tensor built by this package holds.
const Len = Size * Size * Channels

// Shape returns the tensor shape the classifier expects.
func Shape() []int64 {
	return []int64{1, Size, Size, Channels}
}

// BuildTensor decodes the image at path and converts it to classifier input.
func BuildTensor(path string) (*Tensor, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// FromImage stretches img to Size x Size and scales each RGB byte to [0, 1].
// Every output pixel is the source pixel under its centre, with no blending
// between neighbours. Alpha is dropped.
func FromImage(img image.Image) *Tensor {
	resized := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.NearestNeighbor.Scale(resized, resized.Bounds(), img, img.Bounds(), draw.Src, nil)

	data := make([]float32, Len)
	i := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := color.NRGBAModel.Convert(resized.RGBAAt(x, y)).(color.NRGBA)
			data[i] = float32(c.R) / 255.0
			data[i+1] = float32(c.G) / 255.0
			data[i+2] = float32(c.B) / 255.0
			i += Channels
		}
	}

	return &Tensor{Shape: Shape(), Data: data}
}

// EncodePreview returns the image at path stretched to Size x Size and
// re-encoded as base64 PNG.
func EncodePreview(path string) (string, error) {
	img, err := decodeFile(path)
	if err != nil {
		return "", err
	}

	resized := resize.Resize(Size, Size, img, resize.Bicubic)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return "", fmt.Errorf("failed to encode preview: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
