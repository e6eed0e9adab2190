// Package media implements the photo ingestion pipeline: decoding and
// normalizing uploaded images, generating thumbnails, and storing the
// resulting assets under collision-resistant names.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	// Registered decoders for the upload allow-list formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ErrUnreadableImage indicates the uploaded bytes could not be decoded as an
// image in any supported format.
var ErrUnreadableImage = errors.New("unreadable image")

// NormalizedImage holds the two JPEG encodings produced from one upload.
type NormalizedImage struct {
	Primary   []byte
	Thumbnail []byte

	// Dimensions of the primary encoding.
	Width  int
	Height int
}

// Normalizer converts uploaded images into bounded, web-ready JPEG assets.
type Normalizer struct {
	maxDim       int
	quality      int
	thumbDim     int
	thumbQuality int
}

// NewNormalizer creates a Normalizer. maxDim bounds the primary asset's larger
// dimension, thumbDim the thumbnail's; quality values are JPEG 1-100.
func NewNormalizer(maxDim, quality, thumbDim, thumbQuality int) *Normalizer {
	return &Normalizer{
		maxDim:       maxDim,
		quality:      quality,
		thumbDim:     thumbDim,
		thumbQuality: thumbQuality,
	}
}

// Normalize decodes an uploaded image, flattens transparency onto white,
// bounds its dimensions without ever upscaling, and re-encodes it as JPEG
// along with a thumbnail derived from the normalized image.
func (n *Normalizer) Normalize(r io.Reader) (*NormalizedImage, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	img = flatten(img)

	// Fit only shrinks; images already within bounds keep their dimensions.
	primary := imaging.Fit(img, n.maxDim, n.maxDim, imaging.Lanczos)
	thumb := imaging.Fit(primary, n.thumbDim, n.thumbDim, imaging.Lanczos)

	primaryBytes, err := encodeJPEG(primary, n.quality)
	if err != nil {
		return nil, fmt.Errorf("encoding primary asset: %w", err)
	}
	thumbBytes, err := encodeJPEG(thumb, n.thumbQuality)
	if err != nil {
		return nil, fmt.Errorf("encoding thumbnail asset: %w", err)
	}

	bounds := primary.Bounds()
	return &NormalizedImage{
		Primary:   primaryBytes,
		Thumbnail: thumbBytes,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
	}, nil
}

// flatten composes images carrying an alpha channel or indexed palette onto
// an opaque white background. JPEG cannot represent transparency.
func flatten(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}

	bounds := img.Bounds()
	bg := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
