// SPDX-License-Identifier: MIT

// Package display models the Display interface image structures. The Display
// interface itself is deprecated upstream, but its image types are shared by
// current interfaces such as AudioPlayer metadata.
package display

import "github.com/jct-tympanon/alexa-go/apienum"

// ImageSize selects one of the fixed upstream image size buckets.
type ImageSize string

var imageSizes = apienum.Declare[ImageSize](apienum.UpperSnake,
	"XSmall",
	"Small",
	"Medium",
	"Large",
	"XLarge",
)

var (
	ImageSizeXSmall = imageSizes.Value("XSmall") // "X_SMALL"
	ImageSizeSmall  = imageSizes.Value("Small")
	ImageSizeMedium = imageSizes.Value("Medium")
	ImageSizeLarge  = imageSizes.Value("Large")
	ImageSizeXLarge = imageSizes.Value("XLarge") // "X_LARGE"
)

func (s ImageSize) String() string { return string(s) }

// Known reports whether the size is one of the declared buckets.
func (s ImageSize) Known() bool { return imageSizes.Known(s) }

// Image is a multi-source image with an optional accessibility description.
type Image struct {
	ContentDescription string          `json:"contentDescription,omitempty"`
	Sources            []ImageInstance `json:"sources"`
}

// ImageInstance is one concrete rendition of an Image.
//
// Pixel dimensions use uint16: the upstream size chart tops out well below
// that, so out-of-range or negative values fail to decode rather than being
// silently accepted.
type ImageInstance struct {
	URL          string    `json:"url"`
	Size         ImageSize `json:"size,omitempty"`
	WidthPixels  *uint16   `json:"widthPixels,omitempty"`
	HeightPixels *uint16   `json:"heightPixels,omitempty"`
}
