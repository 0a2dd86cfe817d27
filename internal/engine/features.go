package engine

import (
	"bytes"
	"image"
	"math"

	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	"github.com/dukerupert/dokimi"
)

// Per-channel quantization: floor(channel/50) yields 6 buckets, so the
// quantized color space has 6^3 = 216 entries.
const colorBucketSpan = 50

// Luminance thresholds for the contrast proxy.
const (
	darkPixelMax  = 85
	lightPixelMin = 170
)

// DefaultFeatureProfile returns the profile substituted when an image cannot
// be decoded. The engine must stay usable for malformed images, so decode
// failures are absorbed rather than surfaced.
func DefaultFeatureProfile() dokimi.ImageFeatureProfile {
	return dokimi.ImageFeatureProfile{
		HasText:              true,
		TextDensity:          65,
		ColorCount:           120,
		Brightness:           128,
		Contrast:             45,
		EstimatedReadability: 75,
	}
}

// ExtractFeatures decodes an image and computes its aggregate pixel
// statistics in a single O(pixelCount) pass. It never fails: any decode
// problem resolves to DefaultFeatureProfile.
func ExtractFeatures(data []byte) dokimi.ImageFeatureProfile {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return DefaultFeatureProfile()
	}

	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()
	if totalPixels == 0 {
		return DefaultFeatureProfile()
	}

	var brightnessSum uint64
	var darkPixels, lightPixels int
	var seen [216]bool
	colorCount := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			r := int(r16 >> 8)
			g := int(g16 >> 8)
			b := int(b16 >> 8)

			brightness := (r + g + b) / 3
			brightnessSum += uint64(brightness)

			if brightness < darkPixelMax {
				darkPixels++
			} else if brightness > lightPixelMin {
				lightPixels++
			}

			key := (r/colorBucketSpan)*36 + (g/colorBucketSpan)*6 + b/colorBucketSpan
			if !seen[key] {
				seen[key] = true
				colorCount++
			}
		}
	}

	if colorCount > 256 {
		colorCount = 256
	}

	separation := darkPixels - lightPixels
	if separation < 0 {
		separation = -separation
	}
	contrast := int(math.Round(100 * float64(separation) / float64(totalPixels)))

	return dokimi.ImageFeatureProfile{
		HasText:              colorCount > 10,
		TextDensity:          minInt(100, int(math.Round(float64(colorCount)/256*100))),
		ColorCount:           colorCount,
		Brightness:           int(math.Round(float64(brightnessSum) / float64(totalPixels))),
		Contrast:             contrast,
		EstimatedReadability: minInt(100, int(math.Round(float64(contrast)*1.5))),
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// clampScore bounds a metric to the [0,100] scale.
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
