// Package preprocess converts decoded images into the fixed-shape input
// tensor the breed model expects.
package preprocess

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

const (
	inputHeight   = 224
	inputWidth    = 224
	inputChannels = 3
)

// Tensor is a dense float32 tensor in NHWC layout.
type Tensor struct {
	Shape [4]int    // batch, height, width, channels
	Data  []float32 // flattened row-major values
}

// FromImage resizes the image to 224x224 (stretching, no aspect-ratio
// preservation), drops alpha, and scales pixel values to [0,1]. The result
// carries a leading batch dimension: shape 1x224x224x3. Pure function: no
// I/O, deterministic for identical pixel input.
func FromImage(img image.Image) Tensor {
	dst := image.NewRGBA(image.Rect(0, 0, inputWidth, inputHeight))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	data := make([]float32, inputHeight*inputWidth*inputChannels)
	i := 0
	for y := 0; y < inputHeight; y++ {
		for x := 0; x < inputWidth; x++ {
			c := dst.RGBAAt(x, y)
			data[i] = float32(c.R) / 255.0
			data[i+1] = float32(c.G) / 255.0
			data[i+2] = float32(c.B) / 255.0
			i += inputChannels
		}
	}

	return Tensor{
		Shape: [4]int{1, inputHeight, inputWidth, inputChannels},
		Data:  data,
	}
}
