package render

import "image"

// Paint copies v into img pixel for pixel. img is reallocated when nil or
// sized differently, and returned.
func Paint(img *image.RGBA, v *View) *image.RGBA {
	if img == nil || img.Bounds().Dx() != v.Width || img.Bounds().Dy() != v.Height {
		img = image.NewRGBA(image.Rect(0, 0, v.Width, v.Height))
	}
	for y := 0; y < v.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < v.Width; x++ {
			c := v.Samples[y*v.Width+x].Color()
			j := x * 4
			row[j+0] = c.R
			row[j+1] = c.G
			row[j+2] = c.B
			row[j+3] = 0xFF
		}
	}
	return img
}
