package editor

import (
	"context"
	"errors"
)

var ErrTransform = errors.New("image edit service failed")

type EditType string

const (
	EditEnhance    EditType = "enhance"
	EditRestore    EditType = "restore"
	EditRetouch    EditType = "retouch"
	EditStyle      EditType = "style"
	EditBackground EditType = "background"
)

func (t EditType) Valid() bool {
	_, ok := prompts[t]
	return ok
}

var prompts = map[EditType]string{
	EditEnhance: "Apply professional-grade image enhancement with advanced sharpening algorithms, " +
		"noise reduction, and detail amplification. Optimize contrast, brightness, and color " +
		"saturation while preserving natural skin tones and preventing over-processing artifacts.",
	EditRestore: "Perform comprehensive image restoration using state-of-the-art denoising, deblurring, " +
		"and artifact removal techniques. Reconstruct missing details, eliminate compression " +
		"artifacts, reduce motion blur, and restore original image quality with photorealistic precision.",
	EditRetouch: "Execute professional portrait retouching with advanced blemish removal, skin smoothing, " +
		"and complexion enhancement. Eliminate imperfections, reduce wrinkles, brighten eyes, " +
		"whiten teeth, and perfect skin texture while maintaining natural appearance.",
	EditStyle: "Transform the image into a masterpiece oil painting with rich textures, vibrant brush " +
		"strokes, and classical artistic techniques. Apply layered paint effects, canvas texture, " +
		"and traditional color palettes while preserving subject recognition.",
	EditBackground: "Perform precision background removal using advanced AI segmentation with sub-pixel accuracy. " +
		"Create clean transparent PNG output with perfect edge detection, hair detail preservation, " +
		"and anti-aliasing for professional compositing results.",
}

// Prompt returns the transformation prompt for a supported edit type.
func Prompt(t EditType) string {
	return prompts[t]
}

// Transformer is the capability boundary to the external image edit service.
// Intensity is accepted but currently a pass-through with no defined effect
// on the service's behavior.
type Transformer interface {
	Transform(ctx context.Context, data []byte, editType EditType, intensity int) ([]byte, error)
}
