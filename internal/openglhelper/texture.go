package openglhelper

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Wrap is a texture coordinate wrapping mode.
type Wrap int32

const (
	Repeat         Wrap = gl.REPEAT
	MirroredRepeat Wrap = gl.MIRRORED_REPEAT
	ClampToEdge    Wrap = gl.CLAMP_TO_EDGE
	ClampToBorder  Wrap = gl.CLAMP_TO_BORDER
)

// ParseWrap converts a configuration name such as "clamp_to_edge" to a Wrap.
func ParseWrap(name string) (Wrap, error) {
	switch strings.ToLower(name) {
	case "repeat", "":
		return Repeat, nil
	case "mirrored_repeat":
		return MirroredRepeat, nil
	case "clamp_to_edge":
		return ClampToEdge, nil
	case "clamp_to_border":
		return ClampToBorder, nil
	default:
		return Repeat, fmt.Errorf("unknown texture wrap %q", name)
	}
}

// Filter is the minification filter. Every value except Linear samples mipmaps.
type Filter int32

const (
	Linear               Filter = gl.LINEAR
	NearestMipmapNearest Filter = gl.NEAREST_MIPMAP_NEAREST
	NearestMipmapLinear  Filter = gl.NEAREST_MIPMAP_LINEAR
	LinearMipmapNearest  Filter = gl.LINEAR_MIPMAP_NEAREST
	LinearMipmapLinear   Filter = gl.LINEAR_MIPMAP_LINEAR
)

// usesMipmaps reports whether the filter needs a mipmap chain.
func (f Filter) usesMipmaps() bool {
	return f != Linear && f != gl.NEAREST
}

// TextureOptions controls how an image becomes a texture.
type TextureOptions struct {
	Wrap   Wrap
	Filter Filter
	// FlipVertically puts the first image row at the bottom, where GL expects v = 0.
	FlipVertically bool
}

// DefaultTextureOptions repeats, uses trilinear filtering and flips the image.
func DefaultTextureOptions() TextureOptions {
	return TextureOptions{
		Wrap:           Repeat,
		Filter:         LinearMipmapLinear,
		FlipVertically: true,
	}
}

// Texture is a 2D RGBA texture on the GPU.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// DecodeImage decodes any registered image format (png, jpeg, gif, bmp, tiff, webp)
// into tightly packed RGBA with the origin at the top-left, or the bottom-left when flip is set.
func DecodeImage(r io.Reader, flip bool) (*image.RGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%s image is empty", format)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	if flip {
		flipRows(rgba)
	}
	return rgba, nil
}

// flipRows mirrors img top to bottom in place.
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// LoadTexture decodes the image at path and uploads it.
func LoadTexture(path string, opts TextureOptions) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer f.Close()

	img, err := DecodeImage(f, opts.FlipVertically)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}

	return NewTexture(img, opts), nil
}

// NewTexture uploads img and generates mipmaps when the filter needs them.
func NewTexture(img *image.RGBA, opts TextureOptions) *Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(opts.Wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(opts.Wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(opts.Filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	width := img.Rect.Dx()
	height := img.Rect.Dy()

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	if opts.Filter.usesMipmaps() {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Width: width, Height: height}
}

// Close deletes the texture. Calling it again is a no-op.
func (t *Texture) Close() error {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
	return nil
}

// BindTextures binds textures to consecutive units starting at GL_TEXTURE0.
func BindTextures(textures ...*Texture) {
	for i, t := range textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, t.ID)
	}
}
