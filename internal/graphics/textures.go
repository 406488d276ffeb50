package graphics

import (
	"image"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// MaxCachedTextures bounds the texture cache. Loads beyond the limit
// fail softly with a placeholder instead of growing the cache.
const MaxCachedTextures = 64

// TextureCache is a bounded name-to-image cache. A missing or
// unloadable file resolves to a generated placeholder so rendering
// never deals with nil textures.
type TextureCache struct {
	entries map[string]*ebiten.Image
}

// NewTextureCache creates an empty cache.
func NewTextureCache() *TextureCache {
	return &TextureCache{
		entries: make(map[string]*ebiten.Image, MaxCachedTextures),
	}
}

// Load returns the cached texture for path, loading it on first use.
func (tc *TextureCache) Load(path string) *ebiten.Image {
	if img, ok := tc.entries[path]; ok {
		return img
	}

	img := loadImage(path)
	if img == nil {
		img = Placeholder()
	}

	if len(tc.entries) < MaxCachedTextures {
		tc.entries[path] = img
	} else {
		log.Printf("Texture cache full, not caching %s", path)
	}
	return img
}

// Len returns the number of cached textures.
func (tc *TextureCache) Len() int {
	return len(tc.entries)
}

func loadImage(path string) *ebiten.Image {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Failed to open texture %s: %v", path, err)
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Printf("Failed to decode texture %s: %v", path, err)
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

// Placeholder returns a flat magenta stand-in texture.
func Placeholder() *ebiten.Image {
	img := ebiten.NewImage(16, 16)
	img.Fill(colornames.Magenta)
	return img
}
