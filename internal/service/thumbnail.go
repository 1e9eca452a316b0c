package service

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

const thumbnailSize = 128

// Thumbnail reads the image at srcPath, scales it down to fit a
// thumbnailSize square and writes the result next to the original with a
// "thumb-" prefix. The thumbnail path is returned.
func Thumbnail(srcPath string) (string, error) {
	in, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer in.Close()

	src, format, err := image.Decode(in)
	if err != nil {
		return "", err
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > height {
		height = height * thumbnailSize / width
		width = thumbnailSize
	} else {
		width = width * thumbnailSize / height
		height = thumbnailSize
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	dir, name := filepath.Split(srcPath)
	thumbPath := filepath.Join(dir, "thumb-"+name)

	out, err := os.Create(thumbPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if format == "png" || strings.HasSuffix(strings.ToLower(name), ".png") {
		err = png.Encode(out, dst)
	} else {
		err = jpeg.Encode(out, dst, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return "", err
	}

	return thumbPath, nil
}
