package egrid

import (
	"image"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// JPEGQuality is used when saving in jpeg format
var JPEGQuality = 95

// Encoder returns the image encoder and file extension for format,
// one of png, jpeg (or jpg) or bmp. Empty means png.
func Encoder(format string) (imgio.Encoder, string, error) {
	switch strings.ToLower(format) {
	case "", "png":
		return imgio.PNGEncoder(), "png", nil
	case "jpeg", "jpg":
		return imgio.JPEGEncoder(JPEGQuality), "jpg", nil
	case "bmp":
		return imgio.BMPEncoder(), "bmp", nil
	}
	return nil, "", ErrUnknownFormat{format}
}

// SaveImage writes img to <stem>.<ext> in the given format,
// returning the file name written.
func SaveImage(img image.Image, stem, format string) (string, error) {
	enc, ext, err := Encoder(format)
	if err != nil {
		return "", err
	}
	fnm := stem + "." + ext
	if err := imgio.Save(fnm, img, enc); err != nil {
		return "", err
	}
	return fnm, nil
}
