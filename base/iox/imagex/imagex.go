// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides image encoding, decoding and golden-image
// testing helpers for rendered plots.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dive4dec/cs5483-25b/base/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats are the raster formats that plots can be saved in.
type Formats int32

const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
)

// ErrFormat is returned for a file extension or format that is not
// one of the [Formats].
var ErrFormat = errors.New("imagex: unsupported image format")

var extFormats = map[string]Formats{
	"png":  PNG,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"bmp":  BMP,
}

// ExtToFormat returns the format for a filename extension,
// with or without the leading dot, in any case.
func ExtToFormat(ext string) (Formats, error) {
	f, ok := extFormats[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok {
		return None, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	return f, nil
}

// IsImageFile returns whether [Save] can encode the given filename.
func IsImageFile(filename string) bool {
	_, err := ExtToFormat(filepath.Ext(filename))
	return err == nil
}

// Open decodes the image in the given file and returns its format.
func Open(filename string) (image.Image, Formats, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer fp.Close()
	return Read(bufio.NewReader(fp))
}

// Read decodes an image of any of the [Formats] from r.
func Read(r io.Reader) (image.Image, Formats, error) {
	im, name, err := image.Decode(r)
	if err != nil {
		return nil, None, err
	}
	f, err := ExtToFormat(name)
	return im, f, err
}

// Save encodes the image to the given file, in the format given by
// its extension.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fp)
	err = Write(im, bw, f)
	if err == nil {
		err = bw.Flush()
	}
	return errors.Join(err, fp.Close())
}

// Write encodes the image to w in the given format.
func Write(im image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, im, nil)
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	}
	return fmt.Errorf("%w: %d", ErrFormat, f)
}
