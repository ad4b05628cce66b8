// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.RGBA{228, 26, 28, 255})
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func TestExtToFormat(t *testing.T) {
	tests := map[string]Formats{
		".png": PNG, "JPG": JPEG, "jpeg": JPEG, ".gif": GIF,
		"tif": TIFF, ".TIFF": TIFF, "bmp": BMP,
	}
	for ext, want := range tests {
		f, err := ExtToFormat(ext)
		assert.NoError(t, err, ext)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.ErrorIs(t, err, ErrFormat)
	_, err = ExtToFormat("webp")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("out.png"))
	assert.True(t, IsImageFile("out.BMP"))
	assert.False(t, IsImageFile("out.svg"))
	assert.False(t, IsImageFile("out.webp"))
	assert.False(t, IsImageFile("out"))
}

func TestWriteRead(t *testing.T) {
	img := checker(8, 6)
	for _, f := range []Formats{PNG, GIF, TIFF, BMP} {
		var buf bytes.Buffer
		require.NoError(t, Write(img, &buf, f), "format %d", f)
		got, gf, err := Read(&buf)
		require.NoError(t, err, "format %d", f)
		assert.Equal(t, f, gf)
		assert.Equal(t, img.Bounds(), got.Bounds())
	}
	assert.ErrorIs(t, Write(img, &bytes.Buffer{}, None), ErrFormat)
}

func TestSaveOpen(t *testing.T) {
	img := checker(5, 5)
	fn := filepath.Join(t.TempDir(), "checker.png")
	require.NoError(t, Save(img, fn))
	got, f, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, color.RGBAModel.Convert(img.At(1, 0)), color.RGBAModel.Convert(got.At(1, 0)))

	assert.Error(t, Save(img, filepath.Join(t.TempDir(), "checker.svg")))
}

func TestCompareColors(t *testing.T) {
	a := color.RGBA{100, 100, 100, 255}
	assert.True(t, CompareColors(a, color.RGBA{105, 95, 100, 255}, 10))
	assert.False(t, CompareColors(a, color.RGBA{120, 100, 100, 255}, 10))
}

func TestDiffImage(t *testing.T) {
	a := checker(4, 4)
	d := AsRGBA(DiffImage(a, a))
	for i := 0; i < len(d.Pix); i += 4 {
		assert.Equal(t, []uint8{0, 0, 0}, d.Pix[i:i+3])
	}
	black := image.NewRGBA(image.Rect(0, 0, 2, 1))
	for i := 3; i < len(black.Pix); i += 4 {
		black.Pix[i] = 255
	}
	w := AsRGBA(DiffImage(black, checker(2, 1)))
	assert.Equal(t, []uint8{255, 255, 255}, w.Pix[4:7])
}

type recordT struct {
	errs []string
}

func (r *recordT) Errorf(format string, args ...any) {
	r.errs = append(r.errs, format)
}

func TestAssert(t *testing.T) {
	t.Chdir(t.TempDir())
	update := UpdateTestImages
	UpdateTestImages = false
	defer func() { UpdateTestImages = update }()
	img := checker(6, 6)
	rt := &recordT{}
	Assert(rt, img, "checker")
	assert.Empty(t, rt.errs)
	_, _, err := Open(filepath.Join("testdata", "checker.png"))
	require.NoError(t, err)

	Assert(rt, img, "checker")
	assert.Empty(t, rt.errs)

	Assert(rt, checker(7, 6), "checker")
	assert.Len(t, rt.errs, 1)
	assert.FileExists(t, filepath.Join("testdata", "checker.fail.png"))

	other := checker(6, 6)
	other.Set(2, 3, color.Black)
	Assert(rt, other, "checker")
	assert.Len(t, rt.errs, 2)
	assert.FileExists(t, filepath.Join("testdata", "checker.diff.png"))

	Assert(rt, img, "checker")
	assert.Len(t, rt.errs, 2)
	assert.NoFileExists(t, filepath.Join("testdata", "checker.fail.png"))
}
