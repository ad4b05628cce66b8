// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/blend"
	"github.com/dive4dec/cs5483-25b/base/errors"
)

// TestingT is the subset of *testing.T used by [Assert].
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] save the given images as the new
// expected images instead of comparing against them. It is set by the
// "update" build tag or by CS5483_UPDATE_TESTDATA=true.
var UpdateTestImages = updateTestImages

// Tolerance is the per-channel difference allowed by [Assert].
// Font rasterization differs slightly across platforms.
var Tolerance = 10

// CompareColors returns whether all channels of a and b are within tol.
func CompareColors(a, b color.RGBA, tol int) bool {
	near := func(x, y uint8) bool {
		d := int(x) - int(y)
		return d >= -tol && d <= tol
	}
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}

// DiffImage returns the per-channel absolute difference of a and b.
func DiffImage(a, b image.Image) image.Image {
	return blend.Difference(a, b)
}

// firstDiff returns the first pixel at which a and b differ by more
// than tol, and false if there is none.
func firstDiff(a, b image.Image, tol int) (image.Point, bool) {
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ac := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			bc := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			if !CompareColors(ac, bc, tol) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

// Assert checks img against the expected image testdata/<filename>,
// with ".png" added when filename has no extension. A mismatch is
// reported through t, and the image and its difference from the
// expected one are saved next to it as .fail and .diff files.
// A missing expected image is created from img.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".png"
		filename += ext
	}
	base := strings.TrimSuffix(filename, ext)
	failFile, diffFile := base+".fail"+ext, base+".diff"+ext

	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Errorf("imagex.Assert: %v", err)
		return
	}
	clean := func() {
		os.Remove(failFile)
		os.Remove(diffFile)
	}

	want, _, err := Open(filename)
	if UpdateTestImages || errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", filename, err)
		}
		clean()
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: opening %s: %v", filename, err)
		return
	}

	if img.Bounds() != want.Bounds() {
		t.Errorf("imagex.Assert: %s has bounds %v, got %v; see %s", filename, want.Bounds(), img.Bounds(), failFile)
	} else if pt, ok := firstDiff(img, want, Tolerance); ok {
		t.Errorf("imagex.Assert: %s differs at %v: want %v, got %v; see %s", filename, pt, want.At(pt.X, pt.Y), img.At(pt.X, pt.Y), failFile)
	} else {
		clean()
		return
	}
	if err := Save(img, failFile); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", failFile, err)
	}
	if err := Save(DiffImage(img, want), diffFile); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", diffFile, err)
	}
}
