// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/dive4dec/cs5483-25b/base/iox/tomlx"
	"github.com/spf13/pflag"
)

// Config is the configuration of a regionplot run. It can be loaded
// from TOML files with -config, and any flag given on the command
// line overrides the files.
type Config struct {

	// Data is a delimited text file with a header row,
	// or the name of a generated dataset: blobs or moons.
	Data string

	// Label is the name of the label column. default: the last column
	Label string

	// Features are the two comma-separated feature column names.
	// default: the first two columns other than the label
	Features string

	// Samples is the number of points of a generated dataset.
	Samples int

	// Noise is the standard deviation of a generated dataset.
	Noise float64

	// Seed seeds the random generator of a generated dataset.
	Seed int64

	// SaveData is a file to write the loaded or generated samples to,
	// tab separated for a .tsv extension and comma separated otherwise.
	SaveData string

	// Model is the classifier: knn or centroid.
	Model string

	// K is the number of neighbors of the knn model.
	K int

	// Resolution is the number of grid points per axis.
	Resolution int

	// Palette is the class palette: set1, tab10, or spaced:N.
	Palette string

	// Alpha is the opacity of the region fill.
	Alpha float64

	// Boundaries draws lines along the region borders.
	Boundaries bool

	// Title is the title of the plot.
	Title string

	// Output is the output file. Its extension selects the format:
	// png, jpg, gif, tif, bmp, svg, pdf, or eps.
	Output string

	// Width and Height are the size of the plot in inches.
	Width, Height float64
}

// Defaults sets the default configuration.
func (c *Config) Defaults() {
	*c = Config{
		Data:       "blobs",
		Samples:    200,
		Noise:      0.2,
		Seed:       1,
		Model:      "knn",
		K:          5,
		Resolution: 200,
		Palette:    "set1",
		Alpha:      0.4,
		Output:     "regions.png",
		Width:      6,
		Height:     4.5,
	}
}

// FeatureNames returns the feature column names, nil if unset.
func (c *Config) FeatureNames() []string {
	if strings.TrimSpace(c.Features) == "" {
		return nil
	}
	fs := strings.Split(c.Features, ",")
	for i := range fs {
		fs[i] = strings.TrimSpace(fs[i])
	}
	return fs
}

// addFlags binds the config fields to flags.
func (c *Config) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Output, "output", "o", c.Output, "output file; the extension selects the format")
	fs.StringVar(&c.Label, "label", c.Label, "name of the label column")
	fs.StringVar(&c.Features, "features", c.Features, "comma-separated names of the two feature columns")
	fs.IntVar(&c.Samples, "samples", c.Samples, "number of points of a generated dataset")
	fs.Float64Var(&c.Noise, "noise", c.Noise, "standard deviation of a generated dataset")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed of a generated dataset")
	fs.StringVar(&c.SaveData, "save-data", c.SaveData, "write the samples to this delimited text file")
	fs.StringVarP(&c.Model, "model", "m", c.Model, "classifier: knn or centroid")
	fs.IntVarP(&c.K, "k", "k", c.K, "number of neighbors of the knn model")
	fs.IntVarP(&c.Resolution, "resolution", "n", c.Resolution, "number of grid points per axis")
	fs.StringVar(&c.Palette, "palette", c.Palette, "class palette: set1, tab10, or spaced:N")
	fs.Float64Var(&c.Alpha, "alpha", c.Alpha, "opacity of the region fill")
	fs.BoolVar(&c.Boundaries, "boundaries", c.Boundaries, "draw lines along the region borders")
	fs.StringVar(&c.Title, "title", c.Title, "title of the plot")
	fs.Float64Var(&c.Width, "width", c.Width, "width of the plot in inches")
	fs.Float64Var(&c.Height, "height", c.Height, "height of the plot in inches")
}

// givenFlags returns the values of the flags in fs that were set on
// the command line.
func givenFlags(fs *pflag.FlagSet) map[string]string {
	given := map[string]string{}
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			given[f.Name] = f.Value.String()
		}
	})
	return given
}

// load resets c to the defaults, reads the config files in order,
// and then re-applies the given flag values so that they take
// precedence over the files.
func (c *Config) load(fs *pflag.FlagSet, given map[string]string, files ...string) error {
	c.Defaults()
	if len(files) > 0 {
		if err := tomlx.OpenFiles(c, files...); err != nil {
			return err
		}
	}
	for name, val := range given {
		if err := fs.Set(name, val); err != nil {
			return err
		}
	}
	return nil
}
