// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dive4dec/cs5483-25b/base/iox/imagex"
	"github.com/dive4dec/cs5483-25b/base/logx"
	"github.com/dive4dec/cs5483-25b/base/randx"
	"github.com/dive4dec/cs5483-25b/classify"
	"github.com/dive4dec/cs5483-25b/colors/palette"
	"github.com/dive4dec/cs5483-25b/dataset"
	"github.com/dive4dec/cs5483-25b/plot/regions"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func newRootCmd() *cobra.Command {
	cfg := &Config{}
	cfg.Defaults()
	var (
		files   []string
		verbose int
		quiet   bool
		watch   bool
	)
	cfgFlags := pflag.NewFlagSet("config", pflag.ContinueOnError)
	cfg.addFlags(cfgFlags)
	cmd := &cobra.Command{
		Use:          "regionplot [flags] [data.csv | blobs | moons]",
		Short:        "Draw the decision regions of a classifier on 2D data",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.VerbosityLevel(verbose, quiet)
			logx.SetDefaultLogger()
			given := givenFlags(cfgFlags)
			render := func() error {
				if err := cfg.load(cfgFlags, given, files...); err != nil {
					return fmt.Errorf("loading config %q: %w", files, err)
				}
				if len(args) == 1 {
					cfg.Data = args[0]
				}
				return run(cfg)
			}
			if err := render(); err != nil || !watch {
				return err
			}
			wt, err := newWatcher(append(slices.Clone(files), cfg.Data)...)
			if err != nil {
				return err
			}
			slog.Info("watching for changes", "config", files, "data", cfg.Data)
			return wt.run(cmd.Context(), render)
		},
	}
	fs := cmd.Flags()
	fs.StringSliceVarP(&files, "config", "c", nil, "TOML config files, applied in order")
	fs.CountVarP(&verbose, "verbose", "v", "log debug messages")
	fs.BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	fs.BoolVarP(&watch, "watch", "w", false, "render again whenever a config or data file changes")
	fs.AddFlagSet(cfgFlags)
	return cmd
}

// run loads the data, fits the model, and saves the plot.
func run(cfg *Config) error {
	ds, err := loadData(cfg)
	if err != nil {
		return err
	}
	slog.Info("loaded data", "data", cfg.Data, "samples", ds.Len(), "features", ds.Names[:])
	if cfg.SaveData != "" {
		delim := dataset.Comma
		if strings.EqualFold(filepath.Ext(cfg.SaveData), ".tsv") {
			delim = dataset.Tab
		}
		if err := ds.SaveCSV(cfg.SaveData, delim); err != nil {
			return err
		}
		slog.Debug("saved data", "file", cfg.SaveData)
	}

	clf, err := fitModel(cfg, ds)
	if err != nil {
		return err
	}
	slog.Debug("fitted model", "model", cfg.Model)

	pal, err := palette.Named(cfg.Palette)
	if err != nil {
		return err
	}
	plt := plot.New()
	plt.Title.Text = cfg.Title
	opts := &regions.Options[string]{
		Resolution: cfg.Resolution,
		Style: regions.Style{
			Palette:    pal,
			Alpha:      cfg.Alpha,
			Boundaries: cfg.Boundaries,
			XLabel:     ds.Names[0],
			YLabel:     ds.Names[1],
		},
	}
	if _, err := regions.Render[string](plt, ds.X, ds.Y, clf, opts); err != nil {
		return err
	}

	if err := save(plt, cfg); err != nil {
		return err
	}
	slog.Info("saved plot", "output", cfg.Output)
	return nil
}

func loadData(cfg *Config) (*dataset.Dataset, error) {
	rnd := randx.NewSysRand(cfg.Seed)
	switch strings.ToLower(cfg.Data) {
	case "blobs":
		centers := [][2]float64{{0, 0}, {3, 3}, {-3, 3}}
		return dataset.Blobs(cfg.Samples, centers, 1+cfg.Noise, rnd)
	case "moons":
		return dataset.Moons(cfg.Samples, cfg.Noise, rnd)
	}
	return dataset.OpenCSV(cfg.Data, &dataset.CSVOptions{
		Delim:    dataset.Detect,
		Label:    cfg.Label,
		Features: cfg.FeatureNames(),
	})
}

func fitModel(cfg *Config, ds *dataset.Dataset) (regions.Classifier[string], error) {
	switch strings.ToLower(cfg.Model) {
	case "knn", "":
		m := classify.NewKNN[string](cfg.K)
		return m, m.Fit(ds.X, ds.Y)
	case "centroid":
		m := &classify.NearestCentroid[string]{}
		return m, m.Fit(ds.X, ds.Y)
	}
	return nil, fmt.Errorf("unknown model %q", cfg.Model)
}

// save writes the plot, rasterizing through imagex for image formats
// and through the plot's own vector backends otherwise.
func save(plt *plot.Plot, cfg *Config) error {
	w, h := vg.Length(cfg.Width)*vg.Inch, vg.Length(cfg.Height)*vg.Inch
	if imagex.IsImageFile(cfg.Output) {
		return imagex.Save(regions.Image(plt, w, h), cfg.Output)
	}
	switch strings.ToLower(filepath.Ext(cfg.Output)) {
	case ".svg", ".pdf", ".eps":
		return plt.Save(w, h, cfg.Output)
	}
	return fmt.Errorf("unsupported output format %q", cfg.Output)
}
