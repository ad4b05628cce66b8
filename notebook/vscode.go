// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notebook provides helpers for notebooks served by JupyterHub,
// such as links that open a folder in the hub's VS Code service.
package notebook

import (
	"fmt"
	"html"
	"html/template"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// ServicePrefixEnv is the environment variable that JupyterHub sets
// to the route of the user's single-user server.
const ServicePrefixEnv = "JUPYTERHUB_SERVICE_PREFIX"

// DefaultTarget is the default target frame of links.
const DefaultTarget = "_blank"

// Config has the hub settings used to build links.
type Config struct {

	// ServicePrefix is the route of the user's server, such as
	// "/user/alice/". default: "/"
	ServicePrefix string
}

// ConfigFromEnv returns the Config of the current hub session.
func ConfigFromEnv() Config {
	return Config{ServicePrefix: os.Getenv(ServicePrefixEnv)}
}

// VSCodeURL returns the URL that opens the given folder in VS Code.
// The path is made absolute, with a leading ~ expanded to the home
// directory, and passed as the escaped "folder" query parameter.
func (c Config) VSCodeURL(path string) (href, abspath string, err error) {
	abspath, err = absPath(path)
	if err != nil {
		return "", "", err
	}
	prefix := c.ServicePrefix
	if prefix == "" {
		prefix = "/"
	}
	base, err := url.Parse(prefix)
	if err != nil {
		return "", "", fmt.Errorf("notebook: invalid service prefix %q: %w", prefix, err)
	}
	u := base.ResolveReference(&url.URL{Path: "vscode/"})
	u.RawQuery = url.Values{"folder": {abspath}}.Encode()
	return u.String(), abspath, nil
}

// VSCodeLink returns an HTML link that opens the given folder in VS Code.
// target is the target frame of the link, [DefaultTarget] if empty.
func (c Config) VSCodeLink(path, target string) (template.HTML, error) {
	href, abspath, err := c.VSCodeURL(path)
	if err != nil {
		return "", err
	}
	if target == "" {
		target = DefaultTarget
	}
	ehref := html.EscapeString(href)
	link := fmt.Sprintf(`<a href="%s" target="%s" title="%s">Click to open in VSCode: %s</a>`,
		ehref, html.EscapeString(target), ehref, html.EscapeString(abspath))
	return template.HTML(link), nil
}

// VSCodeLink returns an HTML link that opens the given folder in
// VS Code, using the hub settings of the environment.
func VSCodeLink(path, target string) (template.HTML, error) {
	return ConfigFromEnv().VSCodeLink(path, target)
}

// DisplayVSCode writes the VS Code link for path to w.
func DisplayVSCode(w io.Writer, path, target string) error {
	link, err := VSCodeLink(path, target)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, string(link))
	return err
}

func absPath(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(p)
}
