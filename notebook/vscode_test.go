// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notebook

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVSCodeURL(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"", "/vscode/?folder=%2Fdata%2Fproject"},
		{"/", "/vscode/?folder=%2Fdata%2Fproject"},
		{"/user/alice/", "/user/alice/vscode/?folder=%2Fdata%2Fproject"},
		// a prefix without a trailing slash replaces its last segment
		{"/user/alice", "/user/vscode/?folder=%2Fdata%2Fproject"},
	}
	for _, tt := range tests {
		href, abs, err := Config{ServicePrefix: tt.prefix}.VSCodeURL("/data/project")
		require.NoError(t, err)
		assert.Equal(t, tt.want, href, tt.prefix)
		assert.Equal(t, "/data/project", abs)
	}
}

func TestVSCodeURLRelative(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	_, abs, err := Config{}.VSCodeURL("sub/../Tutorial4")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "Tutorial4"), abs)

	home, err := homedir.Dir()
	require.NoError(t, err)
	_, abs, err = Config{}.VSCodeURL("~/notes")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes"), abs)
}

func TestVSCodeLink(t *testing.T) {
	link, err := Config{ServicePrefix: "/user/bob/"}.VSCodeLink("/data/a&b", "")
	require.NoError(t, err)
	want := `<a href="/user/bob/vscode/?folder=%2Fdata%2Fa%26b" target="_blank" title="/user/bob/vscode/?folder=%2Fdata%2Fa%26b">` +
		`Click to open in VSCode: /data/a&amp;b</a>`
	assert.Equal(t, want, string(link))

	link, err = Config{}.VSCodeLink("/x", `"_self"`)
	require.NoError(t, err)
	assert.Contains(t, string(link), `target="&#34;_self&#34;"`)

	_, err = Config{ServicePrefix: "%zz"}.VSCodeLink("/x", "")
	assert.Error(t, err)
}

func TestDisplayVSCode(t *testing.T) {
	t.Setenv(ServicePrefixEnv, "/user/carol/")
	assert.Equal(t, "/user/carol/", ConfigFromEnv().ServicePrefix)

	var buf bytes.Buffer
	require.NoError(t, DisplayVSCode(&buf, "/srv/data", "_blank"))
	assert.Contains(t, buf.String(), `href="/user/carol/vscode/?folder=%2Fsrv%2Fdata"`)
}
