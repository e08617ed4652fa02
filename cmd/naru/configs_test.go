package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gobd/naru"
	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainConfigCheck(t *testing.T) {
	tests := []struct {
		name    string
		cfg     MainConfig
		wantErr bool
	}{
		{name: "none", cfg: MainConfig{}},
		{name: "json", cfg: MainConfig{J: true}},
		{name: "json and color", cfg: MainConfig{J: true, Color: true}},
		{name: "json and yaml", cfg: MainConfig{J: true, Y: true}, wantErr: true},
		{name: "color and nocolor", cfg: MainConfig{Color: true, NoColor: true}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.check()
			if tt.wantErr {
				assert.ErrorIs(t, err, cli.ErrUsage)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOutOpt(t *testing.T) {
	dir := t.TempDir()
	cfg := &MainConfig{}
	cc := &cli.Context{}

	first := filepath.Join(dir, "first.yaml")
	_, err := cfg.outOpt(cc, first)
	require.NoError(t, err)
	require.NotNil(t, cfg.CloseOut)
	w := cc.Out
	_, err = fmt.Fprint(w, "a: 1\n")
	require.NoError(t, err)

	second := filepath.Join(dir, "second.yaml")
	_, err = cfg.outOpt(cc, second)
	require.NoError(t, err)
	_, err = fmt.Fprint(w, "b: 2\n")
	assert.Error(t, err, "earlier output is closed")
	d, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(d))

	cfg.closeOut()
	assert.Nil(t, cfg.CloseOut)

	_, err = cfg.outOpt(cc, "-")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, cc.Out)

	_, err = cfg.outOpt(cc, filepath.Join(dir, "missing", "out.yaml"))
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "naru.yaml")
	require.NoError(t, os.WriteFile(path, []byte("recursive: true\n"), 0o600))

	base := naru.Config{RaiseError: true, ReturnLast: true}
	got, err := loadConfig(path, base)
	require.NoError(t, err)
	assert.Equal(t, naru.Config{Recursive: true, RaiseError: true, ReturnLast: true}, got)

	require.NoError(t, os.WriteFile(path, []byte("recursve: true\n"), 0o600))
	_, err = loadConfig(path, base)
	assert.Error(t, err)
}
