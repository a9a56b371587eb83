package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	c1 := Default()
	c1.Port = 9090
	c1.Debug = true

	err := Save(path, c1)
	require.NoError(t, err)

	c2, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, c1.Port, c2.Port)
	assert.Equal(t, c1.Debug, c2.Debug)
}

func TestConfig_Defaults(t *testing.T) {
	c := Default()
	assert.Equal(t, PortDefault, c.Port)
	assert.False(t, c.Debug)
	assert.Equal(t, "info", c.Level)
}

func TestConfig_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0600))

	c, err := Read(path)
	require.NoError(t, err)
	assert.True(t, c.Debug)
	assert.Equal(t, PortDefault, c.Port)
}

func TestConfig_Errors(t *testing.T) {
	_, err := Read("")
	assert.Error(t, err)

	_, err = Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a number"), 0600))
	_, err = Read(path)
	assert.Error(t, err)

	assert.Error(t, Save("", Default()))
	assert.Error(t, Save(path, nil))
}
