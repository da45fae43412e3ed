package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_OverridesSelectedFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", "https://flag.example/auth", "-t", "7", "-d", "/var/hb"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://flag.example/auth", cfg.AuthEndpoint)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/var/hb", cfg.DataDir)
	assert.Equal(t, "http://127.0.0.1:8080/files", cfg.FilesEndpoint)
}

func Test_parseFlags_NoFlagsKeepsValues(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://127.0.0.1:8080/auth", cfg.AuthEndpoint)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
