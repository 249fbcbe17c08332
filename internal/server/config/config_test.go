package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/wheel/internal/catalog"
	"github.com/dmitrijs2005/wheel/internal/flagx"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, 450.0, c.InitialBudget)
	assert.Equal(t, "builtin", c.CatalogSource)
	assert.Equal(t, "catalog.json", c.CatalogFile)
	assert.Equal(t, "wheel", c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Equal(t, "https://api.auto.dev/listings", c.AutoDevBaseURL)
	assert.Equal(t, 15*time.Second, c.AutoDevTimeout)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv(flagx.ConfigFileEnv, "")

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	var want Config
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(&want, c))
}

func TestCatalogOptions(t *testing.T) {
	var c Config
	c.LoadDefaults()
	c.CatalogSource = catalog.SourceS3
	c.S3Key = "cars.yaml"
	c.AutoDevAPIKey = "k"
	c.AutoDevYear = 2025

	opts := c.CatalogOptions()
	assert.Equal(t, catalog.SourceS3, opts.Source)
	assert.Equal(t, "cars.yaml", opts.S3.Key)
	assert.Equal(t, "wheel", opts.S3.Bucket)
	assert.Equal(t, "http://127.0.0.1:9000/", opts.S3.BaseEndpoint)
	assert.Equal(t, "k", opts.AutoDev.APIKey)
	assert.Equal(t, 2025, opts.AutoDev.Year)
	assert.Equal(t, "Toyota", opts.AutoDev.Make)
}
