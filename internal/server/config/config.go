// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"time"

	"github.com/dmitrijs2005/wheel/internal/catalog"
	"github.com/dmitrijs2005/wheel/internal/garage"
	"github.com/dmitrijs2005/wheel/internal/logging"
)

// Config holds runtime settings for the wheel server.
//
// Fields:
//   - EndpointAddrGRPC / EndpointAddrHTTP: bind addresses for the two surfaces.
//   - InitialBudget: monthly budget each session starts with.
//   - CatalogSource: one of builtin, file, s3, autodev; the matching group
//     of Catalog*, S3* or AutoDev* fields configures it.
//   - AllowedOrigins: CORS origins for the HTTP surface.
//   - LogBackend / LogFormat: slog or zap, json or text.
//   - ShutdownTimeout: grace period for the HTTP server on stop.
type Config struct {
	EndpointAddrGRPC string
	EndpointAddrHTTP string
	InitialBudget    float64

	CatalogSource string
	CatalogFile   string

	S3Bucket       string
	S3Key          string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string

	AutoDevBaseURL string
	AutoDevAPIKey  string
	AutoDevMake    string
	AutoDevModel   string
	AutoDevYear    int
	AutoDevZipCode string
	AutoDevRadius  int
	AutoDevTimeout time.Duration

	AllowedOrigins []string

	LogBackend string
	LogFormat  string

	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with development defaults: the built-in
// catalog, JSON logs through slog, and a local MinIO for the s3 source.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8080"
	c.InitialBudget = garage.DefaultBudget

	c.CatalogSource = catalog.SourceBuiltin
	c.CatalogFile = "catalog.json"

	c.S3Bucket = "wheel"
	c.S3Key = "catalog.json"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"

	c.AutoDevBaseURL = catalog.DefaultAutoDevBaseURL
	c.AutoDevMake = "Toyota"
	c.AutoDevModel = "RAV4"
	c.AutoDevRadius = catalog.DefaultAutoDevRadius
	c.AutoDevTimeout = catalog.DefaultAutoDevTimeout

	c.AllowedOrigins = []string{"*"}

	c.LogBackend = logging.BackendSlog
	c.LogFormat = logging.FormatJSON

	c.ShutdownTimeout = 5 * time.Second
}

// CatalogOptions maps the catalog fields onto catalog.Options.
func (c *Config) CatalogOptions() catalog.Options {
	return catalog.Options{
		Source: c.CatalogSource,
		File:   c.CatalogFile,
		S3: catalog.S3Options{
			Bucket:       c.S3Bucket,
			Key:          c.S3Key,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
		},
		AutoDev: catalog.AutoDevOptions{
			BaseURL: c.AutoDevBaseURL,
			APIKey:  c.AutoDevAPIKey,
			Make:    c.AutoDevMake,
			Model:   c.AutoDevModel,
			Year:    c.AutoDevYear,
			ZipCode: c.AutoDevZipCode,
			Radius:  c.AutoDevRadius,
			Timeout: c.AutoDevTimeout,
		},
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
