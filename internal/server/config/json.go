package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/wheel/internal/flagx"
	"github.com/dmitrijs2005/wheel/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "15s" or
// integer nanoseconds. Pointer fields distinguish "absent" from zero.
type JsonConfig struct {
	EndpointAddrGRPC string   `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP string   `json:"endpoint_addr_http"`
	InitialBudget    *float64 `json:"initial_budget"`

	CatalogSource string `json:"catalog_source"`
	CatalogFile   string `json:"catalog_file"`

	S3Bucket       string `json:"s3_bucket"`
	S3Key          string `json:"s3_key"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`

	AutoDevBaseURL string          `json:"autodev_base_url"`
	AutoDevAPIKey  string          `json:"autodev_api_key"`
	AutoDevMake    string          `json:"autodev_make"`
	AutoDevModel   string          `json:"autodev_model"`
	AutoDevYear    int             `json:"autodev_year"`
	AutoDevZipCode string          `json:"autodev_zip_code"`
	AutoDevRadius  int             `json:"autodev_radius"`
	AutoDevTimeout *timex.Duration `json:"autodev_timeout"`

	AllowedOrigins []string `json:"allowed_origins"`

	LogBackend string `json:"log_backend"`
	LogFormat  string `json:"log_format"`

	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays values from the JSON file named by -c/-config (or
// $WHEEL_CONFIG) onto config. Keys missing from the file keep their
// current values. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	if c.InitialBudget != nil {
		config.InitialBudget = *c.InitialBudget
	}

	setString(&config.CatalogSource, c.CatalogSource)
	setString(&config.CatalogFile, c.CatalogFile)

	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Key, c.S3Key)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)

	setString(&config.AutoDevBaseURL, c.AutoDevBaseURL)
	setString(&config.AutoDevAPIKey, c.AutoDevAPIKey)
	setString(&config.AutoDevMake, c.AutoDevMake)
	setString(&config.AutoDevModel, c.AutoDevModel)
	setInt(&config.AutoDevYear, c.AutoDevYear)
	setString(&config.AutoDevZipCode, c.AutoDevZipCode)
	setInt(&config.AutoDevRadius, c.AutoDevRadius)
	if c.AutoDevTimeout != nil {
		config.AutoDevTimeout = c.AutoDevTimeout.Duration
	}

	if c.AllowedOrigins != nil {
		config.AllowedOrigins = c.AllowedOrigins
	}

	setString(&config.LogBackend, c.LogBackend)
	setString(&config.LogFormat, c.LogFormat)

	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
