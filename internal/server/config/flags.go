package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/wheel/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-h string   HTTP bind address (e.g., ":8080")
//	-m float    initial monthly budget
//	-s string   catalog source: builtin, file, s3, autodev
//	-f string   catalog file (json or yaml)
//	-b string   S3 bucket
//	-k string   S3 object key
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-u string   S3 access key
//	-p string   S3 secret key
//	-x string   auto.dev API key
//	-l string   log backend: slog or zap
//
// The remaining fields are set through the JSON file only.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-h", "-m", "-s", "-f", "-b", "-k", "-g", "-e", "-u", "-p", "-x", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "h", config.EndpointAddrHTTP, "HTTP address and port")
	fs.Float64Var(&config.InitialBudget, "m", config.InitialBudget, "initial monthly budget")

	fs.StringVar(&config.CatalogSource, "s", config.CatalogSource, "catalog source (builtin, file, s3, autodev)")
	fs.StringVar(&config.CatalogFile, "f", config.CatalogFile, "catalog file")

	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Key, "k", config.S3Key, "S3 object key")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")

	fs.StringVar(&config.AutoDevAPIKey, "x", config.AutoDevAPIKey, "auto.dev API key")
	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend (slog, zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
