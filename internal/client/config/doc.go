// Package config loads runtime configuration for the wheel CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config, or
//     the WHEEL_CONFIG environment variable.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   server gRPC address
//	-t int      per-request timeout, seconds
//	-i int      online check interval, seconds
package config
