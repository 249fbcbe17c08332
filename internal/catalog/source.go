// Package catalog produces the vehicle listings a session swipes through:
// the compiled-in list, a JSON/YAML file, an object in an S3-compatible
// bucket, or an auto.dev listings search.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wheel/internal/common"
	"github.com/dmitrijs2005/wheel/internal/garage"
)

// Source names understood by New.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceS3      = "s3"
	SourceAutoDev = "autodev"
)

// Source loads a catalog once at startup.
type Source interface {
	Load(ctx context.Context) ([]garage.Vehicle, error)
}

// StaticSource serves a fixed list.
type StaticSource []garage.Vehicle

func (s StaticSource) Load(context.Context) ([]garage.Vehicle, error) {
	out := make([]garage.Vehicle, len(s))
	for i, v := range s {
		out[i] = v.Clone()
	}
	return out, nil
}

// Options selects and parameterises a Source.
type Options struct {
	Source string

	File string

	S3 S3Options

	AutoDev AutoDevOptions
}

// S3Options locates a catalog object in an S3-compatible store.
type S3Options struct {
	Bucket       string
	Key          string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// AutoDevOptions parameterises an auto.dev listings search.
type AutoDevOptions struct {
	BaseURL string
	APIKey  string
	Make    string
	Model   string
	Year    int
	ZipCode string
	Radius  int
	Timeout time.Duration
}

// New builds the Source named by opts.Source.
func New(ctx context.Context, opts Options) (Source, error) {
	switch opts.Source {
	case "", SourceBuiltin:
		return StaticSource(Builtin()), nil
	case SourceFile:
		if opts.File == "" {
			return nil, fmt.Errorf("%w: catalog file not set", common.ErrorInvalidArgument)
		}
		return FileSource{Path: opts.File}, nil
	case SourceS3:
		return NewS3Source(ctx, opts.S3)
	case SourceAutoDev:
		return NewAutoDevSource(opts.AutoDev, nil)
	}
	return nil, fmt.Errorf("%w: unknown catalog source %q", common.ErrorInvalidArgument, opts.Source)
}
