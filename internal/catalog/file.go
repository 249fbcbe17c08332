package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/wheel/internal/common"
	"github.com/dmitrijs2005/wheel/internal/garage"
	"gopkg.in/yaml.v3"
)

// Format is a catalog document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromName picks the format from a file name or object key extension.
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: cannot tell catalog format of %q", common.ErrorInvalidArgument, name)
}

// Decode reads a list of listings from r and validates it.
func Decode(r io.Reader, format Format) ([]garage.Vehicle, error) {
	var records []record

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return nil, fmt.Errorf("%w: decode json catalog: %v", common.ErrorInvalidArgument, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: decode yaml catalog: %v", common.ErrorInvalidArgument, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported catalog format %q", common.ErrorInvalidArgument, format)
	}

	cars := make([]garage.Vehicle, 0, len(records))
	for _, rec := range records {
		cars = append(cars, rec.vehicle())
	}

	if err := Validate(cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// FileSource loads the catalog from a local JSON or YAML file.
type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) ([]garage.Vehicle, error) {
	format, err := FormatFromName(s.Path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}
