package applink

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// set of supported api spec formats
const (
	APISpecFormatJSON = "json"
	APISpecFormatYAML = "yaml"
)

var apiSpecFormats = map[string]string{
	".json": APISpecFormatJSON,
	".yaml": APISpecFormatYAML,
	".yml":  APISpecFormatYAML,
}

// ErrUnsupportedAPISpec is an error for an api spec file that is neither JSON nor YAML
type ErrUnsupportedAPISpec struct {
	Path string
}

func (err ErrUnsupportedAPISpec) Error() string {
	return fmt.Sprintf("%s must be an OpenAPI document with a .json, .yaml or .yml extension", err.Path)
}

// DisableUsage disables usage printing
func (err ErrUnsupportedAPISpec) DisableUsage() struct{} { return struct{}{} }

// ReadAPISpec reads the OpenAPI document at path
func ReadAPISpec(fs afero.Fs, path string) (APISpec, error) {
	format, ok := apiSpecFormats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return APISpec{}, ErrUnsupportedAPISpec{path}
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return APISpec{}, fmt.Errorf("failed to read api spec: %w", err)
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return APISpec{}, fmt.Errorf("api spec %s is empty", path)
	}

	return APISpec{
		Format:   format,
		Filename: filepath.Base(path),
		Content:  string(content),
	}, nil
}
