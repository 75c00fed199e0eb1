package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a theme file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported theme file extension %q", filepath.Ext(path))
	}
}

// Load reads a theme file and overlays it onto the default theme.
// Fields absent from the file keep their default values.
func Load(path string) (*GraphNodeThemeData, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	return Parse(data, format)
}

// Parse decodes theme data onto the default theme.
func Parse(data []byte, format Format) (*GraphNodeThemeData, error) {
	t := DefaultGraphNodeTheme()
	if err := Decode(data, format, t); err != nil {
		return nil, err
	}
	return t.Resolve(), nil
}

// Decode overlays theme data onto t.
func Decode(data []byte, format Format, t *GraphNodeThemeData) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(t); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse theme yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), t)
		if err != nil {
			return fmt.Errorf("failed to parse theme toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown theme keys: %v", undecoded)
		}
	default:
		return fmt.Errorf("unknown theme format %d", format)
	}
	return nil
}
