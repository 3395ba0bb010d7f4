package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is a message file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath returns the format implied by the given path's extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	}
	return "", false
}

// Load reads messages from r. Nested tables or mappings are flattened by joining their keys with
// dots, so the following are equivalent:
//
//	_field.name.title: Name
//
//	_field:
//	  name:
//	    title: Name
func Load(r io.Reader, format Format) (Map, error) {
	var tree map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&tree); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "unable to decode yaml messages")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&tree); err != nil {
			return nil, errors.Wrap(err, "unable to decode toml messages")
		}
	default:
		return nil, fmt.Errorf("unsupported message format: %v", format)
	}

	ret := Map{}
	if err := flatten(ret, "", tree); err != nil {
		return nil, err
	}
	return ret, nil
}

// LoadFile reads messages from the file at the given path. The format is determined by the file's
// extension.
func LoadFile(path string) (Map, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, fmt.Errorf("unable to determine message format of %v", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open message file")
	}
	defer f.Close()
	ret, err := Load(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %v", path)
	}
	return ret, nil
}

func flatten(dest Map, prefix string, tree map[string]any) error {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case map[string]any:
			if err := flatten(dest, key, v); err != nil {
				return err
			}
		case string:
			dest[key] = v
		case bool, int, int64, uint64, float64:
			dest[key] = fmt.Sprint(v)
		default:
			return fmt.Errorf("unsupported value for message %v: %T", key, v)
		}
	}
	return nil
}
