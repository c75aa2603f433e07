// yaml.go provides the directory-backed Source. Each field key maps to one
// YAML document named <key>.yaml (or .yml) under the configured directory:
//
//	description: Estados de notificación DIAN
//	values:
//	  - notificado
//	  - pendiente
//	replacements:
//	  notificada: notificado
package values

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileSource loads value lists from YAML files in a directory.
type FileSource struct {
	dir string
}

// NewFileSource builds a FileSource over dir. The directory is not checked
// until the first Load.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// fileList is the on-disk document shape.
type fileList struct {
	Description  string            `yaml:"description"`
	Values       []string          `yaml:"values"`
	Replacements map[string]string `yaml:"replacements"`
}

// Load implements Source. A key with no matching file is ErrNotFound; a
// file that exists but does not parse is a real error.
func (s *FileSource) Load(_ context.Context, key string) (*ValueList, error) {
	key = normalizeKey(key)
	if key == "" || strings.ContainsAny(key, `/\`) {
		return nil, ErrNotFound
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(s.dir, key+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading value list %s: %w", path, err)
		}
		var doc fileList
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing value list %s: %w", path, err)
		}
		list := NewValueList(key, doc.Values, doc.Replacements)
		list.Description = doc.Description
		return list, nil
	}
	return nil, ErrNotFound
}
