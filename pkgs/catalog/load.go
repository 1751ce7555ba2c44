package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumapictures/nukecli/pkgs/errors"
)

// File is the on-disk catalog format:
//
//	classes:
//	  - Blur
//	  - Grade
//	exclude:
//	  - "^.+Reader$"
//	  - "^.+Writer$"
type File struct {
	Classes []string `yaml:"classes"`
	Exclude []string `yaml:"exclude"`
}

// Load reads a YAML catalog file. An absent exclude list falls back to
// DefaultExclusions; an explicitly empty one disables exclusion. A file
// listing no classes is an error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogLoadError(path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewCatalogLoadError(path, err)
	}
	if len(file.Classes) == 0 {
		return nil, errors.New(errors.ErrCatalogEmpty,
			fmt.Sprintf("catalog file '%s' lists no classes", path))
	}

	exclude := file.Exclude
	if exclude == nil {
		exclude = DefaultExclusions
	}
	return New(file.Classes, exclude)
}
