package catalog

import (
	_ "embed"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var npmCatalogData []byte

type catalogFile struct {
	Commands []*CommandSpec `yaml:"commands"`
}

// LoadDefault builds the built-in npm command catalog.
func LoadDefault() (*Catalog, error) {
	return loadYAML(npmCatalogData)
}

func loadYAML(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal catalog data")
	}
	if len(file.Commands) == 0 {
		return nil, errors.New("catalog data contains no commands")
	}
	return New(file.Commands)
}
