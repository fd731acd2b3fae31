package changelog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlDocument is the root structure of the YAML rendering.
type yamlDocument struct {
	Sections []Section `yaml:"sections"`
}

// MarshalYAML renders the section list as a YAML document. This is the
// machine-readable counterpart of the markdown rendering, exposed via
// `calclog changelog --format yaml`.
func MarshalYAML(sections []Section) ([]byte, error) {
	data, err := yaml.Marshal(yamlDocument{Sections: sections})
	if err != nil {
		return nil, fmt.Errorf("marshaling changelog to YAML: %w", err)
	}
	return data, nil
}
