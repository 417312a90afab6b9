package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lahella/models"
)

// LoadDocument reads one configuration layer from path.
//
// Any readable YAML file is accepted, including an empty one (an empty
// document). Unknown keys are tolerated so documents can carry operator
// notes and fields newer tool versions understand.
//
// Returns [ErrMissingFile] when the file cannot be read and [ErrParse] when
// it is not valid YAML; both name the offending file.
func LoadDocument(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingFile, path, err)
	}

	doc := new(models.Document)
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	return doc, nil
}
