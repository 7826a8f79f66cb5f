package manifest

import (
	"os"

	"go.yaml.in/yaml/v3"
)

// Load reads the manifest file at path and decodes it into a raw Document.
// It distinguishes three failure modes: the file is absent (NotFoundError),
// the file parses to a null or zero-key document (EmptyManifestError), or
// the content is not valid YAML for the manifest shape
// (MalformedManifestError). No validation beyond decoding happens here.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &MalformedManifestError{Path: path, Err: err}
	}

	// Decode generically first: emptiness is judged on top-level keys, and a
	// document of the wrong top-level shape should read as malformed rather
	// than silently producing zero values.
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedManifestError{Path: path, Err: err}
	}
	if len(raw) == 0 {
		return nil, &EmptyManifestError{Path: path}
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedManifestError{Path: path, Err: err}
	}

	return &doc, nil
}
