package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/regionator/internal/neohabitat"
	"github.com/cory-johannsen/regionator/internal/region"
)

// Encoder serialises rendered documents and checks the serialised form
// against the content loader's schema.
type Encoder interface {
	// Encode serialises doc.
	Encode(doc region.Document) ([]byte, error)
	// Validate confirms data decodes to a well-formed region document.
	Validate(data []byte) error
	// Ext is the output file extension, including the leading dot.
	Ext() string
}

// NewEncoder returns the Encoder for format.
//
// Precondition: format is "json" or "yaml"; indent >= 0.
// Postcondition: returns a non-nil Encoder or a non-nil error.
func NewEncoder(format string, indent int) (Encoder, error) {
	switch format {
	case "json":
		return jsonEncoder{indent: indent}, nil
	case "yaml":
		if indent == 0 {
			indent = 2
		}
		return yamlEncoder{indent: indent}, nil
	default:
		return nil, fmt.Errorf("unknown document format %q (supported: json, yaml)", format)
	}
}

type jsonEncoder struct{ indent int }

func (e jsonEncoder) Encode(doc region.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if e.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", e.indent))
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return buf.Bytes(), nil
}

func (jsonEncoder) Validate(data []byte) error {
	_, err := neohabitat.LoadDocument(data)
	return err
}

func (jsonEncoder) Ext() string { return ".json" }

type yamlEncoder struct{ indent int }

func (e yamlEncoder) Encode(doc region.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(e.indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func (yamlEncoder) Validate(data []byte) error {
	_, err := neohabitat.LoadDocumentYAML(data)
	return err
}

func (yamlEncoder) Ext() string { return ".yaml" }
