// Package schema validates outgoing documents against the client's document schemas.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Kind names the document family a value is checked against.
type Kind string

const (
	KindStart   Kind = "start"
	KindMenu    Kind = "menu"
	KindContent Kind = "content"
)

const baseURL = "https://msx-backend.local/schemas/"

// Validator holds the compiled schemas. It is safe for concurrent use.
type Validator struct {
	schemas map[Kind]*jsonschema.Schema
}

// NewValidator compiles the embedded schemas.
func NewValidator() (*Validator, error) {
	c := jsonschema.NewCompiler()
	kinds := []Kind{KindStart, KindMenu, KindContent}
	for _, k := range kinds {
		raw, err := schemaFS.ReadFile("schemas/" + string(k) + ".json")
		if err != nil {
			return nil, fmt.Errorf("read %s schema: %w", k, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("unmarshal %s schema: %w", k, err)
		}
		if err := c.AddResource(baseURL+string(k)+".json", doc); err != nil {
			return nil, fmt.Errorf("add %s schema resource: %w", k, err)
		}
	}

	v := &Validator{schemas: make(map[Kind]*jsonschema.Schema, len(kinds))}
	for _, k := range kinds {
		s, err := c.Compile(baseURL + string(k) + ".json")
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", k, err)
		}
		v.schemas[k] = s
	}
	return v, nil
}

// MustNewValidator panics if the embedded schemas do not compile.
func MustNewValidator() *Validator {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate serializes doc the way it goes over the wire and checks it against kind.
func (v *Validator) Validate(kind Kind, doc any) error {
	s, ok := v.schemas[kind]
	if !ok {
		return fmt.Errorf("unknown document kind %q", kind)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", kind, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("unmarshal %s document: %w", kind, err)
	}
	if err := s.Validate(inst); err != nil {
		return fmt.Errorf("%s document: %w", kind, err)
	}
	return nil
}
