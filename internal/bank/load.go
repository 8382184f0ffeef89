package bank

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/questions.json data/questions.schema.json
var dataFS embed.FS

const schemaURL = "schema://dmvnav/questions.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// document is the on-disk layout of a bank file.
type document struct {
	Version   int        `json:"version"`
	Questions []Question `json:"questions"`
}

// Load constructs the bank from the embedded question data.
func Load() (*Bank, error) {
	raw, err := dataFS.ReadFile("data/questions.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded questions: %w", err)
	}
	return Parse(raw)
}

// MustLoad is like Load but panics if the embedded data is malformed.
// Malformed embedded data is a programming error, not a runtime condition.
func MustLoad() *Bank {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

// Parse validates a bank JSON document against the bank schema and the
// integrity rules, then builds a Bank from it.
func Parse(raw []byte) (*Bank, error) {
	sch, err := bankSchema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &SchemaError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := sch.Validate(inst); err != nil {
		return nil, &SchemaError{Err: err}
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &SchemaError{Err: fmt.Errorf("decode questions: %w", err)}
	}
	return New(doc.Questions)
}

// bankSchema compiles the embedded schema once.
func bankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := dataFS.ReadFile("data/questions.schema.json")
		if err != nil {
			schemaErr = fmt.Errorf("read embedded schema: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}
