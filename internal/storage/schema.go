package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	_ "embed"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed document.schema.json
var documentSchemaJSON []byte

var documentSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("document.schema.json", bytes.NewReader(documentSchemaJSON)); err != nil {
		panic(fmt.Sprintf("storage: add schema resource: %v", err))
	}
	return compiler.MustCompile("document.schema.json")
}

// validateRaw checks the raw file contents against the embedded schema
// before any decoding into typed records happens. Unknown fields are
// allowed so newer writers stay readable.
func validateRaw(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: not valid JSON: %v", ErrCorruptData, err)
	}
	if err := documentSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return nil
}
