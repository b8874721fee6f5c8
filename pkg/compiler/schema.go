package compiler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validator compiles a single JSON-Schema document and validates parameter
// values against it. Grounded on the draft-7+ validator every package with
// a schema.json is required to have.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles raw (a JSON-Schema document, draft 7 or later) and
// returns a reusable Validator.
func NewValidator(raw []byte) (*Validator, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, newLoadError("InvalidSchema", "schema.json", err)
	}

	c := jsonschema.NewCompiler()
	const resourceID = "kurel://package/schema.json"
	if err := c.AddResource(resourceID, doc); err != nil {
		return nil, newLoadError("InvalidSchema", "schema.json", err)
	}
	sch, err := c.Compile(resourceID)
	if err != nil {
		return nil, newLoadError("InvalidSchema", "schema.json", err)
	}
	return &Validator{schema: sch}, nil
}

// Validate reports whether input is a JSON object satisfying the schema.
// Input must already be a JSON-like value (map[string]interface{}, etc, as
// produced by encoding/json.Unmarshal).
func (v *Validator) Validate(input interface{}) error {
	if _, ok := input.(map[string]interface{}); !ok {
		return newCompileError("InvalidInput", "input must be a JSON object", nil)
	}
	if err := v.schema.Validate(input); err != nil {
		return newCompileError("InvalidInput", formatValidationError(err), err)
	}
	return nil
}

// ValidateExample validates the package's eagerly-loaded example.json at
// load time, per the schema/example coupling invariant.
func (v *Validator) ValidateExample(example map[string]interface{}) error {
	if err := v.schema.Validate(example); err != nil {
		return newLoadError("InvalidExample", "example.json", err)
	}
	return nil
}

func formatValidationError(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var msgs []string
	collectValidationErrors(ve, &msgs)
	if len(msgs) == 0 {
		return err.Error()
	}
	var b bytes.Buffer
	b.WriteString(strings.Join(msgs, "; "))
	return b.String()
}

func collectValidationErrors(err *jsonschema.ValidationError, out *[]string) {
	if err == nil {
		return
	}
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			collectValidationErrors(cause, out)
		}
		return
	}
	output := err.BasicOutput()
	if output == nil || output.Error == nil {
		return
	}
	msg := output.Error.String()
	if output.InstanceLocation != "" {
		msg = fmt.Sprintf("%s at '%s'", msg, output.InstanceLocation)
	}
	*out = append(*out, msg)
}
