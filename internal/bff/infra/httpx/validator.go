package httpx

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/create_payment.json
var createPaymentSchema string

// RequestValidator checks inbound bodies against a JSON schema.
type RequestValidator struct {
	schema *gojsonschema.Schema
}

func NewRequestValidator() (*RequestValidator, error) {
	return NewRequestValidatorFromSchema(createPaymentSchema)
}

func NewRequestValidatorFromSchema(schema string) (*RequestValidator, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("httpx: compile request schema: %w", err)
	}
	return &RequestValidator{schema: compiled}, nil
}

// Validate returns nil when body satisfies the schema, otherwise an error
// listing every violation.
func (v *RequestValidator) Validate(body []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}
	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return fmt.Errorf("%s", strings.Join(violations, "; "))
}
