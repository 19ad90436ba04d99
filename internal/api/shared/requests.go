package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance; validator.Validate caches struct metadata.
var validate = validator.New()

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates v using its struct tags. A type implementing its
// own Validate method is validated with that instead.
func ValidateRequest(v interface{}) error {
	if selfValidating, ok := v.(interface{ Validate() error }); ok {
		return selfValidating.Validate()
	}
	return validate.Struct(v)
}
