package helix

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Request describes one Helix API call: the resource path below the API
// origin and the OAuth scopes the credential must hold.
//
// Request values are immutable once built, except for the pagination cursor
// on paged requests (see Paginated).
type Request interface {
	Path() string
	Scopes() []Scope
}

// RequestGet is a Request dispatched as a GET with query parameters.
type RequestGet interface {
	Request
	Query() Query
}

// RequestPost is a Request dispatched as a POST. Query parameters still
// apply; body records are supplied separately to Post and wrapped in a
// {"data": [...]} object by the core.
type RequestPost interface {
	Request
	Query() Query
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

// ValidateRequest checks a request or body record against its validate tags.
// Endpoint constructors call it so that a missing mandatory field fails at
// build time, before any network interaction.
func ValidateRequest(endpoint string, req any) error {
	if err := validate.Struct(req); err != nil {
		return &RequestError{Endpoint: endpoint, Err: err}
	}
	return nil
}

// validateRecord checks a decoded response record. Unlike ValidateRequest it
// reports the failure as a decode error carrying the record index.
func validateRecord(index int, rec any) error {
	// Validator only handles structs; scalar record types have no schema to
	// enforce beyond the JSON decode itself.
	if reflect.Indirect(reflect.ValueOf(rec)).Kind() != reflect.Struct {
		return nil
	}
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) && len(valErrs) > 0 {
		return &DecodeError{
			RecordIndex: index,
			Field:       valErrs[0].Field(),
			Err:         fmt.Errorf("missing or invalid field %q", valErrs[0].Field()),
		}
	}
	return &DecodeError{RecordIndex: index, Err: err}
}

// jsonFieldName makes validator report fields by their JSON tag, matching
// what actually appears on the wire.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}
