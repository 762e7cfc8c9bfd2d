package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"study_tracker/internal/common"
)

// decodeJSON parses the request body into dst. Malformed bodies become a
// plain 400; type mismatches become field-keyed validation errors so that
// "completed": "yes" reports `completed must be a boolean` rather than a
// generic parse failure.
func decodeJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return common.NewValidationError(map[string]string{
			typeErr.Field: fmt.Sprintf("%s must be %s", typeErr.Field, describeType(typeErr.Type.String())),
		})
	}
	return errMalformedBody
}

// errMalformedBody carries the stable message the frontend matches on while
// still mapping to a 400 through common.HTTPStatusFromError.
var errMalformedBody = &requestError{msg: "Request body must be a valid JSON object"}

type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }
func (e *requestError) Unwrap() error { return common.ErrBadRequest }

func describeType(goType string) string {
	switch goType {
	case "bool", "*bool":
		return "a boolean"
	case "int", "*int", "int64":
		return "an integer"
	case "float64", "*float64":
		return "a number"
	case "string", "*string":
		return "a string"
	default:
		return "of type " + goType
	}
}
