package blueprint

import "errors"

// this file errors.go contains the blueprint related errors

var (
	// generic errors
	ErrInternalServerError  = errors.New("internal server error")
	ErrResponseDecodeFailed = errors.New("failed to decode response")
	ErrMarshalFailed        = errors.New("failed to marshal results")

	// upstream blueprint API errors
	ErrFetchFailed      = errors.New("failed to fetch blueprint graph")
	ErrUnexpectedStatus = errors.New("unexpected status from blueprint API")

	// lookup errors
	ErrFormNodeNotFound           = errors.New("form node not found")
	ErrNotFormNode                = errors.New("node is not a form")
	ErrFormDefinitionsUnavailable = errors.New("form definitions unavailable")

	// request validation errors
	ErrMissingBlueprintID = errors.New("at least one blueprint id is required")

	// prefill source decoding errors
	ErrUnknownSourceType = errors.New("unknown prefill source type")
)

func errorToJSON(err error) string {
	return `{"error":"` + err.Error() + `"}`
}
