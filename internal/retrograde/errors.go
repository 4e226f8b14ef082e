package retrograde

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors that can be compared with errors.Is().
var (
	// ErrAlreadyStarted is returned when Start is called more than once on a controller.
	ErrAlreadyStarted = constError("status request already started")

	// ErrUnexpectedStatus indicates the endpoint answered with a non-2xx status code.
	ErrUnexpectedStatus = constError("unexpected response status")

	// ErrUnexpectedPayload indicates the body was valid JSON but not a JSON object.
	ErrUnexpectedPayload = constError("response body is not a JSON object")

	// ErrNilFetcher is returned by Start when the controller has nothing to fetch with.
	ErrNilFetcher = constError("status fetcher is nil")
)

// unknownErrorMessage is surfaced when a failure carries no usable description.
const unknownErrorMessage = "Unknown error"

// failureMessage extracts a human-readable description from err.
func failureMessage(err error) string {
	if err == nil {
		return unknownErrorMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return unknownErrorMessage
}
