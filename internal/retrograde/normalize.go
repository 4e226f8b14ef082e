package retrograde

import (
	"encoding/json"
	"fmt"
	"io"
)

// Upstream field names. The endpoint is tolerant of missing fields, so every
// lookup goes through a fallback chain.
const (
	fieldIsRetrograde = "is_retrograde"
	fieldRetrograde   = "retrograde"
	fieldSign         = "sign"
	fieldDate         = "date"
	fieldStarts       = "starts"
	fieldEnds         = "ends"
	fieldDatePrevious = "date_previous"
	fieldDateNext     = "date_next"
)

// Response is a decoded status payload. Values keep their JSON shapes
// (bool, string, float64, map[string]any, []any, nil).
type Response map[string]any

// DecodeResponse reads a JSON object from r.
// Bodies that are not JSON objects are rejected with ErrUnexpectedPayload.
func DecodeResponse(r io.Reader) (Response, error) {
	var raw any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding status response: %w", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decoding status response: %w", ErrUnexpectedPayload)
	}
	return Response(obj), nil
}

// Normalize maps a payload onto a Resolved state.
// requestDate is used when the payload does not echo a date back.
func Normalize(resp Response, requestDate string) Resolved {
	return Resolved{
		Retrograde: resp.retrogradeFlag(),
		Meta: Meta{
			Sign:        resp.str(fieldSign),
			Date:        firstNonEmpty(resp.str(fieldDate), requestDate),
			PeriodStart: firstNonEmpty(resp.nestedStr(fieldRetrograde, fieldStarts), resp.str(fieldDatePrevious)),
			PeriodEnd:   firstNonEmpty(resp.nestedStr(fieldRetrograde, fieldEnds), resp.str(fieldDateNext)),
		},
	}
}

// retrogradeFlag prefers is_retrograde, then a boolean retrograde field.
// retrograde may also be an object describing the period, in which case it
// carries no boolean signal.
func (r Response) retrogradeFlag() *bool {
	if v, ok := r[fieldIsRetrograde].(bool); ok {
		return Bool(v)
	}
	if v, ok := r[fieldRetrograde].(bool); ok {
		return Bool(v)
	}
	return nil
}

// str returns the field as a string when it is a non-empty string.
func (r Response) str(key string) string {
	s, _ := r[key].(string)
	return s
}

func (r Response) nestedStr(parent, key string) string {
	obj, ok := r[parent].(map[string]any)
	if !ok {
		return ""
	}
	return Response(obj).str(key)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
