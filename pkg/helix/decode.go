package helix

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// DecodeMode selects how unknown response fields are handled. The mode is a
// client-level setting and applies uniformly to every endpoint's schema.
type DecodeMode int

const (
	// DecodeLenient ignores unknown fields in the response.
	DecodeLenient DecodeMode = iota
	// DecodeStrict fails the decode when the response carries a field the
	// schema does not declare.
	DecodeStrict
)

// Cursor is the opaque continuation token returned by a listing endpoint.
// An empty cursor means the listing is exhausted.
type Cursor string

// Pagination carries the continuation cursor of a listing response.
type Pagination struct {
	Cursor Cursor `json:"cursor"`
}

// Envelope is the decoded result of one API call: the ordered result records
// and, for listing endpoints, the continuation cursor. Envelopes are
// immutable once decoded.
type Envelope[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// rawEnvelope defers record decoding so that a malformed record can be
// reported with its index.
type rawEnvelope struct {
	Data       []json.RawMessage `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// DecodeEnvelope decodes raw response bytes into a typed Envelope. Records
// are decoded one at a time: a failure names the record index and, when it
// can be determined, the offending field. In strict mode an unknown field
// anywhere in the payload fails the decode; in lenient mode it is ignored.
func DecodeEnvelope[T any](data []byte, mode DecodeMode) (*Envelope[T], error) {
	var raw rawEnvelope
	if err := decodeValue(data, &raw, mode); err != nil {
		return nil, &DecodeError{RecordIndex: -1, Field: fieldFromJSONError(err), Err: err}
	}

	env := &Envelope[T]{
		Data:       make([]T, 0, len(raw.Data)),
		Pagination: raw.Pagination,
	}

	for i, rec := range raw.Data {
		var v T
		if err := decodeValue(rec, &v, mode); err != nil {
			return nil, &DecodeError{RecordIndex: i, Field: fieldFromJSONError(err), Err: err}
		}
		if err := validateRecord(i, &v); err != nil {
			return nil, err
		}
		env.Data = append(env.Data, v)
	}

	return env, nil
}

func decodeValue(data []byte, dst any, mode DecodeMode) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if mode == DecodeStrict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(dst)
}

// fieldFromJSONError extracts the field name from an encoding/json error
// when one is available: type mismatches carry it directly, unknown-field
// errors only in the message text.
func fieldFromJSONError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field
	}
	// "json: unknown field \"name\""
	msg := err.Error()
	const marker = `unknown field "`
	if i := strings.Index(msg, marker); i >= 0 {
		rest := msg[i+len(marker):]
		if j := strings.IndexByte(rest, '"'); j >= 0 {
			return rest[:j]
		}
	}
	return ""
}
