// ABOUTME: Decoders for Particle event payloads and API error bodies using easyjson's jlexer
// ABOUTME: Hand-written UnmarshalEasyJSON methods; no reflection, unknown keys skipped

package particle

import (
	"time"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
)

// EventPayload is the JSON object carried on the data line of an event.
type EventPayload struct {
	Data        string
	TTL         int
	PublishedAt time.Time
	CoreID      string
}

// DecodeEvent parses the data line of a Particle event.
func DecodeEvent(data []byte) (EventPayload, error) {
	var p EventPayload
	if err := easyjson.Unmarshal(data, &p); err != nil {
		return EventPayload{}, err
	}
	return p, nil
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (p *EventPayload) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "data":
			p.Data = in.String()
		case "ttl":
			// Older API revisions send ttl as a quoted number.
			if n, err := in.JsonNumber().Int64(); err == nil {
				p.TTL = int(n)
			}
		case "published_at":
			if t, err := time.Parse(time.RFC3339Nano, in.String()); err == nil {
				p.PublishedAt = t
			}
		case "coreid":
			p.CoreID = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// errorBody is the JSON body of a failed API call.
type errorBody struct {
	Error       string
	Description string
	Info        string
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (b *errorBody) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "error":
			b.Error = in.String()
		case "error_description":
			b.Description = in.String()
		case "info":
			b.Info = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// decodeAPIError builds an APIError from a status and a possibly empty body.
// Bodies that are not JSON leave Code and Description empty.
func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var b errorBody
	if len(body) == 0 || easyjson.Unmarshal(body, &b) != nil {
		return apiErr
	}

	apiErr.Code = b.Error
	apiErr.Description = b.Description
	if apiErr.Description == "" {
		apiErr.Description = b.Info
	}
	return apiErr
}
