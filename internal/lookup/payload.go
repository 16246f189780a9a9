package lookup

import (
	"encoding/json"

	"songsearch/internal/services"
)

// ParsePayload decodes a raw search response. Decode failures and bodies
// without a resultCount (including a bare null) are returned tagged with
// services.ErrParse; an empty result set is not an error.
func ParsePayload(raw []byte) (Payload, error) {
	var wire struct {
		ResultCount *int        `json:"resultCount"`
		Results     []Candidate `json:"results"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return Payload{}, services.Wrap(services.ErrParse, "lookup", "decode payload", "", err)
	}
	if wire.ResultCount == nil {
		return Payload{}, services.Wrap(services.ErrParse, "lookup", "decode payload", "missing resultCount", nil)
	}
	return Payload{ResultCount: *wire.ResultCount, Results: wire.Results}, nil
}
