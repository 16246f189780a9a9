package lookup

import (
	"songsearch/internal/services"
	"songsearch/internal/textutil"
)

// Display strings rendered in place of a track URL when no track is selected.
const (
	SentinelRequestError = "Request error"
	SentinelParsingError = "Parsing error"
	SentinelNoResult     = "No result"
)

// Kind tags the terminal state of one lookup.
type Kind int

const (
	KindSelected Kind = iota + 1
	KindNoMatch
	KindParseFailure
	KindTransportFailure
)

func (k Kind) String() string {
	switch k {
	case KindSelected:
		return "selected"
	case KindNoMatch:
		return "no_match"
	case KindParseFailure:
		return "parse_failure"
	case KindTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// Outcome is the result of one lookup. Candidate is only meaningful for
// KindSelected; Err records the cause of a failure for diagnostics and is
// never surfaced through Response.
type Outcome struct {
	Kind      Kind
	Candidate Candidate
	Err       error
}

func Selected(c Candidate) Outcome { return Outcome{Kind: KindSelected, Candidate: c} }

func NoMatch(err error) Outcome { return Outcome{Kind: KindNoMatch, Err: err} }

func ParseFailure(err error) Outcome { return Outcome{Kind: KindParseFailure, Err: err} }

func TransportFailure(err error) Outcome { return Outcome{Kind: KindTransportFailure, Err: err} }

// FromError classifies a pipeline failure by its services marker. Errors
// carrying neither a parse nor a no-match marker are transport failures.
func FromError(err error) Outcome {
	switch services.Marker(err) {
	case services.ErrParse:
		return ParseFailure(err)
	case services.ErrNoMatch:
		return NoMatch(err)
	default:
		return TransportFailure(err)
	}
}

// Content returns the selected track's view URL or the sentinel for the
// failure kind.
func (o Outcome) Content() string {
	switch o.Kind {
	case KindSelected:
		return o.Candidate.TrackViewURL
	case KindParseFailure:
		return SentinelParsingError
	case KindTransportFailure:
		return SentinelRequestError
	default:
		return SentinelNoResult
	}
}

// Response is the caller-facing result of a lookup.
type Response struct {
	URL        string `json:"url"`
	AlbumCover string `json:"albumCover"`
}

// Render builds the Response for the outcome using format for the display
// string. AlbumCover is only populated for a selected track.
func (o Outcome) Render(provider string, format ResponseFormatter) Response {
	if format == nil {
		format = textutil.FormatResponse
	}
	resp := Response{URL: format(provider, o.Content())}
	if o.Kind == KindSelected {
		resp.AlbumCover = o.Candidate.ArtworkURL100
	}
	return resp
}
