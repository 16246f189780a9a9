package lookup

import (
	"context"
	"errors"
	"log/slog"

	"songsearch/internal/logging"
	"songsearch/internal/services"
	"songsearch/internal/textutil"
)

// Searcher issues a catalog query and returns the raw response body.
type Searcher interface {
	Search(ctx context.Context, term string) ([]byte, error)
}

// QueryFormatter normalizes a query before it is sent to the catalog.
type QueryFormatter func(text string) string

// ResponseFormatter renders the display string for a provider and content.
type ResponseFormatter func(provider, content string) string

// Resolver turns free-text song queries into a single catalog track. It holds
// no per-lookup state and is safe for concurrent use.
type Resolver struct {
	searcher       Searcher
	provider       string
	formatQuery    QueryFormatter
	formatResponse ResponseFormatter
	logger         *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger attaches a logger; the resolver logs under the "resolver" component.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logging.NewComponentLogger(logger, "resolver")
		}
	}
}

// WithQueryFormatter replaces textutil.FormatQuery.
func WithQueryFormatter(fn QueryFormatter) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.formatQuery = fn
		}
	}
}

// WithResponseFormatter replaces textutil.FormatResponse.
func WithResponseFormatter(fn ResponseFormatter) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.formatResponse = fn
		}
	}
}

// NewResolver creates a resolver that labels responses with provider.
func NewResolver(searcher Searcher, provider string, opts ...Option) *Resolver {
	r := &Resolver{
		searcher:       searcher,
		provider:       provider,
		formatQuery:    textutil.FormatQuery,
		formatResponse: textutil.FormatResponse,
		logger:         logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Inspection exposes every step of one lookup for diagnostics.
type Inspection struct {
	Query      string
	Term       string
	WantsLive  bool
	Payload    Payload
	Candidates []InspectedCandidate
	Outcome    Outcome
}

// InspectedCandidate pairs a candidate with its live classification.
type InspectedCandidate struct {
	Candidate Candidate
	Live      bool
	Chosen    bool
}

// SearchTrack resolves query and renders the caller-facing response. It never
// fails: transport, parse, and no-match outcomes render as sentinel strings.
func (r *Resolver) SearchTrack(ctx context.Context, query string) Response {
	return r.Render(r.Resolve(ctx, query))
}

// Render converts an outcome into a Response using the resolver's provider
// label and response formatter.
func (r *Resolver) Render(outcome Outcome) Response {
	return outcome.Render(r.provider, r.formatResponse)
}

// Resolve runs the pipeline and returns the tagged outcome.
func (r *Resolver) Resolve(ctx context.Context, query string) Outcome {
	return r.Inspect(ctx, query).Outcome
}

// Inspect runs the pipeline and keeps the intermediate results.
func (r *Resolver) Inspect(ctx context.Context, query string) Inspection {
	logger := logging.WithContext(ctx, r.logger)
	in := Inspection{Query: query, WantsLive: WantsLive(query)}

	if r.searcher == nil {
		in.Outcome = TransportFailure(services.Wrap(services.ErrTransport, "resolver", "search", "catalog client unavailable", nil))
		r.logOutcome(logger, in)
		return in
	}

	in.Term = r.formatQuery(query)
	raw, err := r.searcher.Search(ctx, in.Term)
	if err != nil {
		if !errors.Is(err, services.ErrTransport) {
			err = services.Wrap(services.ErrTransport, "resolver", "search", "", err)
		}
		in.Outcome = FromError(err)
		r.logOutcome(logger, in)
		return in
	}

	payload, err := ParsePayload(raw)
	if err != nil {
		in.Outcome = FromError(err)
		r.logOutcome(logger, in)
		return in
	}
	in.Payload = payload

	in.Outcome = Select(payload, in.WantsLive)
	in.Candidates = make([]InspectedCandidate, 0, len(payload.Results))
	for _, candidate := range payload.Results {
		in.Candidates = append(in.Candidates, InspectedCandidate{Candidate: candidate, Live: IsLive(candidate)})
	}
	if in.Outcome.Kind == KindSelected {
		for i := range in.Candidates {
			if in.Candidates[i].Candidate == in.Outcome.Candidate {
				in.Candidates[i].Chosen = true
				break
			}
		}
	}

	if len(payload.Results) > 1 {
		result := "none"
		if in.Outcome.Kind == KindSelected {
			result = in.Outcome.Candidate.TrackName
		}
		reason := "query does not ask for live; studio candidates kept"
		if in.WantsLive {
			reason = "query asks for live; live candidates kept"
		}
		logger.Debug("live filter applied", logging.Args(append(logging.DecisionAttrs("live_filter", result, reason),
			logging.Int("candidates", len(payload.Results)),
		)...)...)
	}
	r.logOutcome(logger, in)
	return in
}

// Select classifies a decoded payload: a zero result count or an empty
// disambiguation yields NoMatch, otherwise the chosen candidate.
func Select(payload Payload, wantsLive bool) Outcome {
	if payload.ResultCount == 0 {
		return NoMatch(services.Wrap(services.ErrNoMatch, "lookup", "select", "catalog returned no results", nil))
	}
	candidate, ok := Disambiguate(payload.Results, wantsLive)
	if !ok {
		return NoMatch(services.Wrap(services.ErrNoMatch, "lookup", "select", "no candidate matched live intent", nil))
	}
	return Selected(candidate)
}

func (r *Resolver) logOutcome(logger *slog.Logger, in Inspection) {
	attrs := []logging.Attr{
		logging.String("query", in.Query),
		logging.String("outcome", in.Outcome.Kind.String()),
		logging.Bool("wants_live", in.WantsLive),
	}
	switch in.Outcome.Kind {
	case KindSelected:
		logger.Info("track selected", logging.Args(append(attrs,
			logging.String("track", in.Outcome.Candidate.TrackName),
			logging.String("url", in.Outcome.Candidate.TrackViewURL),
		)...)...)
	case KindNoMatch:
		logger.Info("no matching track", logging.Args(append(attrs, logging.Error(in.Outcome.Err))...)...)
	case KindParseFailure:
		logging.WarnWithContext(logger, "catalog payload could not be decoded", "catalog_parse_failed",
			append(attrs,
				logging.Error(in.Outcome.Err),
				logging.String(logging.FieldErrorHint, "verify catalog.base_url points at a JSON search endpoint"),
			)...)
	case KindTransportFailure:
		logging.WarnWithContext(logger, "catalog request failed", "catalog_request_failed",
			append(attrs,
				logging.Error(in.Outcome.Err),
				logging.String(logging.FieldErrorHint, "check network access and catalog availability"),
			)...)
	}
}
