package history

import (
	"database/sql"
	"time"

	"songsearch/internal/lookup"
)

const entryColumns = "id, correlation_id, query, term, outcome, track_name, url, album_cover, error_message, created_at"

// Entry is one journaled lookup.
type Entry struct {
	ID            int64     `json:"id"`
	CorrelationID string    `json:"correlation_id"`
	Query         string    `json:"query"`
	Term          string    `json:"term,omitempty"`
	Outcome       string    `json:"outcome"`
	TrackName     string    `json:"track_name,omitempty"`
	URL           string    `json:"url"`
	AlbumCover    string    `json:"album_cover,omitempty"`
	Error         string    `json:"error,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewEntry captures an inspected lookup and the response rendered for it.
func NewEntry(correlationID string, in lookup.Inspection, resp lookup.Response) Entry {
	entry := Entry{
		CorrelationID: correlationID,
		Query:         in.Query,
		Term:          in.Term,
		Outcome:       in.Outcome.Kind.String(),
		URL:           resp.URL,
		AlbumCover:    resp.AlbumCover,
	}
	if in.Outcome.Kind == lookup.KindSelected {
		entry.TrackName = in.Outcome.Candidate.TrackName
	}
	if in.Outcome.Err != nil {
		entry.Error = in.Outcome.Err.Error()
	}
	return entry
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		id            int64
		correlationID string
		query         string
		term          sql.NullString
		outcome       string
		trackName     sql.NullString
		url           string
		albumCover    sql.NullString
		errorMessage  sql.NullString
		createdRaw    string
	)
	if err := scanner.Scan(
		&id,
		&correlationID,
		&query,
		&term,
		&outcome,
		&trackName,
		&url,
		&albumCover,
		&errorMessage,
		&createdRaw,
	); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:            id,
		CorrelationID: correlationID,
		Query:         query,
		Term:          term.String,
		Outcome:       outcome,
		TrackName:     trackName.String,
		URL:           url,
		AlbumCover:    albumCover.String,
		Error:         errorMessage.String,
	}
	if created, err := time.Parse(timestampLayout, createdRaw); err == nil {
		entry.CreatedAt = created
	}
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
