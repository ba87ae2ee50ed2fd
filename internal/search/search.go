// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search builds Google Books volume queries, interprets the catalog's
// response, and formats the returned records into reading-list choices.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/gbooks/pkg/types"
)

const (
	// DefaultBaseURL is the Google Books API root.
	DefaultBaseURL = "https://www.googleapis.com/books/v1"

	// DefaultMaxResults is the number of volumes requested when none is configured.
	DefaultMaxResults = 5

	// maxResultsLimit is the largest page the volumes endpoint accepts.
	maxResultsLimit = 40

	// fieldsProjection restricts the response to the fields Format reads.
	fieldsProjection = "items(volumeInfo/title,volumeInfo/authors,volumeInfo/publisher)"

	// DefaultMissingQueryMessage is returned when Search is called without terms.
	DefaultMissingQueryMessage = `Error: Missing query. Try adding a book title to query (e.g. gbooks query "A BOOK TITLE").`

	invalidRequestMessage = "Invalid request."
)

// Request is a single outbound catalog call.
type Request struct {
	Method string
	URL    string
	Header http.Header
}

// Response is the status and raw body of a catalog call.
type Response struct {
	StatusCode int
	Body       []byte
}

// Fetcher performs catalog calls. It returns an error only for transport
// failures; any HTTP status, including errors, comes back as a Response.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (*Response, error)
}

// ErrorKind classifies a failed search.
type ErrorKind int

const (
	// QueryMissing means no search terms were supplied.
	QueryMissing ErrorKind = iota + 1
	// UpstreamRejected means the catalog answered with a non-200 status.
	UpstreamRejected
	// TransportFailure means the call failed or the payload did not decode.
	TransportFailure
)

func (k ErrorKind) String() string {
	switch k {
	case QueryMissing:
		return "query_missing"
	case UpstreamRejected:
		return "upstream_rejected"
	case TransportFailure:
		return "transport_failure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Failure describes why a search produced no choices. Message is meant to be
// shown to the user verbatim.
type Failure struct {
	Kind    ErrorKind
	Message string
}

func (f *Failure) Error() string { return f.Message }

// Outcome is the result of Search: either Choices (Failure is nil) or a
// Failure. A successful search may carry zero choices.
type Outcome struct {
	Choices []types.Choice
	Failure *Failure
}

// OK reports whether the search succeeded.
func (o Outcome) OK() bool { return o.Failure == nil }

func success(choices []types.Choice) Outcome {
	return Outcome{Choices: choices}
}

func failure(kind ErrorKind, msg string) Outcome {
	return Outcome{Failure: &Failure{Kind: kind, Message: msg}}
}

// Searcher runs volume queries against a catalog through a Fetcher.
type Searcher struct {
	Fetcher Fetcher

	// BaseURL is the API root; the volumes path is appended to it.
	BaseURL string

	// MaxResults is applied server-side. Values outside 1..40 are clamped.
	MaxResults int

	// MissingQueryMessage is the Failure message for an empty term list.
	MissingQueryMessage string
}

// NewSearcher returns a Searcher configured from cfg, filling defaults for
// unset fields.
func NewSearcher(f Fetcher, cfg types.CatalogConfig) *Searcher {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Searcher{
		Fetcher:             f,
		BaseURL:             base,
		MaxResults:          cfg.MaxResults,
		MissingQueryMessage: DefaultMissingQueryMessage,
	}
}

// Search joins terms with spaces, queries the catalog once, and formats the
// returned records. Every failure is reported in the Outcome; Search never
// retries.
func (s *Searcher) Search(ctx context.Context, terms []string) Outcome {
	if len(terms) == 0 {
		msg := s.MissingQueryMessage
		if msg == "" {
			msg = DefaultMissingQueryMessage
		}
		return failure(QueryMissing, msg)
	}

	req := Request{
		Method: http.MethodGet,
		URL:    BuildQueryURL(s.BaseURL, strings.Join(terms, " "), s.MaxResults),
		Header: http.Header{"Content-Type": {"application/json"}},
	}

	resp, err := s.Fetcher.Fetch(ctx, req)
	if err != nil {
		return failure(TransportFailure, "Error: "+err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return failure(UpstreamRejected, "Error: "+upstreamMessage(resp.Body))
	}

	records, err := decodeRecords(resp.Body)
	if err != nil {
		return failure(TransportFailure, "Error: "+err.Error())
	}
	return success(Format(records))
}

// BuildQueryURL returns the volumes query URL for query. The parameter names
// and the field projection match what the volumes endpoint expects.
func BuildQueryURL(base, query string, maxResults int) string {
	return fmt.Sprintf("%s/volumes?q=%s&maxResults=%d&fields=%s",
		strings.TrimRight(base, "/"), url.QueryEscape(query), clampMaxResults(maxResults), fieldsProjection)
}

func clampMaxResults(n int) int {
	if n <= 0 {
		return DefaultMaxResults
	}
	if n > maxResultsLimit {
		return maxResultsLimit
	}
	return n
}

// decodeRecords parses a 200 body. An empty body or a missing items array
// yields no records.
func decodeRecords(body []byte) ([]types.CatalogRecord, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var vr types.VolumesResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, err
	}
	records := make([]types.CatalogRecord, 0, len(vr.Items))
	for _, v := range vr.Items {
		records = append(records, v.Record())
	}
	return records, nil
}

// upstreamMessage extracts error.message from a rejection body.
func upstreamMessage(body []byte) string {
	var er types.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return invalidRequestMessage
	}
	if msg := er.Message(); msg != "" {
		return msg
	}
	return invalidRequestMessage
}
