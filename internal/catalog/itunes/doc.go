// Package itunes provides the minimal music catalog client used by the lookup
// pipeline.
//
// It builds iTunes Search API requests (term, storefront country, optional
// media/entity/limit filters) and hands back the raw response body so decoding
// stays a separate, independently testable step. Any failure to obtain a 2xx
// body is tagged with services.ErrTransport; timeouts are owned by the
// client's http.Client. Options allow tests to supply custom HTTP clients
// without modifying production code.
package itunes
