// Package validate checks decoded JSON request payloads before they reach the
// service layer. Each validator returns a Result whose Message is written
// verbatim into the response body, so messages are part of the API contract.
//
// Payloads are the generic form produced by decoding a JSON body into an
// interface value: a nil payload (empty body) or a non-object payload is
// treated as having no fields at all.
package validate
