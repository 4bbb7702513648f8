// Package queryparser converts raw search-box input into structured queries.
//
// The query language is deliberately small: whitespace-separated terms,
// quoted exact phrases, a NOT prefix that negates the following term, and a
// single AND/OR operator applied to the whole query.
//
//	queryparser.Parse(`report NOT draft`)
//	queryparser.Parse(`"exact phrase" OR milk`)
//
// Parsing never fails. Degenerate input (empty string, only whitespace, only
// operator keywords) produces a query with zero terms, which every consumer
// treats as "match nothing".
//
// The parser allocates a fresh SearchQuery per call and never caches or
// mutates previously returned queries.
package queryparser
