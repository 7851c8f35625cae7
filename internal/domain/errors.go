package domain

import "errors"

var (
	// ErrArtworkNotFound signals a missing artwork.
	ErrArtworkNotFound = errors.New("artwork not found")
	// ErrUpstreamFetch signals that the artwork store was unreachable or the query failed.
	ErrUpstreamFetch = errors.New("upstream fetch failed")
	// ErrImageDecode signals an unreachable or corrupt image.
	ErrImageDecode = errors.New("image decode failed")
	// ErrInvalidQuery signals a request the engine cannot analyze.
	ErrInvalidQuery = errors.New("invalid query")
)
