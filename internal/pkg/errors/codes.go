package errors

import "net/http"

var (
	ErrDatasetUnavailable = New(
		"DATASET_UNAVAILABLE",
		"Airspace dataset could not be fetched",
		http.StatusServiceUnavailable,
	)

	ErrDatasetDecode = New(
		"DATASET_DECODE_ERROR",
		"Airspace dataset is malformed or incomplete",
		http.StatusBadGateway,
	)

	ErrMalformedCoordinate = New(
		"MALFORMED_COORDINATE",
		"Boundary coordinate literal is malformed",
		http.StatusUnprocessableEntity,
	)

	ErrMalformedDistance = New(
		"MALFORMED_DISTANCE",
		"Boundary radius literal is malformed",
		http.StatusUnprocessableEntity,
	)

	ErrAmbiguousArcStart = New(
		"AMBIGUOUS_ARC_START",
		"Boundary starts with an arc and has no preceding point",
		http.StatusUnprocessableEntity,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
