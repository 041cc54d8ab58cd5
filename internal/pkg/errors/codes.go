package errors

import "net/http"

// Notices shown to the user. Message texts are part of the observable contract.
var (
	ErrChooseValidBuildings = New(
		"INVALID_SELECTION",
		"Please choose 2 valid buildings.",
		http.StatusUnprocessableEntity,
	)

	ErrChooseDifferentBuildings = New(
		"SAME_BUILDING",
		"Please choose 2 different buildings.",
		http.StatusUnprocessableEntity,
	)

	ErrFetchRequest = New(
		"FETCH_FAILED",
		"Error fetching request.",
		http.StatusBadGateway,
	)

	ErrBuildingsUnavailable = New(
		"BUILDINGS_UNAVAILABLE",
		"Error! Cannot find list of buildings.",
		http.StatusBadGateway,
	)
)

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrUnknownEvent = New(
		"UNKNOWN_EVENT",
		"Unknown event type",
		http.StatusBadRequest,
	)

	ErrSessionError = New(
		"SESSION_ERROR",
		"Session storage failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
