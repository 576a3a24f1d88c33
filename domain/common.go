package domain

import "errors"

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageRouteNotFound        = "the requested endpoint does not exist"

	MessagePong = "pong"

	ErrInvalidBody = errors.New("request body must be a JSON object")
)
