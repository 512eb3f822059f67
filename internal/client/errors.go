// SPDX-License-Identifier: Apache-2.0

package client

import "errors"

// Sentinel errors mapped from HTTP response statuses. Callers can match
// against them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable request")
	ErrInternalServerError = errors.New("internal server error")
)
