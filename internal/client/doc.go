// Package client provides a typed HTTP client for the finlearn REST API.
// It wraps resty with the request/response models of the server and maps
// non-2xx responses to sentinel errors callers can match with errors.Is.
package client
