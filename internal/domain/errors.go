// Package domain
package domain

import "errors"

var (
	ErrSourceUnavailable = errors.New("counter source unavailable")
	ErrParse             = errors.New("malformed counter record")
	ErrTransport         = errors.New("transport failure")
)
