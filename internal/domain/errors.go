package domain

import "errors"

var (
	// ErrUnknownVariant indicates the precedence policy name is not recognised
	ErrUnknownVariant = errors.New("unknown indicator variant")

	// ErrInvalidInterval indicates the polling delay is out of range
	ErrInvalidInterval = errors.New("polling interval out of range")

	// ErrSensorUnavailable indicates sensor cannot be read
	ErrSensorUnavailable = errors.New("sensor unavailable")

	// ErrLEDUnavailable indicates the status pixel cannot be driven
	ErrLEDUnavailable = errors.New("status led unavailable")
)
