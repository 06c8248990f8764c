// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrSourceNotFound is returned when an input file path does not resolve.
	ErrSourceNotFound = errors.New("source not found")
	// ErrMissingColumn signals a required roster column is absent.
	ErrMissingColumn = errors.New("missing column")
	// ErrOddPopulation signals an odd population size after exclusions.
	ErrOddPopulation = errors.New("odd population")
	// ErrEmptyRoster signals that no roster has been uploaded yet.
	ErrEmptyRoster = errors.New("empty roster")
	// ErrRunNotFound signals a missing pairing run.
	ErrRunNotFound = errors.New("run not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
