package service

import "errors"

var (
	// ErrDuplicateMatchingRule is returned when a live matching rule already
	// exists for the same key pair.
	ErrDuplicateMatchingRule = errors.New("matching rule already exists for this key pair")

	// ErrRecordNotFound is returned when a referenced record does not exist
	// or is already soft-deleted.
	ErrRecordNotFound = errors.New("record not found")

	// ErrNoRecordsFound is returned when a required listing (search, export)
	// matches nothing.
	ErrNoRecordsFound = errors.New("no records found")
)
