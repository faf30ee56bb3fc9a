package domain

import "errors"

var (
	// ErrSupplierNotFound is returned when no supplier matches the given key.
	ErrSupplierNotFound = errors.New("supplier not found")
	// ErrOfferExists reports a uniqueness conflict on offer creation. Callers
	// treat it as "offer already exists, merge instead", never as a failure.
	ErrOfferExists = errors.New("offer already exists")
	// ErrIdentifierExists reports a (kind, value) collision.
	ErrIdentifierExists = errors.New("product identifier already exists")
)
