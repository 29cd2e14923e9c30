package btcschema

import (
	"errors"
)

var (
	// ErrSchemaIO is returned when the API definition document cannot be
	// read from, or written to, the underlying file system. The cause is
	// wrapped on the error chain.
	ErrSchemaIO = errors.New("schema file io failure")

	// ErrSchemaParse is returned when a document is not a well formed
	// JSON encoding of an API definition. The decoder error is wrapped
	// on the error chain.
	ErrSchemaParse = errors.New("schema parse failure")
)
