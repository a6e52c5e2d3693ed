package db

import "errors"

var (
	ErrFailedOpenDB   = errors.New("failed to open database")
	ErrFailedToInit   = errors.New("failed to initialize schema")
	ErrFailedToInsert = errors.New("failed to insert")
)
