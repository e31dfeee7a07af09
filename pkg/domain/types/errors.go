package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// Runtime error
	ErrNotFound      = goerr.New("resource not found")
	ErrCommandFailed = goerr.New("external command failed")
	ErrImportFailed  = goerr.New("product import failed")

	// Assertion error
	ErrAssertion = goerr.New("assertion error")
)
