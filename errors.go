package lingo

import "errors"

var (
	ErrNoLocales       = errors.New("lingo: locale list cannot be empty")
	ErrEmptyLocale     = errors.New("lingo: locale cannot be empty")
	ErrUnknownFormat   = errors.New("lingo: unknown catalog format")
	ErrUnknownStrategy = errors.New("lingo: unknown detection strategy")
)
