package handlers

import "errors"

var (
	errNilID         = errors.New("id must not be the nil uuid")
	errNotFound      = errors.New("not found")
	errMissingStatus = errors.New("is_completed is required")
	errLearningData  = errors.New("learning data is temporarily unavailable")
)
