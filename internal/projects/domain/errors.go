package domain

import "errors"

var (
	ErrNotFound                 = errors.New("project not found")
	ErrTitleDescriptionRequired = errors.New("title and description are required")
)
