package day

import "errors"

// ErrNoMenuService indicates that no menu service was provided.
var ErrNoMenuService = errors.New("menu service is required")
