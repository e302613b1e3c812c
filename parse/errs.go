package parse

import (
	"errors"

	"github.com/pathtree/go-pathtree/format"
)

var (
	ErrParse     = errors.New("parse error")
	ErrBadFormat = format.ErrBadFormat
)
