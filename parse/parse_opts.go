package parse

import "github.com/pathtree/go-pathtree/format"

type ParseState struct {
	format format.Format
}

type ParseOption func(*ParseState)

func ParseFormat(f format.Format) ParseOption {
	return func(ps *ParseState) { ps.format = f }
}
