// Package debug provides env-gated debug logging for tree operations.
//
// Flags are read once at startup from the environment:
//
//	PT_DEBUG_DIFF=1   log diff inputs and results
//	PT_DEBUG_PATCH=1  log patch application
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff  bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("PT_DEBUG_DIFF")
	d.Patch = boolEnv("PT_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
