package encode

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	NameColor ColorAttr = iota
	DataColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func colorDefault(v string, args ...any) string {
	return fmt.Sprintf(v, args...)
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[NameColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[DataColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[SepColor] = color.RGB(255, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func (c *Colors) Color(attr ColorAttr, v string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	return f(v)
}
