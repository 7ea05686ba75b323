package txtlog

import (
	"strconv"

	"github.com/fatih/color"
)

// Level is the severity of a record. Levels are only labels, records of every level
// are always written.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	}
	return "LEVEL(" + strconv.Itoa(int(l)) + ")"
}

// Level tag colors, forced on so the escape codes are the same whether stdout
// is a terminal or not
//nolint:gochecknoglobals // read-only after initialization
var levelColors = [...]*color.Color{
	LevelInfo:		forcedColor(color.FgHiGreen),
	LevelWarning:	forcedColor(color.FgHiYellow),
	LevelError:		forcedColor(color.FgHiRed),
}

func forcedColor(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

// levelColor returns the console color of the level tag or nil for unknown levels
func levelColor(l Level) *color.Color {
	if l < 0 || int(l) >= len(levelColors) {
		return nil
	}
	return levelColors[l]
}
