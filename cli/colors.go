package cli

import "strings"

// Terminal color codes
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
)

// palette applies colours, or nothing in plain mode.
type palette struct {
	plain bool
}

func (p palette) wrap(color, s string) string {
	if p.plain {
		return s
	}
	return color + s + Reset
}

// Prompt returns a colored prompt string. Coloured segments inside text fall
// back to yellow where they end.
func (p palette) Prompt(text string) string {
	if p.plain {
		return text + " > "
	}
	return Yellow + strings.ReplaceAll(text, Reset, Reset+Yellow) + " > " + Reset
}

func (p palette) ForPlayer(name string, white bool) string {
	if white {
		return p.wrap(Blue, name)
	}
	return p.wrap(Red, name)
}
