package textcase

import (
	"fmt"
	"strings"
)

// Style selects a case transformation.
type Style int

const (
	Upper Style = iota
	Lower
	Title
	Sentence
	Camel
	Pascal
	Snake
	Kebab
	Constant
	Alternating
)

type styleInfo struct {
	name        string
	label       string
	description string
}

var styleTable = map[Style]styleInfo{
	Upper:       {"upper", "UPPERCASE", "Convert all characters to uppercase"},
	Lower:       {"lower", "lowercase", "Convert all characters to lowercase"},
	Title:       {"title", "Title Case", "Capitalize the first letter of each word"},
	Sentence:    {"sentence", "Sentence case", "Capitalize the first letter of each sentence"},
	Camel:       {"camel", "camelCase", "Remove spaces and capitalize each word except the first"},
	Pascal:      {"pascal", "PascalCase", "Remove spaces and capitalize each word"},
	Snake:       {"snake", "snake_case", "Replace spaces with underscores and lowercase all"},
	Kebab:       {"kebab", "kebab-case", "Replace spaces with hyphens and lowercase all"},
	Constant:    {"constant", "CONSTANT_CASE", "Replace spaces with underscores and uppercase all"},
	Alternating: {"alternating", "Alternating Case", "Alternate between lowercase and uppercase characters"},
}

// Styles lists every style in display order.
func Styles() []Style {
	return []Style{Upper, Lower, Title, Sentence, Camel, Pascal, Snake, Kebab, Constant, Alternating}
}

func (s Style) String() string {
	if info, ok := styleTable[s]; ok {
		return info.name
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// Label is the style's name written in the style itself, e.g. "snake_case".
func (s Style) Label() string {
	return styleTable[s].label
}

// Description explains the transformation in one line.
func (s Style) Description() string {
	return styleTable[s].description
}

// ParseStyle accepts a short name ("snake") or a label ("snake_case"), ignoring case.
func ParseStyle(name string) (Style, bool) {
	wanted := strings.TrimSpace(name)
	for _, s := range Styles() {
		info := styleTable[s]
		if strings.EqualFold(wanted, info.name) || strings.EqualFold(wanted, info.label) {
			return s, true
		}
	}
	return 0, false
}
