package textcase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	sentenceStart  = regexp.MustCompile(`^\s*\w|[.!?]\s*\w`)
	camelBoundary  = regexp.MustCompile(`[^a-zA-Z0-9]+(.)`)
	pascalBoundary = regexp.MustCompile(`(^|[^a-zA-Z0-9]+)(.)`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
	notSnake       = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	notKebab       = regexp.MustCompile(`[^a-zA-Z0-9-]`)
	notAlnum       = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Result is one rendering of the input.
type Result struct {
	Style  Style  `json:"-"`
	Name   string `json:"style"`
	Label  string `json:"label"`
	Output string `json:"output"`
}

// Convert rewrites text in the given style. The boolean is false for an unknown style.
func Convert(text string, style Style) (string, bool) {
	switch style {
	case Upper:
		return upper(text), true
	case Lower:
		return lower(text), true
	case Title:
		words := strings.Split(lower(text), " ")
		for i, word := range words {
			words[i] = capitalize(word)
		}
		return strings.Join(words, " "), true
	case Sentence:
		return sentenceStart.ReplaceAllStringFunc(lower(text), upper), true
	case Camel:
		return replaceGroups(camelBoundary, lower(text), func(groups []string) string {
			return upper(groups[1])
		}), true
	case Pascal:
		joined := replaceGroups(pascalBoundary, lower(text), func(groups []string) string {
			return upper(groups[2])
		})
		return notAlnum.ReplaceAllString(joined, ""), true
	case Snake:
		return notSnake.ReplaceAllString(whitespaceRun.ReplaceAllString(lower(text), "_"), ""), true
	case Kebab:
		return notKebab.ReplaceAllString(whitespaceRun.ReplaceAllString(lower(text), "-"), ""), true
	case Constant:
		return notSnake.ReplaceAllString(whitespaceRun.ReplaceAllString(upper(text), "_"), ""), true
	case Alternating:
		var b strings.Builder
		b.Grow(len(text))
		i := 0
		for _, r := range text {
			if i%2 == 0 {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			i++
		}
		return b.String(), true
	default:
		return "", false
	}
}

// ConvertAll renders text in every style, ordered as Styles().
func ConvertAll(text string) []Result {
	results := make([]Result, 0, len(styleTable))
	for _, s := range Styles() {
		out, _ := Convert(text, s)
		results = append(results, Result{Style: s, Name: s.String(), Label: s.Label(), Output: out})
	}
	return results
}

// Casers keep state between calls, so each conversion gets its own.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	_, size := utf8.DecodeRuneInString(word)
	return upper(word[:size]) + word[size:]
}

// replaceGroups is ReplaceAllStringFunc with access to the submatches.
func replaceGroups(re *regexp.Regexp, s string, fn func(groups []string) string) string {
	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringSubmatchIndex(s, -1) {
		b.WriteString(s[last:loc[0]])
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
