package tui

import (
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/devtools/internal/colormath"
	"github.com/alexisbeaulieu97/devtools/internal/logger"
)

// Options configure a palette explorer.
type Options struct {
	Base     string
	Strategy colormath.Strategy
	UseColor bool
	Rand     *rand.Rand
	Logger   *logger.Logger
}

// Model is the Bubbletea state of the interactive palette explorer.
type Model struct {
	base     string
	strategy colormath.Strategy
	palette  []string
	cursor   int

	input   textinput.Model
	editing bool
	errMsg  string

	keys     keyMap
	help     help.Model
	rng      *rand.Rand
	log      *logger.Logger
	useColor bool
	quitting bool
}

// NewModel builds an explorer. An invalid base falls back to a random colour.
func NewModel(opts Options) Model {
	input := textinput.New()
	input.Placeholder = "#3b82f6"
	input.CharLimit = 7
	input.Prompt = "base › "

	m := Model{
		strategy: opts.Strategy,
		input:    input,
		keys:     defaultKeyMap(),
		help:     help.New(),
		rng:      opts.Rand,
		log:      opts.Logger,
		useColor: opts.UseColor,
	}

	base, ok := colormath.NormalizeHex(opts.Base)
	if !ok {
		base = colormath.RandomHex(m.rng)
	}
	m.setBase(base)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Base returns the current base colour.
func (m Model) Base() string {
	return m.base
}

// Strategy returns the current palette strategy.
func (m Model) Strategy() colormath.Strategy {
	return m.strategy
}

// Palette returns the palette currently shown.
func (m Model) Palette() []string {
	return append([]string(nil), m.palette...)
}

// Selected returns the highlighted palette entry.
func (m Model) Selected() string {
	if m.cursor < 0 || m.cursor >= len(m.palette) {
		return ""
	}
	return m.palette[m.cursor]
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) setBase(base string) {
	m.base = base
	m.regenerate()
}

func (m *Model) setStrategy(s colormath.Strategy) {
	m.strategy = s
	m.regenerate()
}

func (m *Model) regenerate() {
	palette, ok := colormath.GeneratePalette(m.base, m.strategy)
	if !ok {
		m.palette = nil
		m.cursor = 0
		return
	}
	m.palette = palette
	if m.cursor >= len(m.palette) {
		m.cursor = len(m.palette) - 1
	}
	m.log.Debug("palette regenerated", logger.Fields{"base": m.base, "strategy": m.strategy.String()})
}
