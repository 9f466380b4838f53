// Package typing animates the hero subtitle, typing and erasing a fixed list of titles forever.
package typing

import "time"

// Timing of the type/erase cycle.
const (
	TypeDelay    = 100 * time.Millisecond
	HoldDelay    = 2000 * time.Millisecond
	EraseDelay   = 50 * time.Millisecond
	AdvanceDelay = 500 * time.Millisecond
	StartDelay   = 1000 * time.Millisecond
)

// DefaultTexts are the titles cycled on the hero subtitle.
var DefaultTexts = []string{
	"Backend Software Engineer",
	"Microservices Architect",
	"Distributed Systems Expert",
	"Java Developer",
}

// Phase is the direction of the current tick.
type Phase int

const (
	PhaseType Phase = iota
	PhaseErase
)

func (p Phase) String() string {
	if p == PhaseErase {
		return "erase"
	}
	return "type"
}

// Machine is the type/erase state: which text, how many runes are shown, and the next phase.
type Machine struct {
	texts [][]rune
	index int
	pos   int
	phase Phase
}

// NewMachine returns a machine positioned before the first rune of the first text.
// Empty input falls back to DefaultTexts.
func NewMachine(texts []string) *Machine {
	if len(texts) == 0 {
		texts = DefaultTexts
	}
	m := &Machine{texts: make([][]rune, len(texts))}
	for i, t := range texts {
		m.texts[i] = []rune(t)
	}
	return m
}

// Index is the position of the text currently being typed or erased.
func (m *Machine) Index() int { return m.index }

// Phase reports what the next Step will do.
func (m *Machine) Phase() Phase { return m.phase }

// Text is what should currently be displayed.
func (m *Machine) Text() string {
	return string(m.texts[m.index][:m.pos])
}

// Step performs one tick and returns the text to render and the wait before the next tick.
//
// While typing, each tick reveals one rune and waits TypeDelay; the tick that finds the text
// complete switches to erasing after HoldDelay. While erasing, each tick hides one rune and
// waits EraseDelay; the tick that finds the text empty moves to the next text (wrapping)
// after AdvanceDelay.
func (m *Machine) Step() (string, time.Duration) {
	current := m.texts[m.index]
	switch m.phase {
	case PhaseType:
		if m.pos < len(current) {
			m.pos++
			return m.Text(), TypeDelay
		}
		m.phase = PhaseErase
		return m.Text(), HoldDelay
	default:
		if m.pos > 0 {
			m.pos--
			return m.Text(), EraseDelay
		}
		m.index = (m.index + 1) % len(m.texts)
		m.phase = PhaseType
		return m.Text(), AdvanceDelay
	}
}
