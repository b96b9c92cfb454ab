package reminder

import (
	"math/rand/v2"
	"slices"
)

var messages = []string{
	"🌙 Remember, seeking guidance is a sign of strength.",
	"✨ Take a moment to reflect on your spiritual journey.",
	"🕊️ Peace begins within. Breathe deeply and be present.",
	"💭 Your thoughts are valid. Consider sharing them with your guide.",
	"🙏 May wisdom and compassion guide your path today.",
}

// Source is the subset of *rand.Rand the picker needs.
type Source interface {
	IntN(n int) int
}

// Picker chooses a reminder message. Selection is random on purpose;
// tests pass a fixed Source.
type Picker struct {
	src      Source
	messages []string
}

// NewPicker uses src, or a time-seeded generator when src is nil.
func NewPicker(src Source) *Picker {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{src: src, messages: messages}
}

// Messages returns the reminder texts in selection-index order.
func Messages() []string {
	return slices.Clone(messages)
}

func (p *Picker) Pick() string {
	return p.messages[p.src.IntN(len(p.messages))]
}
