package subtitle

import (
	"iter"
	"slices"
)

// Events is the ordered dialogue table of a document. Insertion order is
// serialization order. The zero value is an empty table.
//
// A plain assignment copies the table header only, so both copies share the
// dialogue storage and a ReplaceAt on one is visible through the other. Use
// Create for an independent snapshot and Set to install one.
type Events struct {
	dialogues []Dialogue
}

// NewEvents returns a table holding one blank dialogue, a slot meant to be
// filled with ReplaceFirst.
func NewEvents() Events {
	return Events{dialogues: []Dialogue{EmptyDialogue().Build()}}
}

// DefaultEvents returns a table holding one default dialogue.
func DefaultEvents() Events {
	return Events{dialogues: []Dialogue{NewDialogue().Build()}}
}

// Set replaces the whole table with a copy of events.
func (e *Events) Set(events Events) *Events {
	e.dialogues = slices.Clone(events.dialogues)
	return e
}

func (e *Events) ReplaceFirst(d Dialogue) (*Events, error) {
	return e.ReplaceAt(0, d)
}

func (e *Events) ReplaceLast(d Dialogue) (*Events, error) {
	return e.ReplaceAt(len(e.dialogues)-1, d)
}

// ReplaceAt overwrites the dialogue at position n. The table is left
// untouched when n does not exist.
func (e *Events) ReplaceAt(n int, d Dialogue) (*Events, error) {
	if n < 0 || n >= len(e.dialogues) {
		return e, &IndexError{Index: n, Len: len(e.dialogues)}
	}
	e.dialogues[n] = d
	return e, nil
}

func (e *Events) Append(d Dialogue) *Events {
	e.dialogues = append(e.dialogues, d)
	return e
}

// Create returns a snapshot that shares no storage with e.
func (e *Events) Create() Events {
	return Events{dialogues: slices.Clone(e.dialogues)}
}

func (e *Events) Len() int {
	return len(e.dialogues)
}

func (e *Events) At(n int) (Dialogue, bool) {
	if n < 0 || n >= len(e.dialogues) {
		return Dialogue{}, false
	}
	return e.dialogues[n], true
}

func (e *Events) First() (Dialogue, bool) {
	return e.At(0)
}

func (e *Events) Last() (Dialogue, bool) {
	return e.At(len(e.dialogues) - 1)
}

// Dialogues returns a copy of the table contents.
func (e *Events) Dialogues() []Dialogue {
	return slices.Clone(e.dialogues)
}

func (e *Events) All() iter.Seq2[int, Dialogue] {
	return func(yield func(int, Dialogue) bool) {
		for i, d := range e.dialogues {
			if !yield(i, d) {
				return
			}
		}
	}
}

func (e Events) Equal(other Events) bool {
	return slices.Equal(e.dialogues, other.dialogues)
}
