package subtitle

import (
	"errors"
	"testing"
)

func textOf(t *testing.T, e *Events, i int) string {
	t.Helper()
	d, ok := e.At(i)
	if !ok {
		t.Fatalf("no dialogue at %d", i)
	}
	return d.Text().String()
}

func TestEventsReplaceOnEmptyTable(t *testing.T) {
	d := NewDialogue().Text("x").Build()

	tests := []struct {
		name string
		op   func(e *Events) (*Events, error)
	}{
		{"first", func(e *Events) (*Events, error) { return e.ReplaceFirst(d) }},
		{"last", func(e *Events) (*Events, error) { return e.ReplaceLast(d) }},
		{"at zero", func(e *Events) (*Events, error) { return e.ReplaceAt(0, d) }},
		{"negative", func(e *Events) (*Events, error) { return e.ReplaceAt(-1, d) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events Events
			_, err := tt.op(&events)
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
			}
			if events.Len() != 0 {
				t.Errorf("expected table to stay empty, got %d", events.Len())
			}
		})
	}
}

func TestEventsReplaceAtOutOfBounds(t *testing.T) {
	events := DefaultEvents()
	events.Append(NewDialogue().Text("b").Build())
	before := events.Create()

	_, err := events.ReplaceAt(2, NewDialogue().Text("c").Build())
	var indexErr *IndexError
	if !errors.As(err, &indexErr) {
		t.Fatalf("expected IndexError, got %v", err)
	}
	if indexErr.Index != 2 || indexErr.Len != 2 {
		t.Errorf("expected index 2 of 2, got %d of %d", indexErr.Index, indexErr.Len)
	}
	if !events.Equal(before) {
		t.Errorf("table modified by failed ReplaceAt")
	}
}

func TestEventsAppendOnEmptyTable(t *testing.T) {
	var events Events
	events.Append(NewDialogue().Text("only").Build())

	if events.Len() != 1 {
		t.Fatalf("expected 1 dialogue, got %d", events.Len())
	}
	if got := textOf(t, &events, 0); got != "only" {
		t.Errorf("expected 'only', got %q", got)
	}
}

func TestEventsFluentConstruction(t *testing.T) {
	first := NewDialogue().Text("Hello There!").Build()
	second := NewDialogue().Text("Hello Friend!").Build()
	third := NewDialogue().Text("Hello World!!").Build()

	seed := NewEvents()
	e, err := seed.ReplaceFirst(first)
	if err != nil {
		t.Fatalf("ReplaceFirst failed: %v", err)
	}
	events := e.Append(second).Append(third).Create()

	if events.Len() != 3 {
		t.Fatalf("expected 3 dialogues, got %d", events.Len())
	}
	for i, want := range []string{"Hello There!", "Hello Friend!", "Hello World!!"} {
		if got := textOf(t, &events, i); got != want {
			t.Errorf("dialogue %d: expected %q, got %q", i, want, got)
		}
	}

	// the snapshot is independent of the table it came from
	if _, err := seed.ReplaceLast(NewDialogue().Text("changed").Build()); err != nil {
		t.Fatalf("ReplaceLast failed: %v", err)
	}
	if got := textOf(t, &events, 2); got != "Hello World!!" {
		t.Errorf("snapshot changed to %q", got)
	}
	if got := textOf(t, &seed, 2); got != "changed" {
		t.Errorf("expected seed to change, got %q", got)
	}
}

func TestEventsAccessors(t *testing.T) {
	var events Events
	if _, ok := events.First(); ok {
		t.Errorf("expected no first dialogue on empty table")
	}
	if _, ok := events.Last(); ok {
		t.Errorf("expected no last dialogue on empty table")
	}

	events.
		Append(NewDialogue().Text("a").Build()).
		Append(NewDialogue().Text("a").Build()).
		Append(NewDialogue().Text("c").Build())

	first, _ := events.First()
	last, _ := events.Last()
	if first.Text().String() != "a" || last.Text().String() != "c" {
		t.Errorf("unexpected first/last %q/%q", first.Text(), last.Text())
	}

	var seen []string
	for i, d := range events.All() {
		if i == 2 {
			break
		}
		seen = append(seen, d.Text().String())
	}
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "a" {
		t.Errorf("expected duplicates to be kept in order, got %q", seen)
	}

	copied := events.Dialogues()
	copied[0] = NewDialogue().Text("z").Build()
	if got := textOf(t, &events, 0); got != "a" {
		t.Errorf("Dialogues returned shared storage, got %q", got)
	}
}

func TestNewEventsSeedsPlaceholder(t *testing.T) {
	events := NewEvents()
	d, ok := events.First()
	if !ok || events.Len() != 1 {
		t.Fatalf("expected one placeholder dialogue, got %d", events.Len())
	}
	if d.Layer().IsSet() || d.Text().IsSet() {
		t.Errorf("expected blank placeholder, got %+v", d)
	}

	def, _ := DefaultEvents().First()
	if def.Style().String() != "Default" || def.Start().String() != "0:00:00.00" {
		t.Errorf("unexpected default dialogue %+v", def)
	}
}

func TestPrependColorCompounds(t *testing.T) {
	d := NewDialogue().Text("hi").PrependColor(Red).PrependColor(Yellow).Build()

	if got := d.Text().String(); got != `{\c&H0ffff&}{\c&H00ff&}hi` {
		t.Errorf("unexpected text %q", got)
	}
	if got := d.Color().String(); got != `{\c&H0ffff&}` {
		t.Errorf("expected latest tag as color, got %q", got)
	}
}

func TestPrependColorWithoutText(t *testing.T) {
	d := NewDialogue().PrependColor(Red).Build()
	if got := d.Text().String(); got != `{\c&H00ff&}` {
		t.Errorf("expected tag as text, got %q", got)
	}
	if d.Color() != Some(`{\c&H00ff&}`) {
		t.Errorf("unexpected color %q", d.Color())
	}
}

func TestSetColorReplaces(t *testing.T) {
	d := NewDialogue().Text("hi").SetColor(Red).SetColor(Yellow).Build()

	if got := d.Text().String(); got != `{\c&H0ffff&}hi` {
		t.Errorf("unexpected text %q", got)
	}
	if got := d.Color().String(); got != `{\c&H0ffff&}` {
		t.Errorf("unexpected color %q", got)
	}
}

func TestDialogueEditDoesNotAlias(t *testing.T) {
	original := NewDialogue().Text("one").Build()
	changed := original.Edit().Text("two").Layer("3").Build()

	if original.Text().String() != "one" || original.Layer().String() != "0" {
		t.Errorf("original modified: %+v", original)
	}
	if changed.Text().String() != "two" || changed.Layer().String() != "3" {
		t.Errorf("unexpected edited dialogue %+v", changed)
	}
}

func TestEventsCreateIsIndependent(t *testing.T) {
	events := Events{}
	events.Append(NewDialogue().Text("one").Build()).
		Append(NewDialogue().Text("two").Build())

	snapshot := events.Create()
	if _, err := events.ReplaceAt(0, NewDialogue().Text("changed").Build()); err != nil {
		t.Fatalf("ReplaceAt failed: %v", err)
	}
	events.Append(NewDialogue().Text("three").Build())

	if snapshot.Len() != 2 {
		t.Fatalf("snapshot length changed to %d", snapshot.Len())
	}
	if got := textOf(t, &snapshot, 0); got != "one" {
		t.Errorf("snapshot sees replace: %q", got)
	}

	var restored Events
	restored.Set(snapshot)
	if _, err := snapshot.ReplaceLast(NewDialogue().Text("late").Build()); err != nil {
		t.Fatalf("ReplaceLast failed: %v", err)
	}
	if got := textOf(t, &restored, 1); got != "two" {
		t.Errorf("Set shares storage with its argument: %q", got)
	}
}
