package subtitle

const (
	eventsHeader   = "[Events]"
	eventsFormat   = "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"
	dialoguePrefix = "Dialogue: "

	// EventArity is the number of columns in a Dialogue line; the last one
	// is the free text and may itself contain commas.
	EventArity = 10
)

type eventFormat struct {
	layer   Field
	start   Field
	end     Field
	style   Field
	name    Field
	marginL Field
	marginR Field
	marginV Field
	effect  Field
	text    Field
	// leading override tag of text, not a column of its own
	color Field
}

type eventColumn struct {
	name  string
	field func(*eventFormat) *Field
}

var eventColumns = [EventArity]eventColumn{
	{"Layer", func(e *eventFormat) *Field { return &e.layer }},
	{"Start", func(e *eventFormat) *Field { return &e.start }},
	{"End", func(e *eventFormat) *Field { return &e.end }},
	{"Style", func(e *eventFormat) *Field { return &e.style }},
	{"Name", func(e *eventFormat) *Field { return &e.name }},
	{"MarginL", func(e *eventFormat) *Field { return &e.marginL }},
	{"MarginR", func(e *eventFormat) *Field { return &e.marginR }},
	{"MarginV", func(e *eventFormat) *Field { return &e.marginV }},
	{"Effect", func(e *eventFormat) *Field { return &e.effect }},
	{"Text", func(e *eventFormat) *Field { return &e.text }},
}

// Dialogue is one subtitle cue. Values are immutable; use Edit to derive a
// modified copy.
type Dialogue struct {
	event eventFormat
}

func (d Dialogue) Layer() Field   { return d.event.layer }
func (d Dialogue) Start() Field   { return d.event.start }
func (d Dialogue) End() Field     { return d.event.end }
func (d Dialogue) Style() Field   { return d.event.style }
func (d Dialogue) Name() Field    { return d.event.name }
func (d Dialogue) MarginL() Field { return d.event.marginL }
func (d Dialogue) MarginR() Field { return d.event.marginR }
func (d Dialogue) MarginV() Field { return d.event.marginV }
func (d Dialogue) Effect() Field  { return d.event.effect }
func (d Dialogue) Text() Field    { return d.event.text }

// Color is the override tag most recently attached to the text.
func (d Dialogue) Color() Field { return d.event.color }

// Edit returns a builder seeded with a copy of d.
func (d Dialogue) Edit() *DialogueBuilder {
	return &DialogueBuilder{event: d.event}
}

// DialogueBuilder accumulates dialogue fields until Build commits them.
type DialogueBuilder struct {
	event eventFormat
}

// NewDialogue starts from the default dialogue: layer 0, zero timing,
// "Default" style, zero margins and no text.
func NewDialogue() *DialogueBuilder {
	return &DialogueBuilder{
		event: eventFormat{
			layer:   Some("0"),
			start:   Some("0:00:00.00"),
			end:     Some("0:00:00.00"),
			style:   Some("Default"),
			name:    Some(""),
			marginL: Some("0"),
			marginR: Some("0"),
			marginV: Some("0"),
			effect:  Some(""),
		},
	}
}

// EmptyDialogue starts with every field absent.
func EmptyDialogue() *DialogueBuilder {
	return &DialogueBuilder{}
}

func (b *DialogueBuilder) Layer(v string) *DialogueBuilder {
	b.event.layer = Some(v)
	return b
}

func (b *DialogueBuilder) Start(v string) *DialogueBuilder {
	b.event.start = Some(v)
	return b
}

func (b *DialogueBuilder) End(v string) *DialogueBuilder {
	b.event.end = Some(v)
	return b
}

func (b *DialogueBuilder) Style(v string) *DialogueBuilder {
	b.event.style = Some(v)
	return b
}

func (b *DialogueBuilder) Name(v string) *DialogueBuilder {
	b.event.name = Some(v)
	return b
}

func (b *DialogueBuilder) MarginL(v string) *DialogueBuilder {
	b.event.marginL = Some(v)
	return b
}

func (b *DialogueBuilder) MarginR(v string) *DialogueBuilder {
	b.event.marginR = Some(v)
	return b
}

func (b *DialogueBuilder) MarginV(v string) *DialogueBuilder {
	b.event.marginV = Some(v)
	return b
}

func (b *DialogueBuilder) Effect(v string) *DialogueBuilder {
	b.event.effect = Some(v)
	return b
}

// Text replaces the text verbatim, including any override tags it carries.
func (b *DialogueBuilder) Text(v string) *DialogueBuilder {
	b.event.text = Some(v)
	b.event.color, _ = colorOf(v)
	return b
}

// PrependColor puts the override tag for c in front of the current text.
// Earlier tags stay in place, so repeated calls stack tags.
func (b *DialogueBuilder) PrependColor(c RGB) *DialogueBuilder {
	tag := OverrideTag(c)
	b.event.text = Some(tag + b.event.text.String())
	b.event.color = Some(tag)
	return b
}

// SetColor replaces the leading color tag, if any, with the tag for c.
func (b *DialogueBuilder) SetColor(c RGB) *DialogueBuilder {
	_, rest := splitColorTag(b.event.text.String())
	tag := OverrideTag(c)
	b.event.text = Some(tag + rest)
	b.event.color = Some(tag)
	return b
}

// Build returns the accumulated dialogue. The builder stays usable.
func (b *DialogueBuilder) Build() Dialogue {
	return Dialogue{event: b.event}
}

func colorOf(text string) (Field, bool) {
	tag, _ := splitColorTag(text)
	if tag == "" {
		return Field{}, false
	}
	return Some(tag), true
}
