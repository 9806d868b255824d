package subtitle

import "iter"

const (
	styleHeader = "[V4+ Styles]"
	styleFormat = "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding"
	stylePrefix = "Style: "

	// StyleArity is the number of columns in a Style line.
	StyleArity = 23
)

// StyleFormat is the single named style of a document. Every field must be
// set for the style to be encoded.
type StyleFormat struct {
	Name            Field
	FontName        Field
	FontSize        Field
	PrimaryColour   Field
	SecondaryColour Field
	OutlineColour   Field
	BackColour      Field
	Bold            Field
	Italic          Field
	Underline       Field
	StrikeOut       Field
	ScaleX          Field
	ScaleY          Field
	Spacing         Field
	Angle           Field
	BorderStyle     Field
	Outline         Field
	Shadow          Field
	Alignment       Field
	MarginL         Field
	MarginR         Field
	MarginV         Field
	Encoding        Field
}

type styleColumn struct {
	name  string
	field func(*StyleFormat) *Field
}

// column order of the Style line; position i in the table is token i
var styleColumns = [StyleArity]styleColumn{
	{"Name", func(s *StyleFormat) *Field { return &s.Name }},
	{"Fontname", func(s *StyleFormat) *Field { return &s.FontName }},
	{"Fontsize", func(s *StyleFormat) *Field { return &s.FontSize }},
	{"PrimaryColour", func(s *StyleFormat) *Field { return &s.PrimaryColour }},
	{"SecondaryColour", func(s *StyleFormat) *Field { return &s.SecondaryColour }},
	{"OutlineColour", func(s *StyleFormat) *Field { return &s.OutlineColour }},
	{"BackColour", func(s *StyleFormat) *Field { return &s.BackColour }},
	{"Bold", func(s *StyleFormat) *Field { return &s.Bold }},
	{"Italic", func(s *StyleFormat) *Field { return &s.Italic }},
	{"Underline", func(s *StyleFormat) *Field { return &s.Underline }},
	{"StrikeOut", func(s *StyleFormat) *Field { return &s.StrikeOut }},
	{"ScaleX", func(s *StyleFormat) *Field { return &s.ScaleX }},
	{"ScaleY", func(s *StyleFormat) *Field { return &s.ScaleY }},
	{"Spacing", func(s *StyleFormat) *Field { return &s.Spacing }},
	{"Angle", func(s *StyleFormat) *Field { return &s.Angle }},
	{"BorderStyle", func(s *StyleFormat) *Field { return &s.BorderStyle }},
	{"Outline", func(s *StyleFormat) *Field { return &s.Outline }},
	{"Shadow", func(s *StyleFormat) *Field { return &s.Shadow }},
	{"Alignment", func(s *StyleFormat) *Field { return &s.Alignment }},
	{"MarginL", func(s *StyleFormat) *Field { return &s.MarginL }},
	{"MarginR", func(s *StyleFormat) *Field { return &s.MarginR }},
	{"MarginV", func(s *StyleFormat) *Field { return &s.MarginV }},
	{"Encoding", func(s *StyleFormat) *Field { return &s.Encoding }},
}

// Fields yields the column names of the Style line with their values, in
// line order.
func (s StyleFormat) Fields() iter.Seq2[string, Field] {
	return func(yield func(string, Field) bool) {
		for _, col := range styleColumns {
			if !yield(col.name, *col.field(&s)) {
				return
			}
		}
	}
}

// DefaultStyle is the common "Default" style.
func DefaultStyle() StyleFormat {
	return StyleFormat{
		Name:            Some("Default"),
		FontName:        Some("Arial"),
		FontSize:        Some("16"),
		PrimaryColour:   Some("&Hffffff"),
		SecondaryColour: Some("&Hffffff"),
		OutlineColour:   Some("&H0"),
		BackColour:      Some("&H0"),
		Bold:            Some("0"),
		Italic:          Some("0"),
		Underline:       Some("0"),
		StrikeOut:       Some("0"),
		ScaleX:          Some("100"),
		ScaleY:          Some("100"),
		Spacing:         Some("0"),
		Angle:           Some("0"),
		BorderStyle:     Some("1"),
		Outline:         Some("1"),
		Shadow:          Some("0"),
		Alignment:       Some("2"),
		MarginL:         Some("10"),
		MarginR:         Some("10"),
		MarginV:         Some("10"),
		Encoding:        Some("1"),
	}
}

// Set replaces every field with the ones in style.
func (s *StyleFormat) Set(style StyleFormat) *StyleFormat {
	*s = style
	return s
}

func (s *StyleFormat) SetName(v string) *StyleFormat {
	s.Name = Some(v)
	return s
}

func (s *StyleFormat) SetFontName(v string) *StyleFormat {
	s.FontName = Some(v)
	return s
}

func (s *StyleFormat) SetFontSize(v string) *StyleFormat {
	s.FontSize = Some(v)
	return s
}

// v is expected in &Hbbggrr form, see StyleColor
func (s *StyleFormat) SetPrimaryColour(v string) *StyleFormat {
	s.PrimaryColour = Some(v)
	return s
}

func (s *StyleFormat) SetSecondaryColour(v string) *StyleFormat {
	s.SecondaryColour = Some(v)
	return s
}

func (s *StyleFormat) SetOutlineColour(v string) *StyleFormat {
	s.OutlineColour = Some(v)
	return s
}

func (s *StyleFormat) SetBackColour(v string) *StyleFormat {
	s.BackColour = Some(v)
	return s
}

func (s *StyleFormat) SetBold(v string) *StyleFormat {
	s.Bold = Some(v)
	return s
}

func (s *StyleFormat) SetItalic(v string) *StyleFormat {
	s.Italic = Some(v)
	return s
}

func (s *StyleFormat) SetUnderline(v string) *StyleFormat {
	s.Underline = Some(v)
	return s
}

func (s *StyleFormat) SetStrikeOut(v string) *StyleFormat {
	s.StrikeOut = Some(v)
	return s
}

func (s *StyleFormat) SetScaleX(v string) *StyleFormat {
	s.ScaleX = Some(v)
	return s
}

func (s *StyleFormat) SetScaleY(v string) *StyleFormat {
	s.ScaleY = Some(v)
	return s
}

func (s *StyleFormat) SetSpacing(v string) *StyleFormat {
	s.Spacing = Some(v)
	return s
}

func (s *StyleFormat) SetAngle(v string) *StyleFormat {
	s.Angle = Some(v)
	return s
}

func (s *StyleFormat) SetBorderStyle(v string) *StyleFormat {
	s.BorderStyle = Some(v)
	return s
}

func (s *StyleFormat) SetOutline(v string) *StyleFormat {
	s.Outline = Some(v)
	return s
}

func (s *StyleFormat) SetShadow(v string) *StyleFormat {
	s.Shadow = Some(v)
	return s
}

func (s *StyleFormat) SetAlignment(v string) *StyleFormat {
	s.Alignment = Some(v)
	return s
}

func (s *StyleFormat) SetMarginL(v string) *StyleFormat {
	s.MarginL = Some(v)
	return s
}

func (s *StyleFormat) SetMarginR(v string) *StyleFormat {
	s.MarginR = Some(v)
	return s
}

func (s *StyleFormat) SetMarginV(v string) *StyleFormat {
	s.MarginV = Some(v)
	return s
}

func (s *StyleFormat) SetEncoding(v string) *StyleFormat {
	s.Encoding = Some(v)
	return s
}
