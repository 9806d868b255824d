package subtitle

import (
	"errors"
	"strings"
	"testing"

	"github.com/asticode/go-astisub"
	"github.com/google/go-cmp/cmp"
)

const defaultDocumentText = `[Script Info]
ScriptType: v4.00+
PlayResX: 384
PlayResY: 288
ScaledBorderAndShadow: yes
YCbCr Matrix: None


[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,16,&H00ffff,&Hffffff,&H0,&H0,0,0,0,0,100,100,0,0,1,1,0,2,10,10,10,1


[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:00.10,0:00:00.50,Default,,0,0,0,,Hello There!
Dialogue: 0,00:00.50,00:00.58,Default,,0,0,0,,Hello Friend!
Dialogue: 0,0:00:00.58,0:00:01.01,Default,,0,0,0,,Hello World!!
`

func buildSampleDocument(t *testing.T) *Document {
	t.Helper()

	events := NewEvents()
	if _, err := events.ReplaceFirst(
		NewDialogue().
			Text("Hello There!").
			Start("0:00:00.10").
			End("0:00:00.50").
			Build(),
	); err != nil {
		t.Fatalf("ReplaceFirst failed: %v", err)
	}
	events.
		Append(NewDialogue().Text("Hello Friend!").Start("00:00.50").End("00:00.58").Build()).
		Append(NewDialogue().Text("Hello World!!").Start("0:00:00.58").End("0:00:01.01").Build())

	doc := New()
	doc.ScriptInfo.Set(DefaultScriptInfo())
	doc.Style.Set(DefaultStyle()).SetPrimaryColour(StyleColor(Yellow))
	doc.Events.Set(events.Create())
	return doc
}

func TestEncodeDocument(t *testing.T) {
	got, err := buildSampleDocument(t).Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if diff := cmp.Diff(defaultDocumentText, got); diff != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := Parse(defaultDocumentText)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if doc.ScriptInfo.PlayResY.String() != "288" {
		t.Errorf("expected PlayResY 288, got %q", doc.ScriptInfo.PlayResY)
	}
	if doc.Style.PrimaryColour.String() != "&H00ffff" {
		t.Errorf("expected yellow primary colour, got %q", doc.Style.PrimaryColour)
	}
	if doc.Events.Len() != 3 {
		t.Fatalf("expected 3 dialogues, got %d", doc.Events.Len())
	}

	last, _ := doc.Events.Last()
	if last.Text().String() != "Hello World!!" {
		t.Errorf("expected last text 'Hello World!!', got %q", last.Text())
	}
	if last.End().String() != "0:00:01.01" {
		t.Errorf("expected last end 0:00:01.01, got %q", last.End())
	}
}

func TestRoundTrip(t *testing.T) {
	doc := buildSampleDocument(t)

	red := NewDialogue().
		Text("Look, I was gonna go easy on you").
		PrependColor(Red).
		Name("Marshall").
		Effect("Karaoke").
		Build()
	doc.Events.Append(red)
	doc.Events.Append(EmptyDialogue().Text("").Build())

	text, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// absent event fields come back as empty strings
	want := *doc
	want.Events = Events{}
	for _, d := range doc.Events.All() {
		b := d.Edit()
		for _, column := range eventColumns {
			f := column.field(&b.event)
			if !f.IsSet() {
				*f = Some("")
			}
		}
		want.Events.Append(b.Build())
	}

	if diff := cmp.Diff(&want, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStyleArity(t *testing.T) {
	style := DefaultStyle()
	style.SetName("Sign").SetMarginL("11").SetMarginR("12").SetMarginV("13").SetEncoding("0")

	text, err := encodeStyle(style)
	if err != nil {
		t.Fatalf("encodeStyle failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	styleLine := strings.TrimPrefix(lines[len(lines)-1], stylePrefix)
	if n := len(strings.Split(styleLine, ",")); n != StyleArity {
		t.Fatalf("expected %d tokens, got %d", StyleArity, n)
	}

	decoded, err := decodeStyle(lines)
	if err != nil {
		t.Fatalf("decodeStyle failed: %v", err)
	}
	if diff := cmp.Diff(style, decoded); diff != "" {
		t.Errorf("style mismatch (-want +got):\n%s", diff)
	}

	if decoded.MarginV.String() != "13" || decoded.Encoding.String() != "0" {
		t.Errorf(
			"expected distinct MarginV/Encoding 13/0, got %q/%q",
			decoded.MarginV,
			decoded.Encoding,
		)
	}
}

func TestEncodeStyleRequiresEveryField(t *testing.T) {
	style := DefaultStyle()
	style.Shadow = Field{}

	_, err := encodeStyle(style)
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fieldErr.Field != "Shadow" {
		t.Errorf("expected missing Shadow, got %s", fieldErr.Field)
	}

	doc := Default()
	doc.Style = StyleFormat{}
	if _, err := doc.Encode(); !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField, got %v", err)
	}
}

func TestDecodeStyleWrongArity(t *testing.T) {
	tests := []struct {
		name string
		line string
		got  int
	}{
		{"too few", "Style: Default,Arial,16", 3},
		{"one short", "Style: " + strings.Repeat("0,", StyleArity-2) + "0", StyleArity - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeStyle([]string{styleHeader, "", tt.line})
			var arity *ArityError
			if !errors.As(err, &arity) {
				t.Fatalf("expected ArityError, got %v", err)
			}
			if arity.Got != tt.got || arity.Want != StyleArity {
				t.Errorf("expected %d/%d, got %d/%d", tt.got, StyleArity, arity.Got, arity.Want)
			}
		})
	}
}

func TestDecodeStyleIgnoresExtraTokens(t *testing.T) {
	line := "Style: Default,Arial,16,&Hffffff,&Hffffff,&H0,&H0,0,0,0,0,100,100,0,0,1,1,0,2,10,20,30,1,extra,more"
	style, err := decodeStyle([]string{styleHeader, "", line})
	if err != nil {
		t.Fatalf("decodeStyle failed: %v", err)
	}

	want := DefaultStyle()
	want.SetMarginR("20").SetMarginV("30")
	if diff := cmp.Diff(want, style); diff != "" {
		t.Errorf("style mismatch (-want +got):\n%s", diff)
	}
}

func TestDialogueTextKeepsCommas(t *testing.T) {
	d := NewDialogue().
		Start("0:00:01.00").
		End("0:00:02.00").
		Text(`{\pos(100,200)}Well, well, well`).
		Build()

	line := buildDialogueLine(d)
	if line != `Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,{\pos(100,200)}Well, well, well` {
		t.Fatalf("unexpected dialogue line %q", line)
	}

	decoded, err := parseDialogueLine(strings.TrimPrefix(line, dialoguePrefix))
	if err != nil {
		t.Fatalf("parseDialogueLine failed: %v", err)
	}
	if decoded != d {
		t.Errorf("expected %+v, got %+v", d, decoded)
	}
	if decoded.Effect().String() != "" || decoded.MarginV().String() != "0" {
		t.Errorf("metadata fields corrupted: %+v", decoded)
	}
}

func TestDecodeEventsWrongArity(t *testing.T) {
	lines := []string{
		eventsHeader,
		"",
		eventsFormat,
		"Dialogue: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,ok",
		"Dialogue: 0,0:00:00.00,0:00:01.00",
	}

	_, err := decodeEvents(lines)
	var arity *ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("expected ArityError, got %v", err)
	}
	if arity.Line != 2 || arity.Got != 3 {
		t.Errorf("expected dialogue 2 with 3 fields, got %d with %d", arity.Line, arity.Got)
	}
}

func TestDecodeEventsSkipsOtherLines(t *testing.T) {
	events, err := decodeEvents([]string{
		eventsHeader,
		"",
		eventsFormat,
		"Comment: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,hidden",
		"Dialogue: 1,0:00:00.00,0:00:01.00,Default,,0,0,0,,shown",
	})
	if err != nil {
		t.Fatalf("decodeEvents failed: %v", err)
	}
	if events.Len() != 1 {
		t.Fatalf("expected 1 dialogue, got %d", events.Len())
	}
	d, _ := events.First()
	if d.Layer().String() != "1" || d.Text().String() != "shown" {
		t.Errorf("unexpected dialogue %+v", d)
	}
}

func TestParseMissingSections(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", ErrMissingSection},
		{
			"no styles",
			"[Script Info]\nScriptType: a\nPlayResX: 1\nPlayResY: 1\nScaledBorderAndShadow: yes\nYCbCr Matrix: None\n",
			ErrMissingSection,
		},
		{
			"no events",
			"[Script Info]\nScriptType: a\nPlayResX: 1\nPlayResY: 1\nScaledBorderAndShadow: yes\nYCbCr Matrix: None\n" +
				"[V4+ Styles]\nStyle: Default,Arial,16,&Hffffff,&Hffffff,&H0,&H0,0,0,0,0,100,100,0,0,1,1,0,2,10,10,10,1\n",
			ErrMissingSection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.text)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if doc != nil {
				t.Errorf("expected no partial document, got %+v", doc)
			}
		})
	}
}

func TestParseReportsEveryMissingScriptInfoKey(t *testing.T) {
	text := strings.Replace(defaultDocumentText, "PlayResX: 384\nPlayResY: 288\n", "", 1)

	_, err := Parse(text)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	for _, key := range []string{"PlayResX", "PlayResY"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("expected error to mention %s, got %v", key, err)
		}
	}
}

func TestEncodeScriptInfoOmitsAbsentFields(t *testing.T) {
	var info ScriptInfo
	info.SetScriptType("FFMPEG").SetPlayResY("720")

	got := encodeScriptInfo(info)
	want := "[Script Info]\nScriptType: FFMPEG\nPlayResY: 720\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodedDocumentReadableByAstisub(t *testing.T) {
	doc := Default()
	doc.Events = Events{}
	doc.Events.
		Append(NewDialogue().Start("0:00:01.00").End("0:00:02.50").Text("First").Build()).
		Append(NewDialogue().Start("0:00:03.00").End("0:00:04.00").Text("Second, and last").Build())
	text, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	subs, err := astisub.ReadFromSSA(strings.NewReader(text))
	if err != nil {
		t.Fatalf("astisub could not read encoded document: %v", err)
	}
	if len(subs.Items) != doc.Events.Len() {
		t.Errorf("expected %d items, got %d", doc.Events.Len(), len(subs.Items))
	}
	if _, ok := subs.Styles["Default"]; !ok {
		t.Errorf("expected Default style, got %v", subs.Styles)
	}
}

func TestRecordFields(t *testing.T) {
	var names []string
	for name, field := range DefaultStyle().Fields() {
		if !field.IsSet() {
			t.Errorf("default style field %s is absent", name)
		}
		names = append(names, name)
	}
	want := strings.Split(strings.TrimPrefix(styleFormat, "Format: "), ", ")
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("style field names mismatch (-want +got):\n%s", diff)
	}

	info := ScriptInfo{PlayResX: Some("640")}
	got := map[string]string{}
	for name, field := range info.Fields() {
		if v, ok := field.Get(); ok {
			got[name] = v
		}
	}
	if diff := cmp.Diff(map[string]string{"PlayResX": "640"}, got); diff != "" {
		t.Errorf("script info fields mismatch (-want +got):\n%s", diff)
	}
}
