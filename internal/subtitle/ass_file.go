package subtitle

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

func decodeScriptInfo(lines []string) (ScriptInfo, error) {
	var info ScriptInfo
	if len(lines) == 0 {
		return info, &SectionError{Section: scriptInfoHeader}
	}

	for _, line := range lines {
		for _, key := range scriptInfoKeys {
			if value, ok := strings.CutPrefix(line, key.label); ok {
				*key.field(&info) = Some(value)
				break
			}
		}
	}

	var err error
	for _, key := range scriptInfoKeys {
		if !key.field(&info).IsSet() {
			err = multierr.Append(err, &FieldError{
				Record: scriptInfoHeader,
				Field:  strings.TrimSuffix(key.label, ": "),
			})
		}
	}
	if err != nil {
		return ScriptInfo{}, err
	}

	return info, nil
}

func encodeScriptInfo(info ScriptInfo) string {
	var sb strings.Builder
	sb.WriteString(scriptInfoHeader + "\n")
	for _, key := range scriptInfoKeys {
		if value, ok := key.field(&info).Get(); ok {
			sb.WriteString(key.label + value + "\n")
		}
	}
	return sb.String()
}

func decodeStyle(lines []string) (StyleFormat, error) {
	var style StyleFormat
	if len(lines) == 0 {
		return style, &SectionError{Section: styleHeader}
	}

	var styleLine string
	found := false
	for _, line := range lines {
		if rest, ok := strings.CutPrefix(line, stylePrefix); ok {
			styleLine = rest
			found = true
			break
		}
	}
	if !found {
		return style, &ArityError{Record: "Style", Want: StyleArity, Got: 0}
	}

	// tokens past the last column are ignored
	values := strings.Split(styleLine, ",")
	if len(values) < StyleArity {
		return style, &ArityError{
			Record: "Style",
			Want:   StyleArity,
			Got:    len(values),
		}
	}

	for i, column := range styleColumns {
		*column.field(&style) = Some(values[i])
	}

	return style, nil
}

func encodeStyle(style StyleFormat) (string, error) {
	values := make([]string, 0, StyleArity)
	for _, column := range styleColumns {
		value, ok := column.field(&style).Get()
		if !ok {
			return "", &FieldError{Record: "Style", Field: column.name}
		}
		values = append(values, value)
	}

	return styleHeader + "\n" +
		styleFormat + "\n" +
		stylePrefix + strings.Join(values, ",") + "\n", nil
}

func decodeEvents(lines []string) (Events, error) {
	var events Events
	if len(lines) == 0 {
		return events, &SectionError{Section: eventsHeader}
	}

	record := 0
	for _, line := range lines {
		content, ok := strings.CutPrefix(line, dialoguePrefix)
		if !ok {
			continue
		}
		record++

		d, err := parseDialogueLine(content)
		if err != nil {
			var arity *ArityError
			if errors.As(err, &arity) {
				arity.Line = record
			}
			return Events{}, err
		}
		events.Append(d)
	}

	return events, nil
}

// only the first nine commas delimit columns, the text keeps the rest
func parseDialogueLine(content string) (Dialogue, error) {
	parts := strings.SplitN(content, ",", EventArity)
	if len(parts) < EventArity {
		return Dialogue{}, &ArityError{
			Record: "Dialogue",
			Want:   EventArity,
			Got:    len(parts),
		}
	}

	b := EmptyDialogue()
	for i, column := range eventColumns {
		*column.field(&b.event) = Some(parts[i])
	}
	b.event.color, _ = colorOf(parts[EventArity-1])

	return b.Build(), nil
}

func encodeEvents(events Events) string {
	var sb strings.Builder
	sb.WriteString(eventsHeader + "\n")
	sb.WriteString(eventsFormat + "\n")
	for _, d := range events.dialogues {
		sb.WriteString(buildDialogueLine(d))
		sb.WriteString("\n")
	}
	return sb.String()
}

func buildDialogueLine(d Dialogue) string {
	fields := make([]string, EventArity)
	for i, column := range eventColumns {
		fields[i] = column.field(&d.event).String()
	}
	return dialoguePrefix + strings.Join(fields, ",")
}

// Parse decodes a whole .ass document. Any decode failure is returned
// without a partial document.
func Parse(text string) (*Document, error) {
	text = normalizeText(text)

	info, err := decodeScriptInfo(ExtractSection(text, scriptInfoHeader))
	if err != nil {
		return nil, fmt.Errorf("failed to decode script info: %w", err)
	}

	style, err := decodeStyle(ExtractSection(text, styleHeader))
	if err != nil {
		return nil, fmt.Errorf("failed to decode style: %w", err)
	}

	events, err := decodeEvents(ExtractSection(text, eventsHeader))
	if err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}

	return &Document{
		ScriptInfo: info,
		Style:      style,
		Events:     events,
	}, nil
}

// Encode renders the document as .ass text. It fails only when the style
// has an unset field.
func (d *Document) Encode() (string, error) {
	style, err := encodeStyle(d.Style)
	if err != nil {
		return "", fmt.Errorf("failed to encode style: %w", err)
	}

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		encodeScriptInfo(d.ScriptInfo),
		style,
		encodeEvents(d.Events),
	), nil
}
