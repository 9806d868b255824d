package subtitle

import "fmt"

// Document is a parsed or generated .ass file. It owns its three sections;
// none of them reference each other.
type Document struct {
	ScriptInfo ScriptInfo
	Style      StyleFormat
	Events     Events
}

// New returns a document with unset script info and style and a single
// blank dialogue slot.
func New() *Document {
	return &Document{Events: NewEvents()}
}

// Default returns a document that encodes without further changes.
func Default() *Document {
	return &Document{
		ScriptInfo: DefaultScriptInfo(),
		Style:      DefaultStyle(),
		Events:     DefaultEvents(),
	}
}

// ImportOptions controls how SubRip entries become dialogues.
type ImportOptions struct {
	// ConvertTimestamps rewrites 00:00:01,500 as 0:00:01.50. When false the
	// SubRip timestamps are copied verbatim.
	ConvertTimestamps bool
	// Style overrides the style name of every imported dialogue.
	Style string
	// Color, when set, picks the color attached to entry i.
	Color func(i int, entry SRTEntry) (RGB, bool)
}

// ImportSRT appends one dialogue per entry of srt. On error the document is
// left as it was.
func (d *Document) ImportSRT(srt *SRT, opts ImportOptions) error {
	imported := make([]Dialogue, 0, srt.Len())
	for i, entry := range srt.All() {
		b := entry.Dialogue().Edit()

		if opts.ConvertTimestamps {
			start, err := SRTTimestampToASS(entry.Start)
			if err != nil {
				return fmt.Errorf("entry %s: %w", entry.Index, err)
			}
			end, err := SRTTimestampToASS(entry.End)
			if err != nil {
				return fmt.Errorf("entry %s: %w", entry.Index, err)
			}
			b.Start(start).End(end)
		}

		if opts.Style != "" {
			b.Style(opts.Style)
		}

		if opts.Color != nil {
			if c, ok := opts.Color(i, entry); ok {
				b.PrependColor(c)
			}
		}

		imported = append(imported, b.Build())
	}

	for _, dialogue := range imported {
		d.Events.Append(dialogue)
	}
	return nil
}
