package subtitle

import (
	"fmt"
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

const srtTimeSeparator = " --> "

// SRTEntry is one SubRip block. All fields are kept verbatim.
type SRTEntry struct {
	Index string
	Start string
	End   string
	Text  string
}

// Dialogue returns a default dialogue carrying the entry's timing and text.
func (e SRTEntry) Dialogue() Dialogue {
	return NewDialogue().
		Start(e.Start).
		End(e.End).
		Text(e.Text).
		Build()
}

// SRT is the read-only result of importing a SubRip file.
type SRT struct {
	entries []SRTEntry
}

// ParseSRT splits text into blank-line separated blocks and decodes each
// into an entry.
func ParseSRT(text string) (*SRT, error) {
	var entries []SRTEntry
	for n, block := range srtBlocks(normalizeText(text)) {
		entry, err := parseSRTBlock(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", n+1, err)
		}
		entries = append(entries, entry)
	}
	return &SRT{entries: entries}, nil
}

// groups consecutive non-blank lines; empty groups are never returned
func srtBlocks(text string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}

	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

func parseSRTBlock(lines []string) (SRTEntry, error) {
	if len(lines) < 2 {
		return SRTEntry{}, &ArityError{
			Record: "SRT timestamp",
			Want:   2,
			Got:    0,
		}
	}

	timestamps := strings.Split(lines[1], srtTimeSeparator)
	if len(timestamps) != 2 {
		return SRTEntry{}, &ArityError{
			Record: "SRT timestamp",
			Want:   2,
			Got:    len(timestamps),
		}
	}

	return SRTEntry{
		Index: lines[0],
		Start: timestamps[0],
		End:   timestamps[1],
		Text:  strings.Join(lines[2:], ""),
	}, nil
}

func (s *SRT) Len() int {
	return len(s.entries)
}

func (s *SRT) At(i int) (SRTEntry, bool) {
	if i < 0 || i >= len(s.entries) {
		return SRTEntry{}, false
	}
	return s.entries[i], true
}

// Entries returns a copy of the parsed entries.
func (s *SRT) Entries() []SRTEntry {
	return slices.Clone(s.entries)
}

// All iterates the entries in file order. Each call starts over.
func (s *SRT) All() iter.Seq2[int, SRTEntry] {
	return func(yield func(int, SRTEntry) bool) {
		for i, e := range s.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

var srtTimestampRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})[,.](\d{1,3})$`)

// SRTTimestampToASS converts 00:00:01,500 into the ASS form 0:00:01.50.
func SRTTimestampToASS(ts string) (string, error) {
	d, err := parseSRTTimestamp(strings.TrimSpace(ts))
	if err != nil {
		return "", err
	}
	return formatASSTime(d), nil
}

func parseSRTTimestamp(ts string) (time.Duration, error) {
	matches := srtTimestampRegex.FindStringSubmatch(ts)
	if matches == nil {
		return 0, fmt.Errorf("invalid SRT timestamp %q", ts)
	}

	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])
	s, _ := strconv.Atoi(matches[3])
	// 5 means 500ms, as in 00:00:01,5
	fraction := matches[4] + strings.Repeat("0", 3-len(matches[4]))
	ms, _ := strconv.Atoi(fraction)

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
