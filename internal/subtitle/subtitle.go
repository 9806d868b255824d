package subtitle

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatASS Format = "ass"
)
