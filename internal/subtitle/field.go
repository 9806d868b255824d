package subtitle

// Field is an optional column value. The zero Field is absent.
type Field struct {
	value string
	set   bool
}

// Some returns a present Field holding v.
func Some(v string) Field {
	return Field{value: v, set: true}
}

func (f Field) Get() (string, bool) {
	return f.value, f.set
}

func (f Field) IsSet() bool {
	return f.set
}

// value, or the empty string when absent
func (f Field) String() string {
	return f.value
}

func (f Field) Equal(other Field) bool {
	return f == other
}
