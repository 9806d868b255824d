package subtitle

import (
	"iter"
	"strings"
)

const (
	scriptInfoHeader = "[Script Info]"

	scriptTypeKey            = "ScriptType: "
	playResXKey              = "PlayResX: "
	playResYKey              = "PlayResY: "
	scaledBorderAndShadowKey = "ScaledBorderAndShadow: "
	ycbcrMatrixKey           = "YCbCr Matrix: "
)

// ScriptInfo holds the [Script Info] section: script version and the
// resolution the script was authored against.
type ScriptInfo struct {
	ScriptType            Field
	PlayResX              Field
	PlayResY              Field
	ScaledBorderAndShadow Field
	YCbCrMatrix           Field
}

type scriptInfoKey struct {
	label string
	field func(*ScriptInfo) *Field
}

// label order is serialization order
var scriptInfoKeys = [...]scriptInfoKey{
	{scriptTypeKey, func(s *ScriptInfo) *Field { return &s.ScriptType }},
	{playResXKey, func(s *ScriptInfo) *Field { return &s.PlayResX }},
	{playResYKey, func(s *ScriptInfo) *Field { return &s.PlayResY }},
	{scaledBorderAndShadowKey, func(s *ScriptInfo) *Field { return &s.ScaledBorderAndShadow }},
	{ycbcrMatrixKey, func(s *ScriptInfo) *Field { return &s.YCbCrMatrix }},
}

// Fields yields each key label, without the separator, with its value.
func (s ScriptInfo) Fields() iter.Seq2[string, Field] {
	return func(yield func(string, Field) bool) {
		for _, key := range scriptInfoKeys {
			if !yield(strings.TrimSuffix(key.label, ": "), *key.field(&s)) {
				return
			}
		}
	}
}

// DefaultScriptInfo returns the script info written for new documents.
func DefaultScriptInfo() ScriptInfo {
	return ScriptInfo{
		ScriptType:            Some("v4.00+"),
		PlayResX:              Some("384"),
		PlayResY:              Some("288"),
		ScaledBorderAndShadow: Some("yes"),
		YCbCrMatrix:           Some("None"),
	}
}

// Set replaces every field with the ones in info.
func (s *ScriptInfo) Set(info ScriptInfo) *ScriptInfo {
	*s = info
	return s
}

// SSA script format version, "v4.00+" for ASS
func (s *ScriptInfo) SetScriptType(v string) *ScriptInfo {
	s.ScriptType = Some(v)
	return s
}

func (s *ScriptInfo) SetPlayResX(v string) *ScriptInfo {
	s.PlayResX = Some(v)
	return s
}

func (s *ScriptInfo) SetPlayResY(v string) *ScriptInfo {
	s.PlayResY = Some(v)
	return s
}

func (s *ScriptInfo) SetScaledBorderAndShadow(v string) *ScriptInfo {
	s.ScaledBorderAndShadow = Some(v)
	return s
}

func (s *ScriptInfo) SetYCbCrMatrix(v string) *ScriptInfo {
	s.YCbCrMatrix = Some(v)
	return s
}
