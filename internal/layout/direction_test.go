package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestResolveDirection(t *testing.T) {
	type tc struct {
		declared TextDirection
		parent   TextDirection
		locale   language.Tag
		expected TextDirection
	}

	tests := map[string]tc{
		"explicit ltr wins":           {declared: DirectionLTR, parent: DirectionRTL, locale: language.Arabic, expected: DirectionLTR},
		"explicit rtl wins":           {declared: DirectionRTL, parent: DirectionLTR, locale: language.English, expected: DirectionRTL},
		"auto arabic":                 {declared: DirectionAuto, parent: DirectionLTR, locale: language.Arabic, expected: DirectionRTL},
		"auto hebrew":                 {declared: DirectionAuto, parent: DirectionLTR, locale: language.Hebrew, expected: DirectionRTL},
		"auto english":                {declared: DirectionAuto, parent: DirectionRTL, locale: language.English, expected: DirectionLTR},
		"auto undetermined":           {declared: DirectionAuto, parent: DirectionRTL, locale: language.Und, expected: DirectionLTR},
		"inherit rtl parent":          {declared: DirectionInherit, parent: DirectionRTL, locale: language.English, expected: DirectionRTL},
		"inherit ltr parent":          {declared: DirectionInherit, parent: DirectionLTR, locale: language.Arabic, expected: DirectionLTR},
		"inherit at root uses locale": {declared: DirectionInherit, parent: DirectionInherit, locale: language.Persian, expected: DirectionRTL},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveDirection(tt.declared, tt.parent, tt.locale))
		})
	}
}

func TestIsRightToLeft(t *testing.T) {
	assert.True(t, IsRightToLeft(language.MustParse("ar-EG")))
	assert.True(t, IsRightToLeft(language.MustParse("ur")))
	assert.False(t, IsRightToLeft(language.MustParse("ja")))
	assert.False(t, IsRightToLeft(language.MustParse("az-Latn")))
	assert.False(t, IsRightToLeft(language.Und))
}

func TestParseTextDirection(t *testing.T) {
	for in, want := range map[string]TextDirection{
		"ltr": DirectionLTR, "RTL": DirectionRTL, " inherit ": DirectionInherit, "": DirectionAuto, "auto": DirectionAuto,
	} {
		got, err := ParseTextDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseTextDirection("sideways")
	assert.True(t, errors.Is(err, ErrUnknownDirection))
}

func TestNodeDirectionInheritsFromAncestors(t *testing.T) {
	root := NewNode("root", nil)
	mid := NewNode("mid", nil)
	leaf := NewNode("leaf", nil)
	root.AddChild(mid)
	mid.AddChild(leaf)

	assert.Equal(t, DirectionLTR, leaf.Props().Direction())

	root.SetLocale(language.Arabic)
	assert.Equal(t, DirectionRTL, leaf.Props().Direction())

	mid.SetDirection(DirectionLTR)
	assert.Equal(t, DirectionLTR, leaf.Props().Direction())
	assert.Equal(t, DirectionRTL, root.Props().Direction())
}
