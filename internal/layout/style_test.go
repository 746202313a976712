package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizingPolicy(t *testing.T) {
	for _, p := range []SizingPolicy{NoMatch, MatchParent, WrapContent, FixAtIdealSize} {
		got, err := ParseSizingPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParseSizingPolicy("")
	require.NoError(t, err)
	assert.Equal(t, NoMatch, got)

	_, err = ParseSizingPolicy("stretch")
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
}

func TestParseMeasureType(t *testing.T) {
	type tc struct {
		in       string
		expected MeasureType
		wantErr  bool
	}

	tests := map[string]tc{
		"empty":         {in: "", expected: MeasureDefault},
		"match parent":  {in: "matchParent", expected: MeasureMatchParent},
		"match content": {in: "MATCHCONTENT", expected: MeasureMatchContent},
		"unknown":       {in: "fill", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseMeasureType(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseVisibility(t *testing.T) {
	type tc struct {
		in       string
		expected Visibility
		wantErr  bool
	}

	tests := map[string]tc{
		"default": {in: "", expected: Visible},
		"hidden":  {in: "hidden", expected: Hidden},
		"gone":    {in: "gone", expected: Gone},
		"none":    {in: "none", expected: Gone},
		"unknown": {in: "collapse", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseVisibility(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseSafeAreaEdges(t *testing.T) {
	got, err := ParseSafeAreaEdges([]string{"top", " Bottom "})
	require.NoError(t, err)
	assert.Equal(t, SafeAreaEdgeTop|SafeAreaEdgeBottom, got)

	got, err = ParseSafeAreaEdges([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, SafeAreaEdgeAll, got)

	got, err = ParseSafeAreaEdges(nil)
	require.NoError(t, err)
	assert.Equal(t, SafeAreaEdgeNone, got)

	_, err = ParseSafeAreaEdges([]string{"top", "left"})
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestPropertyChange_Has(t *testing.T) {
	both := NeedsMeasure | NeedsLayout
	assert.True(t, both.Has(NeedsMeasure))
	assert.True(t, both.Has(NeedsMeasure|NeedsLayout))
	assert.False(t, NeedsLayout.Has(NeedsMeasure|NeedsLayout))
	assert.False(t, both.Has(NoChange))
}

func TestExpandEdges_SizeAndOffset(t *testing.T) {
	e := ExpandEdges{Left: 1, Top: 2, Right: 3, Bottom: 4}
	assert.Equal(t, Size{Width: 4, Height: 6}, e.Size())
	assert.Equal(t, Offset{X: 1, Y: 2}, e.Offset())
}

func TestParseAlignment(t *testing.T) {
	type tc struct {
		in       string
		expected Alignment
		wantErr  bool
	}

	tests := map[string]tc{
		"empty is center": {in: "", expected: Center},
		"camel case":      {in: "topStart", expected: TopStart},
		"physical":        {in: "BottomRight", expected: BottomRight},
		"unknown":         {in: "middle", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAlignment(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAlignPosition(t *testing.T) {
	type tc struct {
		align    Alignment
		expected Offset
	}

	parent, child := Size{Width: 100, Height: 60}, Size{Width: 40, Height: 20}

	tests := map[string]tc{
		"top left":     {align: TopLeft, expected: Offset{X: 0, Y: 0}},
		"center":       {align: Center, expected: Offset{X: 30, Y: 20}},
		"bottom right": {align: BottomRight, expected: Offset{X: 60, Y: 40}},
		"top":          {align: Top, expected: Offset{X: 30, Y: 0}},
		"center end":   {align: CenterEnd, expected: Offset{X: 60, Y: 20}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AlignPosition(parent, child, tt.align))
		})
	}

	// Oversized children are centered past the parent's origin.
	assert.Equal(t, Offset{X: -10, Y: -10}, AlignPosition(Size{Width: 20, Height: 20}, Size{Width: 40, Height: 40}, Center))
}

func TestAlignment_Resolve(t *testing.T) {
	assert.Equal(t, TopRight, TopStart.Resolve(DirectionRTL))
	assert.Equal(t, TopLeft, TopStart.Resolve(DirectionLTR))
	assert.Equal(t, TopLeft, TopLeft.Resolve(DirectionRTL))
	assert.Equal(t, CenterLeft, CenterEnd.Resolve(DirectionRTL))
}
