package tree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

const cardYAML = `
viewport: {width: 400, height: 300}
locale: ar
root:
  id: card
  width: 400
  height: 300
  padding: {start: 20, top: 10}
  alignment: topStart
  children:
    - id: avatar
      content: {fixed: {width: 48, height: 48}}
    - id: banner
      width: 50%
      height: 20
`

const cardJSON = `{
  "viewport": {"width": 400, "height": 300},
  "locale": "ar",
  "root": {
    "id": "card",
    "width": 400,
    "height": "300px",
    "padding": {"start": 20, "top": 10},
    "alignment": "topStart",
    "children": [
      {"id": "avatar", "content": {"fixed": {"width": 48, "height": 48}}},
      {"id": "banner", "width": "50%", "height": 20}
    ]
  }
}`

func TestDecode_Formats(t *testing.T) {
	type tc struct {
		input  string
		format Format
	}

	tests := map[string]tc{
		"yaml": {input: cardYAML, format: FormatYAML},
		"json": {input: cardJSON, format: FormatJSON},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := Decode(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)

			assert.Equal(t, &SizeSpec{Width: 400, Height: 300}, doc.Viewport)
			assert.Equal(t, "ar", doc.Locale)
			require.NotNil(t, doc.Root)
			assert.Equal(t, "card", doc.Root.ID)
			assert.Equal(t, layout.Px(400), doc.Root.Width.Length)
			assert.Equal(t, layout.Px(300), doc.Root.Height.Length)
			assert.Equal(t, "topStart", doc.Root.Alignment)

			require.NotNil(t, doc.Root.Padding)
			assert.Equal(t, layout.Px(20), doc.Root.Padding.Start.Length)
			assert.Equal(t, layout.Px(10), doc.Root.Padding.Top.Length)
			assert.True(t, doc.Root.Padding.End.IsAuto())
			assert.True(t, doc.Root.Padding.Property().IsLogical())

			require.Len(t, doc.Root.Children, 2)
			avatar := doc.Root.Children[0]
			require.NotNil(t, avatar.Content)
			assert.Equal(t, &SizeSpec{Width: 48, Height: 48}, avatar.Content.Fixed)
			assert.Equal(t, layout.Percent(50), doc.Root.Children[1].Width.Length)
		})
	}
}

func TestDecode_Lengths(t *testing.T) {
	type tc struct {
		input    string
		format   Format
		expected layout.Length
		wantErr  bool
	}

	tests := map[string]tc{
		"yaml number":  {input: "root: {width: 12}", format: FormatYAML, expected: layout.Px(12)},
		"yaml percent": {input: "root: {width: 50%}", format: FormatYAML, expected: layout.Percent(50)},
		"yaml vp":      {input: "root: {width: 8vp}", format: FormatYAML, expected: layout.Vp(8)},
		"yaml auto":    {input: "root: {width: auto}", format: FormatYAML, expected: layout.Auto()},
		"yaml bad":     {input: "root: {width: wide}", format: FormatYAML, wantErr: true},
		"yaml list":    {input: "root: {width: [1, 2]}", format: FormatYAML, wantErr: true},
		"json number":  {input: `{"root": {"width": 12.5}}`, format: FormatJSON, expected: layout.Px(12.5)},
		"json string":  {input: `{"root": {"width": "25%"}}`, format: FormatJSON, expected: layout.Percent(25)},
		"json null":    {input: `{"root": {"width": null}}`, format: FormatJSON, expected: layout.Auto()},
		"json bool":    {input: `{"root": {"width": true}}`, format: FormatJSON, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := Decode(strings.NewReader(tt.input), tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc.Root.Width.Length)
		})
	}
}

func TestDecode_ScalarEdges(t *testing.T) {
	type tc struct {
		input  string
		format Format
	}

	tests := map[string]tc{
		"yaml": {input: "root: {margin: 8}", format: FormatYAML},
		"json": {input: `{"root": {"margin": 8}}`, format: FormatJSON},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := Decode(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			require.NotNil(t, doc.Root.Margin)

			e := *doc.Root.Margin
			for _, side := range []Length{e.Top, e.Right, e.Bottom, e.Left} {
				assert.Equal(t, layout.Px(8), side.Length)
			}
			assert.False(t, e.Property().IsLogical())
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	type tc struct {
		input  string
		format Format
		target error
	}

	tests := map[string]tc{
		"no root yaml":   {input: "locale: en", format: FormatYAML, target: ErrNoRoot},
		"no root json":   {input: `{"locale": "en"}`, format: FormatJSON, target: ErrNoRoot},
		"unknown format": {input: "", format: Format("toml"), target: ErrUnknownFormat},
		"unknown field":  {input: "root: {id: a, colour: red}", format: FormatYAML},
		"unknown json":   {input: `{"colour": "red", "root": {}}`, format: FormatJSON},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	type tc struct {
		path     string
		expected Format
		wantErr  bool
	}

	tests := map[string]tc{
		"yaml":      {path: "card.yaml", expected: FormatYAML},
		"yml upper": {path: "dir/CARD.YML", expected: FormatYAML},
		"json":      {path: "card.json", expected: FormatJSON},
		"unknown":   {path: "card.toml", wantErr: true},
		"none":      {path: "card", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.yml")
	require.NoError(t, os.WriteFile(path, []byte(cardYAML), 0o600))

	doc, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "card", doc.Root.ID)

	_, err = DecodeFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
