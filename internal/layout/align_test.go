package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSticky(t *testing.T) {
	type tc struct {
		dir     Direction
		justify Align
		align   Align
		want    string
	}

	tests := map[string]tc{
		"row start start":           {dir: Row, justify: AlignStart, align: AlignStart, want: "nw"},
		"row end center":            {dir: Row, justify: AlignEnd, align: AlignCenter, want: "e"},
		"row reverse start":         {dir: RowReverse, justify: AlignStart, align: AlignStart, want: "ne"},
		"row reverse keeps cross":   {dir: RowReverse, justify: AlignCenter, align: AlignEnd, want: "s"},
		"column start end":          {dir: Column, justify: AlignStart, align: AlignEnd, want: "ne"},
		"column reverse start":      {dir: ColumnReverse, justify: AlignStart, align: AlignCenter, want: "s"},
		"column reverse keeps cross": {dir: ColumnReverse, justify: AlignCenter, align: AlignStart, want: "w"},
		"stretch both":              {dir: Row, justify: AlignStretch, align: AlignStretch, want: "nsew"},
		"center both":               {dir: Column, justify: AlignCenter, align: AlignCenter, want: ""},
		"column stretch main":       {dir: Column, justify: AlignStretch, align: AlignStart, want: "nsw"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ResolveSticky(tt.dir, tt.justify, tt.align)
			if got.String() != tt.want {
				t.Errorf("ResolveSticky(%v, %v, %v) = %q, want %q", tt.dir, tt.justify, tt.align, got, tt.want)
			}
		})
	}
}

func TestPickAlign(t *testing.T) {
	type tc struct {
		self    *Align
		items   *Align
		content *Content
		want    Align
	}

	tests := map[string]tc{
		"nothing set stretches":       {want: AlignStretch},
		"self wins":                   {self: Ptr(AlignEnd), items: Ptr(AlignStart), content: Ptr(ContentCenter), want: AlignEnd},
		"items before content":        {items: Ptr(AlignStart), content: Ptr(ContentCenter), want: AlignStart},
		"content as last resort":      {content: Ptr(ContentCenter), want: AlignCenter},
		"space modes fall to stretch": {content: Ptr(ContentSpaceBetween), want: AlignStretch},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickAlign(tt.self, tt.items, tt.content))
		})
	}
}

func TestParseSticky(t *testing.T) {
	type tc struct {
		in      string
		want    Sticky
		wantErr bool
	}

	tests := map[string]tc{
		"canonical":       {in: "nsew", want: StickyAll},
		"any order":       {in: "wn", want: StickyN | StickyW},
		"duplicates":      {in: "eew", want: StickyEW},
		"empty centers":   {in: "", want: StickyNone},
		"upper case":      {in: "NS", want: StickyNS},
		"unknown letter":  {in: "nx", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSticky(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrConfiguration))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSticky_TextRoundTrip(t *testing.T) {
	var s Sticky
	require.NoError(t, s.UnmarshalText([]byte("ws")))
	b, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "sw", string(b))
}
