package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrackSpec(t *testing.T) {
	type tc struct {
		in      string
		want    TrackSpec
		wantErr bool
	}

	tests := map[string]tc{
		"auto":            {in: "auto", want: Auto()},
		"weight":          {in: "2", want: Weight(2)},
		"zero weight":     {in: "0", want: Weight(0)},
		"fixed":           {in: "24px", want: Fixed(24)},
		"padded":          {in: " 3 ", want: Weight(3)},
		"negative weight": {in: "-1", wantErr: true},
		"negative fixed":  {in: "-4px", wantErr: true},
		"garbage":         {in: "wide", wantErr: true},
		"bad fixed":       {in: "apx", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseTrackSpec(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				var cfgErr *ConfigError
				assert.True(t, errors.As(err, &cfgErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()), "String() must parse back")
		})
	}
}

func mustParse(t *testing.T, s string) TrackSpec {
	t.Helper()
	spec, err := ParseTrackSpec(s)
	require.NoError(t, err)
	return spec
}

func TestTrackSpec_Resolve(t *testing.T) {
	type tc struct {
		spec        TrackSpec
		weight, min int
	}

	tests := map[string]tc{
		"auto":   {spec: Auto()},
		"weight": {spec: Weight(3), weight: 3},
		"fixed":  {spec: Fixed(40), min: 40},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, m := tt.spec.Resolve()
			assert.Equal(t, tt.weight, w)
			assert.Equal(t, tt.min, m)
		})
	}
}

func TestParseEnums(t *testing.T) {
	dir, err := ParseDirection("Row-Reverse")
	require.NoError(t, err)
	assert.Equal(t, RowReverse, dir)

	content, err := ParseContent("space-around")
	require.NoError(t, err)
	assert.Equal(t, ContentSpaceAround, content)

	flow, err := ParseAutoFlow("dense-column")
	require.NoError(t, err)
	assert.Equal(t, FlowDenseColumn, flow)

	flavor, err := ParseFlavor("smart-grid")
	require.NoError(t, err)
	assert.Equal(t, FlavorSmartGrid, flavor)

	_, err = ParseAlign("middle")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "column-reverse", ColumnReverse.String())
	assert.Equal(t, "space-between", ContentSpaceBetween.String())
	assert.Equal(t, "columns-only", GrowColumnsOnly.String())
	assert.Equal(t, "9", Direction(9).String())
}

func TestIntent_Validate(t *testing.T) {
	type tc struct {
		in    Intent
		field string
	}

	tests := map[string]tc{
		"negative span":   {in: Intent{ColSpan: -1}, field: "col_span"},
		"negative offset": {in: Intent{Offset: -2}, field: "offset"},
		"negative row":    {in: Intent{Row: Ptr(-1)}, field: "row"},
		"negative weight": {in: Intent{Weight: Ptr(-3)}, field: "weight"},
		"unknown align":   {in: Intent{AlignSelf: Ptr(Align(9))}, field: "align_self"},
		"unknown sticky":  {in: Intent{Sticky: Ptr(Sticky(32))}, field: "sticky"},
		"negative margin": {in: Intent{Margin: &Edges{Left: -1}}, field: "margin"},
		"negative pad":    {in: Intent{PadY: &Pad{After: -1}}, field: "pad_y"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.in.Validate()
			require.ErrorIs(t, err, ErrInvalidIntent)
			var intentErr *IntentError
			require.ErrorAs(t, err, &intentErr)
			assert.Equal(t, tt.field, intentErr.Field)
		})
	}

	assert.NoError(t, Intent{}.Validate())
	assert.NoError(t, At(2, 3).Validate())
}
