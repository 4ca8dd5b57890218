// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pagerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		spec   string
		want   Range
		errMsg string
	}{
		{
			name: "closed range",
			spec: "2-5",
			want: Range{Start: 2, End: 5},
		},
		{
			name: "open end",
			spec: "2-",
			want: Range{Start: 2},
		},
		{
			name: "open start",
			spec: "-5",
			want: Range{End: 5},
		},
		{
			name: "single page range",
			spec: "3-3",
			want: Range{Start: 3, End: 3},
		},
		{
			name:   "bare number suggests closed range",
			spec:   "3",
			errMsg: `did you mean "3-3"`,
		},
		{
			name:   "non-numeric start",
			spec:   "abc-3",
			errMsg: "expected START-END",
		},
		{
			name:   "start exceeds end",
			spec:   "5-2",
			errMsg: "start exceeds end",
		},
		{
			name:   "lone dash",
			spec:   "-",
			errMsg: "at least one bound",
		},
		{
			name:   "empty",
			spec:   "",
			errMsg: "expected START-END",
		},
		{
			name:   "zero page",
			spec:   "0-3",
			errMsg: "numbered from 1",
		},
		{
			name:   "negative bound",
			spec:   "-2-3",
			errMsg: "expected START-END",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		r      Range
		pages  int
		want   Range
		errMsg string
	}{
		{
			name:  "all pages",
			r:     All(),
			pages: 4,
			want:  Range{Start: 1, End: 4},
		},
		{
			name:  "open end filled in",
			r:     Range{Start: 2},
			pages: 7,
			want:  Range{Start: 2, End: 7},
		},
		{
			name:  "open start filled in",
			r:     Range{End: 3},
			pages: 7,
			want:  Range{Start: 1, End: 3},
		},
		{
			name:  "closed range unchanged",
			r:     Range{Start: 2, End: 3},
			pages: 4,
			want:  Range{Start: 2, End: 3},
		},
		{
			name:   "start beyond document",
			r:      Range{Start: 10},
			pages:  5,
			errMsg: "starts at 10 but document has only 5",
		},
		{
			name:   "end beyond document",
			r:      Range{Start: 1, End: 9},
			pages:  5,
			errMsg: "ends at 9 but document has only 5",
		},
		{
			name:   "empty document",
			r:      All(),
			pages:  0,
			errMsg: "no pages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.r.Resolve(tt.pages)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvedHelpers(t *testing.T) {
	r, err := Range{Start: 2, End: 5}.Resolve(10)
	require.NoError(t, err)

	assert.Equal(t, 4, r.Count())
	assert.Equal(t, "2-5", r.Spec())
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(1))
	assert.False(t, r.Contains(6))

	assert.Equal(t, 0, Range{}.Count())
}
