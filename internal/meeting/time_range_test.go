package meeting

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeRange_Bounds(t *testing.T) {
	r := FromStartEnd(600, 660, false)
	require.Equal(t, 600, r.Start())
	require.Equal(t, 660, r.End())
	require.Equal(t, 60, r.Duration())
	require.Equal(t, FromStartDuration(600, 60), r)

	require.Equal(t, 0, WholeDay.Start())
	require.Equal(t, 1440, WholeDay.End())
	require.True(t, WholeDay.Valid())

	require.Equal(t, FromStartDuration(1400, 40), FromStartEnd(1400, EndOfDay, true))
}

func TestTimeRange_Valid(t *testing.T) {
	require.True(t, FromStartDuration(0, 1).Valid())
	require.False(t, FromStartDuration(-1, 10).Valid())
	require.False(t, FromStartDuration(10, 0).Valid())
	require.False(t, FromStartDuration(1430, 11).Valid())
}

func TestTimeRange_Overlaps(t *testing.T) {
	type testcase struct {
		name string
		a, b TimeRange
		want bool
	}

	tests := [...]testcase{
		{
			name: "disjoint",
			a:    FromStartEnd(0, 30, false),
			b:    FromStartEnd(60, 90, false),
			want: false,
		},
		{
			name: "touching",
			a:    FromStartEnd(0, 30, false),
			b:    FromStartEnd(30, 90, false),
			want: false,
		},
		{
			name: "intersecting",
			a:    FromStartEnd(0, 31, false),
			b:    FromStartEnd(30, 90, false),
			want: true,
		},
		{
			name: "nested",
			a:    FromStartEnd(0, 120, false),
			b:    FromStartEnd(30, 90, false),
			want: true,
		},
		{
			name: "empty",
			a:    FromStartDuration(30, 0),
			b:    FromStartEnd(0, 90, false),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			require.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_Contains(t *testing.T) {
	outer := FromStartEnd(60, 120, false)

	require.True(t, outer.Contains(FromStartEnd(60, 120, false)))
	require.True(t, outer.Contains(FromStartEnd(70, 80, false)))
	require.False(t, outer.Contains(FromStartEnd(50, 80, false)))
	require.False(t, outer.Contains(FromStartEnd(100, 121, false)))
	require.True(t, outer.Contains(FromStartDuration(60, 0)))

	require.True(t, outer.ContainsPoint(60))
	require.True(t, outer.ContainsPoint(119))
	require.False(t, outer.ContainsPoint(120))
}

func TestTimeRange_Order(t *testing.T) {
	ranges := []TimeRange{
		FromStartEnd(60, 120, false),
		FromStartEnd(0, 200, false),
		FromStartEnd(60, 90, false),
	}

	byStart := slices.Clone(ranges)
	slices.SortFunc(byStart, OrderByStart)
	require.Equal(t, []TimeRange{
		FromStartEnd(0, 200, false),
		FromStartEnd(60, 90, false),
		FromStartEnd(60, 120, false),
	}, byStart)

	byEnd := slices.Clone(ranges)
	slices.SortFunc(byEnd, OrderByEnd)
	require.Equal(t, []TimeRange{
		FromStartEnd(60, 90, false),
		FromStartEnd(60, 120, false),
		FromStartEnd(0, 200, false),
	}, byEnd)
}

func TestTimeRange_JSON(t *testing.T) {
	data, err := json.Marshal(FromStartEnd(600, 660, false))
	require.NoError(t, err)
	require.JSONEq(t, `{"start":600,"end":660,"duration":60}`, string(data))

	type testcase struct {
		name    string
		raw     string
		want    TimeRange
		wantErr bool
	}

	tests := [...]testcase{
		{name: "start end", raw: `{"start":10,"end":40}`, want: FromStartDuration(10, 30)},
		{name: "start duration", raw: `{"start":10,"duration":30}`, want: FromStartDuration(10, 30)},
		{name: "consistent triple", raw: `{"start":10,"end":40,"duration":30}`, want: FromStartDuration(10, 30)},
		{name: "inconsistent triple", raw: `{"start":10,"end":40,"duration":20}`, wantErr: true},
		{name: "start only", raw: `{"start":10}`, wantErr: true},
		{name: "not an object", raw: `[10, 40]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TimeRange
			err := json.Unmarshal([]byte(tt.raw), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRequest_Normalize(t *testing.T) {
	r := Request{
		Attendees:         []string{"B", "", "A", "B"},
		OptionalAttendees: []string{"", "D", "A", "C", "D"},
		Duration:          30,
	}

	mandatory, optional := r.Normalize()
	require.Equal(t, []string{"A", "B"}, mandatory)
	require.Equal(t, []string{"C", "D"}, optional)

	mandatory, optional = Request{}.Normalize()
	require.Empty(t, mandatory)
	require.Empty(t, optional)
}
