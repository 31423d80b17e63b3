package annotate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpaceTimeFormatting(t *testing.T) {
	st, err := NewSpaceTime("20221218", "245", "20221219", "1355")
	require.NoError(t, err)
	require.Equal(t, "0245", st.StartTime)

	date, err := FormattedDate(st.StartDate)
	require.NoError(t, err)
	require.Equal(t, "12/18/2022", date)

	tm, err := Formatted12hrTime("245")
	require.NoError(t, err)
	require.Equal(t, "2:45 AM", tm)

	tm, err = Formatted12hrTime(st.EndTime)
	require.NoError(t, err)
	require.Equal(t, "1:55 PM", tm)

	tm, err = Formatted24hrTime(st.EndTime)
	require.NoError(t, err)
	require.Equal(t, "13:55", tm)

	require.Equal(t, "Start: 12/18/2022, 2:45 AM", st.StartLine())
	require.Equal(t, "End: 12/19/2022, 1:55 PM", st.EndLine())
}

func TestFormatted12hrTimeBoundaries(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0000", "12:00 AM"},
		{"0030", "12:30 AM"},
		{"1159", "11:59 AM"},
		{"1200", "12:00 PM"},
		{"1230", "12:30 PM"},
		{"2359", "11:59 PM"},
		{"905", "9:05 AM"},
	}

	for _, tt := range tests {
		got, err := Formatted12hrTime(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewSpaceTimeRejectsBadLengths(t *testing.T) {
	tests := []struct {
		name                   string
		sd, stime, ed, endTime string
		field                  string
	}{
		{"short start date", "2022121", "245", "", "", "start date"},
		{"long start date", "202212180", "245", "", "", "start date"},
		{"letters in date", "2022Dec8", "245", "", "", "start date"},
		{"empty time", "20221218", "", "", "", "start time"},
		{"short time", "20221218", "45", "", "", "start time"},
		{"long time", "20221218", "02450", "", "", "start time"},
		{"bad end date", "20221218", "245", "221219", "", "end date"},
		{"bad end time", "20221218", "245", "20221219", "1", "end time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := NewSpaceTime(tt.sd, tt.stime, tt.ed, tt.endTime)
			require.Nil(t, st)
			require.True(t, errors.Is(err, ErrFormat), "got %v", err)

			var fe *FormatError
			require.True(t, errors.As(err, &fe))
			require.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestSpaceTimeOptionalFields(t *testing.T) {
	st, err := NewSpaceTime("20230101", "905", "", "")
	require.NoError(t, err)
	require.Equal(t, "0905", st.StartTime)
	require.Empty(t, st.EndLine())

	lines := st.Lines(AllToggles())
	require.Len(t, lines, 1)
	require.Equal(t, st.StartLine(), lines[0])
}

func TestFormattedDateRejectsBadInput(t *testing.T) {
	_, err := FormattedDate("2022-12-18")
	require.ErrorIs(t, err, ErrFormat)

	_, err = Formatted12hrTime("")
	require.ErrorIs(t, err, ErrFormat)
}
