package annotate

import (
	"fmt"
	"strconv"
	"strings"
)

// SpaceTime holds the start and optional end of an experiment. Dates are
// YYYYMMDD and times are 24-hour HMM or HHMM, stored left-padded to HHMM.
type SpaceTime struct {
	StartDate string
	StartTime string
	EndDate   string
	EndTime   string
}

// NewSpaceTime validates and normalizes the given dates and times. The
// start date and start time are required; the end fields may be empty.
func NewSpaceTime(startDate, startTime, endDate, endTime string) (*SpaceTime, error) {
	if err := checkDate("start date", startDate); err != nil {
		return nil, err
	}
	st, err := normalizeTime("start time", startTime)
	if err != nil {
		return nil, err
	}
	if st == "" {
		return nil, &FormatError{Field: "start time", Value: startTime, Want: timeWant}
	}
	if endDate != "" {
		if err := checkDate("end date", endDate); err != nil {
			return nil, err
		}
	}
	et, err := normalizeTime("end time", endTime)
	if err != nil {
		return nil, err
	}
	return &SpaceTime{
		StartDate: startDate,
		StartTime: st,
		EndDate:   endDate,
		EndTime:   et,
	}, nil
}

func checkDate(field, d string) error {
	if len(d) != 8 || !digits(d) {
		return &FormatError{Field: field, Value: d, Want: "8 digits (YYYYMMDD)"}
	}
	return nil
}

const timeWant = "3 or 4 digits (HMM or HHMM)"

// normalizeTime pads a 3-digit time to 4. An empty time is returned as is.
func normalizeTime(field, t string) (string, error) {
	if t == "" {
		return "", nil
	}
	if len(t) < 3 || len(t) > 4 || !digits(t) {
		return "", &FormatError{Field: field, Value: t, Want: timeWant}
	}
	if len(t) == 3 {
		t = "0" + t
	}
	return t, nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormattedDate turns YYYYMMDD into MM/DD/YYYY.
func FormattedDate(date string) (string, error) {
	if err := checkDate("date", date); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", date[4:6], date[6:], date[:4]), nil
}

// Formatted24hrTime turns HMM or HHMM into H:MM on a 24-hour clock.
func Formatted24hrTime(t string) (string, error) {
	hour, minute, err := splitTime(t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%s", hour%24, minute), nil
}

// Formatted12hrTime turns HMM or HHMM into H:MM AM/PM. Midnight is 12 AM
// and noon is 12 PM.
func Formatted12hrTime(t string) (string, error) {
	hour, minute, err := splitTime(t)
	if err != nil {
		return "", err
	}
	hour %= 24
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%s %s", h, minute, meridiem), nil
}

func splitTime(t string) (int, string, error) {
	t, err := normalizeTime("time", t)
	if err != nil {
		return 0, "", err
	}
	if t == "" {
		return 0, "", &FormatError{Field: "time", Value: t, Want: timeWant}
	}
	hour, err := strconv.Atoi(t[:2])
	if err != nil {
		return 0, "", &FormatError{Field: "time", Value: t, Want: "numeric hour"}
	}
	return hour, t[2:], nil
}

func (s *SpaceTime) StartLine() string {
	return line("Start", s.StartDate, s.StartTime)
}

// EndLine is empty when no end date is set.
func (s *SpaceTime) EndLine() string {
	if s.EndDate == "" {
		return ""
	}
	return line("End", s.EndDate, s.EndTime)
}

func line(prefix, date, t string) string {
	d, err := FormattedDate(date)
	if err != nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(": ")
	b.WriteString(d)
	if t != "" {
		if tm, err := Formatted12hrTime(t); err == nil {
			b.WriteString(", ")
			b.WriteString(tm)
		}
	}
	return b.String()
}

func (s *SpaceTime) Lines(t Toggles) []string {
	var lines []string
	if t.Start {
		if l := s.StartLine(); l != "" {
			lines = append(lines, l)
		}
	}
	if t.End {
		if l := s.EndLine(); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
