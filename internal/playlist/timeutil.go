package playlist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	seratoDateLayout = "2.1.2006, 15.04.05"
	seratoTimeLayout = "15.04.05"
)

// TotalPlaytime sums the known play times. Returns nil when the sum is zero.
func TotalPlaytime(tracks []Track) *time.Duration {
	var sum time.Duration
	for _, track := range tracks {
		if track.PlayTime != nil {
			sum += *track.PlayTime
		}
	}
	if sum <= 0 {
		return nil
	}
	return &sum
}

// FormatDuration formats as H:MM:SS from one hour up and M:SS below that.
// Zero and negative durations format as an empty string.
func FormatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	if seconds <= 0 {
		return ""
	}
	minutes := seconds / 60
	if minutes >= 60 {
		return fmt.Sprintf("%d:%02d:%02d", minutes/60, minutes%60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds%60)
}

var namedDatePatterns = []struct {
	re               *regexp.Regexp
	year, month, day int
}{
	{regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`), 1, 2, 3},
	{regexp.MustCompile(`(\d{4})\.(\d{1,2})\.(\d{1,2})`), 1, 2, 3},
	{regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`), 3, 2, 1},
}

// ExtractDateFromName finds a calendar date inside a playlist name,
// for example "Serato 30.3.2023" or "club-night 2023-03-30".
func ExtractDateFromName(name string) *time.Time {
	for _, pattern := range namedDatePatterns {
		for _, match := range pattern.re.FindAllStringSubmatch(name, -1) {
			year, _ := strconv.Atoi(match[pattern.year])
			month, _ := strconv.Atoi(match[pattern.month])
			day, _ := strconv.Atoi(match[pattern.day])
			date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			if date.Year() == year && int(date.Month()) == month && date.Day() == day {
				return &date
			}
		}
	}
	return nil
}

// stripZone drops a trailing time zone abbreviation like "EET" or "EEST".
func stripZone(value string) string {
	value = strings.TrimSpace(value)
	i := strings.LastIndexByte(value, ' ')
	if i < 0 {
		return value
	}
	zone := value[i+1:]
	for _, r := range zone {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return value
		}
	}
	return strings.TrimSpace(value[:i])
}

// parseSeratoDate parses a playlist timestamp like "10.01.2019, 20.00.00 EET"
func parseSeratoDate(value string) *time.Time {
	t, err := time.Parse(seratoDateLayout, stripZone(value))
	if err != nil {
		return nil
	}
	return &t
}

// parseSeratoTime parses a track timestamp like "20.00.00 EET" on the given day.
// Times before the start of the playlist are moved to the next day.
func parseSeratoTime(value string, start time.Time) *time.Time {
	clock, err := time.Parse(seratoTimeLayout, stripZone(value))
	if err != nil {
		return nil
	}
	t := time.Date(start.Year(), start.Month(), start.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
	if !start.IsZero() && t.Before(start) && start.Sub(t) > 12*time.Hour {
		t = t.AddDate(0, 0, 1)
	}
	return &t
}

// parsePlaytime parses "HH:MM:SS" or "MM:SS"
func parsePlaytime(value string) *time.Duration {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return nil
	}
	var total time.Duration
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil
		}
		total = total*60 + time.Duration(n)
	}
	total *= time.Second
	if total <= 0 {
		return nil
	}
	return &total
}
