// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package schedule does the timezone math for the content calendar.
// Scheduled times are user-local midnights stored in UTC; all grouping
// and range queries convert back through the user's location.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"draftdeck/internal/models"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// LocalMidnight parses a YYYY-MM-DD date as midnight in loc and
// returns it in UTC, which is how scheduled_for is stored.
func LocalMidnight(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("schedule: bad date %q: %w", date, err)
	}
	return t.UTC(), nil
}

// ParseMonth parses a YYYY-MM month string.
func ParseMonth(s string) (year int, month time.Month, err error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("schedule: bad month %q: %w", s, err)
	}
	return t.Year(), t.Month(), nil
}

// MonthRange returns the UTC half-open interval [start, end) covering
// the given calendar month in loc. Items stored as local midnights in
// UTC fall into exactly one month's range.
func MonthRange(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0)
	return start.UTC(), end.UTC()
}

// PrevNext returns the YYYY-MM strings for the adjacent months, for
// calendar navigation.
func PrevNext(year int, month time.Month) (prev, next string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -1, 0).Format(monthLayout), first.AddDate(0, 1, 0).Format(monthLayout)
}

// BucketByLocalDate groups items by their scheduled date rendered in
// loc, keyed YYYY-MM-DD. Items without a schedule are skipped.
func BucketByLocalDate(items []*models.ContentItem, loc *time.Location) map[string][]*models.ContentItem {
	buckets := make(map[string][]*models.ContentItem)
	for _, item := range items {
		if item.ScheduledFor == nil {
			continue
		}
		key := item.ScheduledFor.In(loc).Format(dateLayout)
		buckets[key] = append(buckets[key], item)
	}
	return buckets
}

// Weekday converts a schedule day (0=Monday .. 6=Sunday) to Go's
// Sunday-based weekday.
func Weekday(dayOfWeek int) time.Weekday {
	return time.Weekday((dayOfWeek + 1) % 7)
}

// MatchingDates lists the local midnights within the month whose
// weekday appears in the posting schedule, earliest first, skipping
// dates before notBefore. Used to auto-populate the calendar.
func MatchingDates(schedules []*models.GuidelineSchedule, year int, month time.Month, loc *time.Location, notBefore time.Time) []time.Time {
	wanted := make(map[time.Weekday]bool, len(schedules))
	for _, s := range schedules {
		wanted[Weekday(s.DayOfWeek)] = true
	}
	if len(wanted) == 0 {
		return nil
	}

	var dates []time.Time
	day := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	for day.Month() == month {
		if wanted[day.Weekday()] && !day.Before(notBefore) {
			dates = append(dates, day.UTC())
		}
		day = day.AddDate(0, 0, 1)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
