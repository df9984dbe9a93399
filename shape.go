package main

import (
	"sort"
	"strconv"
)

// Shapers turn the service's label→count mappings into ordered series the
// chart widgets can consume. All of them are total: nil or empty input
// yields an empty (non-nil) result, never an error.
//
// Go maps have no enumeration order, so display order is made explicit here:
// all-numeric key sets sort numerically (hours), weekday and month names
// sort in calendar order, anything else lexicographically.

var weekdayOrder = map[string]int{
	"Monday": 0, "Tuesday": 1, "Wednesday": 2, "Thursday": 3,
	"Friday": 4, "Saturday": 5, "Sunday": 6,
	"Mon": 0, "Tue": 1, "Wed": 2, "Thu": 3, "Fri": 4, "Sat": 5, "Sun": 6,
}

var monthOrder = map[string]int{
	"January": 0, "February": 1, "March": 2, "April": 3, "May": 4, "June": 5,
	"July": 6, "August": 7, "September": 8, "October": 9, "November": 10, "December": 11,
	"Jan": 0, "Feb": 1, "Mar": 2, "Apr": 3, "Jun": 5,
	"Jul": 6, "Aug": 7, "Sep": 8, "Oct": 9, "Nov": 10, "Dec": 11,
}

// orderedLabels returns the mapping's keys in display order.
func orderedLabels(m map[string]int) []string {
	labels := make([]string, 0, len(m))
	for k := range m {
		labels = append(labels, k)
	}

	allNumeric := len(labels) > 0
	allWeekday := len(labels) > 0
	allMonth := len(labels) > 0
	for _, l := range labels {
		if _, err := strconv.Atoi(l); err != nil {
			allNumeric = false
		}
		if _, ok := weekdayOrder[l]; !ok {
			allWeekday = false
		}
		if _, ok := monthOrder[l]; !ok {
			allMonth = false
		}
	}

	switch {
	case allNumeric:
		sort.Slice(labels, func(i, j int) bool {
			a, _ := strconv.Atoi(labels[i])
			b, _ := strconv.Atoi(labels[j])
			return a < b
		})
	case allWeekday:
		sort.Slice(labels, func(i, j int) bool {
			return weekdayOrder[labels[i]] < weekdayOrder[labels[j]]
		})
	case allMonth:
		sort.Slice(labels, func(i, j int) bool {
			return monthOrder[labels[i]] < monthOrder[labels[j]]
		})
	default:
		sort.Strings(labels)
	}
	return labels
}

// activitySeries shapes one label→count mapping into an ordered series.
// Hour keys ("0".."23") get a ":00" suffix for display.
func activitySeries(m map[string]int) []ActivityPoint {
	labels := orderedLabels(m)
	series := make([]ActivityPoint, 0, len(labels))
	for _, l := range labels {
		label := l
		if _, err := strconv.Atoi(l); err == nil {
			label = l + ":00"
		}
		series = append(series, ActivityPoint{Label: label, Count: m[l]})
	}
	return series
}

// personActivitySeries shapes the by-person activity mapping, one entry per
// person sorted by name.
func personActivitySeries(byPerson map[string]ActivityBuckets) []PersonActivitySeries {
	names := make([]string, 0, len(byPerson))
	for name := range byPerson {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]PersonActivitySeries, 0, len(names))
	for _, name := range names {
		b := byPerson[name]
		out = append(out, PersonActivitySeries{
			Person:  name,
			Hourly:  activitySeries(b.Hourly),
			Daily:   activitySeries(b.Daily),
			Monthly: activitySeries(b.Monthly),
		})
	}
	return out
}

// timelineSeries copies the overall timeline; the service already orders it.
func timelineSeries(buckets []TimelineBucket) []TimelineBucket {
	out := make([]TimelineBucket, len(buckets))
	copy(out, buckets)
	return out
}

// personTimelineSeries shapes the by-person timeline mapping, one entry per
// person sorted by name.
func personTimelineSeries(byPerson map[string][]TimelineBucket) []PersonTimeline {
	names := make([]string, 0, len(byPerson))
	for name := range byPerson {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]PersonTimeline, 0, len(names))
	for _, name := range names {
		out = append(out, PersonTimeline{Person: name, Data: timelineSeries(byPerson[name])})
	}
	return out
}

// topSenders shapes the summary's sender mapping into table rows, busiest
// sender first (ties broken by name so the order is stable).
func topSenders(m map[string]int) []SenderCount {
	rows := make([]SenderCount, 0, len(m))
	for name, count := range m {
		rows = append(rows, SenderCount{Name: name, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// peakHour returns the hour bucket with the highest count, for the activity
// tab's headline badge. ok is false when the mapping is empty.
func peakHour(hourly map[string]int) (hour int, count int, ok bool) {
	best := -1
	for k, c := range hourly {
		h, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		if best == -1 || c > count || (c == count && h < best) {
			best, count = h, c
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, count, true
}
