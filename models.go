package main

import "encoding/json"

// Payload types for the analysis service API. Field names must match the
// service's JSON exactly.

// UploadResponse is the one response that arrives without the {data: ...}
// envelope.
type UploadResponse struct {
	SessionID string `json:"session_id"`
	Filename  string `json:"filename"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Summary struct {
	TotalMessages      int            `json:"total_messages"`
	UniqueUsers        int            `json:"unique_users"`
	DateRange          DateRange      `json:"date_range"`
	AvgMessageLength   float64        `json:"avg_message_length"`
	AvgWordsPerMessage float64        `json:"avg_words_per_message"`
	TotalURLsShared    int            `json:"total_urls_shared"`
	TopSenders         map[string]int `json:"top_senders"`
}

// ActivityBuckets are label→count mappings keyed by hour ("0".."23"),
// weekday name, or month name depending on which field they sit in.
type ActivityBuckets struct {
	Hourly  map[string]int `json:"hourly_activity"`
	Daily   map[string]int `json:"daily_activity"`
	Monthly map[string]int `json:"monthly_activity"`
}

type Activity struct {
	Overall  ActivityBuckets            `json:"overall"`
	ByPerson map[string]ActivityBuckets `json:"by_person"`
}

type TimelineBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Timeline struct {
	Overall  []TimelineBucket            `json:"overall"`
	ByPerson map[string][]TimelineBucket `json:"by_person"`
}

// Visualizations carries pre-rendered chart images as base64 strings.
// A nil field means the service did not produce that chart; that is not
// an error.
type Visualizations struct {
	WeekdayChart  *string `json:"weekday_chart,omitempty"`
	MonthChart    *string `json:"month_chart,omitempty"`
	TimelineChart *string `json:"timeline_chart,omitempty"`
	PieChart      *string `json:"pie_chart,omitempty"`
	Wordcloud     *string `json:"wordcloud,omitempty"`
}

// Content is deliberately opaque: the endpoint exists in the service API but
// its payload shape is unspecified pending product definition.
type Content = json.RawMessage

// Shaped types consumed by the chart widgets.

type ActivityPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type PersonActivitySeries struct {
	Person  string          `json:"person"`
	Hourly  []ActivityPoint `json:"hourlyData"`
	Daily   []ActivityPoint `json:"dailyData"`
	Monthly []ActivityPoint `json:"monthlyData"`
}

type PersonTimeline struct {
	Person string           `json:"person"`
	Data   []TimelineBucket `json:"data"`
}

// SenderCount is one row of the top-senders table.
type SenderCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
