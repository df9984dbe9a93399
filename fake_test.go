package main

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
)

// fakeAnalyzer is an in-memory analyzerService for handler and view-state
// tests. Responses are fixed per endpoint; calls are counted; an optional
// gate channel lets a test hold a fetch open to exercise overlap handling.
type fakeAnalyzer struct {
	mu sync.Mutex

	uploadResp *UploadResponse
	uploadErr  error
	summary    *Summary
	summaryErr error
	activity   *Activity
	timeline   *Timeline
	viz        *Visualizations
	content    Content
	err        error // returned by all dashboard endpoints when set

	uploadCalls   atomic.Int64
	summaryCalls  atomic.Int64
	activityCalls atomic.Int64
	timelineCalls atomic.Int64
	vizCalls      atomic.Int64
	contentCalls  atomic.Int64

	lastGranularity string
	lastChartType   string

	// summaryGate, when non-nil, blocks Summary until the channel is closed.
	summaryGate chan struct{}
}

func (f *fakeAnalyzer) Upload(ctx context.Context, filename string, file io.Reader) (*UploadResponse, error) {
	f.uploadCalls.Add(1)
	io.Copy(io.Discard, file)
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return f.uploadResp, nil
}

func (f *fakeAnalyzer) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	f.summaryCalls.Add(1)
	f.mu.Lock()
	gate := f.summaryGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	return f.summary, nil
}

func (f *fakeAnalyzer) Activity(ctx context.Context, sessionID string) (*Activity, error) {
	f.activityCalls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.activity, nil
}

func (f *fakeAnalyzer) Content(ctx context.Context, sessionID string) (Content, error) {
	f.contentCalls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.content, nil
}

func (f *fakeAnalyzer) Timeline(ctx context.Context, sessionID, granularity string) (*Timeline, error) {
	f.timelineCalls.Add(1)
	f.mu.Lock()
	f.lastGranularity = granularity
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.timeline, nil
}

func (f *fakeAnalyzer) Visualizations(ctx context.Context, sessionID, chartType string) (*Visualizations, error) {
	f.vizCalls.Add(1)
	f.mu.Lock()
	f.lastChartType = chartType
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.viz, nil
}

func strPtr(s string) *string { return &s }

func testSummary() *Summary {
	return &Summary{
		TotalMessages:      12345,
		UniqueUsers:        3,
		DateRange:          DateRange{Start: "2023-01-01", End: "2023-12-31"},
		AvgMessageLength:   42.5,
		AvgWordsPerMessage: 8.2,
		TotalURLsShared:    17,
		TopSenders:         map[string]int{"Alice": 7000, "Bob": 5000, "Carol": 345},
	}
}

func testActivity() *Activity {
	return &Activity{
		Overall: ActivityBuckets{
			Hourly:  map[string]int{"0": 3, "5": 1, "22": 9},
			Daily:   map[string]int{"Monday": 4, "Friday": 6},
			Monthly: map[string]int{"January": 10, "March": 2},
		},
		ByPerson: map[string]ActivityBuckets{
			"Alice": {Hourly: map[string]int{"9": 5}},
			"Bob":   {Hourly: map[string]int{"21": 2}},
		},
	}
}

func testTimeline() *Timeline {
	return &Timeline{
		Overall: []TimelineBucket{{Date: "2023-01-01", Count: 5}, {Date: "2023-01-02", Count: 8}},
		ByPerson: map[string][]TimelineBucket{
			"Alice": {{Date: "2023-01-01", Count: 3}},
			"Bob":   {{Date: "2023-01-02", Count: 8}},
		},
	}
}
