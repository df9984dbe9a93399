package main

import (
	"context"
	"sync"
)

// Tab identifies one dashboard view, each bound to one service endpoint.
type Tab string

const (
	TabSummary        Tab = "summary"
	TabActivity       Tab = "activity"
	TabTimeline       Tab = "timeline"
	TabVisualizations Tab = "visualizations"
	// TabContent has no UI trigger; it is reachable only programmatically
	// while the content payload awaits product definition.
	TabContent Tab = "content"
)

// ParseTab maps a user-supplied tab name to a Tab. Unknown or empty names
// fall back to the summary tab; the content tab is not reachable from a URL.
func ParseTab(s string) Tab {
	switch Tab(s) {
	case TabActivity, TabTimeline, TabVisualizations:
		return Tab(s)
	default:
		return TabSummary
	}
}

// analyzerAPI is the slice of AnalyzerClient the view-state controller
// consumes. Tests substitute a fake.
type analyzerAPI interface {
	Summary(ctx context.Context, sessionID string) (*Summary, error)
	Activity(ctx context.Context, sessionID string) (*Activity, error)
	Content(ctx context.Context, sessionID string) (Content, error)
	Timeline(ctx context.Context, sessionID, granularity string) (*Timeline, error)
	Visualizations(ctx context.Context, sessionID, chartType string) (*Visualizations, error)
}

// ViewState is the dashboard controller for one session: the active tab,
// the per-tab payload slots, and the loading/error indicators. Activating a
// tab always issues exactly one fresh fetch — payloads are never cached, so
// revisiting a tab re-fetches it.
//
// Overlapping activations are resolved by a generation counter: every
// activation bumps it, and a fetch result whose generation is no longer
// current is discarded. A slow response for a tab the user already left can
// therefore never overwrite the newer tab's state.
type ViewState struct {
	mu        sync.Mutex
	sessionID string

	active      Tab
	gen         uint64
	inflight    int
	errMsg      string
	granularity string

	summary  *Summary
	activity *Activity
	timeline *Timeline
	viz      *Visualizations
	content  Content
}

// NewViewState creates the controller for a session, positioned on the
// summary tab with nothing fetched yet.
func NewViewState(sessionID string) *ViewState {
	return &ViewState{sessionID: sessionID, active: TabSummary}
}

// Activate switches to tab and fetches its payload from the service,
// blocking until the fetch completes. Each call issues exactly one request.
// For the timeline tab, granularity selects the aggregation unit (empty
// means daily).
func (v *ViewState) Activate(ctx context.Context, api analyzerAPI, tab Tab, granularity string) {
	v.mu.Lock()
	v.active = tab
	if tab == TabTimeline {
		v.granularity = granularity
	}
	v.gen++
	gen := v.gen
	v.inflight++
	v.mu.Unlock()

	var (
		summary  *Summary
		activity *Activity
		timeline *Timeline
		viz      *Visualizations
		content  Content
		err      error
	)
	switch tab {
	case TabSummary:
		summary, err = api.Summary(ctx, v.sessionID)
	case TabActivity:
		activity, err = api.Activity(ctx, v.sessionID)
	case TabTimeline:
		timeline, err = api.Timeline(ctx, v.sessionID, granularity)
	case TabVisualizations:
		viz, err = api.Visualizations(ctx, v.sessionID, "")
	case TabContent:
		content, err = api.Content(ctx, v.sessionID)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.inflight--

	// A newer activation superseded this fetch; drop the result.
	if gen != v.gen {
		return
	}

	if err != nil {
		v.errMsg = err.Error()
		return
	}
	v.errMsg = ""

	// Wholesale replacement of the tab's slot; never a partial update.
	switch tab {
	case TabSummary:
		v.summary = summary
	case TabActivity:
		v.activity = activity
	case TabTimeline:
		v.timeline = timeline
	case TabVisualizations:
		v.viz = viz
	case TabContent:
		v.content = content
	}
}

// ActiveTab returns the currently selected tab.
func (v *ViewState) ActiveTab() Tab {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

// Loading reports whether any fetch is still outstanding.
func (v *ViewState) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inflight > 0
}

// Err returns the error message from the most recent completed activation,
// or "" when it succeeded.
func (v *ViewState) Err() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

// Granularity returns the timeline granularity of the latest timeline
// activation ("" until the timeline tab has been visited).
func (v *ViewState) Granularity() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.granularity
}

// Summary returns the summary slot (nil until fetched).
func (v *ViewState) Summary() *Summary {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.summary
}

// Activity returns the activity slot (nil until fetched).
func (v *ViewState) Activity() *Activity {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.activity
}

// Timeline returns the timeline slot (nil until fetched).
func (v *ViewState) Timeline() *Timeline {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.timeline
}

// Visualizations returns the visualizations slot (nil until fetched).
func (v *ViewState) Visualizations() *Visualizations {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.viz
}

// Content returns the content slot (nil until fetched programmatically).
func (v *ViewState) Content() Content {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.content
}
