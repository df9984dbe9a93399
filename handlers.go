package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// analyzerService is everything the handlers need from the analysis service.
// AnalyzerClient implements it; tests substitute a fake.
type analyzerService interface {
	analyzerAPI
	Upload(ctx context.Context, filename string, file io.Reader) (*UploadResponse, error)
}

// Server holds the analysis service client and the session registry,
// providing HTTP handlers for every route the dashboard serves.
type Server struct {
	svc       analyzerService
	sessions  *SessionRegistry
	publicURL string
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: %v", err)
	}
}

// mustJS marshals v for embedding in an inline <script> block. The shaped
// types contain nothing that can fail to marshal.
func mustJS(v interface{}) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("mustJS: %v", err)
		return template.JS("null")
	}
	return template.JS(b)
}

// uploadErrorMessage maps an upload failure to the string shown inline on
// the upload page: the service's detail when it sent one, else a generic
// fallback.
func uploadErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "Upload failed"
}

const maxUploadBytes = 50 << 20 // 50 MB chat export ceiling

// ---------------------------------------------------------------------------
// 1. GET /health
// ---------------------------------------------------------------------------

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"ok":        true,
		"sessions":  s.sessions.Len(),
		"timestamp": time.Now().Unix(),
	})
}

// ---------------------------------------------------------------------------
// 2. GET / — upload page
// ---------------------------------------------------------------------------

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderUpload(w, http.StatusOK, "")
}

func (s *Server) renderUpload(w http.ResponseWriter, status int, errMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := uploadTmpl.Execute(w, uploadView{Error: errMsg}); err != nil {
		log.Printf("render upload page: %v", err)
	}
}

// ---------------------------------------------------------------------------
// 3. POST /upload — forward the transcript to the analysis service
// ---------------------------------------------------------------------------

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		// The form disables submit until a file is picked, so this only
		// happens for hand-crafted requests.
		s.renderUpload(w, http.StatusBadRequest, "No file selected")
		return
	}
	defer file.Close()

	up, err := s.svc.Upload(r.Context(), header.Filename, file)
	if err != nil {
		log.Printf("upload %q: %v", header.Filename, err)
		s.renderUpload(w, http.StatusBadGateway, uploadErrorMessage(err))
		return
	}

	sess := s.sessions.Add(up.SessionID, up.Filename)
	log.Printf("session %s registered for %q", sess.ID, truncate(sess.Filename, 64))

	http.Redirect(w, r, "/dashboard?session_id="+url.QueryEscape(sess.ID), http.StatusSeeOther)
}

// ---------------------------------------------------------------------------
// 4. GET /dashboard — tabbed analytics view
// ---------------------------------------------------------------------------

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sess, ok := s.sessions.Get(q.Get("session_id"))
	if !ok {
		s.renderUpload(w, http.StatusNotFound, "Session not found — upload a chat export to start a new one")
		return
	}

	tab := ParseTab(q.Get("tab"))
	granularity := q.Get("granularity")

	// Every page load is a tab activation: exactly one fresh fetch, even for
	// a previously visited tab.
	sess.State.Activate(r.Context(), s.svc, tab, granularity)

	view := s.buildDashboardView(sess, tab, q)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, view); err != nil {
		log.Printf("render dashboard: %v", err)
	}
}

// ---------------------------------------------------------------------------
// 5. GET /qr — deep link QR code
// ---------------------------------------------------------------------------

func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session_id")
	if _, ok := s.sessions.Get(id); !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	png, err := sessionQR(s.publicURL, id)
	if err != nil {
		http.Error(w, fmt.Sprintf("generate QR: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// ---------------------------------------------------------------------------
// View models — everything the templates need, pre-formatted
// ---------------------------------------------------------------------------

type uploadView struct {
	Error string
}

type statCard struct {
	Label string
	Value string
}

type barChart struct {
	ID     string
	Title  string
	Series template.JS
}

type personCharts struct {
	Person string
	Charts []barChart
}

type dashboardView struct {
	SessionID   string
	Filename    string
	UploadedAgo string
	Tab         Tab
	Err         string
	QRLink      string

	// Summary tab
	Cards   []statCard
	Senders []SenderCount

	// Activity tab
	PeakBadge      string
	OverallCharts  []barChart
	PersonActivity []personCharts

	// Timeline tab
	Granularity    string
	TimelineSeries template.JS
	PersonTimeline template.JS

	// Visualizations tab
	Pager *Paginator
}

func (s *Server) buildDashboardView(sess *Session, tab Tab, q url.Values) *dashboardView {
	st := sess.State
	view := &dashboardView{
		SessionID:   sess.ID,
		Filename:    sess.Filename,
		UploadedAgo: formatDuration(time.Since(sess.UploadedAt).Seconds()),
		Tab:         tab,
		Err:         st.Err(),
		QRLink:      "/qr?session_id=" + url.QueryEscape(sess.ID),
	}

	switch tab {
	case TabSummary:
		if sum := st.Summary(); sum != nil {
			view.Cards = summaryCards(sum)
			view.Senders = topSenders(sum.TopSenders)
		}

	case TabActivity:
		if act := st.Activity(); act != nil {
			if hour, count, ok := peakHour(act.Overall.Hourly); ok {
				view.PeakBadge = fmt.Sprintf("Peak: %d:00 (%s, %s messages)",
					hour, timePeriodLabel(hour), formatCount(count))
			}
			view.OverallCharts = []barChart{
				{ID: "hourly", Title: "Messages by Hour", Series: mustJS(activitySeries(act.Overall.Hourly))},
				{ID: "daily", Title: "Messages by Weekday", Series: mustJS(activitySeries(act.Overall.Daily))},
				{ID: "monthly", Title: "Messages by Month", Series: mustJS(activitySeries(act.Overall.Monthly))},
			}
			for i, p := range personActivitySeries(act.ByPerson) {
				view.PersonActivity = append(view.PersonActivity, personCharts{
					Person: p.Person,
					Charts: []barChart{
						{ID: fmt.Sprintf("p%d-hourly", i), Title: "By Hour", Series: mustJS(p.Hourly)},
						{ID: fmt.Sprintf("p%d-daily", i), Title: "By Weekday", Series: mustJS(p.Daily)},
						{ID: fmt.Sprintf("p%d-monthly", i), Title: "By Month", Series: mustJS(p.Monthly)},
					},
				})
			}
		}

	case TabTimeline:
		view.Granularity = st.Granularity()
		if view.Granularity == "" {
			view.Granularity = "daily"
		}
		if tl := st.Timeline(); tl != nil {
			view.TimelineSeries = mustJS(timelineSeries(tl.Overall))
			view.PersonTimeline = mustJS(personTimelineSeries(tl.ByPerson))
		}

	case TabVisualizations:
		page := 1
		if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
			page = p
		}
		view.Pager = NewPaginator(chartImages(st.Visualizations()), page)
	}

	return view
}

// summaryCards pre-formats the summary counters for the stat-card widgets;
// the cards themselves render label and value verbatim.
func summaryCards(sum *Summary) []statCard {
	return []statCard{
		{Label: "Total Messages", Value: formatCount(sum.TotalMessages)},
		{Label: "Participants", Value: formatCount(sum.UniqueUsers)},
		{Label: "First Message", Value: sum.DateRange.Start},
		{Label: "Last Message", Value: sum.DateRange.End},
		{Label: "Avg Message Length", Value: fmt.Sprintf("%.1f chars", sum.AvgMessageLength)},
		{Label: "Avg Words / Message", Value: fmt.Sprintf("%.1f", sum.AvgWordsPerMessage)},
		{Label: "Links Shared", Value: formatCount(sum.TotalURLsShared)},
	}
}
