package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSummary_UnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/summary/abc" {
			t.Errorf("path = %q, want /summary/abc", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"total_messages":42,"unique_users":2,"top_senders":{"Alice":30,"Bob":12}}}`)
	}))
	defer srv.Close()

	c := NewAnalyzerClient(srv.URL)
	sum, err := c.Summary(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.TotalMessages != 42 || sum.UniqueUsers != 2 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.TopSenders["Alice"] != 30 {
		t.Errorf("top_senders = %v", sum.TopSenders)
	}
}

func TestSummary_MissingEnvelopeIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"total_messages":42}`)
	}))
	defer srv.Close()

	c := NewAnalyzerClient(srv.URL)
	if _, err := c.Summary(context.Background(), "abc"); err == nil {
		t.Fatal("expected error for response without data envelope")
	}
}

func TestErrorResponse_DetailPropagated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"detail":"bad file"}`)
	}))
	defer srv.Close()

	c := NewAnalyzerClient(srv.URL)
	_, err := c.Summary(context.Background(), "abc")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.Status)
	}
	if apiErr.Detail != "bad file" {
		t.Errorf("detail = %q, want %q", apiErr.Detail, "bad file")
	}
	if apiErr.Error() != "bad file" {
		t.Errorf("Error() = %q, want the detail string", apiErr.Error())
	}
}

func TestErrorResponse_NoDetailGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `oops`)
	}))
	defer srv.Close()

	c := NewAnalyzerClient(srv.URL)
	_, err := c.Summary(context.Background(), "abc")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Detail != "" {
		t.Errorf("detail = %q, want empty", apiErr.Detail)
	}
	if want := "analysis service returned status 500"; apiErr.Error() != want {
		t.Errorf("Error() = %q, want %q", apiErr.Error(), want)
	}
}

func TestTimeline_GranularityDefaultsToDaily(t *testing.T) {
	var gotGranularity string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotGranularity = r.URL.Query().Get("granularity")
		io.WriteString(w, `{"data":{"overall":[{"date":"2023-01-01","count":5}],"by_person":{}}}`)
	}))
	defer srv.Close()

	c := NewAnalyzerClient(srv.URL)
	tl, err := c.Timeline(context.Background(), "abc", "")
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if gotGranularity != "daily" {
		t.Errorf("granularity = %q, want daily", gotGranularity)
	}
	if len(tl.Overall) != 1 || tl.Overall[0].Count != 5 {
		t.Errorf("timeline = %+v", tl)
	}

	if _, err := c.Timeline(context.Background(), "abc", "monthly"); err != nil {
		t.Fatalf("Timeline monthly: %v", err)
	}
	if gotGranularity != "monthly" {
		t.Errorf("granularity = %q, want monthly", gotGranularity)
	}
}

func TestVisualizations_ChartTypeFilter(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"data":{"wordcloud":"aGVsbG8="}}`)
	}))
	defer srv.Close()

	c := NewAnalyzerClient(srv.URL)

	viz, err := c.Visualizations(context.Background(), "abc", "")
	if err != nil {
		t.Fatalf("Visualizations: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("query without filter = %q, want empty", gotQuery)
	}
	if viz.Wordcloud == nil || *viz.Wordcloud != "aGVsbG8=" {
		t.Errorf("wordcloud = %v", viz.Wordcloud)
	}
	if viz.PieChart != nil {
		t.Error("absent chart decoded as present")
	}

	if _, err := c.Visualizations(context.Background(), "abc", "wordcloud"); err != nil {
		t.Fatalf("Visualizations filtered: %v", err)
	}
	if gotQuery != "chart_type=wordcloud" {
		t.Errorf("query with filter = %q, want chart_type=wordcloud", gotQuery)
	}
}

func TestContent_ReturnsRawPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"anything":["goes",1]}}`)
	}))
	defer srv.Close()

	c := NewAnalyzerClient(srv.URL)
	content, err := c.Content(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Content: %v", err)
	}
	if string(content) != `{"anything":["goes",1]}` {
		t.Errorf("content = %s", content)
	}
}

func TestUpload_SendsMultipartAndDecodesRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/upload" {
			t.Errorf("%s %s, want POST /upload", r.Method, r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "chat.txt" {
			t.Errorf("filename = %q, want chat.txt", header.Filename)
		}
		body, _ := io.ReadAll(file)
		if string(body) != "hello chat" {
			t.Errorf("file body = %q", body)
		}
		// Upload responds without the data envelope.
		io.WriteString(w, `{"session_id":"abc","filename":"chat.txt"}`)
	}))
	defer srv.Close()

	c := NewAnalyzerClient(srv.URL)
	up, err := c.Upload(context.Background(), "chat.txt", strings.NewReader("hello chat"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if up.SessionID != "abc" || up.Filename != "chat.txt" {
		t.Errorf("upload response = %+v", up)
	}
}

func TestUpload_MissingSessionIDIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	c := NewAnalyzerClient(srv.URL)
	if _, err := c.Upload(context.Background(), "chat.txt", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for upload response without session_id")
	}
}

func TestUpload_ErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"detail":"unsupported chat format"}`)
	}))
	defer srv.Close()

	c := NewAnalyzerClient(srv.URL)
	_, err := c.Upload(context.Background(), "chat.txt", strings.NewReader("x"))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Detail != "unsupported chat format" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
}

func TestErrorResponse_LegacyErrorKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"parser exploded"}`)
	}))
	defer srv.Close()

	c := NewAnalyzerClient(srv.URL)
	_, err := c.Activity(context.Background(), "abc")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Detail != "parser exploded" {
		t.Errorf("detail = %q, want %q", apiErr.Detail, "parser exploded")
	}
}
