package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// AnalyzerClient wraps the remote analysis service behind one typed method
// per endpoint. Every call is a single attempt: no retries, no client-side
// timeout (callers bound the request lifetime via ctx if they need to).
type AnalyzerClient struct {
	baseURL string
	httpc   *http.Client
}

// NewAnalyzerClient creates a client for the analysis service at baseURL
// (scheme://host[:port], no trailing slash).
func NewAnalyzerClient(baseURL string) *AnalyzerClient {
	return &AnalyzerClient{
		baseURL: baseURL,
		httpc:   http.DefaultClient,
	}
}

// APIError is a non-2xx response from the analysis service. Detail carries
// the server's human-readable message when the body provided one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("analysis service returned status %d", e.Status)
}

// serviceError drains a non-2xx response body looking for a {"detail": ...}
// message (the service's error shape; "error" is accepted as a legacy key).
func serviceError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Detail string `json:"detail"`
		Err    string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err == nil {
		if body.Detail != "" {
			apiErr.Detail = body.Detail
		} else if body.Err != "" {
			apiErr.Detail = body.Err
		}
	}
	return apiErr
}

// decodeEnvelope unwraps the {data: ...} envelope into out. The envelope is
// validated rather than assumed: a body without a data field is an error.
func decodeEnvelope(r io.Reader, out any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("decode envelope: response has no data field")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// getJSON performs one GET against the service and unwraps the envelope.
func (c *AnalyzerClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("call analysis service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serviceError(resp)
	}

	return decodeEnvelope(resp.Body, out)
}

// Upload streams a chat transcript to POST /upload as multipart field "file"
// and returns the raw (unenveloped) response.
func (c *AnalyzerClient) Upload(ctx context.Context, filename string, file io.Reader) (*UploadResponse, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(fmt.Errorf("create form file: %w", err))
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(fmt.Errorf("copy file: %w", err))
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", pr)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call analysis service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serviceError(resp)
	}

	var up UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&up); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	if up.SessionID == "" {
		return nil, fmt.Errorf("upload response has no session_id")
	}
	return &up, nil
}

// Summary fetches GET /summary/{id}.
func (c *AnalyzerClient) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	var s Summary
	if err := c.getJSON(ctx, "/summary/"+url.PathEscape(sessionID), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Activity fetches GET /activity/{id}.
func (c *AnalyzerClient) Activity(ctx context.Context, sessionID string) (*Activity, error) {
	var a Activity
	if err := c.getJSON(ctx, "/activity/"+url.PathEscape(sessionID), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Content fetches GET /content/{id}. The payload shape is unspecified
// upstream, so it is returned opaque. No UI route invokes this yet.
func (c *AnalyzerClient) Content(ctx context.Context, sessionID string) (Content, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/content/"+url.PathEscape(sessionID), nil, &raw); err != nil {
		return nil, err
	}
	return Content(raw), nil
}

// Timeline fetches GET /timeline/{id}?granularity=... An empty granularity
// defaults to "daily".
func (c *AnalyzerClient) Timeline(ctx context.Context, sessionID, granularity string) (*Timeline, error) {
	if granularity == "" {
		granularity = "daily"
	}
	q := url.Values{"granularity": {granularity}}

	var tl Timeline
	if err := c.getJSON(ctx, "/timeline/"+url.PathEscape(sessionID), q, &tl); err != nil {
		return nil, err
	}
	return &tl, nil
}

// Visualizations fetches GET /visualizations/{id}. chartType, when non-empty,
// is passed as the chart_type filter.
func (c *AnalyzerClient) Visualizations(ctx context.Context, sessionID, chartType string) (*Visualizations, error) {
	var q url.Values
	if chartType != "" {
		q = url.Values{"chart_type": {chartType}}
	}

	var v Visualizations
	if err := c.getJSON(ctx, "/visualizations/"+url.PathEscape(sessionID), q, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
