package main

import "html/template"

// ChartImage is one pageable item on the visualizations tab.
type ChartImage struct {
	Title string
	// DataURI is the image ready for an <img src>, built from the service's
	// base64 payload. Typed template.URL because data: is not a scheme
	// html/template trusts on its own.
	DataURI template.URL
}

// chartImages extracts the charts actually present in a Visualizations
// payload, in fixed display order. Absent charts are simply skipped.
func chartImages(v *Visualizations) []ChartImage {
	if v == nil {
		return []ChartImage{}
	}

	candidates := []struct {
		title string
		data  *string
	}{
		{"Messages by Weekday", v.WeekdayChart},
		{"Messages by Month", v.MonthChart},
		{"Message Timeline", v.TimelineChart},
		{"Sender Share", v.PieChart},
		{"Word Cloud", v.Wordcloud},
	}

	images := make([]ChartImage, 0, len(candidates))
	for _, c := range candidates {
		if c.data == nil || *c.data == "" {
			continue
		}
		images = append(images, ChartImage{Title: c.title, DataURI: template.URL(imageDataURI(*c.data))})
	}
	return images
}

// Paginator pages through chart images one at a time. Pages are one-based;
// the current page is clamped to [1, total] (and pinned to 1 when empty).
type Paginator struct {
	Items   []ChartImage
	Current int
}

// NewPaginator builds a paginator positioned at the requested page.
func NewPaginator(items []ChartImage, page int) *Paginator {
	p := &Paginator{Items: items, Current: page}
	if p.Current < 1 {
		p.Current = 1
	}
	if total := p.Total(); p.Current > total && total > 0 {
		p.Current = total
	}
	return p
}

// Total is the page count: one item per page.
func (p *Paginator) Total() int {
	return len(p.Items)
}

// Item returns the chart on the current page, or nil when there are none.
func (p *Paginator) Item() *ChartImage {
	if len(p.Items) == 0 {
		return nil
	}
	return &p.Items[p.Current-1]
}

// HasPrev reports whether a previous page exists (Previous is disabled at
// page 1).
func (p *Paginator) HasPrev() bool {
	return p.Current > 1
}

// HasNext reports whether a next page exists (Next is disabled at the last
// page).
func (p *Paginator) HasNext() bool {
	return p.Current < p.Total()
}

// Prev returns the previous page number, clamped to 1.
func (p *Paginator) Prev() int {
	if p.Current <= 1 {
		return 1
	}
	return p.Current - 1
}

// Next returns the next page number, clamped to the last page.
func (p *Paginator) Next() int {
	if p.Current >= p.Total() {
		return p.Current
	}
	return p.Current + 1
}
