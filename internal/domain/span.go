package domain

import (
	"context"
	"encoding/json"
	"time"
)

const ContextProfileKey = "performanceProfile"

// Profile is an ordered list of timing spans for one request or job run.
// It is what LatencyTrackingRepository persists.
type Profile struct {
	Spans   []*Span
	startTs time.Time
	TotalMs *int64
}

type Span struct {
	Name       string    `json:"name"`
	startTs    time.Time `json:"-"`
	subProfile *Profile  `json:"-"`

	SubSpans []*Span `json:"subSpans,omitempty"`
	Elapsed  *int64  `json:"elapsed"`
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}

	return newProfile, newProfile.End
}

func GetProfile(ctx context.Context) (profile *Profile, endProfile func()) {
	profile = ctx.Value(ContextProfileKey).(*Profile)
	return profile, profile.End
}

func (p *Profile) End() {
	t := time.Since(p.startTs).Milliseconds()
	if p.TotalMs == nil {
		p.TotalMs = &t
	}
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
	if s.subProfile != nil {
		s.SubSpans = s.subProfile.Spans
	}
}

// NewSpan builds a detached span. Callers that share a profile across
// goroutines create spans here and attach them with AddSpan.
func NewSpan(name string) (*Span, func()) {
	newSpan := &Span{
		Name:    name,
		startTs: time.Now(),
	}
	return newSpan, newSpan.End
}

func (p *Profile) AddSpan(s *Span) {
	p.Spans = append(p.Spans, s)
}

// StartNewSpan ends the last span and begins a new one.
// not thread safe
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan, endSpan = NewSpan(name)
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, endSpan
}

func (s *Span) NewSubProfile() (*Profile, func()) {
	if s.subProfile != nil {
		panic("attempting to override existing subprofile")
	}
	newProfile, end := NewProfile()
	s.subProfile = newProfile
	return newProfile, end
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	bytes, err := json.Marshal(p.Spans)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

func NewCtxWithSubProfile(ctx context.Context, parentSpan *Span) context.Context {
	newProfile, _ := parentSpan.NewSubProfile()
	return context.WithValue(ctx, ContextProfileKey, newProfile)
}
