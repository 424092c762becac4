// Package session holds the live page: one parsed document that successive
// language switches rewrite in place.
package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/cv-online/internal/binding"
	"github.com/jonathan/cv-online/internal/fetch"
	"github.com/jonathan/cv-online/internal/types"
)

// Page is a live document shared by concurrent language switches.
// Fetches run concurrently; binding passes are serialized.
type Page struct {
	source fetch.Source
	binder *binding.Binder
	logger *zap.Logger
	// allowStale disables the sequence guard so the last response to arrive wins.
	allowStale bool

	issued atomic.Uint64

	mu      sync.Mutex
	doc     *goquery.Document
	applied uint64
	active  types.Language
}

// Option configures a Page
type Option func(*Page)

// WithLogger sets the page logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Page) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithBinder replaces the default binder.
func WithBinder(binder *binding.Binder) Option {
	return func(p *Page) {
		if binder != nil {
			p.binder = binder
		}
	}
}

// WithAllowStale lets a response that was requested earlier overwrite a newer one.
func WithAllowStale(allow bool) Option {
	return func(p *Page) {
		p.allowStale = allow
	}
}

// SwitchResult describes one language switch
type SwitchResult struct {
	ID       uuid.UUID       `json:"id"`
	Sequence uint64          `json:"sequence"`
	Language types.Language  `json:"language"`
	Stale    bool            `json:"stale"`
	Report   *binding.Report `json:"report,omitempty"`
}

// NewPage wraps doc as a live page. Duplicated contact rows are cleaned up once here.
func NewPage(doc *goquery.Document, source fetch.Source, opts ...Option) *Page {
	p := &Page{
		source: source,
		logger: zap.NewNop(),
		doc:    doc,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.binder == nil {
		p.binder = binding.NewBinder(binding.WithLogger(p.logger))
	}

	if n := binding.DedupeContacts(doc); n > 0 {
		p.logger.Debug("collapsed duplicated contact rows", zap.Int("rows", n))
	}
	return p
}

// Switch fetches the record for lang and binds it into the page.
// On a fetch or parse failure the page is left untouched and the error is returned.
// A response older than one already applied is dropped and reported as stale.
func (p *Page) Switch(ctx context.Context, lang types.Language) (*SwitchResult, error) {
	result := &SwitchResult{
		ID:       uuid.New(),
		Sequence: p.issued.Add(1),
		Language: lang,
	}
	log := p.logger.With(
		zap.String("switch_id", result.ID.String()),
		zap.Uint64("sequence", result.Sequence),
		zap.String("lang", lang.String()),
	)

	record, err := p.source.Fetch(ctx, lang)
	if err != nil {
		log.Error("failed to load language data", zap.Error(err))
		return nil, fmt.Errorf("failed to load %s content: %w", lang, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.allowStale && result.Sequence < p.applied {
		result.Stale = true
		log.Warn("dropping stale language data", zap.Uint64("applied_sequence", p.applied))
		return result, nil
	}

	result.Report = p.binder.Apply(p.doc, record, lang)
	binding.MarkActiveLanguage(p.doc, lang)
	p.applied = result.Sequence
	p.active = lang

	log.Info("language applied",
		zap.Int("applied", result.Report.Count(binding.Applied)),
		zap.Int("skipped", len(result.Report.Steps)-result.Report.Count(binding.Applied)),
	)
	return result, nil
}

// Active returns the language of the last applied switch and its sequence number.
func (p *Page) Active() (types.Language, uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active, p.applied
}

// HTML renders the current state of the page.
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fetch.RenderDocument(p.doc)
}
