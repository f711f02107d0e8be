// internal/resolver/service.go
package resolver

import (
	"context"
	"errors"
	"time"

	"github.com/jameeshbx/trekking-b2b-sub001/internal/catalog"
	commonerrors "github.com/jameeshbx/trekking-b2b-sub001/internal/common/errors"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/logger"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/metrics"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/observability"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/enquiry"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/itinerary"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/match"
)

// Service is the resolution orchestrator. Each call is a stateless
// computation over the read-only catalog; the only I/O is the best-effort
// enquiry lookup.
type Service struct {
	config    *Config
	store     *catalog.Store
	matcher   *match.Matcher
	enquiries enquiry.LocationSource // nil when no collaborator is configured
	obs       *observability.Observability
	logger    logger.Logger
}

func NewService(
	config *Config,
	store *catalog.Store,
	matcher *match.Matcher,
	enquiries enquiry.LocationSource,
	obs *observability.Observability,
	log logger.Logger,
) *Service {
	return &Service{
		config:    config,
		store:     store,
		matcher:   matcher,
		enquiries: enquiries,
		obs:       obs,
		logger:    log.WithFields(map[string]interface{}{"component": "resolver"}),
	}
}

// resolution is a tagged strategy result.
type resolution struct {
	templateID string
	source     string
}

// Resolve runs the ordered strategy chain and assembles the itinerary for the
// first strategy that yields a template. The matcher's always-resolve default
// only applies when a location string was actually supplied; exhausting every
// strategy is a structured not-found, never a silent default.
func (s *Service) Resolve(ctx context.Context, req *Request) (*Response, error) {
	started := time.Now()

	strategies := []func(context.Context, *Request) (resolution, bool){
		s.resolveExplicit,
		s.resolveLocation,
		s.resolveEnquiry,
		s.resolveEnquiryReference,
	}

	for _, strategy := range strategies {
		res, ok := strategy(ctx, req)
		if !ok {
			continue
		}

		resp, err := s.assemble(req, res)
		if err != nil {
			metrics.ResolutionsTotal.WithLabelValues("error", res.source).Inc()
			s.recordOutcome(ctx, started, "error")
			return nil, err
		}

		metrics.ResolutionsTotal.WithLabelValues("success", res.source).Inc()
		metrics.ResolutionDuration.WithLabelValues(res.source).Observe(time.Since(started).Seconds())
		s.recordOutcome(ctx, started, "success")
		return resp, nil
	}

	metrics.ResolutionsTotal.WithLabelValues("not_found", "none").Inc()
	s.recordOutcome(ctx, started, "not_found")
	return nil, commonerrors.NewTemplateNotFoundError(
		"no strategy resolved a template from the supplied input")
}

func (s *Service) resolveExplicit(_ context.Context, req *Request) (resolution, bool) {
	if req.QuoteID == "" {
		return resolution{}, false
	}
	if !s.store.Has(req.QuoteID) {
		s.logger.Debug("explicit template id not in catalog", map[string]interface{}{
			"quoteId": req.QuoteID,
		})
		return resolution{}, false
	}
	return resolution{templateID: req.QuoteID, source: MatchExplicit}, true
}

func (s *Service) resolveLocation(_ context.Context, req *Request) (resolution, bool) {
	if req.Location == "" {
		return resolution{}, false
	}
	// Location matching is total: unknown places get the default template.
	return resolution{templateID: s.matcher.Resolve(req.Location), source: MatchLocation}, true
}

func (s *Service) resolveEnquiry(ctx context.Context, req *Request) (resolution, bool) {
	if req.EnquiryID == "" || s.enquiries == nil {
		return resolution{}, false
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.config.EnquiryTimeout)
	defer cancel()

	location, err := s.enquiries.GetEnquiryLocation(lookupCtx, req.EnquiryID)
	if err != nil {
		reason := "error"
		switch {
		case errors.Is(err, enquiry.ErrNotFound):
			reason = "not_found"
		case errors.Is(err, context.DeadlineExceeded):
			reason = "timeout"
		}
		metrics.EnquiryLookupFailures.WithLabelValues(reason).Inc()
		s.logger.Warn("enquiry lookup degraded to reference scan", map[string]interface{}{
			"enquiryId": req.EnquiryID,
			"reason":    reason,
			"error":     err.Error(),
		})
		return resolution{}, false
	}

	return resolution{templateID: s.matcher.Resolve(location), source: MatchEnquiry}, true
}

// resolveEnquiryReference is the last-ditch fallback: match keyword fragments
// against the raw enquiry identifier itself.
func (s *Service) resolveEnquiryReference(_ context.Context, req *Request) (resolution, bool) {
	if req.EnquiryID == "" {
		return resolution{}, false
	}
	id, ok := s.matcher.Scan(req.EnquiryID)
	if !ok {
		return resolution{}, false
	}
	return resolution{templateID: id, source: MatchEnquiryRef}, true
}

func (s *Service) assemble(req *Request, res resolution) (*Response, error) {
	raw, ok := s.store.Get(res.templateID)
	if !ok {
		// Matcher values are checked against the catalog at startup, so this
		// indicates a wiring bug rather than caller error.
		return nil, commonerrors.NewTemplateNotFoundError("resolved id missing from catalog: " + res.templateID)
	}

	tmpl, err := catalog.ParseTemplate(res.templateID, raw)
	if err != nil {
		s.logger.Error("catalog integrity fault", map[string]interface{}{
			"templateId": res.templateID,
			"error":      err.Error(),
		})
		return nil, commonerrors.NewMalformedTemplateError(res.templateID, err)
	}

	start := tmpl.Header.StartDate
	if req.StartDate != "" {
		// Validated upstream; re-parse is safe.
		if override, parseErr := time.Parse(startDateLayout, req.StartDate); parseErr == nil {
			start = override
		}
	}

	return &Response{
		QuoteID:         tmpl.ID,
		Name:            tmpl.Header.Name,
		Days:            tmpl.Header.Days,
		Nights:          tmpl.Header.Nights,
		StartDate:       start.Format(itinerary.DateLayout),
		CostINR:         tmpl.Header.CostINR,
		CostUSD:         tmpl.Header.CostUSD,
		Guests:          tmpl.Header.Guests,
		Adults:          tmpl.Header.Adults,
		Kids:            tmpl.Header.Kids,
		DailyItinerary:  itinerary.Project(tmpl.Header.Name, start, tmpl.Rows),
		LocationMatched: res.source,
	}, nil
}

func (s *Service) recordOutcome(ctx context.Context, started time.Time, outcome string) {
	if s.obs == nil {
		return
	}
	s.obs.RecordResolution(ctx, outcome)
	s.obs.RecordResolutionDuration(ctx, time.Since(started), outcome)
}
