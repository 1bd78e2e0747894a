// internal/search/service.go
package search

import (
	"context"
	"strings"
	"time"

	"trimly-search/internal/common/logger"
	"trimly-search/internal/common/metrics"
	"trimly-search/internal/models"
	"trimly-search/internal/search/engine"
	"trimly-search/internal/search/interpreter"

	"github.com/google/uuid"
)

// Interpreter is the free-text interpretation boundary. The real
// implementation wraps the GenAI HTTP call; tests substitute stubs.
type Interpreter interface {
	Interpret(ctx context.Context, query string) (*interpreter.Result, error)
}

// InterpretationCache stores recent interpretation results keyed by query
// text. Optional; a nil cache means every query hits the interpreter.
type InterpretationCache interface {
	Get(ctx context.Context, query string) (*interpreter.Result, bool)
	Put(ctx context.Context, query string, result *interpreter.Result)
}

// Service is the caller-facing search entry point. It owns the degraded
// paths: interpreter failures and clarifications never propagate as errors,
// they fall back to manual-only evaluation over the same catalog snapshot.
type Service struct {
	interpreter Interpreter
	cache       InterpretationCache
	logger      logger.Logger
}

func NewService(interp Interpreter, cache InterpretationCache, log logger.Logger) *Service {
	return &Service{
		interpreter: interp,
		cache:       cache,
		logger:      log.WithFields(map[string]interface{}{"component": "search-service"}),
	}
}

// Search runs one search invocation against the catalog snapshot. The
// catalog and filters are never mutated; each call is independent, so a
// newer invocation simply supersedes an older one at the presentation layer.
func (s *Service) Search(ctx context.Context, catalog []models.ShopCatalogEntry, query string, manual models.ManualFilters) *Response {
	start := time.Now()

	resp := &Response{SearchID: uuid.New().String()}
	log := s.logger.WithFields(map[string]interface{}{"searchId": resp.SearchID})

	var ai models.ParsedFilters
	var aiSummary string
	aiApplied := false

	query = strings.TrimSpace(query)
	if query != "" {
		result, err := s.interpret(ctx, query)
		switch {
		case err != nil:
			// Degrade to manual filters only; the failure is surfaced on the
			// response, never thrown.
			resp.AISearchFailed = true
			metrics.InterpreterFailures.WithLabelValues(errorCodeOf(err)).Inc()
			log.WithError(err).Warn("interpretation failed, falling back to manual filters", map[string]interface{}{
				"queryLength": len(query),
			})
		case result.NeedsClarification():
			// Short-circuit: no AI-derived narrowing is applied at all.
			resp.ClarificationNeeded = result.ClarificationNeeded
			metrics.ClarificationsRequested.Inc()
		default:
			ai = result.ParsedFilters
			aiSummary = result.SearchSummary
			aiApplied = true
		}
	}

	criteria := engine.MergeCriteria(ai, manual)
	resp.Results = engine.Evaluate(catalog, criteria)

	manualSet := !manual.IsEmpty()
	resp.Summary = composeSummary(aiSummary, aiApplied, resp.AISearchFailed, manualSet)

	mode := searchMode(aiApplied, manualSet)
	duration := time.Since(start)
	metrics.SearchesTotal.WithLabelValues(mode).Inc()
	metrics.SearchDuration.WithLabelValues(mode).Observe(duration.Seconds())
	metrics.SearchResultCount.Observe(float64(len(resp.Results)))

	log.Info("search completed", map[string]interface{}{
		"mode":           mode,
		"catalogSize":    len(catalog),
		"resultCount":    len(resp.Results),
		"aiSearchFailed": resp.AISearchFailed,
		"clarification":  resp.ClarificationNeeded != "",
		"durationMs":     duration.Milliseconds(),
	})

	return resp
}

// interpret consults the cache before making a live call. Cache outcomes are
// recorded but never fail the search.
func (s *Service) interpret(ctx context.Context, query string) (*interpreter.Result, error) {
	if s.cache != nil {
		if result, ok := s.cache.Get(ctx, query); ok {
			metrics.InterpretationCacheHits.WithLabelValues("hit").Inc()
			return result, nil
		}
		metrics.InterpretationCacheHits.WithLabelValues("miss").Inc()
	}

	result, err := s.interpreter.Interpret(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Put(ctx, query, result)
	}

	return result, nil
}

func searchMode(aiApplied, manualSet bool) string {
	switch {
	case aiApplied && manualSet:
		return "combined"
	case aiApplied:
		return "ai"
	case manualSet:
		return "manual"
	default:
		return "unfiltered"
	}
}

func errorCodeOf(err error) string {
	if err == nil {
		return "NONE"
	}
	msg := err.Error()
	if idx := strings.IndexByte(msg, ':'); idx > 0 {
		return msg[:idx]
	}
	return msg
}
