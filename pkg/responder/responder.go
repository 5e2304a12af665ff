package responder

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher

// Enricher pulls full article text for deep review of an emergency
type Enricher interface {
	Enrich(ctx context.Context, url string) (string, error)
}

// Responder turns detected emergencies into bounded-time response plans.
// Each emergency is handled independently: one handler's failure never
// blocks or cancels another's, and failures surface as an error-response
// variant rather than an error.
type Responder struct {
	enricher Enricher
	budget   time.Duration
}

// New creates a responder. The enricher is optional; without one the
// responder works from the feed content alone.
func New(enricher Enricher, budget time.Duration) *Responder {
	if budget == 0 {
		budget = 30 * time.Second
	}
	return &Responder{enricher: enricher, budget: budget}
}

// responseActions maps emergency categories to immediate action lists
var responseActions = map[domain.EmergencyCategory]struct {
	responseType string
	actions      []string
}{
	domain.CategoryMonetaryPolicy: {"policy_response", []string{"review rate-sensitive positions", "watch central bank statement", "track currency pairs"}},
	domain.CategoryEconomicData:   {"data_response", []string{"compare against consensus", "watch initial market reaction"}},
	domain.CategoryMarketCrisis:   {"crisis_response", []string{"reduce exposure", "widen stops", "monitor liquidity"}},
	domain.CategoryGeopolitical:   {"geopolitical_response", []string{"check safe-haven flows", "monitor affected regions"}},
	domain.CategoryTechnical:      {"technical_response", []string{"verify levels on higher timeframe", "watch for confirmation"}},
	domain.CategoryGeneral:        {"general_response", []string{"monitor for follow-up reports"}},
}

// HandleAll resolves several simultaneous emergencies concurrently. Results
// come back in input order; a failed handler fills its own slot with an
// error response and leaves the others untouched.
func (r *Responder) HandleAll(ctx context.Context, infos []domain.EmergencyInformation) []domain.EmergencyResult {
	results := make([]domain.EmergencyResult, len(infos))

	var g errgroup.Group
	for i, info := range infos {
		g.Go(func() error {
			results[i] = r.Handle(ctx, info)
			return nil // failures live in the result, never cancel siblings
		})
	}
	_ = g.Wait()
	return results
}

// Handle resolves one emergency within the hard execution budget. Work that
// exceeds the budget still returns a response, flagged as still-executing
// rather than completed.
func (r *Responder) Handle(ctx context.Context, info domain.EmergencyInformation) domain.EmergencyResult {
	started := time.Now()

	done := make(chan domain.EmergencyResponse, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- domain.EmergencyResponse{
					Status:  domain.ResponseFailed,
					Elapsed: time.Since(started),
					Error:   fmt.Sprintf("response generation panic: %v", p),
				}
			}
		}()
		done <- r.generate(ctx, info, started)
	}()

	var response domain.EmergencyResponse
	select {
	case response = <-done:
	case <-time.After(r.budget):
		plan := responseActions[info.Classification.Category]
		response = domain.EmergencyResponse{
			ResponseType:     plan.responseType,
			ImmediateActions: plan.actions,
			Status:           domain.ResponseExecuting,
			Elapsed:          time.Since(started),
		}
		lgr.Printf("[WARN] emergency response for %s exceeded %v budget, returning as still-executing", info.SourceID, r.budget)
	case <-ctx.Done():
		response = domain.EmergencyResponse{
			Status:  domain.ResponseFailed,
			Elapsed: time.Since(started),
			Error:   ctx.Err().Error(),
		}
	}

	return domain.EmergencyResult{
		Emergency:        info,
		Response:         response,
		ImpactAssessment: impactAssessment(info),
		FollowUpRequired: followUpRequired(info, response),
	}
}

// generate builds the response plan, optionally enriching critical
// emergencies with full article text
func (r *Responder) generate(ctx context.Context, info domain.EmergencyInformation, started time.Time) domain.EmergencyResponse {
	plan := responseActions[info.Classification.Category]

	if r.enricher != nil && info.Link != "" && info.Classification.UrgencyLevel == domain.UrgencyCritical {
		if text, err := r.enricher.Enrich(ctx, info.Link); err != nil {
			lgr.Printf("[DEBUG] enrichment failed for %s, using feed content: %v", info.Link, err)
		} else if text != "" {
			info.Content = text
		}
	}

	return domain.EmergencyResponse{
		ResponseType:     plan.responseType,
		ImmediateActions: plan.actions,
		Status:           domain.ResponseCompleted,
		Elapsed:          time.Since(started),
	}
}

// impactAssessment summarizes the expected market impact for downstream
// consumers
func impactAssessment(info domain.EmergencyInformation) string {
	cl := info.Classification
	scope := "broad market"
	if len(info.Instruments) > 0 {
		scope = fmt.Sprintf("instruments %v", info.Instruments)
	}
	return fmt.Sprintf("%s emergency (%s urgency, impact %.0f/100) affecting %s",
		cl.Category, cl.UrgencyLevel, cl.EstimatedImpact, scope)
}

func followUpRequired(info domain.EmergencyInformation, resp domain.EmergencyResponse) bool {
	if resp.Status != domain.ResponseCompleted {
		return true
	}
	level := info.Classification.UrgencyLevel
	return level == domain.UrgencyHigh || level == domain.UrgencyCritical
}
