// Package analysis sequences the full decision pipeline: sentiment,
// keyword matching, classification, intensity, momentum, response
// composition, explanation, and the Critical-state SOS dispatch.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kiddoo/internal/alert"
	"kiddoo/internal/classifier"
	"kiddoo/internal/explain"
	"kiddoo/internal/intensity"
	"kiddoo/internal/lexicon"
	"kiddoo/internal/momentum"
	"kiddoo/internal/observability"
	"kiddoo/internal/respond"
	"kiddoo/internal/sentiment"
)

// ErrInvalidInput marks requests rejected before the pipeline runs.
var ErrInvalidInput = errors.New("invalid input")

// Service runs one full analysis per call. It holds only immutable
// collaborators, so concurrent calls need no coordination.
type Service struct {
	matcher    *lexicon.Matcher
	scorer     *sentiment.Scorer
	classifier *classifier.Classifier
	dispatcher alert.Dispatcher
	contacts   []alert.Contact
	logger     *observability.Logger
	metrics    *observability.MetricsCollector
	tracer     *observability.TracerProvider
}

// Options carries the optional collaborators of a Service.
type Options struct {
	Contacts []alert.Contact
	Metrics  *observability.MetricsCollector
	Tracer   *observability.TracerProvider
}

// NewService wires the pipeline components together.
func NewService(lex *lexicon.Lexicon, polarity sentiment.PolarityAnalyzer, dispatcher alert.Dispatcher, logger *observability.Logger, opts Options) *Service {
	matcher := lexicon.NewMatcher(lex)
	metrics := opts.Metrics
	if metrics == nil {
		metrics = &observability.MetricsCollector{}
	}
	tracer := opts.Tracer
	if tracer == nil {
		// A disabled provider yields a noop tracer and never errors.
		tracer, _ = observability.NewTracerProvider(observability.TracingConfig{Enabled: false})
	}
	return &Service{
		matcher:    matcher,
		scorer:     sentiment.NewScorer(lex, polarity),
		classifier: classifier.New(matcher),
		dispatcher: dispatcher,
		contacts:   opts.Contacts,
		logger:     logger,
		metrics:    metrics,
		tracer:     tracer,
	}
}

// Contacts returns the configured default emergency contacts.
func (s *Service) Contacts() []alert.Contact {
	return s.contacts
}

// Dispatcher exposes the SOS dispatcher for the manual trigger endpoint.
func (s *Service) Dispatcher() alert.Dispatcher {
	return s.dispatcher
}

// Analyze runs the full pipeline over one message. History is supplied by
// the caller; the service never stores it. The result is deterministic
// for identical (message, mode, history) inputs.
func (s *Service) Analyze(ctx context.Context, message string, mode Mode, history []momentum.Record) (*Result, error) {
	started := time.Now()

	if strings.TrimSpace(message) == "" {
		s.metrics.RecordAnalysisError(ctx, "invalid_input")
		return nil, fmt.Errorf("%w: message must be a non-empty string", ErrInvalidInput)
	}
	if mode == "" {
		mode = ModeUser
	}

	ctx, span := s.tracer.StartAnalysisSpan(ctx, string(mode))
	defer span.End()

	sentimentResult, err := s.scorer.Score(message)
	if err != nil {
		s.metrics.RecordAnalysisError(ctx, "sentiment_dependency")
		return nil, fmt.Errorf("analysis: sentiment scoring: %w", err)
	}

	keywords := s.matcher.ExtractKeywords(message)
	detail := s.classifier.Detail(message, sentimentResult.Score)
	state := detail.State

	// Intensity uses the sum of all category match weights, not just the
	// dominant category, so a single Critical phrase hits the floor.
	intensityScore := intensity.Score(sentimentResult.Score, detail.Matches.TotalWeight())

	trend := momentum.Analyze(history)
	agentResponse := respond.Compose(state, trend)
	explanation := explain.Build(state, keywords, detail.Matches, sentimentResult.Score, intensityScore)

	action := alert.NoAction()
	if state == classifier.StateCritical {
		action = s.dispatcher.Dispatch(ctx, s.contacts)
		for _, delivery := range action.ContactsNotified {
			s.metrics.RecordSOSDispatch(ctx, string(delivery.Status))
		}
	}

	result := &Result{
		PredictionResult:    state,
		SentimentAnalysis:   sentimentResult,
		ExtractedKeywords:   keywords,
		ClassifiedState:     state,
		IntensityScore:      intensityScore,
		StateProbabilities:  detail.Probabilities,
		Precautions:         precautionsFor(state),
		AutonomousAction:    action,
		DecisionExplanation: explanation,
		AgentResponse:       agentResponse,
		Mode:                mode,
	}

	s.metrics.RecordAnalysis(ctx, state.String(), string(mode), time.Since(started))
	s.logger.InfoContext(ctx, "analysis complete",
		"state", state.String(),
		"intensity", intensityScore,
		"trend", string(trend),
		"sos_triggered", action.SOSTriggered,
	)
	return result, nil
}
