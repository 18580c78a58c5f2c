// Package service contains the diacritize workflow
package service

import (
	"context"
	"unicode/utf8"

	"mishkal/internal/core/engine"
	"mishkal/internal/core/langhint"
	"mishkal/internal/platform/logger"
	"mishkal/internal/platform/metrics"
	pnet "mishkal/internal/platform/net"
	pstrings "mishkal/internal/platform/strings"
	"mishkal/internal/services/api/diacritize/domain"
)

// PreviewRunes bounds how much input and output text reaches the logs
const PreviewRunes = 50

// Service defines the service contract for diacritize
type Service interface{ domain.ServicePort }

// Svc implements the Service interface over one shared engine
type Svc struct {
	engine  engine.Engine
	log     *logger.Logger
	metrics *metrics.Registry
}

// New creates a diacritize service; log and m may be nil
func New(e engine.Engine, log *logger.Logger, m *metrics.Registry) *Svc {
	if e == nil {
		panic("diacritize.Service requires a non nil engine")
	}
	return &Svc{engine: e, log: log, metrics: m}
}

// Diacritize calls the engine once with the raw text
// no retries; the engine's answer is returned as is
func (s *Svc) Diacritize(ctx context.Context, text string) (domain.Result, error) {
	log := s.logger(ctx)
	hint := langhint.Scan(text)

	log.Info().
		Str("input", pstrings.Truncate(text, PreviewRunes)).
		Int("runes", utf8.RuneCountInString(text)).
		Str("script", hint.Script()).
		Bool("vocalized", hint.Vocalized()).
		Msg("diacritize request")

	out, err := s.engine.Diacritize(ctx, text)
	if err != nil {
		err = engine.AsError(err)
		log.Error().Err(err).Msg("diacritize failed")
		s.metrics.Diacritized(metrics.OutcomeEngineError)
		return domain.Result{}, err
	}

	log.Info().
		Str("output", pstrings.Truncate(out, PreviewRunes)).
		Msg("diacritize done")
	s.metrics.Diacritized(metrics.OutcomeOK)

	return domain.Result{Text: out, Confidence: domain.NominalConfidence}, nil
}

// Rejected counts a request that failed validation
func (s *Svc) Rejected(ctx context.Context, reason error) {
	ev := s.logger(ctx).Info()
	if reason != nil {
		ev = ev.Str("reason", reason.Error())
	}
	ev.Msg("diacritize rejected")
	s.metrics.Diacritized(metrics.OutcomeInvalid)
}

// logger is the injected logger with the request id, or the request scoped root child
func (s *Svc) logger(ctx context.Context) *logger.Logger {
	if s.log == nil {
		return logger.C(ctx)
	}
	if id := pnet.RequestID(ctx); id != "" {
		l := s.log.With().Str("request_id", id).Logger()
		return &l
	}
	return s.log
}
