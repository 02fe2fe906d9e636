// Package advisor implements symptom analysis: it scores reported symptoms
// against the knowledge base and assembles ranked candidate conditions, an
// urgency level and advice.
package advisor

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Skufu/medadvisor/internal/domain"
)

// Request is one analysis call. Age and Gender are optional.
type Request struct {
	Symptoms []string `json:"symptoms"`
	Age      *int     `json:"age,omitempty"`
	Gender   string   `json:"gender,omitempty"`
}

type Analyzer struct {
	scorer *Scorer
	log    logrus.FieldLogger
	now    func() time.Time
}

type Option func(*Analyzer)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

func NewAnalyzer(kb Knowledge, log logrus.FieldLogger, opts ...Option) *Analyzer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	a := &Analyzer{
		scorer: NewScorer(kb, log),
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze never panics: an internal fault is logged and reported as the
// "Analysis failed" error result.
func (a *Analyzer) Analyze(req Request) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithField("fault", r).Error("error in symptom analysis")
			out = Outcome{Failure: domain.NewAnalysisFailure()}
		}
	}()

	scored := a.scorer.Score(req.Symptoms, req.Age, req.Gender)
	result := Assemble(scored, req.Symptoms, a.now())

	a.log.WithFields(logrus.Fields{
		"symptoms":   len(req.Symptoms),
		"candidates": len(result.PossibleConditions),
		"urgency":    result.UrgencyLevel,
		"confidence": result.ConfidenceScore,
	}).Debug("symptom analysis completed")

	return Outcome{Result: result}
}
