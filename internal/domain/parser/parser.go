// Package parser turns a benchmark log into per-language score groups.
package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/benchtable/internal/domain/classify"
	"github.com/okian/benchtable/internal/domain/model"
	"github.com/okian/benchtable/pkg/logger"
	"github.com/okian/benchtable/pkg/metrics"
)

// Result is the output of one parse pass.
type Result struct {
	Registry *model.Registry
	// Lines counts classified lines by kind.
	Lines map[classify.Kind]int
	// Orphans counts measurement lines seen before any header.
	Orphans int
}

// Option configures a Parser.
type Option func(*Parser)

// WithClassifier replaces the default classifier.
func WithClassifier(c *classify.Classifier) Option {
	return func(p *Parser) {
		if c != nil {
			p.classifier = c
		}
	}
}

// WithLogger sets the logger used for run transitions.
func WithLogger(l logger.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// Parser runs the line classification state machine.
type Parser struct {
	classifier *classify.Classifier
	logger     logger.Logger
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{classifier: classify.New()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse consumes the whole log and returns a fresh registry.
func (p *Parser) Parse(ctx context.Context, content string) (*Result, error) {
	res := &Result{
		Registry: model.NewRegistry(),
		Lines:    make(map[classify.Kind]int),
	}

	var state State = NoActiveRun{}
	for i, text := range strings.Split(content, "\n") {
		line := p.classifier.Classify(text)
		res.Lines[line.Kind]++
		metrics.RecordLineClassified(line.Kind.String())

		next, err := p.step(ctx, state, line, res)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", i+1, text, err)
		}
		state = next
	}

	return res, nil
}

// step applies one classified line to state.
func (p *Parser) step(ctx context.Context, state State, line classify.Line, res *Result) (State, error) {
	switch line.Kind {
	case classify.KindHeader:
		return p.onHeader(ctx, state, line.Name, res.Registry), nil

	case classify.KindTime:
		run, ok := state.active()
		if !ok {
			res.Orphans++
			return state, nil
		}
		v, err := strconv.ParseFloat(line.Value, 64)
		if err != nil {
			return state, fmt.Errorf("%w: %w", ErrMalformedValue, err)
		}
		run.Score.AddTime(model.NewMeasurement(v, line.Unit))
		run.Measured = true
		return run, nil

	case classify.KindMemory:
		run, ok := state.active()
		if !ok {
			res.Orphans++
			return state, nil
		}
		kb, err := strconv.ParseInt(line.Value, 10, 64)
		if err != nil {
			return state, fmt.Errorf("%w: %w", ErrMalformedValue, err)
		}
		run.Score.AddMemory(kb)
		run.Measured = true
		return run, nil

	default:
		return state, nil
	}
}

func (p *Parser) onHeader(ctx context.Context, state State, name string, reg *model.Registry) State {
	group, known := reg.Lookup(name)
	t := decide(state, name, known)

	next := state
	if t != Continue {
		score := model.NewScore(name)
		group = reg.Append(score)
		next = ActiveRun{Name: name, Score: score}
		metrics.RecordRunParsed()
	}

	if p.logger != nil {
		p.logger.Debug(ctx, "header", logger.String("language", name),
			logger.String("transition", t.String()), logger.Int("runs", group.Len()))
	}
	return next
}
