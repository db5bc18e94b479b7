package aggregator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/janiskrasemann/whisker/internal/cats"
	apperrors "github.com/janiskrasemann/whisker/internal/errors"
	"github.com/janiskrasemann/whisker/internal/fetcher"
	"github.com/janiskrasemann/whisker/internal/logging"
)

const (
	DefaultNoResponseMessage = "did not get a server response"
	DefaultGenericMessage    = "an error occurred"
)

// FactService returns a single cat fact.
type FactService interface {
	GetCatFact(ctx context.Context) (*fetcher.FactResponse, error)
}

// ImageService returns a list of cat images; the first one is used.
type ImageService interface {
	GetCatImage(ctx context.Context) ([]fetcher.Image, error)
}

// Messages holds the user-facing failure texts.
type Messages struct {
	// NoResponse is reported for timeouts and unusable payloads.
	NoResponse string
	// Generic is reported when an error carries no message of its own.
	Generic string
}

func DefaultMessages() Messages {
	return Messages{NoResponse: DefaultNoResponseMessage, Generic: DefaultGenericMessage}
}

type Combiner struct {
	facts    FactService
	images   ImageService
	mapper   cats.Mapper
	messages Messages
	logger   logging.Logger
}

type Option func(*Combiner)

func WithMapper(m cats.Mapper) Option {
	return func(c *Combiner) { c.mapper = m }
}

// WithMessages overrides the failure texts. Empty fields keep their defaults.
func WithMessages(m Messages) Option {
	return func(c *Combiner) {
		if m.NoResponse != "" {
			c.messages.NoResponse = m.NoResponse
		}
		if m.Generic != "" {
			c.messages.Generic = m.Generic
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Combiner) { c.logger = l }
}

func New(facts FactService, images ImageService, opts ...Option) *Combiner {
	c := &Combiner{
		facts:    facts,
		images:   images,
		mapper:   cats.DefaultMapper{},
		messages: DefaultMessages(),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Combiner) Messages() Messages { return c.messages }

// Combine fetches a fact and an image concurrently and joins them into a
// single display model. Every failure is folded into the returned Result.
func (c *Combiner) Combine(ctx context.Context) Result[cats.FactAndImage] {
	model, err := c.fetchBoth(ctx)
	if err != nil {
		c.logger.Debug("combine failed",
			logging.String("run_id", logging.RunID(ctx)),
			logging.String("kind", apperrors.Classify(err).String()),
			logging.Err(err))
		return Failure[cats.FactAndImage](c.failureMessage(err))
	}
	return Success(model)
}

func (c *Combiner) fetchBoth(ctx context.Context) (cats.FactAndImage, error) {
	var (
		factResp *fetcher.FactResponse
		images   []fetcher.Image
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer recoverInto(&err)
		factResp, err = c.facts.GetCatFact(gctx)
		return err
	})
	g.Go(func() (err error) {
		defer recoverInto(&err)
		images, err = c.images.GetCatImage(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return cats.FactAndImage{}, err
	}

	if !factResp.IsSuccessful() || factResp.Body == nil {
		return cats.FactAndImage{}, apperrors.ValidationError{Field: "fact", Message: "no fact in response"}
	}
	if len(images) == 0 || images[0].URL == "" {
		return cats.FactAndImage{}, apperrors.ValidationError{Field: "url", Message: "no image url in response"}
	}
	return c.mapper.ToFactAndImage(factResp.Body.Fact, images[0].URL), nil
}

// failureMessage is the only place where error kinds are collapsed into
// user-facing text. Validation failures share the timeout text.
func (c *Combiner) failureMessage(err error) string {
	switch apperrors.Classify(err) {
	case apperrors.KindTimeout, apperrors.KindValidation:
		return c.messages.NoResponse
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return c.messages.Generic
}

// recoverInto turns a panic in a fetch goroutine into an ordinary error so it
// takes part in the join instead of killing the process.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = e
			return
		}
		*err = fmt.Errorf("%v", r)
	}
}
