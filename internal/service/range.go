package service

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/xolan/calrange/internal/config"
	"github.com/xolan/calrange/internal/daterange"
	"github.com/xolan/calrange/internal/timeutil"
)

// RangeService generates and navigates ranges using the configured defaults
type RangeService struct {
	config config.Config
	now    func() time.Time
	logger zerolog.Logger
}

// NewRangeService creates a new RangeService reading the wall clock
func NewRangeService(cfg config.Config, logger zerolog.Logger) *RangeService {
	return &RangeService{
		config: cfg,
		now:    time.Now,
		logger: logger.With().Str("component", "range").Logger(),
	}
}

// SetClock replaces the clock used to resolve "today" (for testing)
func (s *RangeService) SetClock(now func() time.Time) {
	s.now = now
}

// SetLogger replaces the logger, e.g. once the configured level is known
func (s *RangeService) SetLogger(logger zerolog.Logger) {
	s.logger = logger.With().Str("component", "range").Logger()
}

// SetConfig swaps the configuration, e.g. after the config file was reloaded
func (s *RangeService) SetConfig(cfg config.Config) {
	s.config = cfg
}

// Config returns the configuration the service resolves defaults from
func (s *RangeService) Config() config.Config {
	return s.config
}

// Today returns the current time in the configured timezone
func (s *RangeService) Today() time.Time {
	return s.now().In(s.config.Location())
}

// Location returns the configured timezone
func (s *RangeService) Location() *time.Location {
	return s.config.Location()
}

// WeekStart returns the configured week start day
func (s *RangeService) WeekStart() timeutil.Weekday {
	return s.config.WeekStart()
}

// Spec resolves the defaults of req into a generator spec
func (s *RangeService) Spec(req RangeRequest) daterange.Spec {
	ref := s.Today()
	if req.RefDate != nil {
		ref = *req.RefDate
	}

	weekday := s.WeekStart()
	if req.Weekday != nil {
		weekday = *req.Weekday
	}

	spec := daterange.Spec{
		Kind:    req.Kind,
		RefDate: ref,
		Weekday: weekday,
		Offset:  daterange.Offset{Start: req.StartOffset, End: req.EndOffset},
	}

	switch req.Kind {
	case daterange.KindDays:
		spec.DaysCount = req.DaysLength()
		spec.Weekday = daterange.DefaultWeekday
	case daterange.KindMonthExact:
		spec.Weekday = daterange.DefaultWeekday
	}

	return spec
}

// Generate builds the range described by req
func (s *RangeService) Generate(req RangeRequest) (daterange.Range, error) {
	spec := s.Spec(req)

	r, err := daterange.Generate(spec)
	if err != nil {
		s.logger.Debug().Err(err).Stringer("kind", spec.Kind).Msg("range generation rejected")
		return daterange.Range{}, err
	}

	s.logRange(r, "generated range")
	return r, nil
}

// Step moves r n times in direction dir. Zero steps returns r unchanged.
func (s *RangeService) Step(r daterange.Range, dir daterange.Direction, n int) (daterange.Range, error) {
	if n < 0 {
		return daterange.Range{}, daterange.InvalidParameter("steps", n, "zero or a positive integer", "")
	}

	for i := 0; i < n; i++ {
		next, err := daterange.Navigate(r, dir)
		if err != nil {
			s.logger.Debug().Err(err).Stringer("direction", dir).Int("step", i+1).Msg("navigation rejected")
			return daterange.Range{}, err
		}
		r = next
	}

	if n > 0 {
		s.logRange(r, "navigated range")
	}
	return r, nil
}

// Next is Step(r, DirectionNext, 1)
func (s *RangeService) Next(r daterange.Range) (daterange.Range, error) {
	return s.Step(r, daterange.DirectionNext, 1)
}

// Previous is Step(r, DirectionPrevious, 1)
func (s *RangeService) Previous(r daterange.Range) (daterange.Range, error) {
	return s.Step(r, daterange.DirectionPrevious, 1)
}

// Shift applies a signed step count: positive moves forward, negative back
func (s *RangeService) Shift(r daterange.Range, n int) (daterange.Range, error) {
	if n < 0 {
		return s.Step(r, daterange.DirectionPrevious, -n)
	}
	return s.Step(r, daterange.DirectionNext, n)
}

// Regenerate rebuilds r with new offsets, keeping its other parameters
func (s *RangeService) Regenerate(r daterange.Range, off daterange.Offset) (daterange.Range, error) {
	if r.IsZero() {
		return daterange.Range{}, daterange.EmptyRange("regenerate")
	}

	spec := r.Spec()
	spec.Offset = off
	next, err := daterange.Generate(spec)
	if err != nil {
		return daterange.Range{}, err
	}

	s.logRange(next, "regenerated range")
	return next, nil
}

// Extend grows or trims an arbitrary ascending date list by a unit label
func (s *RangeService) Extend(req ExtendRequest) ([]time.Time, error) {
	dates, err := daterange.ExtendLabel(req.Dates, req.Unit, req.StartOffset, req.EndOffset)
	if err != nil {
		s.logger.Debug().Err(err).Str("unit", req.Unit).Msg("extension rejected")
		return nil, err
	}

	s.logger.Debug().
		Str("unit", req.Unit).
		Int("start_offset", req.StartOffset).
		Int("end_offset", req.EndOffset).
		Int("length", len(dates)).
		Msg("extended dates")
	return dates, nil
}

func (s *RangeService) logRange(r daterange.Range, msg string) {
	s.logger.Debug().
		Stringer("kind", r.Kind()).
		Time("ref", r.RefDate()).
		Stringer("weekday", r.Weekday()).
		Int("start_offset", r.StartOffset()).
		Int("end_offset", r.EndOffset()).
		Stringer("direction", r.Direction()).
		Int("length", r.Len()).
		Msg(msg)
}
