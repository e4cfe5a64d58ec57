// Package app wires the configured variants into runnable flows.
package app

import (
	"fmt"

	"github.com/kilianp07/plugkit/config"
	"github.com/kilianp07/plugkit/core/logger"
	"github.com/kilianp07/plugkit/core/metrics"
	"github.com/kilianp07/plugkit/core/registry"
	"github.com/kilianp07/plugkit/export"
	infralogger "github.com/kilianp07/plugkit/infra/logger"
	inframetrics "github.com/kilianp07/plugkit/infra/metrics"
	"github.com/kilianp07/plugkit/support"
	"github.com/kilianp07/plugkit/trading"
)

// Service holds the builtin registries and resolves the components named in
// the configuration.
type Service struct {
	cfg  *config.Config
	log  logger.Logger
	sink metrics.Sink

	exporters *registry.Registry[export.Exporter]
	orderings *registry.Registry[support.Ordering]
	decisions *registry.Registry[trading.Decision]
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	var sink metrics.Sink = metrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		s, err := inframetrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = s
	}
	return &Service{
		cfg:       cfg,
		log:       infralogger.NewWithLevel("service", cfg.Logging.Level),
		sink:      sink,
		exporters: export.NewRegistry(),
		orderings: support.NewRegistry(),
		decisions: trading.NewRegistry(),
	}, nil
}

// Export runs the configured exporter pair once and returns the progress
// lines. An unknown quality tier surfaces the registry's UnknownKeyError so
// the caller can fall back to a known tier.
func (s *Service) Export() ([]string, error) {
	exp, err := s.exporters.Create(s.cfg.Export.Quality, nil)
	s.sink.RecordCreation(metrics.CreationEvent{Key: s.cfg.Export.Quality, OK: err == nil})
	if err != nil {
		return nil, fmt.Errorf("exporter: %w", err)
	}
	folder := s.cfg.Export.Folder
	lines := []string{
		exp.Video.PrepareExport("video data"),
		exp.Audio.PrepareExport("audio data"),
		exp.Video.DoExport(folder),
		exp.Audio.DoExport(folder),
	}
	for _, l := range lines {
		s.log.Infof("%s", l)
	}
	return lines, nil
}

// NewSupport returns a CustomerSupport app with the configured ordering
// selected.
func (s *Service) NewSupport() (*support.CustomerSupport, error) {
	sel := s.cfg.Support.Ordering
	o, err := s.orderings.Create(sel.Type, sel.Conf)
	s.sink.RecordCreation(metrics.CreationEvent{Key: sel.Type, OK: err == nil})
	if err != nil {
		return nil, fmt.Errorf("ordering: %w", err)
	}
	cs := support.NewCustomerSupport(infralogger.NewWithLevel("support", s.cfg.Logging.Level), s.sink)
	cs.UseOrdering(o)
	return cs, nil
}

// NewBot returns a Bot on the given exchange with the configured decision
// selected.
func (s *Service) NewBot(exchange trading.Exchange) (*trading.Bot, error) {
	sel := s.cfg.Trading.Strategy
	d, err := s.decisions.Create(sel.Type, sel.Conf)
	s.sink.RecordCreation(metrics.CreationEvent{Key: sel.Type, OK: err == nil})
	if err != nil {
		return nil, fmt.Errorf("decision: %w", err)
	}
	bot := trading.NewBot(exchange, infralogger.NewWithLevel("trading", s.cfg.Logging.Level), s.sink)
	bot.Use(d)
	return bot, nil
}

// Trade runs the configured bot once on a simulated exchange and reports the
// action taken.
func (s *Service) Trade() (trading.Action, error) {
	exchange := trading.NewSimExchange(map[string][]float64{
		"BTC/USD": {34000, 33500, 32900, 31000},
		"ETH/USD": {2200, 2150, 2400},
	})
	bot, err := s.NewBot(exchange)
	if err != nil {
		return "", err
	}
	return bot.Run(s.cfg.Trading.Symbol)
}
