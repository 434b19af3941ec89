// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"fmt"
	"net/http"

	"github.com/ChainSafe/conductor/internal/httpserver"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "conductor"

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

// Gauge is a gauge whose value is read on each scrape.
type Gauge struct {
	Subsystem string
	Name      string
	Help      string
	Value     func() float64
}

// Server is a metrics http server
type Server struct {
	address  string
	registry *prometheus.Registry
	service  *httpserver.Service
}

// NewServer creates a metrics server exporting the gauges given
// together with the Go runtime and process metrics.
func NewServer(address string, gauges []Gauge) (s *Server, err error) {
	registry := prometheus.NewRegistry()

	err = registry.Register(collectors.NewGoCollector())
	if err != nil {
		return nil, fmt.Errorf("registering go collector: %w", err)
	}

	err = registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err != nil {
		return nil, fmt.Errorf("registering process collector: %w", err)
	}

	for _, gauge := range gauges {
		collector := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: gauge.Subsystem,
			Name:      gauge.Name,
			Help:      gauge.Help,
		}, gauge.Value)

		err = registry.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("registering gauge %s: %w", gauge.Name, err)
		}
	}

	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &Server{
		address:  address,
		registry: registry,
		service:  httpserver.NewService(httpserver.New("metrics", address, m, logger)),
	}, nil
}

// Start starts the metrics server.
func (s *Server) Start() (err error) {
	logger.Infof("Starting metrics server at http://%s/metrics", s.address)
	return s.service.Start()
}

func (s *Server) SetFailureHandler(handler func(err error)) {
	s.service.SetFailureHandler(handler)
}

// Stop stops the metrics server.
func (s *Server) Stop() (err error) {
	return s.service.Stop()
}

// Gather gathers the metrics of the server registry.
func (s *Server) Gather() (families map[string]float64, err error) {
	metricFamilies, err := s.registry.Gather()
	if err != nil {
		return nil, err
	}

	families = make(map[string]float64)
	for _, family := range metricFamilies {
		if family.GetType().String() != "GAUGE" || len(family.GetMetric()) != 1 {
			continue
		}
		families[family.GetName()] = family.GetMetric()[0].GetGauge().GetValue()
	}
	return families, nil
}
