// Package metrics exposes Prometheus counters for the interactive parts of the
// portfolio and the HTTP instrumentation around them.
package metrics

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	defaultNamespace = "folio"
	defaultSubsystem = "site"
)

// Contact outcomes used as label values.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
	OutcomeSent     = "sent"
)

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace overrides the metric namespace.
func WithNamespace(ns string) Option {
	return func(m *Manager) { m.namespace = ns }
}

// WithRegistry registers collectors on r instead of a fresh private registry.
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Manager) { m.registry = r }
}

// Manager owns the registry and every site counter. A nil *Manager is valid
// and records nothing, so handlers can run without metrics.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	themeToggles       *prometheus.CounterVec
	sectionReveals     *prometheus.CounterVec
	contactSubmissions *prometheus.CounterVec
	contactDeliveries  *prometheus.CounterVec
}

// NewManager builds the counters on a private registry, together with the Go
// runtime and process collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{namespace: defaultNamespace}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	auto := promauto.With(m.registry)
	m.themeToggles = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: defaultSubsystem,
		Name:      "theme_toggles_total",
		Help:      "Theme toggles, labelled by the theme switched to.",
	}, []string{"theme"})
	m.sectionReveals = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: defaultSubsystem,
		Name:      "section_reveals_total",
		Help:      "Sections revealed after scrolling into view.",
	}, []string{"section"})
	m.contactSubmissions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "contact",
		Name:      "submissions_total",
		Help:      "Contact form submissions by outcome.",
	}, []string{"outcome"})
	m.contactDeliveries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "contact",
		Name:      "deliveries_total",
		Help:      "Contact messages forwarded to the inbox by outcome.",
	}, []string{"outcome"})

	return m
}

// Registry returns the registry holding every collector.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// ThemeToggled counts a switch to the named theme ("dark" or "light").
func (m *Manager) ThemeToggled(theme string) {
	if m == nil {
		return
	}
	m.themeToggles.WithLabelValues(theme).Inc()
}

// SectionRevealed counts a section becoming visible.
func (m *Manager) SectionRevealed(section string) {
	if m == nil {
		return
	}
	m.sectionReveals.WithLabelValues(section).Inc()
}

// ContactSubmitted counts a form submission outcome.
func (m *Manager) ContactSubmitted(outcome string) {
	if m == nil {
		return
	}
	m.contactSubmissions.WithLabelValues(outcome).Inc()
}

// ContactDelivered counts a delivery outcome.
func (m *Manager) ContactDelivered(outcome string) {
	if m == nil {
		return
	}
	m.contactDeliveries.WithLabelValues(outcome).Inc()
}

// Middleware records request counts and latencies on the manager's registry.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  m.namespace,
		Subsystem:  "http",
		Registerer: m.registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/static/*"
		},
	})
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: m.registry,
	})
}
