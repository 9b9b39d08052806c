package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg          *prom.Registry
	duration     prom.Gauge
	generations  *prom.CounterVec
	groups       prom.Gauge
	navLinks     prom.Gauge
	sidebarLinks prom.Gauge
	sidebarDepth prom.Gauge
	deferred     prom.Gauge
}

// NewPrometheusRecorder constructs and registers the generation metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	gauge := func(name, help string) prom.Gauge {
		return prom.NewGauge(prom.GaugeOpts{Namespace: "sitecfg", Name: name, Help: help})
	}
	pr := &PrometheusRecorder{
		reg:      reg,
		duration: gauge("generation_duration_seconds", "Duration of the last generation run"),
		generations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitecfg",
			Name:      "generations_total",
			Help:      "Generation runs by outcome",
		}, []string{"outcome"}),
		groups:       gauge("nav_groups", "Top-level content groups in the last generated site"),
		navLinks:     gauge("nav_links", "Links exposed by the top navigation"),
		sidebarLinks: gauge("sidebar_links", "Unique links in the sidebar"),
		sidebarDepth: gauge("sidebar_depth", "Deepest sidebar nesting level"),
		deferred:     gauge("deferred_derivations", "Derived expressions left for substitution"),
	}
	reg.MustRegister(pr.duration, pr.generations, pr.groups, pr.navLinks, pr.sidebarLinks, pr.sidebarDepth, pr.deferred)
	return pr
}

// Registry returns the registry the metrics are registered with.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) ObserveGeneration(d time.Duration) {
	if p == nil {
		return
	}
	p.duration.Set(d.Seconds())
}

func (p *PrometheusRecorder) IncGeneration(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.generations.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetTreeStats(stats TreeStats) {
	if p == nil {
		return
	}
	p.groups.Set(float64(stats.Groups))
	p.navLinks.Set(float64(stats.NavLinks))
	p.sidebarLinks.Set(float64(stats.SidebarLinks))
	p.sidebarDepth.Set(float64(stats.SidebarDepth))
	p.deferred.Set(float64(stats.Deferred))
}

// WriteTextfile writes the registry in the node-exporter textfile format.
// The file is written to a temporary name and renamed into place.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}
