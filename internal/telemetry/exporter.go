// Package telemetry exposes monitor snapshots as Prometheus metrics.
package telemetry

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"procwatch/internal/domain"
)

const namespace = "procwatch"

// Exporter keeps its own registry so several exporters can coexist in
// tests.
type Exporter struct {
	registry *prometheus.Registry
	topN     int

	cpu       prometheus.Gauge
	memory    prometheus.Gauge
	uptime    prometheus.Gauge
	forks     prometheus.Gauge
	running   prometheus.Gauge
	observed  prometheus.Gauge
	samples   prometheus.Counter
	processes *prometheus.GaugeVec
}

// NewExporter exports per-process series for the topN first rows of each
// snapshot only; zero or less exports every row.
func NewExporter(topN int) *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		topN:     topN,
		cpu: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cpu_utilization_ratio",
			Help:      "System-wide CPU utilization since the previous sample.",
		}),
		memory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "memory_utilization_ratio",
			Help:      "Share of physical memory not free.",
		}),
		uptime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uptime_seconds",
			Help:      "System uptime in whole seconds.",
		}),
		forks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "processes_created",
			Help:      "Processes created since boot.",
		}),
		running: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "processes_running",
			Help:      "Processes currently runnable.",
		}),
		observed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "processes_observed",
			Help:      "Processes enumerated by the latest listing.",
		}),
		samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_total",
			Help:      "Snapshots taken since start.",
		}),
		processes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_cpu_utilization_ratio",
			Help:      "Per-process CPU utilization of the reported rows.",
		}, []string{"pid", "user", "command"}),
	}

	e.registry.MustRegister(
		e.cpu, e.memory, e.uptime, e.forks, e.running, e.observed, e.samples, e.processes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return e
}

// Observe records a snapshot. Per-process series are replaced, so exited
// processes drop out.
func (e *Exporter) Observe(s domain.Snapshot) {
	e.cpu.Set(float64(s.CPU))
	e.memory.Set(float64(s.Memory))
	e.uptime.Set(float64(s.UptimeSeconds))
	e.forks.Set(float64(s.TotalProcesses))
	e.running.Set(float64(s.RunningProcesses))
	e.observed.Set(float64(s.ProcessesObserved))
	e.samples.Inc()

	rows := s.Processes
	if e.topN > 0 && len(rows) > e.topN {
		rows = rows[:e.topN]
	}

	e.processes.Reset()
	for _, p := range rows {
		e.processes.WithLabelValues(strconv.Itoa(p.PID), p.User, p.Command).Set(float64(p.CPU))
	}
}

func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}
