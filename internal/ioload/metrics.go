package ioload

import (
	"github.com/gnames/datablock/pkg/lifecycle"
	"github.com/gnames/datablock/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
)

// metrics keeps load counters in a private registry. They are exported
// to a Prometheus textfile, there is no HTTP endpoint.
type metrics struct {
	reg      *prometheus.Registry
	files    *prometheus.CounterVec
	rows     *prometheus.CounterVec
	duration prometheus.Gauge
	lastRun  prometheus.Gauge
}

func newMetrics() *metrics {
	res := &metrics{
		reg: prometheus.NewRegistry(),
		files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datablock",
			Name:      "load_documents_total",
			Help:      "Documents processed by status.",
		}, []string{"status"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datablock",
			Name:      "load_rows_inserted_total",
			Help:      "Rows inserted by detail group.",
		}, []string{"group"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "datablock",
			Name:      "load_last_run_duration_seconds",
			Help:      "Duration of the last load run.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "datablock",
			Name:      "load_last_run_timestamp_seconds",
			Help:      "Unix time when the last load run finished.",
		}),
	}
	res.reg.MustRegister(res.files, res.rows, res.duration, res.lastRun)

	for _, s := range []lifecycle.Status{
		lifecycle.StatusLoaded, lifecycle.StatusSkipped, lifecycle.StatusFailed,
	} {
		res.files.WithLabelValues(string(s))
	}
	for _, g := range schema.Groups() {
		res.rows.WithLabelValues(string(g))
	}
	return res
}

func (m *metrics) file(s lifecycle.Status) {
	m.files.WithLabelValues(string(s)).Inc()
}

func (m *metrics) addRows(rows map[schema.Group]int) {
	for g, n := range rows {
		m.rows.WithLabelValues(string(g)).Add(float64(n))
	}
}

func (m *metrics) finish(r *lifecycle.Report) {
	m.duration.Set(r.Duration.Seconds())
	m.lastRun.SetToCurrentTime()
}

func (m *metrics) write(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return MetricsError(path, err)
	}
	return nil
}
