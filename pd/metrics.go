// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the statistics of a run
type Metrics struct {
	Registry *prometheus.Registry   // registry with all collectors below
	Steps    prometheus.Counter     // number of accepted steps
	Broken   *prometheus.CounterVec // number of broken bonds per region
	Damage   *prometheus.GaugeVec   // mean point damage per region
	StepTime prometheus.Histogram   // time spent computing one step
}

// NewMetrics returns new metrics registered in their own registry
func NewMetrics() (o *Metrics) {
	o = &Metrics{
		Registry: prometheus.NewRegistry(),
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gopd",
			Name:      "steps_total",
			Help:      "Number of accepted steps.",
		}),
		Broken: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gopd",
			Name:      "bonds_broken_total",
			Help:      "Number of broken bonds.",
		}, []string{"region"}),
		Damage: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "gopd",
			Name:      "mean_damage",
			Help:      "Mean point damage.",
		}, []string{"region"}),
		StepTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gopd",
			Name:      "step_seconds",
			Help:      "Time spent computing one step.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
	o.Registry.MustRegister(o.Steps, o.Broken, o.Damage, o.StepTime)
	return
}

// Observe records the statistics of an accepted step
func (o *Metrics) Observe(doms []*Domain, nbroken []int, seconds float64) {
	o.Steps.Inc()
	o.StepTime.Observe(seconds)
	for i, d := range doms {
		region := io.Sf("%d", d.Index)
		o.Broken.WithLabelValues(region).Add(float64(nbroken[i]))
		o.Damage.WithLabelValues(region).Set(d.MeanDamage())
	}
}

// Write writes all metrics in the text exposition format
func (o *Metrics) Write(w goio.Writer) (err error) {
	families, err := o.Registry.Gather()
	if err != nil {
		return
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return
		}
	}
	return
}

// Save writes all metrics to <dirout>/<fnkey>.prom
func (o *Metrics) Save(dirout, fnkey string, verbose bool) (err error) {
	fn := filepath.Join(dirout, fnkey+".prom")
	fil, err := os.Create(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	if err = o.Write(fil); err == nil && verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}
