// Package diagnostics periodically reports process registry stats —
// the number of registered topics and the total number of active
// subscribers across them; publish sequences are not reported — for
// operators who want a heartbeat without wiring a metrics backend
// (spec.md §6 "Diagnostics" explicitly scopes out a metrics exporter).
package diagnostics

import (
	"github.com/robfig/cron/v3"

	"github.com/mreqlib/mreq/internal/bus/registry"
	"github.com/mreqlib/mreq/pkg/logger"
)

// Reporter logs a snapshot of registry stats on a cron schedule,
// grounded on the teacher pack's scheduler module's cron.New/AddFunc/
// Start/Stop usage.
type Reporter struct {
	cron *cron.Cron
	reg  *registry.Registry
	log  *logger.Logger
}

// NewReporter builds a Reporter over reg that logs through log.
func NewReporter(reg *registry.Registry, log *logger.Logger) *Reporter {
	return &Reporter{
		cron: cron.New(),
		reg:  reg,
		log:  log,
	}
}

// Start schedules the periodic report with the given cron expression
// (e.g. "@every 30s") and begins running it in the background. Returns
// an error if schedule does not parse.
func (r *Reporter) Start(schedule string) error {
	_, err := r.cron.AddFunc(schedule, r.report)
	if err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop halts the scheduler, waiting for any in-flight report to
// finish.
func (r *Reporter) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Reporter) report() {
	topics := 0
	subscribers := 0
	r.reg.Iterate(func(d *registry.Descriptor) bool {
		topics++
		subscribers += d.Vtable.SubscriberCount()
		return true
	})

	if r.log != nil {
		r.log.Info("diagnostics", "topics", topics, "subscribers", subscribers)
	}
}
