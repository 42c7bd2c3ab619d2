// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to run the time-driven parts of order fulfillment.
//
// # Available Jobs
//
// 1. OrderSimulationJob - Runs every second to advance active orders through
// their lifecycle: confirmed orders enter preparation, pickup orders become
// ready, and claimed deliveries gain transit progress.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(advanceOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The simulation job uses the cron expression "* * * * * *", i.e. it runs
// every second. Each run stamps the tick with the current wall time, so
// elapsed-time thresholds are evaluated against real time rather than a
// tick counter.
//
// # Error Handling
//
// Per-order failures inside a tick are collected and logged without stopping
// the run. A version conflict on write means an actor command raced the tick
// on the same order; the tick yields and retries on the next second.
package jobs
