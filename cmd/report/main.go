package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"FuturesReport/internal/collector"
	"FuturesReport/internal/config"
	"FuturesReport/internal/notifier"
	"FuturesReport/internal/scheduler"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	start, err := cfg.StartTime()
	if err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init generator
	sim := cfg.Simulation
	fetcher, err := collector.NewSimulatedFetcher(collector.NewRand(sim.Seed), collector.SimParams{
		StartPrice: sim.StartPrice,
		StartDate:  start,
		MinVolume:  sim.MinVolume,
		MaxVolume:  sim.MaxVolume,
		OpenJitter: sim.OpenJitter,
		CloseSwing: sim.CloseSwing,
		WickMax:    sim.WickMax,
	})
	if err != nil {
		log.Fatalf("[FATAL] init generator: %v", err)
	}
	col := collector.NewCollector(fetcher, cfg.Contract.Symbol, cfg.Contract.Days)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, notifier.NewConsoleNotifier(os.Stdout))

	if cfg.Schedule.Cron == "" {
		if _, err := sched.RunNow(); err != nil {
			log.Fatalf("[FATAL] report: %v", err)
		}
		return
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()
	log.Printf("[INFO] reporting %s on schedule %q. Press Ctrl+C to stop.", cfg.Contract.Symbol, cfg.Schedule.Cron)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
}
