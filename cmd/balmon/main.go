package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"balmon/internal/config"
	"balmon/internal/log"
	"balmon/internal/monitor"
	"balmon/internal/notify"
	"balmon/internal/schedule"
	"balmon/internal/ynab"
)

func main() {
	// Load .env for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.Config{Level: slog.LevelInfo, Component: "balmon"})
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	client := ynab.NewClient(cfg.APIToken)

	var (
		alertChannels  notify.Multi
		updateChannels notify.Multi
	)
	if cfg.AppriseAPIURL != "" {
		alertChannels = append(alertChannels, notify.NewApprise(cfg.AppriseAPIURL, cfg.AppriseURLs))
		updateChannels = append(updateChannels, notify.NewApprise(cfg.AppriseAPIURL, cfg.UpdateURLs()))
	}
	if cfg.AMQPURL != "" {
		amqpChannel, err := notify.NewAMQP(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP notification channel", "error", err)
			os.Exit(1)
		}
		defer amqpChannel.Close()
		alertChannels = append(alertChannels, amqpChannel)
		updateChannels = append(updateChannels, amqpChannel)
	}

	mon := monitor.New(client, cfg, alertChannels, updateChannels, logger.WithComponent("monitor"))

	checkSpec, _ := schedule.Parse(cfg.CheckSchedule)
	updateSpec, _ := schedule.Parse(cfg.UpdateSchedule)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if checkSpec.IsZero() && updateSpec.IsZero() {
		// Run once and exit.
		if err := mon.RunCheck(ctx, false); err != nil {
			logger.Error("Balance check failed", "error", err)
			os.Exit(1)
		}
		return
	}

	runner := schedule.NewRunner()
	if !checkSpec.IsZero() {
		logger.Info("Check schedule configured", "schedule", checkSpec.String())
		if err := runner.Add(checkSpec, func() {
			if err := mon.RunCheck(ctx, false); err != nil {
				logger.Error("Balance check failed", "error", err)
			}
		}); err != nil {
			logger.Error("Failed to register check schedule", "error", err)
			os.Exit(1)
		}
	}
	if !updateSpec.IsZero() {
		logger.Info("Update schedule configured", "schedule", updateSpec.String())
		if err := runner.Add(updateSpec, func() {
			if err := mon.RunCheck(ctx, true); err != nil {
				logger.Error("Balance check failed", "error", err)
			}
		}); err != nil {
			logger.Error("Failed to register update schedule", "error", err)
			os.Exit(1)
		}
	}
	runner.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Shutdown signal received", "signal", sig.String())

	cancel()
	runner.Stop()
	logger.Info("Monitor stopped gracefully")
}
