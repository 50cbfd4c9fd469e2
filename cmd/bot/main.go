package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"MetalWatch/internal/archive"
	"MetalWatch/internal/collector"
	"MetalWatch/internal/config"
	"MetalWatch/internal/notifier"
	"MetalWatch/internal/scheduler"
	"MetalWatch/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] MetalWatch starting...")

	_ = godotenv.Load()

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

	// Init fetcher
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init archive
	var arc archive.Archive
	if cfg.Database.SQLitePath != "" {
		sa, err := archive.NewSQLiteArchive(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite archive failed, using noop: %v", err)
			arc = archive.NewNoopArchive()
		} else {
			arc = sa
			defer sa.Close()
		}
	} else {
		arc = archive.NewNoopArchive()
	}

	// Init collector
	col := collector.NewCollector(
		fetcher,
		cfg.Market.Instruments,
		cfg.Market.Indices,
		cfg.Market.LookbackDays,
		time.Duration(cfg.Market.CacheTTLMinutes)*time.Minute,
		arc,
	)

	// Init Telegram notifier (optional)
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, tn)
	if err := sched.RegisterAll(cfg.Schedule.RefreshCron, cfg.Schedule.ReportCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Init HTTP server
	srv := server.New(cfg.Server.Addr, sched)
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	// Start Telegram polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing signals now")
		go sched.RunRefreshNow()
	}

	log.Println("[INFO] MetalWatch is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}

	log.Println("[INFO] MetalWatch stopped")
}
