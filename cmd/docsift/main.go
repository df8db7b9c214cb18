// Package main is the docsift CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/docsift/docsift/internal/config"
	"github.com/docsift/docsift/internal/embedding"
	"github.com/docsift/docsift/internal/models"
	"github.com/docsift/docsift/internal/output"
	"github.com/docsift/docsift/internal/pipeline"
	"github.com/docsift/docsift/internal/server"
	"github.com/docsift/docsift/internal/watcher"
	"github.com/docsift/docsift/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/docsift/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used.
// Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		// Missing config is not an error for a batch tool; run on defaults.
		if errors.Is(err, os.ErrNotExist) {
			cfg := &config.Config{}
			config.ApplyDefaults(cfg)
			return cfg, "", nil
		}
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "rank":
		runRank()
	case "server":
		runServer()
	case "watch":
		runWatch()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("docsift version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// newEmbedder opens the ONNX backend when enabled. A nil return means the
// pipeline scores with the TF-IDF fallback.
func newEmbedder(cfg *config.Config, logger *zap.Logger) embedding.Embedder {
	if !cfg.Embedding.Enabled {
		return nil
	}
	embedder, err := embedding.NewONNXEmbedder(
		cfg.Embedding.ModelPath,
		cfg.Embedding.Dimensions,
		cfg.Embedding.MaxTokens,
		cfg.Embedding.CacheSize,
	)
	if err != nil {
		logger.Warn("embedding model unavailable, continuing with TF-IDF only",
			zap.String("model_path", cfg.Embedding.ModelPath), zap.Error(err))
		return nil
	}
	return embedder
}

func runRank() {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	persona := fs.String("persona", "", "persona the sections are ranked for")
	job := fs.String("job", "", "job to be done")
	inputDir := fs.String("input", "", "directory of PDF documents (overrides config)")
	outputPath := fs.String("output", "", "report path (overrides config; empty config value = stdout)")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *inputDir != "" {
		cfg.Input.Dir = *inputDir
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}
	query := models.Query{Persona: *persona, Job: *job}
	if query.Persona == "" && query.Job == "" {
		query = models.Query{Persona: cfg.Query.Persona, Job: cfg.Query.Job}
	}

	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	if resolvedConfigPath != "" {
		logger.Debug("config loaded", zap.String("config_path", resolvedConfigPath))
	}

	embedder := newEmbedder(cfg, logger)
	if embedder != nil {
		defer embedder.Close()
	}

	p := pipeline.New(cfg, embedder, logger)
	result, err := p.Run(context.Background(), query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ranking failed: %v\n", err)
		os.Exit(1)
	}

	report := output.BuildReport(result, time.Now())
	if err := output.Write(report, cfg.Output.Path); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write report: %v\n", err)
		os.Exit(1)
	}
	if cfg.Output.Path != "" {
		fmt.Printf("Report written: %s (%d sections from %d documents)\n",
			cfg.Output.Path, len(result.Sections), len(result.Documents))
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	embedder := newEmbedder(cfg, logger)
	if embedder != nil {
		defer embedder.Close()
	}

	p := pipeline.New(cfg, embedder, logger)
	srv := server.NewServer(p, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	persona := fs.String("persona", "", "persona the sections are ranked for")
	job := fs.String("job", "", "job to be done")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	query := models.Query{Persona: *persona, Job: *job}
	if query.Persona == "" && query.Job == "" {
		query = models.Query{Persona: cfg.Query.Persona, Job: cfg.Query.Job}
	}
	if err := query.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid query: %v\n", err)
		os.Exit(1)
	}

	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	embedder := newEmbedder(cfg, logger)
	if embedder != nil {
		defer embedder.Close()
	}
	p := pipeline.New(cfg, embedder, logger)

	rerank := func() {
		result, err := p.Run(context.Background(), query)
		if err != nil {
			logger.Warn("ranking run failed", zap.Error(err))
			return
		}
		report := output.BuildReport(result, time.Now())
		if err := output.Write(report, cfg.Output.Path); err != nil {
			logger.Warn("failed to write report", zap.Error(err))
		}
	}

	watchOpts := []watcher.Option{
		watcher.WithDebounce(time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond),
	}
	if debugMode {
		watchOpts = append(watchOpts, watcher.WithLogger(logger))
	}
	w := watcher.NewWatcher(cfg.Input.Dir, rerank, watchOpts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	defer w.Stop()
	logger.Info("watching for document changes", zap.String("dir", cfg.Input.Dir))

	// Rank the current corpus once before waiting for changes.
	rerank()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down...")
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	_ = fs.Parse(os.Args[2:])

	resp, err := http.Get(*serverURL + "/api/v1/status")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Server returned %d: %s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}
	var status map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		fmt.Fprintf(os.Stderr, "Decode response: %v\n", err)
		os.Exit(1)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(status)
}

func printUsage() {
	fmt.Println(`docsift - Persona-driven PDF section ranking

Usage:
  docsift rank [flags]      Rank sections of the input PDFs and write a report
  docsift server [flags]    Start the HTTP API
  docsift watch [flags]     Re-rank whenever the input directory changes
  docsift status [flags]    Show a running server's status
  docsift version           Show version
  docsift help              Show this help

Rank Flags:
  --config string    Config file path (default: /usr/local/etc/docsift/config.yaml)
  --persona string   Persona the sections are ranked for
  --job string       Job to be done
  --input string     Directory of PDF documents (overrides config)
  --output string    Report path (overrides config; default: stdout)
  --debug            Enable debug logging

Server Flags:
  --config string    Config file path
  --debug            Enable debug logging

Watch Flags:
  --config string    Config file path
  --persona string   Persona the sections are ranked for
  --job string       Job to be done
  --debug            Enable debug logging

Status Flags:
  --server string    Server URL (default: http://localhost:8080)

Examples:
  docsift rank --persona "Travel Planner" --job "Plan a 4-day trip for college friends" --input ./docs
  docsift rank --input ./docs --output report.json
  docsift server --debug
  docsift watch --persona "HR professional" --job "Create fillable onboarding forms"
  docsift status`)
}
