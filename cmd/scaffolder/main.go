// cmd/scaffolder/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mcp-scaffold/internal/common/config"
	"mcp-scaffold/internal/common/logger"
	"mcp-scaffold/internal/generator"
	"mcp-scaffold/internal/pipeline"
	"mcp-scaffold/internal/templates"
	"mcp-scaffold/pkg/catalog"
)

func main() {
	responseFile := flag.String("response-file", "", "Path to the file holding the raw model response")
	language := flag.String("language", "typescript", "Target language (typescript, python, java)")
	transport := flag.String("transport", "stdio", "Server transport (stdio, sse)")
	output := flag.String("output", "", "Absolute output directory for the generated project")
	name := flag.String("name", "", "Project name (free-form; slugged automatically)")
	description := flag.String("description", "", "One-line description of the server")
	flag.Parse()

	if *responseFile == "" || *output == "" || *name == "" || *description == "" {
		fmt.Println("Usage: scaffolder --response-file <path> --output <dir> --name <name> --description <text> [--language <lang>] [--transport <t>]")
		fmt.Println("\nExample:")
		fmt.Println("  go run cmd/scaffolder/main.go --response-file response.txt --output /tmp/servers --name \"Weather Tools\" --description \"Weather lookup MCP server\"")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()
	log := logger.NewZapAdapter(zapLogger)

	cat := catalog.Default()
	if cfg.Generator.CatalogPath != "" {
		cat, err = catalog.LoadCatalog(cfg.Generator.CatalogPath)
		if err != nil {
			fmt.Printf("Error loading language catalog from %s: %v\n", cfg.Generator.CatalogPath, err)
			os.Exit(1)
		}
	}

	raw, err := os.ReadFile(*responseFile)
	if err != nil {
		fmt.Printf("Error reading response file %s: %v\n", *responseFile, err)
		os.Exit(1)
	}

	lang, err := generator.ParseLanguage(*language)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	trans, err := generator.ParseTransport(*transport)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Listen, log)
	}

	req := &generator.Request{
		Description: *description,
		Language:    lang,
		Transport:   trans,
		OutputDir:   *output,
		ProjectName: generator.EnsureServerSuffix(generator.Slugify(*name)),
	}

	registry := templates.NewDefaultRegistry(log)
	service := pipeline.NewService(cfg.Generator, registry, cat, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := service.Generate(ctx, req, string(raw))
	if err != nil {
		fmt.Printf("Error generating project: %v\n", err)
		os.Exit(1)
	}

	for _, file := range result.FilesWritten {
		fmt.Printf("✓ Generated %s\n", file)
	}
	fmt.Printf("\n✅ Project scaffold generated successfully at: %s\n", result.ProjectPath)
	fmt.Printf("   extraction strategy: %s, attempt: %s\n", result.Strategy, result.AttemptID)
}

func serveMetrics(listen string, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("metrics listener starting", map[string]interface{}{"addr": listen})
	if err := http.ListenAndServe(listen, mux); err != nil {
		log.Error("metrics listener stopped", map[string]interface{}{"error": err.Error()})
	}
}
