package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/textsift/textsift/api"
	"github.com/textsift/textsift/config"
	"github.com/textsift/textsift/internal/corpus"
	"github.com/textsift/textsift/internal/engine"
	"github.com/textsift/textsift/internal/logger"
	"github.com/textsift/textsift/internal/metrics"
)

const version = "1.0.0"

func usage() {
	fmt.Fprintf(os.Stderr, "textsift - TF-IDF document search engine\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Subcommands:\n")
	fmt.Fprintf(os.Stderr, "  index  <folder>              index the folder and save the index file\n")
	fmt.Fprintf(os.Stderr, "  search <index-file> <query>  load an index and print the ranked results\n")
	fmt.Fprintf(os.Stderr, "  serve  <index-file>          serve the HTTP API and web UI over an index\n")
	fmt.Fprintf(os.Stderr, "  version                      show version information\n\n")
	fmt.Fprintf(os.Stderr, "Each subcommand accepts -config <file> for YAML configuration.\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "index":
		err = runIndex(os.Args[2:])
	case "search":
		err = runSearch(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "version", "-version", "--version":
		fmt.Printf("textsift v%s\n", version)
	case "help", "-help", "--help":
		usage()
	default:
		usage()
		fmt.Fprintf(os.Stderr, "\nunknown subcommand %q\n", os.Args[1])
		os.Exit(1)
	}
	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

func runIndex(args []string) error {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	out := fs.String("out", "", "Index file to write (defaults to config indexPath)")
	workers := fs.Int("workers", 0, "Tokenizer workers (defaults to config, then one per CPU)")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("no folder provided for the index subcommand")
	}
	folder := fs.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	indexPath := cfg.Indexer.IndexPath
	if *out != "" {
		indexPath = *out
	}
	buildWorkers := cfg.Indexer.Workers
	if *workers > 0 {
		buildWorkers = *workers
	}

	slog.Info("indexing corpus", "folder", folder, "out", indexPath)

	eng := engine.NewEngine()
	if err := eng.Build(context.Background(), corpus.NewDirectorySource(folder), buildWorkers); err != nil {
		return err
	}
	return eng.Save(indexPath)
}

func runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	limit := fs.Int("limit", 10, "Maximum number of results to print (0 for all)")
	_ = fs.Parse(args)

	if fs.NArg() < 2 {
		return fmt.Errorf("search needs an index file and a query")
	}
	indexPath := fs.Arg(0)
	query := strings.Join(fs.Args()[1:], " ")

	if _, err := loadConfig(*configPath); err != nil {
		return err
	}

	eng := engine.NewEngine()
	if err := eng.Load(indexPath); err != nil {
		return err
	}

	result, err := eng.Search(query)
	if err != nil {
		return err
	}

	hits := result.Hits
	if *limit > 0 && len(hits) > *limit {
		hits = hits[:*limit]
	}
	for _, hit := range hits {
		fmt.Printf("%s => %f\n", hit.DocumentID, hit.Score)
	}
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	addr := fs.String("addr", "", "Listen address (defaults to config server addr)")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("no index file provided for the serve subcommand")
	}
	indexPath := fs.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	eng := engine.NewEngine()
	if err := eng.Load(indexPath); err != nil {
		return err
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(prometheus.DefaultRegisterer)
		m.IndexedDocuments.Set(float64(eng.DocumentCount()))
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, eng, m)

	server := &http.Server{
		Addr:         listenAddr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	slog.Info("listening", "addr", "http://"+listenAddr+"/", "documents", eng.DocumentCount())
	return server.ListenAndServe()
}
