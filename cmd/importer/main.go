package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/norteparts/catalogsync/internal/catalog/domain"
	"github.com/norteparts/catalogsync/internal/catalog/infrastructure/messaging"
	"github.com/norteparts/catalogsync/internal/catalog/infrastructure/persistence/mysql"
	importer "github.com/norteparts/catalogsync/internal/importer/application"
	"github.com/norteparts/catalogsync/internal/importer/extract"
	"github.com/norteparts/catalogsync/internal/importer/normalize"
	"github.com/norteparts/catalogsync/pkg/config"
	"github.com/norteparts/catalogsync/pkg/db"
	"github.com/norteparts/catalogsync/pkg/logger"
)

func main() {
	var (
		configPath = flag.String("config", "configs/config.toml", "path to the TOML configuration")
		supplier   = flag.String("supplier", "", "slug of the supplier the file belongs to")
		file       = flag.String("file", "", "path to the feed file (.xlsx, .csv or .pdf)")
		rate       = flag.Float64("rate", 0, "settlement units per 1 USD (overrides config)")
		static     = flag.Bool("static", false, "degraded mode: static identifier index, no product creation")
	)
	flag.Parse()

	if *supplier == "" || *file == "" {
		fmt.Fprintln(os.Stderr, "usage: importer -supplier <slug> -file <path> [-rate 18.5] [-static] [-config configs/config.toml]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(logger.Config(cfg.Logger)); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := db.Init(db.Config(cfg.Database))
	if err != nil {
		logger.Fatal(ctx, "database init failed", "error", err)
	}
	defer store.Close()

	if err := store.AutoMigrate(
		&catalogdomain.Supplier{},
		&catalogdomain.Product{},
		&catalogdomain.ProductIdentifier{},
		&catalogdomain.SupplierOffer{},
		&catalogdomain.ImportJob{},
	); err != nil {
		logger.Fatal(ctx, "migration failed", "error", err)
	}

	overrides := make(map[string]extract.Format, len(cfg.Importer.FormatOverrides))
	for slug, raw := range cfg.Importer.FormatOverrides {
		format, err := extract.ParseFormat(raw)
		if err != nil {
			logger.Fatal(ctx, "invalid format override", "supplier", slug, "error", err)
		}
		overrides[slug] = format
	}

	currencies := normalize.DefaultCurrencyTable()
	currencies.Settlement = cfg.Importer.SettlementCurrency
	norm := normalize.New(normalize.DefaultCandidates(), currencies)

	var events importer.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := messaging.NewJobEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
		events = publisher
	}

	service := importer.NewImportService(store, mysql.New, norm, importer.Config{
		HeaderScanRows:  cfg.Importer.HeaderScanRows,
		FormatOverrides: overrides,
		DefaultRate:     decimal.NewFromFloat(cfg.Importer.USDRate),
	}, events)

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Fatal(ctx, "read feed file", "file", *file, "error", err)
	}

	opts := importer.ImportOptions{
		SupplierSlug: *supplier,
		Filename:     filepath.Base(*file),
		Data:         data,
		Static:       *static,
	}
	if *rate > 0 {
		opts.Rate = decimal.NewFromFloat(*rate)
	}

	summary, err := service.ImportFile(ctx, opts)
	if err != nil {
		logger.Error(ctx, "import failed", "supplier", *supplier, "file", *file, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Import terminado: filas=%d, nuevos=%d, vínculos creados=%d, actualizados=%d\n",
		summary.ProcessedRows, summary.CreatedProducts, summary.CreatedLinks, summary.UpdatedLinks)
	for _, note := range summary.Notes {
		fmt.Println("  -", note)
	}
}
