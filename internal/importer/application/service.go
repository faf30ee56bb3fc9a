// Package application runs the import/reconciliation pipeline: format
// routing, extraction, header resolution, normalization, matching and the
// offer merge, with job-level bookkeeping.
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"github.com/norteparts/catalogsync/internal/importer/extract"
	"github.com/norteparts/catalogsync/internal/importer/match"
	"github.com/norteparts/catalogsync/internal/importer/normalize"
	"github.com/norteparts/catalogsync/pkg/db"
	"github.com/norteparts/catalogsync/pkg/logger"
)

// EventPublisher notifies downstream consumers about finalized jobs.
// Publish failures never fail a run.
type EventPublisher interface {
	JobFinished(ctx context.Context, job *domain.ImportJob, supplierSlug string) error
}

// Config carries construction-time pipeline settings.
type Config struct {
	// HeaderScanRows bounds the smart header search.
	HeaderScanRows int
	// FormatOverrides forces an extractor per supplier slug, regardless of
	// the file extension.
	FormatOverrides map[string]extract.Format
	// DefaultRate is the settlement-per-USD exchange rate applied when a run
	// does not supply one.
	DefaultRate decimal.Decimal
}

// ImportOptions parameterizes one run: one file, one supplier.
type ImportOptions struct {
	SupplierSlug string
	Filename     string
	Data         []byte
	// Rate overrides Config.DefaultRate when positive.
	Rate decimal.Decimal
	// Static selects the degraded mode: static identifier-index matching,
	// no product creation.
	Static bool
}

// ImportService is the pipeline entry point. Runs for the same supplier
// must not execute concurrently; runs for different suppliers are
// independent.
type ImportService struct {
	store       *db.DB
	repoFactory func(*gorm.DB) domain.Repositories
	repos       domain.Repositories
	norm        *normalize.Normalizer
	cfg         Config
	events      EventPublisher
}

func NewImportService(store *db.DB, repoFactory func(*gorm.DB) domain.Repositories, norm *normalize.Normalizer, cfg Config, events EventPublisher) *ImportService {
	return &ImportService{
		store:       store,
		repoFactory: repoFactory,
		repos:       repoFactory(store.DB),
		norm:        norm,
		cfg:         cfg,
		events:      events,
	}
}

// ImportFile ingests one feed file for one supplier and returns the job
// summary. Format and extraction failures are fatal; header failures skip
// the sheet; row-level failures degrade and are absorbed into counters and
// notes.
func (s *ImportService) ImportFile(ctx context.Context, opts ImportOptions) (*Summary, error) {
	defer logger.LogDuration(ctx, "import run finished", "supplier", opts.SupplierSlug, "file", opts.Filename)()

	supplier, err := s.repos.Suppliers.GetBySlug(ctx, opts.SupplierSlug)
	if err != nil {
		return nil, fmt.Errorf("resolve supplier %q: %w", opts.SupplierSlug, err)
	}

	rate := opts.Rate
	if rate.IsZero() || rate.IsNegative() {
		rate = s.cfg.DefaultRate
	}

	extractor, err := extract.Route(opts.Filename, s.cfg.FormatOverrides[supplier.Slug])
	if err != nil {
		return nil, err
	}

	job := domain.NewImportJob(supplier.ID, opts.Filename)
	if err := s.repos.Jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create import job: %w", err)
	}

	tables, err := extractor.Extract(opts.Data)
	if err != nil {
		job.Finish([]string{"Archivo ilegible: " + err.Error()})
		if uerr := s.repos.Jobs.Update(ctx, job); uerr != nil {
			logger.Error(ctx, "finalize failed job", "job", job.ID, "error", uerr)
		}
		return nil, fmt.Errorf("extract %s: %w", opts.Filename, err)
	}

	var staticMatcher match.Matcher
	if opts.Static {
		staticMatcher, err = match.NewStaticIndexMatcher(ctx, s.repos.Identifiers, s.repos.Products)
		if err != nil {
			job.Finish([]string{"No se pudo construir el índice de identificadores: " + err.Error()})
			if uerr := s.repos.Jobs.Update(ctx, job); uerr != nil {
				logger.Error(ctx, "finalize failed job", "job", job.ID, "error", uerr)
			}
			return nil, fmt.Errorf("build identifier index: %w", err)
		}
	}

	headerCfg := extract.DefaultHeaderConfig(s.norm.HeaderKeywords())
	if s.cfg.HeaderScanRows > 0 {
		headerCfg.ScanRows = s.cfg.HeaderScanRows
	}

	summary := &Summary{SupplierSlug: supplier.Slug, Filename: opts.Filename}
	var notes []string

	for _, table := range tables {
		header, ok := extract.ResolveHeader(table, headerCfg)
		if !ok {
			logger.Warn(ctx, "header not resolved, sheet skipped", "sheet", table.Name, "file", opts.Filename)
			notes = append(notes, fmt.Sprintf("Hoja %q sin encabezado reconocible, omitida.", table.Name))
			continue
		}
		roles := s.norm.ResolveColumns(header.Labels, supplier.ColumnMap)
		if _, ok := roles[normalize.RoleID]; !ok {
			logger.Warn(ctx, "no identifier column, sheet skipped", "sheet", table.Name)
			notes = append(notes, fmt.Sprintf("Hoja %q sin columna de identificador, omitida.", table.Name))
			continue
		}

		normOpts := normalize.Options{Rate: rate, USDDefault: supplier.USDDefault}
		for _, raw := range header.DataRows(table) {
			rec := s.norm.Row(raw, roles, normOpts)
			outcome := s.applyRow(ctx, supplier, rec, staticMatcher, opts.Static)

			// Every row increments the processed counter exactly once.
			job.ProcessedRows++
			switch outcome.Kind {
			case OutcomeCreated:
				job.CreatedLinks++
			case OutcomeUpdated:
				job.UpdatedLinks++
			}
			if outcome.CreatedProduct {
				job.CreatedProducts++
			}
			if outcome.Reason != "" {
				notes = append(notes, outcome.Reason)
			}
			summary.Outcomes = append(summary.Outcomes, outcome)

			// Persist partial counters so a crash leaves an honest RUNNING job.
			if uerr := s.repos.Jobs.Update(ctx, job); uerr != nil {
				logger.Error(ctx, "persist job counters", "job", job.ID, "error", uerr)
			}
		}
	}

	job.Finish(notes)
	if err := s.repos.Jobs.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("finalize import job: %w", err)
	}

	if s.events != nil {
		if err := s.events.JobFinished(ctx, job, supplier.Slug); err != nil {
			logger.Error(ctx, "publish job event", "job", job.ID, "error", err)
		}
	}

	summary.JobID = job.ID
	summary.ProcessedRows = job.ProcessedRows
	summary.CreatedLinks = job.CreatedLinks
	summary.UpdatedLinks = job.UpdatedLinks
	summary.CreatedProducts = job.CreatedProducts
	summary.Notes = notes
	return summary, nil
}

// applyRow runs the merge rules for one row inside a single transaction so
// a mid-row failure cannot leave a product without its offer. Unexpected
// errors degrade the row rather than aborting the batch.
func (s *ImportService) applyRow(ctx context.Context, supplier *domain.Supplier, rec normalize.Record, staticMatcher match.Matcher, static bool) RowOutcome {
	var outcome RowOutcome
	err := s.store.WithTx(ctx, func(tx *gorm.DB) error {
		r := s.repoFactory(tx)
		var err error
		outcome, err = mergeRow(ctx, r, supplier, rec, staticMatcher, static)
		return err
	})
	if err != nil {
		logger.Error(ctx, "row degraded", "identifier", rec.Identifier, "error", err)
		return RowOutcome{
			Kind:       OutcomeDegraded,
			Identifier: rec.Identifier,
			Reason:     fmt.Sprintf("Fila %q degradada: %v", rec.Identifier, err),
		}
	}
	return outcome
}

// mergeRow applies the upsert rules:
//  1. a row without a native identifier is skipped; offers are keyed by
//     (supplier, native SKU) and a blank key cannot address one;
//  2. an offer keyed by (supplier, native SKU) is updated in place, no
//     re-matching;
//  3. otherwise the matcher resolves a product; an unmatched row creates one
//     (unless static mode);
//  4. the offer is created for (supplier, product), with a uniqueness
//     conflict folded back into an update.
func mergeRow(ctx context.Context, r domain.Repositories, supplier *domain.Supplier, rec normalize.Record, staticMatcher match.Matcher, static bool) (RowOutcome, error) {
	outcome := RowOutcome{Identifier: rec.Identifier}

	if rec.Identifier == "" {
		outcome.Kind = OutcomeSkipped
		if rec.HasKeys() {
			outcome.Reason = "Fila sin identificador, saltada."
		} else {
			outcome.Reason = "Fila sin claves (SKU/MPN/GTIN/Nombre), saltada."
		}
		return outcome, nil
	}

	offer, err := r.Offers.GetBySupplierSKU(ctx, supplier.ID, rec.Identifier)
	if err != nil {
		return outcome, err
	}
	if offer != nil {
		return updateOffer(ctx, r, offer, rec, outcome)
	}

	matcher := staticMatcher
	if matcher == nil {
		matcher = match.NewCatalogMatcher(r.Products)
	}
	product, err := matcher.Match(ctx, rec)
	if err != nil {
		return outcome, err
	}

	if product == nil {
		if static {
			outcome.Kind = OutcomeSkipped
			outcome.Reason = fmt.Sprintf("Sin coincidencia para: %s", rec.Identifier)
			return outcome, nil
		}
		product = productFromRecord(rec)
		if err := r.Products.Create(ctx, product); err != nil {
			return outcome, err
		}
		outcome.CreatedProduct = true
	}

	offer = &domain.SupplierOffer{
		SupplierID:  supplier.ID,
		ProductID:   product.ID,
		SupplierSKU: rec.Identifier,
		MPN:         rec.MPN,
		GTIN:        rec.GTIN,
		NameInFeed:  rec.Name,
		Price:       rec.Price,
		Currency:    rec.Currency,
		Stock:       rec.Stock,
		LastSeen:    time.Now(),
	}
	err = r.Offers.Create(ctx, offer)
	if errors.Is(err, domain.ErrOfferExists) {
		// Previously linked under a different native identifier, or a
		// concurrent run won the insert. Merge instead.
		existing, gerr := r.Offers.GetBySupplierProduct(ctx, supplier.ID, product.ID)
		if gerr != nil {
			return outcome, gerr
		}
		if existing == nil {
			existing, gerr = r.Offers.GetBySupplierSKU(ctx, supplier.ID, rec.Identifier)
			if gerr != nil {
				return outcome, gerr
			}
		}
		if existing == nil {
			return outcome, err
		}
		return updateOffer(ctx, r, existing, rec, outcome)
	}
	if err != nil {
		return outcome, err
	}
	outcome.Kind = OutcomeCreated
	return outcome, nil
}

// updateOffer applies field-wise change detection: informative fields only
// overwrite when the feed carries a non-empty value, price/currency/stock on
// any difference. Saves and counts as updated only when something changed.
func updateOffer(ctx context.Context, r domain.Repositories, offer *domain.SupplierOffer, rec normalize.Record, outcome RowOutcome) (RowOutcome, error) {
	changed := false
	if rec.Identifier != "" && offer.SupplierSKU != rec.Identifier {
		offer.SupplierSKU = rec.Identifier
		changed = true
	}
	if rec.MPN != "" && offer.MPN != rec.MPN {
		offer.MPN = rec.MPN
		changed = true
	}
	if rec.GTIN != "" && offer.GTIN != rec.GTIN {
		offer.GTIN = rec.GTIN
		changed = true
	}
	if rec.Name != "" && offer.NameInFeed != rec.Name {
		offer.NameInFeed = rec.Name
		changed = true
	}
	if !offer.Price.Equal(rec.Price) {
		offer.Price = rec.Price
		changed = true
	}
	if rec.Currency != "" && offer.Currency != rec.Currency {
		offer.Currency = rec.Currency
		changed = true
	}
	if offer.Stock != rec.Stock {
		offer.Stock = rec.Stock
		changed = true
	}

	if !changed {
		outcome.Kind = OutcomeUnchanged
		return outcome, nil
	}
	offer.LastSeen = time.Now()
	if err := r.Offers.Update(ctx, offer); err != nil {
		return outcome, err
	}
	outcome.Kind = OutcomeUpdated
	return outcome, nil
}

// productFromRecord builds a canonical product from whatever identifying
// fields the row carries.
func productFromRecord(rec normalize.Record) *domain.Product {
	name := rec.Name
	if name == "" {
		name = rec.Identifier
	}
	if name == "" {
		name = rec.MPN
	}
	if name == "" {
		name = rec.GTIN
	}
	if name == "" {
		name = "Producto sin nombre"
	}
	description := ""
	if rec.Name != "" {
		description = truncate(rec.Name, 280)
	}
	p := &domain.Product{
		Name:        name,
		Brand:       rec.Brand,
		MPN:         rec.MPN,
		GTIN:        rec.GTIN,
		Socket:      upperOrEmpty(rec.Socket),
		Description: description,
	}
	p.DeriveSlug()
	return p
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func upperOrEmpty(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
