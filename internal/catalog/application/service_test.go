package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"github.com/norteparts/catalogsync/internal/catalog/infrastructure/persistence/mysql"
)

func setup(t *testing.T) (*CatalogService, domain.Repositories) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = gdb.AutoMigrate(
		&domain.Supplier{},
		&domain.Product{},
		&domain.ProductIdentifier{},
		&domain.SupplierOffer{},
		&domain.ImportJob{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repos := mysql.New(gdb)
	return NewCatalogService(repos), repos
}

func TestCreateSupplierDerivesSlug(t *testing.T) {
	svc, repos := setup(t)
	ctx := context.Background()

	supplier, err := svc.CreateSupplier(ctx, "Distribuidora del Ñorte", "", "", nil, true)
	if err != nil {
		t.Fatalf("CreateSupplier: %v", err)
	}
	if supplier.Slug != "distribuidora-del-norte" {
		t.Fatalf("slug = %q", supplier.Slug)
	}

	got, err := repos.Suppliers.GetBySlug(ctx, "distribuidora-del-norte")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if !got.USDDefault {
		t.Fatal("usd_default not persisted")
	}

	if _, err := svc.CreateSupplier(ctx, "", "", "", nil, false); err == nil {
		t.Fatal("accepted a nameless supplier")
	}
}

func TestUpdateColumnMap(t *testing.T) {
	svc, repos := setup(t)
	ctx := context.Background()

	if _, err := svc.CreateSupplier(ctx, "Norte", "norte", "", nil, false); err != nil {
		t.Fatalf("CreateSupplier: %v", err)
	}
	err := svc.UpdateColumnMap(ctx, "norte", domain.ColumnMap{"sku": "Referencia"})
	if err != nil {
		t.Fatalf("UpdateColumnMap: %v", err)
	}

	got, err := repos.Suppliers.GetBySlug(ctx, "norte")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ColumnMap["sku"] != "Referencia" {
		t.Fatalf("column map = %v", got.ColumnMap)
	}

	if err := svc.UpdateColumnMap(ctx, "nadie", nil); !errors.Is(err, domain.ErrSupplierNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestAddIdentifierClassifies(t *testing.T) {
	svc, repos := setup(t)
	ctx := context.Background()

	product := &domain.Product{Name: "Procesador"}
	if err := svc.CreateProduct(ctx, product); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if err := svc.AddIdentifier(ctx, product.ID, "", "841436061704"); err != nil {
		t.Fatalf("AddIdentifier: %v", err)
	}
	all, err := repos.Identifiers.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 || all[0].Kind != domain.KindUPCEAN {
		t.Fatalf("identifiers = %+v", all)
	}

	// same (kind, value) collides
	err = svc.AddIdentifier(ctx, product.ID, "", "841436061704")
	if !errors.Is(err, domain.ErrIdentifierExists) {
		t.Fatalf("err = %v", err)
	}
}
