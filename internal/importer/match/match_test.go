package match

import (
	"context"
	"strings"
	"testing"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"github.com/norteparts/catalogsync/internal/importer/normalize"
)

type fakeProducts struct {
	products []*domain.Product
}

func (f *fakeProducts) GetByID(_ context.Context, id uint) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) GetByGTIN(_ context.Context, gtin string) (*domain.Product, error) {
	for _, p := range f.products {
		if strings.EqualFold(p.GTIN, gtin) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) GetByMPN(_ context.Context, mpn string) (*domain.Product, error) {
	for _, p := range f.products {
		if strings.EqualFold(p.MPN, mpn) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) SearchByNameTokens(_ context.Context, tokens []string, socket string) (*domain.Product, error) {
	for _, p := range f.products {
		name := strings.ToUpper(p.Name)
		all := true
		for _, t := range tokens {
			if !strings.Contains(name, strings.ToUpper(t)) {
				all = false
				break
			}
		}
		if !all {
			continue
		}
		if socket != "" && !strings.EqualFold(p.Socket, socket) &&
			!strings.Contains(strings.ToUpper(p.Description), socket) {
			continue
		}
		return p, nil
	}
	return nil, nil
}

func (f *fakeProducts) Create(_ context.Context, p *domain.Product) error {
	f.products = append(f.products, p)
	return nil
}

func (f *fakeProducts) List(_ context.Context, _, _ int) ([]*domain.Product, int, error) {
	return f.products, len(f.products), nil
}

type fakeIdentifiers struct {
	identifiers []domain.ProductIdentifier
}

func (f *fakeIdentifiers) Create(_ context.Context, id *domain.ProductIdentifier) error {
	f.identifiers = append(f.identifiers, *id)
	return nil
}

func (f *fakeIdentifiers) ListAll(_ context.Context) ([]domain.ProductIdentifier, error) {
	return f.identifiers, nil
}

func TestNameTokens(t *testing.T) {
	cases := []struct {
		name string
		want []string
	}{
		{"Procesador AMD Ryzen 5 5600X AM4", []string{"Procesador", "AMD", "Ryzen", "5600X"}},
		{"SSD/NVMe 1TB", []string{"SSD", "NVMe", "1TB"}},
		{"a b c", nil},
		{"", nil},
	}
	for _, c := range cases {
		got := NameTokens(c.name)
		if len(got) != len(c.want) {
			t.Fatalf("NameTokens(%q) = %v, want %v", c.name, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("NameTokens(%q)[%d] = %q, want %q", c.name, i, got[i], c.want[i])
			}
		}
	}
}

func TestCatalogMatcherPrecedence(t *testing.T) {
	byGTIN := &domain.Product{Name: "Por GTIN", GTIN: "841436061704"}
	byMPN := &domain.Product{Name: "Por MPN", MPN: "BX8071512400"}
	byName := &domain.Product{Name: "Procesador Intel Core i5 12400"}
	repo := &fakeProducts{products: []*domain.Product{byName, byMPN, byGTIN}}
	m := NewCatalogMatcher(repo)
	ctx := context.Background()

	// GTIN beats MPN beats name
	rec := normalize.Record{GTIN: "841436061704", MPN: "BX8071512400", Name: "Procesador Intel Core i5 12400"}
	p, err := m.Match(ctx, rec)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if p != byGTIN {
		t.Fatalf("matched %q, want GTIN hit", p.Name)
	}

	rec.GTIN = ""
	if p, _ = m.Match(ctx, rec); p != byMPN {
		t.Fatalf("matched %v, want MPN hit", p)
	}

	rec.MPN = ""
	if p, _ = m.Match(ctx, rec); p != byName {
		t.Fatalf("matched %v, want name hit", p)
	}

	rec.Name = ""
	if p, _ = m.Match(ctx, rec); p != nil {
		t.Fatalf("matched %v, want nothing", p)
	}
}

func TestStaticIndexMatcher(t *testing.T) {
	product := &domain.Product{Name: "Procesador"}
	product.ID = 7
	products := &fakeProducts{products: []*domain.Product{product}}
	identifiers := &fakeIdentifiers{identifiers: []domain.ProductIdentifier{
		{ProductID: 7, Kind: domain.KindMPN, Value: "bx 8071512400"},
	}}

	ctx := context.Background()
	m, err := NewStaticIndexMatcher(ctx, identifiers, products)
	if err != nil {
		t.Fatalf("NewStaticIndexMatcher: %v", err)
	}

	// exact value
	p, err := m.Match(ctx, normalize.Record{Identifier: "bx 8071512400"})
	if err != nil || p == nil || p.ID != 7 {
		t.Fatalf("exact match = %v, %v", p, err)
	}

	// folded: case and spaces ignored
	p, err = m.Match(ctx, normalize.Record{Identifier: "BX8071512400"})
	if err != nil || p == nil || p.ID != 7 {
		t.Fatalf("folded match = %v, %v", p, err)
	}

	if p, _ = m.Match(ctx, normalize.Record{Identifier: "desconocido"}); p != nil {
		t.Fatalf("unknown identifier matched %v", p)
	}
	if p, _ = m.Match(ctx, normalize.Record{}); p != nil {
		t.Fatalf("empty identifier matched %v", p)
	}
}
