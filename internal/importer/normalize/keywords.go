package normalize

// Role names a canonical column role inside a feed row.
type Role string

const (
	RoleID       Role = "id"
	RolePrice    Role = "price"
	RoleStock    Role = "stock"
	RoleMPN      Role = "mpn"
	RoleGTIN     Role = "gtin"
	RoleName     Role = "name"
	RoleBrand    Role = "brand"
	RoleSocket   Role = "socket"
	RoleCurrency Role = "currency"
)

// Candidates maps each role to the normalized labels suppliers have been
// seen using for it. Passed at construction so fixtures can swap it without
// touching package state.
type Candidates map[Role][]string

// DefaultCandidates covers the vocabulary observed across supplier feeds
// (Spanish and English labels).
func DefaultCandidates() Candidates {
	return Candidates{
		RoleID:       {"sku", "mpn", "part", "clave", "modelo", "upc", "ean", "codigo", "identificador", "upc_ean"},
		RolePrice:    {"price", "precio", "unit_price", "p_publico", "p_mayoreo", "costo", "cost", "p_lista"},
		RoleStock:    {"stock", "existencia", "existencias", "qty", "inventario", "cantidad", "disponible", "availability"},
		RoleMPN:      {"mpn", "numero_de_parte", "no_parte", "part_number"},
		RoleGTIN:     {"gtin", "upc", "ean", "upc_ean", "codigo_barras"},
		RoleName:     {"name", "nombre", "descripcion", "description", "producto", "articulo"},
		RoleBrand:    {"brand", "marca", "fabricante"},
		RoleSocket:   {"socket", "plataforma"},
		RoleCurrency: {"currency", "moneda", "divisa"},
	}
}

// HeaderKeywords flattens the vocabulary the header resolver tests
// candidate rows against: the currency/price/stock/identifier sets.
func (c Candidates) HeaderKeywords() []string {
	var out []string
	for _, role := range []Role{RoleID, RolePrice, RoleStock, RoleCurrency} {
		out = append(out, c[role]...)
	}
	return out
}

// CurrencyTable maps free-text currency labels to the USD bucket or the
// settlement bucket. Anything unrecognized passes through as settlement.
type CurrencyTable struct {
	// Settlement is the canonical storage currency code.
	Settlement string
	// USDAliases are labels converted at the run's exchange rate.
	USDAliases []string
	// SettlementAliases pass through unconverted.
	SettlementAliases []string
}

// DefaultCurrencyTable settles in MXN.
func DefaultCurrencyTable() CurrencyTable {
	return CurrencyTable{
		Settlement:        "MXN",
		USDAliases:        []string{"usd", "us$", "dolar", "dolares", "dlls", "dls", "usad"},
		SettlementAliases: []string{"mxn", "mn", "m.n.", "peso", "pesos", "mex"},
	}
}
