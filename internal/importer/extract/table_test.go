package extract

import "testing"

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"UPC/EAN ", "upc_ean"},
		{"Número de Parte", "numero_de_parte"},
		{"  Precio   Lista ", "precio_lista"},
		{"EXISTENCIA", "existencia"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeLabel(c.in); got != c.want {
			t.Errorf("NormalizeLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
