package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gevp/console/internal/client/models"
)

func TestParseProductArgs(t *testing.T) {
	tests := []struct {
		args         []string
		wantSearch   string
		wantCategory string
	}{
		{nil, "", ""},
		{[]string{"black", "tea"}, "black tea", ""},
		{[]string{"--category=textiles"}, "", "Textiles"},
		{[]string{"tea", "--category=food_&_beverages"}, "tea", "Food & Beverages"},
		{[]string{"--category=Spices"}, "", "Spices"},
	}

	for _, tc := range tests {
		search, category := parseProductArgs(tc.args)
		assert.Equal(t, tc.wantSearch, search, "%v", tc.args)
		assert.Equal(t, tc.wantCategory, category, "%v", tc.args)
	}
}

func TestSplitUnits(t *testing.T) {
	tests := []struct {
		tokens   []string
		from, to string
	}{
		{[]string{"kg", "lb"}, "kg", "lb"},
		{[]string{"ton", "ton", "(US)"}, "ton", "ton (US)"},
		{[]string{"ton", "(US)", "ton"}, "ton (US)", "ton"},
		{[]string{"kg", "fl", "oz"}, "kg", "fl oz"},
	}

	for _, tc := range tests {
		from, to := splitUnits(tc.tokens)
		assert.Equal(t, tc.from, from, "%v", tc.tokens)
		assert.Equal(t, tc.to, to, "%v", tc.tokens)
	}
}

func TestCountries(t *testing.T) {
	a, _, out := newTestApp(t)

	got := exec(t, a, out, "countries")
	assert.Contains(t, got, "Countries")
	assert.Contains(t, got, "Kenya")
	assert.Contains(t, got, "Bangladesh")
	assert.Contains(t, got, "Asia")
}

func TestProducts_SearchAndCategory(t *testing.T) {
	a, be, out := newTestApp(t)

	got := exec(t, a, out, "products")
	for _, name := range []string{"Arabica Coffee", "Black Tea", "Raw Jute"} {
		assert.Contains(t, got, name)
	}
	assert.Contains(t, got, "1,200 kg")

	got = exec(t, a, out, "products", "coffee")
	assert.Contains(t, got, "Arabica Coffee")
	assert.NotContains(t, got, "Black Tea")

	got = exec(t, a, out, "products", "--category=food_&_beverages")
	assert.Contains(t, got, "Black Tea")
	assert.NotContains(t, got, "Arabica Coffee")

	got = exec(t, a, out, "products", "saffron")
	assert.Contains(t, got, "No products found.")

	assert.Equal(t, 4, countRequests(be, "GET /products"))
}

func TestCountry_ShowsProductsAndExporters(t *testing.T) {
	a, _, out := newTestApp(t)

	got := exec(t, a, out, "country", "c2")
	assert.Contains(t, got, "Bangladesh (BD)")
	assert.Contains(t, got, "Raw Jute")
	assert.Contains(t, got, "Dhaka Jute Mills")
	assert.NotContains(t, got, "Arabica Coffee")

	got = exec(t, a, out, "country", "zz")
	assert.Contains(t, got, "Country not found")
}

func TestExporters(t *testing.T) {
	a, _, out := newTestApp(t)

	got := exec(t, a, out, "exporters")
	assert.Contains(t, got, "Nairobi Coffee Ltd")
	assert.Contains(t, got, "Dhaka Jute Mills")

	got = exec(t, a, out, "exporters", "c1")
	assert.Contains(t, got, "KE-001")
	assert.NotContains(t, got, "BD-042")
}

func TestConvert(t *testing.T) {
	a, be, out := newTestApp(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"10", "kg", "lb"}, "10 kg = 22.05 lb"},
		{[]string{"22.0462", "lb", "kg"}, "22.05 lb = 10.00 kg"},
		{[]string{"1", "ton", "ton", "(US)"}, "1 ton = 1.10 ton (US)"},
		{[]string{"2.5", "liter", "gallon"}, "2.5 liter = 0.66 gallon"},
		{[]string{"1,500", "kg", "lb"}, "1,500 kg = 3,306.93 lb"},
		{[]string{"2,5", "liter", "gallon"}, "Invalid number: 2,5."},
		{[]string{"3", "kg", "kg"}, "3 kg = 3.00 kg"},
		{[]string{"5", "kg", "liter"}, "Cannot convert kg to liter."},
		{[]string{"abc", "kg", "lb"}, "Invalid number: abc."},
		{[]string{"5", "kg"}, "Usage: convert <value> <from> <to>"},
	}

	for _, tc := range tests {
		got := exec(t, a, out, "convert", tc.args...)
		assert.Contains(t, got, tc.want, "%v", tc.args)
	}

	got := exec(t, a, out, "convert")
	assert.Contains(t, got, "hectare")
	assert.Contains(t, got, "ton (US)")

	assert.Empty(t, be.Requests(), "conversion is local")
}

func TestConvert_ReadsNumbersInCurrentLanguage(t *testing.T) {
	a, _, out := newTestApp(t)
	exec(t, a, out, "lang", "es")

	got := exec(t, a, out, "convert", "10,5", "kg", "lb")
	assert.Contains(t, got, "10,5 kg = 23,15 lb")

	got = exec(t, a, out, "convert", "1.5", "kg", "lb")
	assert.NotContains(t, got, " = ")
}

func TestThemeAndLanguage(t *testing.T) {
	a, _, out := newTestApp(t)

	assert.Contains(t, exec(t, a, out, "theme"), "Theme: light.")
	assert.Contains(t, exec(t, a, out, "theme", "toggle"), "Theme: dark.")
	assert.Equal(t, models.ThemeDark, a.prefs.Preferences().Theme)
	assert.Contains(t, exec(t, a, out, "theme", "LIGHT"), "Theme: light.")
	assert.Contains(t, exec(t, a, out, "theme", "blue"), "Unknown theme: blue.")
	assert.Equal(t, models.ThemeLight, a.prefs.Preferences().Theme)

	got := exec(t, a, out, "lang")
	assert.Contains(t, got, "Language: English.")
	assert.Contains(t, got, "bn বাংলা")

	assert.Contains(t, exec(t, a, out, "lang", "es-MX"), "Idioma: Español.")
	assert.Equal(t, "es", a.prefs.Preferences().Language)
	assert.Equal(t, "Productos", a.T("products.title"))

	assert.Contains(t, exec(t, a, out, "lang", "de"), "de")
	assert.Equal(t, "es", a.prefs.Preferences().Language)
}

func TestRender_ThemesProduceTables(t *testing.T) {
	for _, theme := range []models.Theme{models.ThemeLight, models.ThemeDark, "unknown"} {
		s := newRenderer(theme).table([]string{"ID", "Name"}, [][]string{{"1", "Coffee"}, {"2", "Tea"}})
		require.Contains(t, s, "Coffee", theme)
		require.Contains(t, s, "Tea", theme)
		require.Contains(t, s, "Name", theme)
	}
}
