package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gevp/console/internal/client/client/clienttest"
	"github.com/gevp/console/internal/client/models"
)

func findProduct(t *testing.T, be *clienttest.Backend, name string) (models.Product, bool) {
	t.Helper()
	for _, p := range be.Products() {
		if p.Name == name {
			return p, true
		}
	}
	return models.Product{}, false
}

func TestDashboard_Stats(t *testing.T) {
	a, be, out := newTestApp(t, clienttest.EditorEmail, clienttest.EditorPassword)
	loginAs(t, a, out)

	got := exec(t, a, out, "dashboard")
	assert.Contains(t, got, "Dashboard")
	assert.Contains(t, got, "Total products")
	assert.Contains(t, got, "1,240", "total quantity of the Kenyan products")
	assert.Contains(t, got, "Nairobi Coffee Ltd")

	assert.Equal(t, 1, countRequests(be, "GET /countries/c1/products"))
	assert.Equal(t, 1, countRequests(be, "GET /exporters"))
}

func TestAddProduct(t *testing.T) {
	a, be, out := newTestApp(t,
		clienttest.EditorEmail, clienttest.EditorPassword,
		"Macadamia Nuts", "kg", "15.5", "3", "2024-Q2", "nuts, premium,, ", "agriculture",
	)
	loginAs(t, a, out)

	got := exec(t, a, out, "addproduct")
	assert.Contains(t, got, "Product created.")
	assert.Contains(t, got, "Macadamia Nuts", "the list is re-fetched")

	p, ok := findProduct(t, be, "Macadamia Nuts")
	require.True(t, ok)
	want := models.ProductInput{
		Name: "Macadamia Nuts", Unit: "kg", Quantity: 15.5, TaxRate: 3, TimePeriod: "2024-Q2",
		Tags: []string{"nuts", "premium"}, Category: "Agriculture",
	}
	if diff := cmp.Diff(want, p.Input()); diff != "" {
		t.Fatalf("created product mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "c1", p.CountryID)
}

func TestAddProduct_GroupedQuantity(t *testing.T) {
	a, be, out := newTestApp(t,
		clienttest.EditorEmail, clienttest.EditorPassword,
		"Macadamia Nuts", "kg", "1,500", "3", "2024-Q2", "", "agriculture",
	)
	loginAs(t, a, out)

	got := exec(t, a, out, "addproduct")
	assert.Contains(t, got, "Product created.")

	p, ok := findProduct(t, be, "Macadamia Nuts")
	require.True(t, ok)
	assert.Equal(t, 1500.0, p.Quantity)
}

func TestAddProduct_InvalidInput(t *testing.T) {
	a, be, out := newTestApp(t,
		clienttest.EditorEmail, clienttest.EditorPassword,
		"Macadamia", "kg", "lots",
		"", "kg", "-1", "0", "", "", "",
	)
	loginAs(t, a, out)

	got := exec(t, a, out, "addproduct")
	assert.Contains(t, got, "quantity: must be a number")

	got = exec(t, a, out, "addproduct")
	assert.Contains(t, got, "name: is required")
	assert.Contains(t, got, "quantity: must not be negative")
	assert.Contains(t, got, "category: is required")

	assert.Zero(t, countRequests(be, "POST /products"))
}

func TestEditProduct_BlankAnswersKeepValues(t *testing.T) {
	a, be, out := newTestApp(t,
		clienttest.EditorEmail, clienttest.EditorPassword,
		"", "", "55", "", "", "", "",
	)
	loginAs(t, a, out)

	got := exec(t, a, out, "editproduct", "p2")
	assert.Contains(t, got, "[Black Tea]", "current values are shown")
	assert.Contains(t, got, "Product updated.")

	p, ok := findProduct(t, be, "Black Tea")
	require.True(t, ok)
	assert.Equal(t, 55.0, p.Quantity)
	assert.Equal(t, 2.5, p.TaxRate)
	assert.Equal(t, []string{"tea"}, p.Tags)
	assert.Equal(t, "Food & Beverages", p.Category)
}

func TestEditProduct_OtherCountryNotFound(t *testing.T) {
	a, be, out := newTestApp(t, clienttest.EditorEmail, clienttest.EditorPassword)
	loginAs(t, a, out)

	got := exec(t, a, out, "editproduct", "p3")
	assert.Contains(t, got, "Product p3 not found.")
	assert.Zero(t, countRequests(be, "PUT /products/p3"))
}

func TestDeleteProduct_AsksForConfirmation(t *testing.T) {
	a, be, out := newTestApp(t, clienttest.EditorEmail, clienttest.EditorPassword, "n", "y")
	loginAs(t, a, out)

	got := exec(t, a, out, "deleteproduct", "p1")
	assert.Contains(t, got, "Delete product p1? [y/N]")
	assert.Contains(t, got, "Cancelled.")
	_, ok := findProduct(t, be, "Arabica Coffee")
	assert.True(t, ok)

	got = exec(t, a, out, "deleteproduct", "p1")
	assert.Contains(t, got, "Product deleted.")
	_, ok = findProduct(t, be, "Arabica Coffee")
	assert.False(t, ok)
}

func TestDeleteProduct_BackendForbidden(t *testing.T) {
	a, _, out := newTestApp(t, clienttest.EditorEmail, clienttest.EditorPassword, "y")
	loginAs(t, a, out)

	got := exec(t, a, out, "deleteproduct", "p3")
	assert.Contains(t, got, "Not authorized to modify this product")
}

func TestAddExporter(t *testing.T) {
	a, be, out := newTestApp(t,
		clienttest.EditorEmail, clienttest.EditorPassword,
		"Mombasa Tea Co", "KE-777", "", "https://mombasa.example",
		"", "KE-778", "", "",
	)
	loginAs(t, a, out)

	got := exec(t, a, out, "addexporter")
	assert.Contains(t, got, "Exporter created.")
	assert.Contains(t, got, "Mombasa Tea Co")

	var found bool
	for _, e := range be.Exporters() {
		if e.LicenseID == "KE-777" {
			found = true
			assert.Equal(t, "c1", e.CountryID)
			assert.Equal(t, "https://mombasa.example", e.Website)
		}
	}
	assert.True(t, found)

	got = exec(t, a, out, "addexporter")
	assert.Contains(t, got, "name: is required")
}
