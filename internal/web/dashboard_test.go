package web

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gevp/console/internal/client/client/clienttest"
	"github.com/gevp/console/internal/client/models"
)

func productValues(name, quantity string) url.Values {
	return url.Values{
		"name":        {name},
		"quantity":    {quantity},
		"unit":        {"kg"},
		"tax_rate":    {"1"},
		"time_period": {"2024-Q2"},
		"tags":        {"beans, green"},
		"category":    {"Agriculture"},
	}
}

func findProduct(ps []models.Product, name string) (models.Product, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return models.Product{}, false
}

func TestDashboard_ShowsOwnCountry(t *testing.T) {
	e := newTestEnv(t)
	e.loginAs(t, clienttest.EditorEmail, clienttest.EditorPassword)

	rec := e.get("/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Arabica Coffee")
	assert.Contains(t, body, "Black Tea")
	assert.NotContains(t, body, "Raw Jute")
	assert.Contains(t, body, "Nairobi Coffee Ltd")
	assert.Contains(t, body, "1,240", "total quantity")
	assert.Contains(t, body, `action="/dashboard/products"`)
}

func TestDashboard_EditFormIsPrefilled(t *testing.T) {
	e := newTestEnv(t)
	e.loginAs(t, clienttest.EditorEmail, clienttest.EditorPassword)

	body := e.get("/dashboard?edit=p1").Body.String()
	assert.Contains(t, body, `action="/dashboard/products/p1"`)
	assert.Contains(t, body, `value="1200"`)
	assert.Contains(t, body, `value="coffee, arabica"`)
}

func TestCreateProduct(t *testing.T) {
	e := newTestEnv(t)
	e.loginAs(t, clienttest.EditorEmail, clienttest.EditorPassword)

	rec := e.post("/dashboard/products", productValues("Green Beans", "10.5"))
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	assert.Contains(t, e.follow(t, rec), "Product created.")

	p, ok := findProduct(e.be.Products(), "Green Beans")
	require.True(t, ok)
	assert.Equal(t, 10.5, p.Quantity)
	assert.Equal(t, []string{"beans", "green"}, p.Tags)
	assert.Equal(t, "c1", p.CountryID)
}

func TestCreateProduct_InvalidInput(t *testing.T) {
	e := newTestEnv(t)
	e.loginAs(t, clienttest.EditorEmail, clienttest.EditorPassword)

	rec := e.post("/dashboard/products", productValues("", "abc"))
	body := e.follow(t, rec)
	assert.Contains(t, body, "name: is required")
	assert.Contains(t, body, "quantity: must be a number")
	assert.Zero(t, countRequests(e.be, "POST /products"))
}

func TestCreateProduct_ThousandsSeparator(t *testing.T) {
	e := newTestEnv(t)
	e.loginAs(t, clienttest.EditorEmail, clienttest.EditorPassword)

	e.post("/dashboard/products", productValues("Green Beans", "1,500"))
	p, ok := findProduct(e.be.Products(), "Green Beans")
	require.True(t, ok)
	assert.Equal(t, 1500.0, p.Quantity, "a grouped number is not a decimal")
}

func TestCreateProduct_DecimalCommaRejectedInEnglish(t *testing.T) {
	e := newTestEnv(t)
	e.loginAs(t, clienttest.EditorEmail, clienttest.EditorPassword)

	body := e.follow(t, e.post("/dashboard/products", productValues("Green Beans", "10,5")))
	assert.Contains(t, body, "quantity: must be a number")
	assert.Zero(t, countRequests(e.be, "POST /products"))
}

func TestUpdateProduct(t *testing.T) {
	e := newTestEnv(t)
	e.loginAs(t, clienttest.EditorEmail, clienttest.EditorPassword)

	rec := e.post("/dashboard/products/p1", productValues("Arabica Coffee AA", "1500"))
	assert.Contains(t, e.follow(t, rec), "Product updated.")

	p, ok := findProduct(e.be.Products(), "Arabica Coffee AA")
	require.True(t, ok)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, 1500.0, p.Quantity)
}

func TestDeleteProduct(t *testing.T) {
	e := newTestEnv(t)
	e.loginAs(t, clienttest.EditorEmail, clienttest.EditorPassword)

	rec := e.post("/dashboard/products/p2/delete", nil)
	assert.Contains(t, e.follow(t, rec), "Product deleted.")
	_, ok := findProduct(e.be.Products(), "Black Tea")
	assert.False(t, ok)

	rec = e.post("/dashboard/products/p3/delete", nil)
	assert.Contains(t, e.follow(t, rec), "Not authorized to modify this product")
	_, ok = findProduct(e.be.Products(), "Raw Jute")
	assert.True(t, ok)
}

func TestCreateExporter(t *testing.T) {
	e := newTestEnv(t)
	e.loginAs(t, clienttest.EditorEmail, clienttest.EditorPassword)

	rec := e.post("/dashboard/exporters", url.Values{"name": {"Mombasa Tea Co"}, "license_id": {"KE-002"}})
	assert.Contains(t, e.follow(t, rec), "Exporter created.")
	assert.Len(t, e.be.Exporters(), 3)

	rec = e.post("/dashboard/exporters", url.Values{"name": {"Duplicate"}, "license_id": {"KE-001"}})
	assert.Contains(t, e.follow(t, rec), "License ID already registered")

	rec = e.post("/dashboard/exporters", url.Values{"name": {"No License"}})
	assert.Contains(t, e.follow(t, rec), "license_id: is required")
	assert.Len(t, e.be.Exporters(), 3)
}
