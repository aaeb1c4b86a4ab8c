package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/gevp/console/internal/client/i18n"
	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/services"
)

const dashboardPath = "/dashboard"

type dashboardData struct {
	Products   []models.Product
	Exporters  []models.Exporter
	Stats      services.DashboardStats
	Categories []string
	Units      []string
	Form       productForm
}

// productForm holds the values of the product form: empty for a new product,
// or those of the product being edited.
type productForm struct {
	Action     string
	Editing    bool
	Name       string
	Unit       string
	Quantity   string
	TaxRate    string
	TimePeriod string
	Tags       string
	Category   string
}

func newProductForm(p *models.Product, tr *i18n.Translator) productForm {
	if p == nil {
		return productForm{Action: dashboardPath + "/products", Unit: "kg"}
	}
	return productForm{
		Action:     dashboardPath + "/products/" + p.ID,
		Editing:    true,
		Name:       p.Name,
		Unit:       p.Unit,
		Quantity:   tr.Plain(p.Quantity),
		TaxRate:    tr.Plain(p.TaxRate),
		TimePeriod: p.TimePeriod,
		Tags:       strings.Join(p.Tags, ", "),
		Category:   p.Category,
	}
}

// ownProducts lists the products of the user's country, or every product for
// a user without a country.
func (h *Handler) ownProducts(ctx context.Context, countryID string) ([]models.Product, error) {
	if countryID == "" {
		return h.api.ListProducts(ctx, "", "")
	}
	return h.api.ListCountryProducts(ctx, countryID)
}

// dashboard shows the statistics, products and exporters of the operator's
// country. ?edit=<id> opens the edit form of one product.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	countryID := ""
	if u := h.session.Session().User; u != nil {
		countryID = u.CountryID
	}

	data := dashboardData{Categories: services.Categories, Units: services.ProductUnits}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		data.Products, err = h.ownProducts(ctx, countryID)
		return err
	})
	g.Go(func() (err error) {
		data.Exporters, err = h.api.ListExporters(ctx, countryID)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(w, r, err)
		return
	}

	data.Stats = services.ComputeDashboardStats(data.Products, data.Exporters)

	var edit *models.Product
	if id := r.URL.Query().Get("edit"); id != "" {
		for i := range data.Products {
			if data.Products[i].ID == id {
				edit = &data.Products[i]
			}
		}
	}
	data.Form = newProductForm(edit, h.translator())

	h.render(w, r, http.StatusOK, "dashboard", "nav.dashboard", data)
}

// productInput reads the product form. Numbers are read in the operator's
// language; unparseable ones are reported as validation failures.
func productInput(r *http.Request, tr *i18n.Translator) (models.ProductInput, error) {
	in := models.ProductInput{
		Name:       strings.TrimSpace(r.PostFormValue("name")),
		Unit:       r.PostFormValue("unit"),
		TimePeriod: strings.TrimSpace(r.PostFormValue("time_period")),
		Tags:       services.ParseTags(r.PostFormValue("tags")),
		Category:   r.PostFormValue("category"),
	}

	bad := map[string]string{}
	for field, dst := range map[string]*float64{"quantity": &in.Quantity, "tax_rate": &in.TaxRate} {
		raw := strings.TrimSpace(r.PostFormValue(field))
		if raw == "" {
			continue
		}
		v, err := tr.ParseNumber(raw)
		if err != nil {
			bad[field] = services.CodeNotNumber
			continue
		}
		*dst = v
	}
	err := services.ValidateProductInput(in)
	if len(bad) == 0 {
		return in, err
	}
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		for field, code := range verr.Fields {
			if _, ok := bad[field]; !ok {
				bad[field] = code
			}
		}
	}
	return in, &services.ValidationError{Fields: bad}
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	in, err := productInput(r, h.translator())
	if err == nil {
		_, err = h.api.CreateProduct(r.Context(), in)
	}
	h.done(w, r, dashboardPath, err, "products.created")
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	in, err := productInput(r, h.translator())
	if err == nil {
		_, err = h.api.UpdateProduct(r.Context(), mux.Vars(r)["id"], in)
	}
	h.done(w, r, dashboardPath, err, "products.updated")
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	_, err := h.api.DeleteProduct(r.Context(), mux.Vars(r)["id"])
	h.done(w, r, dashboardPath, err, "products.deleted")
}

func (h *Handler) createExporter(w http.ResponseWriter, r *http.Request) {
	in := models.ExporterInput{
		Name:      strings.TrimSpace(r.PostFormValue("name")),
		LicenseID: strings.TrimSpace(r.PostFormValue("license_id")),
		Contact:   strings.TrimSpace(r.PostFormValue("contact")),
		Website:   strings.TrimSpace(r.PostFormValue("website")),
	}

	err := services.ValidateExporterInput(in)
	if err == nil {
		_, err = h.api.CreateExporter(r.Context(), in)
	}
	h.done(w, r, dashboardPath, err, "exporters.created")
}
