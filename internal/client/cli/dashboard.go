package cli

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/services"
)

// ownProducts lists the products of the user's country, or every product for
// a user without a country.
func (a *App) ownProducts(ctx context.Context) ([]models.Product, error) {
	countryID := currentUser(a.session.Session()).CountryID
	if countryID == "" {
		return a.api.ListProducts(ctx, "", "")
	}
	return a.api.ListCountryProducts(ctx, countryID)
}

func (a *App) ownExporters(ctx context.Context) ([]models.Exporter, error) {
	return a.api.ListExporters(ctx, currentUser(a.session.Session()).CountryID)
}

// Dashboard shows the statistics, products and exporters of the user's
// country.
func (a *App) Dashboard(ctx context.Context) error {
	var (
		products  []models.Product
		exporters []models.Exporter
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = a.ownProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		exporters, err = a.ownExporters(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	st := services.ComputeDashboardStats(products, exporters)
	a.println(a.render().title(a.T("nav.dashboard")))
	a.println(a.render().table([]string{"", ""}, [][]string{
		{a.T("stats.totalProducts"), a.tr.Number(float64(st.TotalProducts))},
		{a.T("stats.exporters"), a.tr.Number(float64(st.Exporters))},
		{a.T("stats.categories"), a.tr.Number(float64(st.Categories))},
		{a.T("stats.totalQuantity"), a.tr.Number(st.TotalQuantity)},
	}))
	a.printProducts(products)
	a.printExporters(exporters)
	return nil
}

func (a *App) reloadProducts(ctx context.Context) error {
	products, err := a.ownProducts(ctx)
	if err != nil {
		return err
	}
	a.printProducts(products)
	return nil
}

func (a *App) AddProduct(ctx context.Context) error {
	in, err := a.productForm(models.ProductInput{}, false)
	if err != nil {
		return err
	}
	if err := services.ValidateProductInput(in); err != nil {
		return err
	}
	if _, err := a.api.CreateProduct(ctx, in); err != nil {
		return err
	}
	a.notify(a.T("products.created"))
	return a.reloadProducts(ctx)
}

// EditProduct pre-fills the form with the product's current values; an empty
// answer keeps the value shown in brackets.
func (a *App) EditProduct(ctx context.Context, id string) error {
	products, err := a.ownProducts(ctx)
	if err != nil {
		return err
	}

	var current *models.Product
	for i := range products {
		if products[i].ID == id {
			current = &products[i]
			break
		}
	}
	if current == nil {
		a.println(a.render().failure(a.T("products.notFound", id)))
		return nil
	}

	in, err := a.productForm(current.Input(), true)
	if err != nil {
		return err
	}
	if err := services.ValidateProductInput(in); err != nil {
		return err
	}
	if _, err := a.api.UpdateProduct(ctx, id, in); err != nil {
		return err
	}
	a.notify(a.T("products.updated"))
	return a.reloadProducts(ctx)
}

func (a *App) DeleteProduct(ctx context.Context, id string) error {
	if !GetConfirmation(a.reader, a.T("products.confirmDelete", id), a.out) {
		a.println(a.T("app.cancelled"))
		return nil
	}
	if _, err := a.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	a.notify(a.T("products.deleted"))
	return a.reloadProducts(ctx)
}

func (a *App) AddExporter(ctx context.Context) error {
	var in models.ExporterInput
	fields := []struct {
		label string
		dst   *string
	}{
		{a.T("exporters.name"), &in.Name},
		{a.T("exporters.licenseId"), &in.LicenseID},
		{a.T("exporters.contact"), &in.Contact},
		{a.T("exporters.website"), &in.Website},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.label, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if err := services.ValidateExporterInput(in); err != nil {
		return err
	}
	if _, err := a.api.CreateExporter(ctx, in); err != nil {
		return err
	}
	a.notify(a.T("exporters.created"))

	exporters, err := a.ownExporters(ctx)
	if err != nil {
		return err
	}
	a.printExporters(exporters)
	return nil
}

// productForm prompts for every product field. When editing, the current
// value is shown and kept on an empty answer.
func (a *App) productForm(cur models.ProductInput, editing bool) (models.ProductInput, error) {
	ask := func(label, current string) (string, error) {
		if editing {
			label = fmt.Sprintf("%s [%s]", label, current)
		}
		v, err := GetSimpleText(a.reader, label, a.out)
		if err != nil {
			return "", err
		}
		if v == "" && editing {
			return current, nil
		}
		return v, nil
	}
	askNumber := func(field, label string, current float64) (float64, error) {
		s, err := ask(label, a.tr.Plain(current))
		if err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}
		v, err := a.tr.ParseNumber(s)
		if err != nil {
			return 0, &services.ValidationError{Fields: map[string]string{field: services.CodeNotNumber}}
		}
		return v, nil
	}

	var (
		in  models.ProductInput
		err error
	)
	if in.Name, err = ask(a.T("products.name"), cur.Name); err != nil {
		return in, err
	}
	unitLabel := fmt.Sprintf("%s (%s)", a.T("products.unit"), strings.Join(services.ProductUnits, ", "))
	if in.Unit, err = ask(unitLabel, cur.Unit); err != nil {
		return in, err
	}
	if in.Quantity, err = askNumber("quantity", a.T("products.quantity"), cur.Quantity); err != nil {
		return in, err
	}
	if in.TaxRate, err = askNumber("tax_rate", a.T("products.taxRate"), cur.TaxRate); err != nil {
		return in, err
	}
	if in.TimePeriod, err = ask(a.T("products.timePeriod"), cur.TimePeriod); err != nil {
		return in, err
	}
	tags, err := ask(a.T("products.tags"), strings.Join(cur.Tags, ", "))
	if err != nil {
		return in, err
	}
	in.Tags = services.ParseTags(tags)

	categoryLabel := fmt.Sprintf("%s (%s)", a.T("products.category"), strings.Join(services.Categories, ", "))
	category, err := ask(categoryLabel, cur.Category)
	if err != nil {
		return in, err
	}
	in.Category = canonicalCategory(category)
	return in, nil
}
