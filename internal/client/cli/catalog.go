package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/services"
	"github.com/gevp/console/internal/units"
)

const categoryFlag = "--category="

func (a *App) Countries(ctx context.Context) error {
	countries, err := a.api.ListCountries(ctx)
	if err != nil {
		return err
	}
	a.println(a.render().title(a.T("countries.title")))
	if len(countries) == 0 {
		a.println(a.T("countries.none"))
		return nil
	}
	a.println(a.countryTable(countries))
	return nil
}

// Products searches the export directory. Search terms are joined with
// spaces; --category=X restricts the category, "_" standing for a space.
func (a *App) Products(ctx context.Context, args []string) error {
	search, category := parseProductArgs(args)

	products, err := a.api.ListProducts(ctx, search, category)
	if err != nil {
		return err
	}
	a.printProducts(services.FilterProducts(products, search, category))
	return nil
}

func parseProductArgs(args []string) (search, category string) {
	var terms []string
	for _, arg := range args {
		if v, ok := strings.CutPrefix(arg, categoryFlag); ok {
			category = canonicalCategory(v)
			continue
		}
		terms = append(terms, arg)
	}
	return strings.Join(terms, " "), category
}

// canonicalCategory maps user input like "food_&_beverages" onto a known
// category. Unknown values are passed through.
func canonicalCategory(v string) string {
	v = strings.TrimSpace(strings.ReplaceAll(v, "_", " "))
	for _, c := range services.Categories {
		if strings.EqualFold(c, v) {
			return c
		}
	}
	return v
}

// Country shows the products and exporters of one country, fetched
// concurrently.
func (a *App) Country(ctx context.Context, id string) error {
	var (
		products  []models.Product
		exporters []models.Exporter
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = a.api.ListCountryProducts(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		exporters, err = a.api.ListExporters(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for _, p := range products {
		if p.Country != nil {
			a.println(a.render().title(fmt.Sprintf("%s (%s)", p.Country.Name, p.Country.Code)))
			break
		}
	}
	a.printProducts(products)
	a.printExporters(exporters)
	return nil
}

func (a *App) Exporters(ctx context.Context, args []string) error {
	countryID := ""
	if len(args) > 0 {
		countryID = args[0]
	}

	exporters, err := a.api.ListExporters(ctx, countryID)
	if err != nil {
		return err
	}
	a.printExporters(exporters)
	return nil
}

// Convert converts a value between units. Unit names may contain spaces
// ("ton (US)"); the split between the source and target unit is the first one
// that forms a supported pair. Without arguments the unit catalog is shown.
func (a *App) Convert(_ context.Context, args []string) error {
	if len(args) == 0 {
		a.printUnits()
		return nil
	}
	if len(args) < 3 {
		a.println(a.T("app.usage", "convert <value> <from> <to>"))
		return nil
	}

	v, err := a.tr.ParseNumber(args[0])
	if err != nil {
		a.println(a.render().failure(a.T("converter.invalid", args[0])))
		return nil
	}

	from, to := splitUnits(args[1:])
	out, err := units.Convert(v, from, to)
	if errors.Is(err, units.ErrUnsupportedConversion) {
		a.println(a.render().failure(a.T("converter.unsupported", from, to)))
		return nil
	}
	if err != nil {
		return err
	}

	a.println(a.T("converter.result", a.tr.Number(v), from, a.tr.Amount(units.Round2(out)), to))
	return nil
}

func splitUnits(tokens []string) (from, to string) {
	for i := 1; i < len(tokens); i++ {
		from, to = strings.Join(tokens[:i], " "), strings.Join(tokens[i:], " ")
		if units.Supported(from, to) {
			return from, to
		}
	}
	return tokens[0], strings.Join(tokens[1:], " ")
}

func (a *App) printUnits() {
	a.println(a.render().title(a.T("converter.title")))
	rows := make([][]string, 0, len(units.Dimensions()))
	for _, d := range units.Dimensions() {
		rows = append(rows, []string{
			string(d),
			strings.Join(units.List(d, units.Metric), ", "),
			strings.Join(units.List(d, units.Imperial), ", "),
		})
	}
	a.println(a.render().table([]string{"", string(units.Metric), string(units.Imperial)}, rows))
}

func (a *App) Health(ctx context.Context) error {
	h, err := a.api.Health(ctx)
	if err != nil {
		return err
	}
	a.println(a.T("health.status", h.Status, h.Message))
	return nil
}

func (a *App) printProducts(products []models.Product) {
	a.println(a.render().title(a.T("products.title")))
	if len(products) == 0 {
		a.println(a.T("products.none"))
		return
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		country := p.CountryID
		if p.Country != nil {
			country = p.Country.Name
		}
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Category,
			a.tr.Number(p.Quantity) + " " + p.Unit,
			a.tr.Number(p.TaxRate) + "%",
			p.TimePeriod,
			strings.Join(p.Tags, ", "),
			country,
		})
	}
	a.println(a.render().table([]string{
		"ID",
		a.T("products.name"),
		a.T("products.category"),
		a.T("products.quantity"),
		a.T("products.taxRate"),
		a.T("products.timePeriod"),
		"Tags",
		a.T("products.country"),
	}, rows))
}

func (a *App) printExporters(exporters []models.Exporter) {
	a.println(a.render().title(a.T("exporters.title")))
	if len(exporters) == 0 {
		a.println(a.T("exporters.none"))
		return
	}

	rows := make([][]string, 0, len(exporters))
	for _, e := range exporters {
		country := e.CountryID
		if e.Country != nil {
			country = e.Country.Name
		}
		rows = append(rows, []string{e.ID, e.Name, e.LicenseID, e.Contact, e.Website, country})
	}
	a.println(a.render().table([]string{
		"ID",
		a.T("exporters.name"),
		a.T("exporters.licenseId"),
		a.T("exporters.contact"),
		a.T("exporters.website"),
		a.T("products.country"),
	}, rows))
}

func (a *App) countryTable(countries []models.Country) string {
	rows := make([][]string, 0, len(countries))
	for _, c := range countries {
		rows = append(rows, []string{c.ID, c.Name, c.Code, c.Region})
	}
	return a.render().table([]string{
		"ID",
		a.T("products.name"),
		a.T("countries.code"),
		a.T("countries.region"),
	}, rows)
}
