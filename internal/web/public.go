package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gevp/console/internal/client/client"
	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/services"
	"github.com/gevp/console/internal/units"
)

type homeData struct {
	Countries    []models.Country
	ProductCount int
	Categories   []string
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	var (
		countries []models.Country
		products  []models.Product
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		countries, err = h.api.ListCountries(ctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = h.api.ListProducts(ctx, "", "")
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "home", "nav.home", homeData{
		Countries:    countries,
		ProductCount: len(products),
		Categories:   services.Categories,
	})
}

type unitGroup struct {
	Dimension units.Dimension
	Units     []string
}

type converterData struct {
	Value  string
	From   string
	To     string
	Result string
	Error  string
	Groups []unitGroup
}

func newConverter() converterData {
	c := converterData{From: "kg", To: "lb"}
	for _, d := range units.Dimensions() {
		c.Groups = append(c.Groups, unitGroup{
			Dimension: d,
			Units:     append(units.List(d, units.Metric), units.List(d, units.Imperial)...),
		})
	}
	return c
}

type exportsData struct {
	Products   []models.Product
	Exporters  []models.Exporter
	Countries  []models.Country
	Search     string
	Category   string
	CountryID  string
	Categories []string
	Converter  converterData
}

// exports is the public directory: products filtered by search and category,
// exporters filtered by country, plus the unit converter.
func (h *Handler) exports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := exportsData{
		Search:     strings.TrimSpace(q.Get("search")),
		Category:   q.Get("category"),
		CountryID:  q.Get("country"),
		Categories: services.Categories,
		Converter:  newConverter(),
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		data.Products, err = h.api.ListProducts(ctx, data.Search, data.Category)
		return err
	})
	g.Go(func() (err error) {
		data.Exporters, err = h.api.ListExporters(ctx, data.CountryID)
		return err
	})
	g.Go(func() (err error) {
		data.Countries, err = h.api.ListCountries(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(w, r, err)
		return
	}
	data.Products = services.FilterProducts(data.Products, data.Search, data.Category)

	h.render(w, r, http.StatusOK, "exports", "nav.exports", data)
}

// convert renders the converter with the result of the query. It makes no
// backend call.
func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	tr := h.translator()
	q := r.URL.Query()

	c := newConverter()
	c.Value, c.From, c.To = q.Get("value"), q.Get("from"), q.Get("to")

	status := http.StatusOK
	v, err := tr.ParseNumber(c.Value)
	if err != nil {
		c.Error = tr.T("converter.invalid", c.Value)
		status = http.StatusBadRequest
	} else if out, err := units.Convert(v, c.From, c.To); errors.Is(err, units.ErrUnsupportedConversion) {
		c.Error = tr.T("converter.unsupported", c.From, c.To)
		status = http.StatusBadRequest
	} else {
		c.Result = tr.T("converter.result", tr.Number(v), c.From, tr.Amount(units.Round2(out)), c.To)
	}

	h.render(w, r, status, "exports", "converter.title", exportsData{Converter: c, Categories: services.Categories})
}

type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Message string `json:"message,omitempty"`
}

// healthz reports the dashboard as up and relays the backend health. It
// answers 503 when the backend cannot be reached.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	status := http.StatusOK

	hs, err := h.api.Health(r.Context())
	if err != nil {
		resp.Backend = "unavailable"
		resp.Message = client.Message(err)
		status = http.StatusServiceUnavailable
	} else {
		resp.Backend = hs.Status
		resp.Message = hs.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
