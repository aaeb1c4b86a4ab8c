// Package clienttest provides an in-memory GEVP backend for tests of code
// built on client.HTTPClient. It speaks the same HTTP/JSON dialect as the
// real service: form-encoded login, bearer tokens, FastAPI style
// {"detail": ...} errors and role checks.
package clienttest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/gevp/console/internal/client/models"
)

// Seeded accounts.
const (
	AdminEmail     = "admin@gevp.org"
	AdminPassword  = "admin123"
	EditorEmail    = "editor@ke.gov"
	EditorPassword = "editor123"
	PendingEmail   = "pending@bd.gov"
)

type account struct {
	user     models.User
	password string
}

// Backend is a fake GEVP API served by an httptest.Server.
type Backend struct {
	Server *httptest.Server

	mu        sync.Mutex
	accounts  []*account
	countries []models.Country
	products  []models.Product
	exporters []models.Exporter
	audit     []models.AuditLogEntry
	tokens    map[string]string // token -> user id
	requests  []string
	nextID    int
}

// New starts a seeded backend and stops it when the test ends.
func New(t testing.TB) *Backend {
	t.Helper()

	b := &Backend{tokens: map[string]string{}, nextID: 100}
	b.seed()
	b.Server = httptest.NewServer(b.router())
	t.Cleanup(b.Server.Close)
	return b
}

// URL is the base URL of the backend.
func (b *Backend) URL() string { return b.Server.URL }

func (b *Backend) seed() {
	kenya := models.Country{ID: "c1", Name: "Kenya", Code: "KE", Region: "Africa"}
	bangladesh := models.Country{ID: "c2", Name: "Bangladesh", Code: "BD", Region: "Asia"}
	b.countries = []models.Country{kenya, bangladesh}

	b.accounts = []*account{
		{user: models.User{ID: "u1", Email: AdminEmail, Role: models.RoleSuperAdmin, IsActive: true}, password: AdminPassword},
		{user: models.User{ID: "u2", Email: EditorEmail, Role: models.RoleEditor, CountryID: "c1", IsActive: true}, password: EditorPassword},
		{user: models.User{ID: "u3", Email: PendingEmail, Role: models.RoleCountryAdmin, CountryID: "c2"}, password: "pending123"},
	}

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	b.products = []models.Product{
		{ID: "p1", Name: "Arabica Coffee", Unit: "kg", Quantity: 1200, TaxRate: 5, TimePeriod: "2024-Q1",
			Tags: []string{"coffee", "arabica"}, Category: "Agriculture", CountryID: "c1", CreatedAt: created, UpdatedAt: created},
		{ID: "p2", Name: "Black Tea", Unit: "ton", Quantity: 40, TaxRate: 2.5, TimePeriod: "2024-Q1",
			Tags: []string{"tea"}, Category: "Food & Beverages", CountryID: "c1", CreatedAt: created, UpdatedAt: created},
		{ID: "p3", Name: "Raw Jute", Unit: "ton", Quantity: 300, TaxRate: 0, TimePeriod: "2024",
			Tags: []string{}, Category: "Textiles", CountryID: "c2", CreatedAt: created, UpdatedAt: created},
	}
	b.exporters = []models.Exporter{
		{ID: "e1", Name: "Nairobi Coffee Ltd", LicenseID: "KE-001", Contact: "sales@nairobi.co.ke", CountryID: "c1"},
		{ID: "e2", Name: "Dhaka Jute Mills", LicenseID: "BD-042", CountryID: "c2"},
	}
	b.audit = []models.AuditLogEntry{
		{ID: "a1", UserID: "u2", Action: "CREATE_PRODUCT", Description: "Created Arabica Coffee", Timestamp: created},
	}
}

// Requests returns the "METHOD /path" lines received so far.
func (b *Backend) Requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.requests))
	copy(out, b.requests)
	return out
}

// ExpireSessions revokes every issued token; the next authenticated call
// answers 401.
func (b *Backend) ExpireSessions() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens = map[string]string{}
}

// Products returns a copy of the stored products.
func (b *Backend) Products() []models.Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Product, len(b.products))
	copy(out, b.products)
	return out
}

// Exporters returns a copy of the stored exporters.
func (b *Backend) Exporters() []models.Exporter {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Exporter, len(b.exporters))
	copy(out, b.exporters)
	return out
}

// User returns the stored account with email.
func (b *Backend) User(email string) (models.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.accounts {
		if a.user.Email == email {
			return a.user, true
		}
	}
	return models.User{}, false
}

// Token issues a valid token for email without going through /token.
func (b *Backend) Token(email string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.accounts {
		if a.user.Email == email {
			return b.issueLocked(a.user.ID)
		}
	}
	return ""
}

func (b *Backend) issueLocked(userID string) string {
	b.nextID++
	tok := fmt.Sprintf("tok-%s-%d", userID, b.nextID)
	b.tokens[tok] = userID
	return tok
}

func (b *Backend) newIDLocked(prefix string) string {
	b.nextID++
	return fmt.Sprintf("%s%d", prefix, b.nextID)
}

func (b *Backend) router() http.Handler {
	r := mux.NewRouter()
	r.Use(b.record)

	r.HandleFunc("/health", b.health).Methods(http.MethodGet)
	r.HandleFunc("/token", b.login).Methods(http.MethodPost)
	r.HandleFunc("/register", b.register).Methods(http.MethodPost)
	r.HandleFunc("/me", b.authed(b.me)).Methods(http.MethodGet)

	r.HandleFunc("/countries", b.listCountries).Methods(http.MethodGet)
	r.HandleFunc("/countries/{id}/products", b.listCountryProducts).Methods(http.MethodGet)

	r.HandleFunc("/products", b.listProducts).Methods(http.MethodGet)
	r.HandleFunc("/products", b.authed(b.createProduct)).Methods(http.MethodPost)
	r.HandleFunc("/products/{id}", b.authed(b.updateProduct)).Methods(http.MethodPut)
	r.HandleFunc("/products/{id}", b.authed(b.deleteProduct)).Methods(http.MethodDelete)

	r.HandleFunc("/exporters", b.listExporters).Methods(http.MethodGet)
	r.HandleFunc("/exporters", b.authed(b.createExporter)).Methods(http.MethodPost)

	r.HandleFunc("/admin/users", b.admin(b.listUsers)).Methods(http.MethodGet)
	r.HandleFunc("/admin/users/{id}/activate", b.admin(b.activateUser)).Methods(http.MethodPatch)
	r.HandleFunc("/admin/audit-logs", b.admin(b.listAudit)).Methods(http.MethodGet)
	return r
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, r.Method+" "+r.URL.Path)
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

type authedHandler func(w http.ResponseWriter, r *http.Request, u models.User)

func (b *Backend) authed(h authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		b.mu.Lock()
		id, found := b.tokens[tok]
		var user models.User
		for _, a := range b.accounts {
			if a.user.ID == id {
				user = a.user
			}
		}
		b.mu.Unlock()

		if !found {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		h(w, r, user)
	}
}

func (b *Backend) admin(h authedHandler) http.HandlerFunc {
	return b.authed(func(w http.ResponseWriter, r *http.Request, u models.User) {
		if u.Role != models.RoleSuperAdmin {
			writeDetail(w, http.StatusForbidden, "Not enough permissions")
			return
		}
		h(w, r, u)
	})
}

func (b *Backend) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthStatus{Status: "ok", Message: "GEVP API is running"})
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid form")
		return
	}
	email, password := r.PostForm.Get("username"), r.PostForm.Get("password")

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.accounts {
		if a.user.Email != email || a.password != password {
			continue
		}
		if !a.user.IsActive {
			writeDetail(w, http.StatusForbidden, "Account is pending activation")
			return
		}
		writeJSON(w, http.StatusOK, models.TokenResponse{AccessToken: b.issueLocked(a.user.ID), TokenType: "bearer"})
		return
	}
	writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.accounts {
		if a.user.Email == reg.Email {
			writeDetail(w, http.StatusBadRequest, "Email already registered")
			return
		}
	}
	b.accounts = append(b.accounts, &account{
		user: models.User{
			ID:        b.newIDLocked("u"),
			Email:     reg.Email,
			Role:      reg.Role,
			CountryID: reg.CountryID,
		},
		password: reg.Password,
	})
	writeJSON(w, http.StatusCreated, models.MessageResponse{Message: "Registration successful. Awaiting activation."})
}

func (b *Backend) me(w http.ResponseWriter, _ *http.Request, u models.User) {
	writeJSON(w, http.StatusOK, u)
}

func (b *Backend) listCountries(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.countries)
}

func (b *Backend) countryLocked(id string) *models.Country {
	for i := range b.countries {
		if b.countries[i].ID == id {
			c := b.countries[i]
			return &c
		}
	}
	return nil
}

func (b *Backend) withCountryLocked(ps []models.Product) []models.Product {
	out := make([]models.Product, len(ps))
	for i, p := range ps {
		p.Country = b.countryLocked(p.CountryID)
		out[i] = p
	}
	return out
}

func (b *Backend) listCountryProducts(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.countryLocked(id) == nil {
		writeDetail(w, http.StatusNotFound, "Country not found")
		return
	}
	var out []models.Product
	for _, p := range b.products {
		if p.CountryID == id {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, b.withCountryLocked(out))
}

func (b *Backend) listProducts(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("search"))
	category := r.URL.Query().Get("category")

	b.mu.Lock()
	defer b.mu.Unlock()
	out := []models.Product{}
	for _, p := range b.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	writeJSON(w, http.StatusOK, b.withCountryLocked(out))
}

func (b *Backend) createProduct(w http.ResponseWriter, r *http.Request, u models.User) {
	var in models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	if u.CountryID == "" {
		writeDetail(w, http.StatusBadRequest, "User is not assigned to a country")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now().UTC()
	p := models.Product{
		ID: b.newIDLocked("p"), Name: in.Name, Unit: in.Unit, Quantity: in.Quantity, TaxRate: in.TaxRate,
		TimePeriod: in.TimePeriod, Tags: in.Tags, Category: in.Category, CountryID: u.CountryID,
		CreatedAt: now, UpdatedAt: now,
	}
	b.products = append(b.products, p)
	b.auditLocked(u, "CREATE_PRODUCT", "Created "+p.Name)
	writeJSON(w, http.StatusCreated, p)
}

// productLocked finds a product the user may modify, writing the error
// response itself when there is none.
func (b *Backend) productLocked(w http.ResponseWriter, id string, u models.User) int {
	for i, p := range b.products {
		if p.ID != id {
			continue
		}
		if u.Role != models.RoleSuperAdmin && p.CountryID != u.CountryID {
			writeDetail(w, http.StatusForbidden, "Not authorized to modify this product")
			return -1
		}
		return i
	}
	writeDetail(w, http.StatusNotFound, "Product not found")
	return -1
}

func (b *Backend) updateProduct(w http.ResponseWriter, r *http.Request, u models.User) {
	var in models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.productLocked(w, mux.Vars(r)["id"], u)
	if i < 0 {
		return
	}
	p := &b.products[i]
	p.Name, p.Unit, p.Quantity, p.TaxRate = in.Name, in.Unit, in.Quantity, in.TaxRate
	p.TimePeriod, p.Tags, p.Category = in.TimePeriod, in.Tags, in.Category
	p.UpdatedAt = time.Now().UTC()
	b.auditLocked(u, "UPDATE_PRODUCT", "Updated "+p.Name)
	writeJSON(w, http.StatusOK, *p)
}

func (b *Backend) deleteProduct(w http.ResponseWriter, r *http.Request, u models.User) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.productLocked(w, mux.Vars(r)["id"], u)
	if i < 0 {
		return
	}
	name := b.products[i].Name
	b.products = append(b.products[:i], b.products[i+1:]...)
	b.auditLocked(u, "DELETE_PRODUCT", "Deleted "+name)
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Product deleted successfully"})
}

func (b *Backend) listExporters(w http.ResponseWriter, r *http.Request) {
	countryID := r.URL.Query().Get("country_id")

	b.mu.Lock()
	defer b.mu.Unlock()
	out := []models.Exporter{}
	for _, e := range b.exporters {
		if countryID == "" || e.CountryID == countryID {
			e.Country = b.countryLocked(e.CountryID)
			out = append(out, e)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) createExporter(w http.ResponseWriter, r *http.Request, u models.User) {
	var in models.ExporterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.exporters {
		if e.LicenseID == in.LicenseID {
			writeDetail(w, http.StatusBadRequest, "License ID already registered")
			return
		}
	}
	e := models.Exporter{
		ID: b.newIDLocked("e"), Name: in.Name, LicenseID: in.LicenseID,
		Contact: in.Contact, Website: in.Website, CountryID: u.CountryID,
	}
	b.exporters = append(b.exporters, e)
	b.auditLocked(u, "CREATE_EXPORTER", "Registered "+e.Name)
	writeJSON(w, http.StatusCreated, e)
}

func (b *Backend) listUsers(w http.ResponseWriter, _ *http.Request, _ models.User) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.User, 0, len(b.accounts))
	for _, a := range b.accounts {
		out = append(out, a.user)
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) activateUser(w http.ResponseWriter, r *http.Request, u models.User) {
	id := mux.Vars(r)["id"]

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.accounts {
		if a.user.ID == id {
			a.user.IsActive = true
			b.auditLocked(u, "ACTIVATE_USER", "Activated "+a.user.Email)
			writeJSON(w, http.StatusOK, models.MessageResponse{Message: "User activated successfully"})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "User not found")
}

func (b *Backend) listAudit(w http.ResponseWriter, _ *http.Request, _ models.User) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.audit)
}

func (b *Backend) auditLocked(u models.User, action, description string) {
	b.audit = append(b.audit, models.AuditLogEntry{
		ID:          b.newIDLocked("a"),
		UserID:      u.ID,
		Action:      action,
		Description: description,
		Timestamp:   time.Now().UTC(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
