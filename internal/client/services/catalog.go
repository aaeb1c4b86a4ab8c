package services

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/gevp/console/internal/client/models"
)

// Categories are the product categories offered by the forms and filters.
var Categories = []string{
	"Agriculture",
	"Manufacturing",
	"Energy",
	"Technology",
	"Textiles",
	"Chemicals",
	"Food & Beverages",
	"Raw Materials",
}

// ProductUnits are the units offered by the product form.
var ProductUnits = []string{"kg", "ton", "liter", "gallon", "m³", "pieces", "boxes", "tons"}

// RegistrationRoles are the roles a visitor may request when registering.
var RegistrationRoles = []models.Role{models.RoleEditor, models.RoleCountryAdmin}

// MinPasswordLength is the shortest password accepted by the forms.
const MinPasswordLength = 6

// ParseTags splits a comma separated list, trimming blanks and dropping empty
// items. The result is never nil.
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// FilterProducts returns the products whose name contains search
// (case-insensitive) and whose category equals category. Empty criteria match
// everything.
func FilterProducts(products []models.Product, search, category string) []models.Product {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// DashboardStats summarizes a country dashboard.
type DashboardStats struct {
	TotalProducts int
	Exporters     int
	Categories    int
	TotalQuantity float64
}

func ComputeDashboardStats(products []models.Product, exporters []models.Exporter) DashboardStats {
	st := DashboardStats{TotalProducts: len(products), Exporters: len(exporters)}

	seen := map[string]struct{}{}
	for _, p := range products {
		st.TotalQuantity += p.Quantity
		if p.Category != "" {
			seen[p.Category] = struct{}{}
		}
	}
	st.Categories = len(seen)
	return st
}

// AdminStats summarizes the super-admin panel.
type AdminStats struct {
	TotalUsers  int
	Countries   int
	ActiveUsers int
	Pending     int
}

func ComputeAdminStats(users []models.User, countries []models.Country) AdminStats {
	st := AdminStats{TotalUsers: len(users), Countries: len(countries)}
	for _, u := range users {
		if u.IsActive {
			st.ActiveUsers++
		}
	}
	st.Pending = st.TotalUsers - st.ActiveUsers
	return st
}

// Validation failure codes. Views translate them with the "validation."
// message prefix.
const (
	CodeRequired      = "required"
	CodeNotNegative   = "positive"
	CodeEmailInvalid  = "emailInvalid"
	CodePasswordShort = "passwordMinLength"
	CodePasswordMatch = "passwordsMatch"
	CodeRoleInvalid   = "roleInvalid"
	CodeNotNumber     = "number"
)

var ErrInvalidInput = errors.New("invalid input")

// ValidationError maps form field names to failure codes.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

type validator map[string]string

func (v validator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.fail(field, CodeRequired)
	}
}

func (v validator) notNegative(field string, value float64) {
	if value < 0 {
		v.fail(field, CodeNotNegative)
	}
}

// fail keeps the first failure per field.
func (v validator) fail(field, code string) {
	if _, ok := v[field]; !ok {
		v[field] = code
	}
}

func (v validator) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Fields: v}
}

func ValidateProductInput(in models.ProductInput) error {
	v := validator{}
	v.required("name", in.Name)
	v.required("unit", in.Unit)
	v.notNegative("quantity", in.Quantity)
	v.notNegative("tax_rate", in.TaxRate)
	v.required("time_period", in.TimePeriod)
	v.required("category", in.Category)
	return v.err()
}

func ValidateExporterInput(in models.ExporterInput) error {
	v := validator{}
	v.required("name", in.Name)
	v.required("license_id", in.LicenseID)
	return v.err()
}

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// ValidateEmail checks the address shape accepted by the login and register
// forms.
func ValidateEmail(email string) error {
	v := validator{}
	v.required("email", email)
	if _, failed := v["email"]; !failed && !emailPattern.MatchString(strings.TrimSpace(email)) {
		v.fail("email", CodeEmailInvalid)
	}
	return v.err()
}

// ValidateLogin checks the login form.
func ValidateLogin(email, password string) error {
	v := validator{}
	if err := ValidateEmail(email); err != nil {
		v.fail("email", err.(*ValidationError).Fields["email"])
	}
	v.required("password", password)
	if _, failed := v["password"]; !failed && len(password) < MinPasswordLength {
		v.fail("password", CodePasswordShort)
	}
	return v.err()
}

// ValidateRegistration checks the register form, including the password
// confirmation.
func ValidateRegistration(r models.Registration, confirm string) error {
	v := validator{}
	if err := ValidateLogin(r.Email, r.Password); err != nil {
		for field, code := range err.(*ValidationError).Fields {
			v.fail(field, code)
		}
	}
	if confirm != r.Password {
		v.fail("confirm_password", CodePasswordMatch)
	}
	switch {
	case r.Role == "":
		v.fail("role", CodeRequired)
	case r.Role != models.RoleEditor && r.Role != models.RoleCountryAdmin:
		v.fail("role", CodeRoleInvalid)
	}
	v.required("country_id", r.CountryID)
	return v.err()
}
