package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Country is a participating country.
type Country struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Region      string `json:"region"`
	FlagURL     string `json:"flagUrl,omitempty"`
	ContactInfo string `json:"contactInfo,omitempty"`
}

// Product is an export product owned by a country.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	Quantity   float64   `json:"quantity"`
	TaxRate    float64   `json:"tax_rate"`
	TimePeriod string    `json:"time_period"`
	Tags       []string  `json:"tags"`
	Category   string    `json:"category"`
	CountryID  string    `json:"countryId"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Country    *Country  `json:"country,omitempty"`
}

type productWire struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Unit          string   `json:"unit"`
	Quantity      float64  `json:"quantity"`
	TaxRate       *float64 `json:"tax_rate"`
	TaxRateAlt    *float64 `json:"taxRate"`
	TimePeriod    string   `json:"time_period"`
	TimePeriodAlt string   `json:"timePeriod"`
	Tags          []string `json:"tags"`
	Category      string   `json:"category"`
	CountryID     string   `json:"countryId"`
	CountryIDAlt  string   `json:"country_id"`
	CreatedAt     string   `json:"created_at"`
	CreatedAtAlt  string   `json:"createdAt"`
	UpdatedAt     string   `json:"updated_at"`
	UpdatedAtAlt  string   `json:"updatedAt"`
	Country       *Country `json:"country"`
}

// UnmarshalJSON accepts both the snake_case and camelCase spellings used by
// the backend.
func (p *Product) UnmarshalJSON(data []byte) error {
	var w productWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*p = Product{
		ID:         w.ID,
		Name:       w.Name,
		Unit:       w.Unit,
		Quantity:   w.Quantity,
		TimePeriod: firstNonEmpty(w.TimePeriod, w.TimePeriodAlt),
		Tags:       w.Tags,
		Category:   w.Category,
		CountryID:  firstNonEmpty(w.CountryID, w.CountryIDAlt),
		CreatedAt:  parseTime(firstNonEmpty(w.CreatedAt, w.CreatedAtAlt)),
		UpdatedAt:  parseTime(firstNonEmpty(w.UpdatedAt, w.UpdatedAtAlt)),
		Country:    w.Country,
	}
	switch {
	case w.TaxRate != nil:
		p.TaxRate = *w.TaxRate
	case w.TaxRateAlt != nil:
		p.TaxRate = *w.TaxRateAlt
	}
	return nil
}

// ProductInput is the body of product create and update requests.
type ProductInput struct {
	Name       string   `json:"name"`
	Unit       string   `json:"unit"`
	Quantity   float64  `json:"quantity"`
	TaxRate    float64  `json:"tax_rate"`
	TimePeriod string   `json:"time_period"`
	Tags       []string `json:"tags"`
	Category   string   `json:"category"`
}

// Input returns the editable fields of p, for pre-filling an update form.
func (p Product) Input() ProductInput {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)
	return ProductInput{
		Name:       p.Name,
		Unit:       p.Unit,
		Quantity:   p.Quantity,
		TaxRate:    p.TaxRate,
		TimePeriod: p.TimePeriod,
		Tags:       tags,
		Category:   p.Category,
	}
}

// Exporter is an authorized exporter registered by a country.
type Exporter struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	LicenseID string   `json:"licenseId"`
	Contact   string   `json:"contact,omitempty"`
	Website   string   `json:"website,omitempty"`
	CountryID string   `json:"countryId"`
	Country   *Country `json:"country,omitempty"`
}

func (e *Exporter) UnmarshalJSON(data []byte) error {
	var w struct {
		ID           string   `json:"id"`
		Name         string   `json:"name"`
		LicenseID    string   `json:"licenseId"`
		LicenseIDAlt string   `json:"license_id"`
		Contact      *string  `json:"contact"`
		Website      *string  `json:"website"`
		CountryID    string   `json:"countryId"`
		CountryIDAlt string   `json:"country_id"`
		Country      *Country `json:"country"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*e = Exporter{
		ID:        w.ID,
		Name:      w.Name,
		LicenseID: firstNonEmpty(w.LicenseID, w.LicenseIDAlt),
		CountryID: firstNonEmpty(w.CountryID, w.CountryIDAlt),
		Country:   w.Country,
	}
	if w.Contact != nil {
		e.Contact = *w.Contact
	}
	if w.Website != nil {
		e.Website = *w.Website
	}
	return nil
}

// ExporterInput is the body of an exporter create request.
type ExporterInput struct {
	Name      string `json:"name"`
	LicenseID string `json:"license_id"`
	Contact   string `json:"contact,omitempty"`
	Website   string `json:"website,omitempty"`
}

// AuditLogEntry is one record of the backend audit trail.
type AuditLogEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	User        *User     `json:"user,omitempty"`
}

func (a *AuditLogEntry) UnmarshalJSON(data []byte) error {
	var w struct {
		ID          string `json:"id"`
		UserID      string `json:"userId"`
		UserIDAlt   string `json:"user_id"`
		Action      string `json:"action"`
		Description string `json:"description"`
		Timestamp   string `json:"timestamp"`
		User        *User  `json:"user"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*a = AuditLogEntry{
		ID:          w.ID,
		UserID:      firstNonEmpty(w.UserID, w.UserIDAlt),
		Action:      w.Action,
		Description: w.Description,
		Timestamp:   parseTime(w.Timestamp),
		User:        w.User,
	}
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// parseTime parses the timestamp formats the backend emits. Naive timestamps
// are taken as UTC. Unparseable input yields the zero time.
func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
