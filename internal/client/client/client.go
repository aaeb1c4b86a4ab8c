package client

import (
	"context"

	"github.com/gevp/console/internal/client/models"
)

// Client is the backend API as seen by the view layers.
type Client interface {
	Close() error

	SetAuthToken(ctx context.Context, token string) error
	Token() string
	OnSessionInvalid(fn func())

	Health(ctx context.Context) (models.HealthStatus, error)

	Login(ctx context.Context, email, password string) (models.TokenResponse, error)
	Register(ctx context.Context, r models.Registration) (models.MessageResponse, error)
	CurrentUser(ctx context.Context) (models.User, error)

	ListCountries(ctx context.Context) ([]models.Country, error)
	ListCountryProducts(ctx context.Context, countryID string) ([]models.Product, error)

	ListProducts(ctx context.Context, search, category string) ([]models.Product, error)
	CreateProduct(ctx context.Context, in models.ProductInput) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, in models.ProductInput) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) (models.MessageResponse, error)

	ListExporters(ctx context.Context, countryID string) ([]models.Exporter, error)
	CreateExporter(ctx context.Context, in models.ExporterInput) (models.Exporter, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	ActivateUser(ctx context.Context, id string) (models.MessageResponse, error)
	ListAuditLogs(ctx context.Context) ([]models.AuditLogEntry, error)
}
