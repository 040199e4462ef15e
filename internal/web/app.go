// Package web serves the supporter/donation UI. Every page render refetches
// the authoritative collections from the backend; the gateway keeps no durable
// copy of any record between renders.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"coopweb/internal/api"
	"coopweb/internal/infra"
	"coopweb/internal/ledger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Backend is the slice of the api client the handlers call directly.
type Backend interface {
	ListDonations(ctx context.Context, sess api.Session) ([]api.Donation, error)
	CreateDonation(ctx context.Context, sess api.Session, p api.DonationPayload) (*api.Donation, error)
	UpdateDonation(ctx context.Context, sess api.Session, id int64, p api.DonationPayload) (*api.Donation, error)
	DeleteDonation(ctx context.Context, sess api.Session, id int64) error
	DeleteSupporter(ctx context.Context, sess api.Session, id int64) error
	Signup(ctx context.Context, creds api.Credentials) error
	Signin(ctx context.Context, creds api.Credentials) ([]*http.Cookie, error)
	Signout(ctx context.Context, sess api.Session) (string, []*http.Cookie, error)
	Validate(ctx context.Context, sess api.Session) error
	Me(ctx context.Context, sess api.Session) (*api.Profile, error)
}

// Ledger is the consistency manager surface the handlers use for supporters.
type Ledger interface {
	CreateSupporterWithDonation(ctx context.Context, sess api.Session, name string, incomeEUR float64) (*api.Supporter, error)
	UpdateSupporterName(ctx context.Context, sess api.Session, id int64, name string) (*api.Supporter, error)
	SupporterOverview(ctx context.Context, sess api.Session) ([]ledger.JoinedSupporter, error)
}

// StatusSource reports cached backend reachability for the page header.
type StatusSource interface {
	Online() bool
}

// App wires the handlers to their collaborators.
type App struct {
	backend Backend
	ledger  Ledger
	status  StatusSource
	logger  *infra.Logger
	tmpl    *template.Template
}

// NewApp parses the templates and builds the handler set.
func NewApp(backend Backend, books Ledger, status StatusSource, logger *infra.Logger) (*App, error) {
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}
	return &App{backend: backend, ledger: books, status: status, logger: logger, tmpl: tmpl}, nil
}

func (a *App) render(w http.ResponseWriter, code int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := a.tmpl.ExecuteTemplate(w, name, data); err != nil {
		a.logger.Error().Err(err).Str("template", name).Msg("render failed")
	}
}
