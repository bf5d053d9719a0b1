package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/coreos/go-oidc/v3/oidc"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	adapthttp "bodycomp/internal/adapter/http"
	"bodycomp/internal/adapter/memory"
	"bodycomp/internal/adapter/postgres"
	"bodycomp/internal/app"
	"bodycomp/internal/domain"
	"bodycomp/internal/forecast"
	"bodycomp/internal/logging"
)

func main() {
	logging.Setup(logging.SetupParams{
		LogFileName:   os.Getenv("LOG_FILE"),
		LogToStdout:   os.Getenv("LOG_FILE") == "" || env("LOG_STDOUT", "true") == "true",
		LogLevel:      env("LOG_LEVEL", "info"),
		LogFormatJSON: os.Getenv("LOG_FORMAT") == "json",
	})

	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")

	var (
		recordRepo  domain.RecordRepository
		profileRepo domain.ProfileRepository
		userRepo    domain.UserRepository
		sessionRepo domain.SessionRepository
	)

	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		recordRepo, profileRepo, userRepo = db, db, db
		sessionRepo = postgres.NewSessionRepo(db)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory storage")
		db := memory.New()
		recordRepo, profileRepo, userRepo = db, db, db
		sessionRepo = db.NewSessionRepo()
	}

	recordSvc := app.NewRecordService(recordRepo)
	profileSvc := app.NewProfileService(profileRepo)
	forecastSvc := app.NewForecastService(recordRepo, profileRepo, forecastDefaults())
	importSvc := app.NewImportService(recordSvc)
	authSvc := app.NewAuthService(userRepo, sessionRepo)

	oidcConfig := setupOIDC(context.Background())

	h := adapthttp.New(recordSvc, profileSvc, forecastSvc, importSvc, authSvc, oidcConfig, webDir).Handler()
	log.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// forecastDefaults builds the engine defaults, with optional env overrides.
func forecastDefaults() forecast.Config {
	cfg := forecast.DefaultConfig()
	if v, err := strconv.ParseFloat(os.Getenv("FORECAST_ALPHA"), 64); err == nil && v >= 0 && v <= 1 {
		cfg.Alpha = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("FORECAST_BETA"), 64); err == nil && v >= 0 && v <= 1 {
		cfg.Beta = v
	}
	if v, err := strconv.Atoi(os.Getenv("FORECAST_DAYS")); err == nil && v > 0 {
		cfg.PredictionDays = v
	}
	return cfg
}

func setupOIDC(ctx context.Context) adapthttp.OIDCConfig {
	issuer := os.Getenv("OIDC_ISSUER")
	clientID := os.Getenv("OIDC_CLIENT_ID")
	if issuer == "" || clientID == "" {
		return adapthttp.OIDCConfig{}
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		log.Errorf("oidc discovery for %s failed: %v", issuer, err)
		return adapthttp.OIDCConfig{}
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  env("OIDC_REDIRECT_URL", "http://localhost:8080/api/auth/sso/callback"),
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
