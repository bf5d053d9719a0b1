package adapthttp

import (
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"bodycomp/internal/app"
)

// OIDCConfig holds the optional SSO login configuration.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	records  *app.RecordService
	profile  *app.ProfileService
	forecast *app.ForecastService
	importer *app.ImportService
	authSvc  *app.AuthService

	oidcConfig  OIDCConfig
	webDir      string
	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(rs *app.RecordService, ps *app.ProfileService, fs *app.ForecastService, is *app.ImportService, as *app.AuthService, oidcConfig OIDCConfig, webDir string) *Server {
	return &Server{
		records:    rs,
		profile:    ps,
		forecast:   fs,
		importer:   is,
		authSvc:    as,
		oidcConfig: oidcConfig,
		webDir:     webDir,
	}
}

// WithoutAuth disables the auth middleware. Test use only.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetupUser)
	api.HandleFunc("/auth/config", s.handleConfig)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	protected := http.NewServeMux()
	protected.HandleFunc("/records", s.handleRecords)
	protected.HandleFunc("/records/update", s.handleRecordUpdate)
	protected.HandleFunc("/records/delete", s.handleRecordDelete)
	protected.HandleFunc("/records/import", s.handleRecordImport)
	protected.HandleFunc("/profile", s.handleProfile)
	protected.HandleFunc("/forecast", s.handleForecast)
	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
