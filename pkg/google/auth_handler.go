package google

import (
	"html/template"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hynux/meetlink/internal/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// Pending consent attempts expire after this long.
const authAttemptTTL = 15 * time.Minute

// GoogleAuth implements the one-time operator bootstrap: it redirects the
// operator to Google's consent screen and displays the resulting refresh
// token for manual copy into configuration. Each attempt is tracked by its
// own nonce, so two overlapping bootstrap attempts do not share state.
type GoogleAuth struct {
	oauthConfig *oauth2.Config

	mu      sync.Mutex
	pending map[string]time.Time
}

func NewGoogleAuth(cfg config.Application) (*GoogleAuth, error) {
	oauthConfig, err := oauthConfigFromCredentialsFile(cfg)
	if err != nil {
		return nil, err
	}
	if oauthConfig == nil {
		oauthConfig = &oauth2.Config{
			ClientID:     cfg.Google.ClientId,
			ClientSecret: cfg.Google.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{calendar.CalendarScope},
		}
	}
	oauthConfig.RedirectURL = cfg.Google.RedirectUri

	return &GoogleAuth{
		oauthConfig: oauthConfig,
		pending:     make(map[string]time.Time),
	}, nil
}

// oauthConfigFromCredentialsFile reads the OAuth client descriptor from the
// configured credentials file. A missing file is not an error; the client id
// and secret from configuration are used instead.
func oauthConfigFromCredentialsFile(cfg config.Application) (*oauth2.Config, error) {
	if cfg.Google.CredentialsFile == "" {
		return nil, nil
	}
	b, err := os.ReadFile(cfg.Google.CredentialsFile)
	if err != nil {
		if os.IsNotExist(err) {
			log.Infof("Credentials file not found at %s, using configured client id and secret", cfg.Google.CredentialsFile)
			return nil, nil
		}
		return nil, err
	}
	oauthConfig, err := google.ConfigFromJSON(b, calendar.CalendarScope)
	if err != nil {
		return nil, err
	}
	log.Infof("Loaded OAuth client from credentials file: %s", cfg.Google.CredentialsFile)
	return oauthConfig, nil
}

// OAuthLogin redirects the browser to Google's consent URL, requesting
// offline access and forcing the consent prompt so a refresh token is issued.
func (g *GoogleAuth) OAuthLogin(w http.ResponseWriter, r *http.Request) {
	nonce := uuid.NewString()

	g.mu.Lock()
	now := time.Now()
	for n, created := range g.pending {
		if now.Sub(created) > authAttemptTTL {
			delete(g.pending, n)
		}
	}
	g.pending[nonce] = now
	g.mu.Unlock()

	log.Tracef("Redirecting to Google auth URL with nonce: %s", nonce)
	u := g.oauthConfig.AuthCodeURL(nonce, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	http.Redirect(w, r, u, http.StatusFound)
}

var refreshTokenPage = template.Must(template.New("refreshToken").Parse(`<html>
    <head><title>Google OAuth Successful</title></head>
    <body style="font-family: Arial, sans-serif; padding: 20px;">
        <h2>&#9989; Authentication Successful</h2>
        <p><strong>Copy your refresh token below and keep it secure:</strong></p>
        <textarea rows="5" cols="100" readonly>{{.RefreshToken}}</textarea>
        <p style="color: red;"><strong>Note:</strong> Do not share this token. It provides long-term access to your Google Calendar.</p>
    </body>
</html>
`))

// OAuthCallback exchanges the authorization code from Google's redirect and
// shows the refresh token in plaintext for the operator to copy into
// configuration. There is no automatic hand-off.
func (g *GoogleAuth) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	state := r.FormValue("state")

	g.mu.Lock()
	created, ok := g.pending[state]
	delete(g.pending, state)
	g.mu.Unlock()

	if !ok || time.Since(created) > authAttemptTTL {
		log.Warnf("OAuth callback with unknown or expired state: %q", state)
		http.Error(w, "unknown or expired authorization attempt", http.StatusBadRequest)
		return
	}

	code := r.FormValue("code")
	token, err := g.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		log.Errorf("unable to exchange code for token: %v", err)
		http.Error(w, "unable to exchange authorization code", http.StatusInternalServerError)
		return
	}

	if token.RefreshToken == "" {
		log.Warn("token exchange returned no refresh token; consent may not have been forced")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := refreshTokenPage.Execute(w, struct{ RefreshToken string }{token.RefreshToken}); err != nil {
		log.Errorf("failed to render refresh token page: %v", err)
	}
}
