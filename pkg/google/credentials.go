package google

import (
	"context"

	"github.com/hynux/meetlink/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// tokenSource builds a short-lived access credential from the statically
// configured refresh token. Pure construction: the actual token exchange
// happens lazily when the calendar client first uses the source, so a revoked
// or malformed refresh token only surfaces there.
func tokenSource(ctx context.Context, cfg config.Google) oauth2.TokenSource {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientId,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
	}
	return oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
}
