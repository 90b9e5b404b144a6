package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/waljunye/redsync/internal/config"
	"github.com/waljunye/redsync/internal/domain"
)

// scopes are the Reddit permissions a sync needs: reading the saved-item
// history and resolving the account's display name.
var scopes = []string{"history", "identity"}

// Authorizer wraps the authorization-code flow that issues short-lived
// bearer tokens. The rest of the service treats it as a black box.
type Authorizer struct {
	config oauth2.Config
}

func New(cfg config.OAuthConfig) *Authorizer {
	return &Authorizer{
		config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
	}
}

// AuthURL returns the platform's consent page URL with a fresh random state.
func (a *Authorizer) AuthURL() (authURL, state string, err error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generate state: %w", err)
	}
	state = hex.EncodeToString(buf)
	return a.config.AuthCodeURL(state), state, nil
}

// Exchange trades an authorization code for a bearer access token. Tokens
// are short-lived and never refreshed by this service.
func (a *Authorizer) Exchange(ctx context.Context, code string) (string, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: exchange code: %v", domain.ErrAuth, err)
	}
	return token.AccessToken, nil
}
