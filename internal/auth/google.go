package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/fittracker/internal/telemetry/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// GoogleProvider runs the OAuth code flow against google and reads the user profile.
type GoogleProvider struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client
}

func NewGoogleProvider(cfg GoogleConfig) (*GoogleProvider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("google client id and secret must be set")
	}
	return &GoogleProvider{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Endpoint:     google.Endpoint,
			Scopes: []string{
				googleoauth2.UserinfoProfileScope,
				googleoauth2.UserinfoEmailScope,
			},
		},
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (p *GoogleProvider) FetchProfile(ctx context.Context, code string) (_ *GoogleProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.google.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	svc, err := googleoauth2.NewService(ctx, option.WithHTTPClient(p.oauthConfig.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("create oauth2 service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get userinfo: %w", err)
	}
	if info.Id == "" {
		return nil, errors.New("userinfo without subject id")
	}

	profile := &GoogleProfile{
		GoogleID: info.Id,
		Email:    info.Email,
		Name:     info.Name,
	}
	if info.Picture != "" {
		picture := info.Picture
		profile.PictureURL = &picture
	}
	return profile, nil
}
