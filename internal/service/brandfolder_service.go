// FILE: internal/service/brandfolder_service.go
package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dam-butler-be/internal/config"
	"dam-butler-be/internal/dto"
	"dam-butler-be/internal/pkg/logger"
	"dam-butler-be/pkg/vault/catalog"
	"dam-butler-be/pkg/vault/intent"
	"dam-butler-be/pkg/vault/result"

	"github.com/patrickmn/go-cache"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const clientTokenCacheKey = "brandfolder_client_token"

type IBrandfolderService interface {
	IsConfigured() bool
	GetAuthURL() (*dto.AuthenticateResponse, error)
	ExchangeCode(ctx context.Context, code string) (*dto.TokenExchangeResult, error)
	SearchAssets(ctx context.Context, resolved intent.Intent) ([]result.AssetResult, error)
}

type brandfolderService struct {
	cfg        config.BrandfolderConfig
	userConf   *oauth2.Config
	clientConf *clientcredentials.Config
	tokenCache *cache.Cache
	httpClient *http.Client
	sysLogger  logger.ILogger
}

func NewBrandfolderService(cfg config.BrandfolderConfig, sysLogger logger.ILogger) IBrandfolderService {
	userConf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{"openid", "offline"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.OAuthBaseURL + "/auth",
			TokenURL: cfg.OAuthBaseURL + "/token",
		},
	}

	clientConf := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.APIBaseURL + "/oauth/token",
	}

	return &brandfolderService{
		cfg:        cfg,
		userConf:   userConf,
		clientConf: clientConf,
		tokenCache: cache.New(50*time.Minute, 10*time.Minute),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		sysLogger:  sysLogger,
	}
}

func (s *brandfolderService) IsConfigured() bool {
	return s.cfg.ClientID != "" && s.cfg.ClientSecret != ""
}

func (s *brandfolderService) GetAuthURL() (*dto.AuthenticateResponse, error) {
	if !s.IsConfigured() {
		return &dto.AuthenticateResponse{
			Success: false,
			Message: "Brandfolder OAuth is not configured on this deployment",
		}, nil
	}

	state, err := randomToken()
	if err != nil {
		return nil, err
	}
	nonce, err := randomToken()
	if err != nil {
		return nil, err
	}

	url := s.userConf.AuthCodeURL(state, oauth2.SetAuthURLParam("nonce", nonce))

	return &dto.AuthenticateResponse{
		Success:      true,
		AuthURL:      url,
		State:        state,
		Message:      "Open the authorization URL to connect your Brandfolder account",
		Instructions: "After approving access you will be redirected back to the callback endpoint",
	}, nil
}

func (s *brandfolderService) ExchangeCode(ctx context.Context, code string) (*dto.TokenExchangeResult, error) {
	if !s.IsConfigured() {
		return nil, errors.New("brandfolder oauth is not configured")
	}
	if code == "" {
		return nil, errors.New("authorization code is required")
	}

	token, err := s.userConf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	expiresIn := 0
	if !token.Expiry.IsZero() {
		expiresIn = int(time.Until(token.Expiry).Seconds())
	}

	return &dto.TokenExchangeResult{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresIn,
		TokenType:    token.TokenType,
	}, nil
}

// clientToken fetches (and caches) a client-credentials token for
// server-to-server search calls.
func (s *brandfolderService) clientToken(ctx context.Context) (string, error) {
	if cached, found := s.tokenCache.Get(clientTokenCacheKey); found {
		return cached.(string), nil
	}

	token, err := s.clientConf.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("client credentials grant failed: %w", err)
	}

	ttl := cache.DefaultExpiration
	if !token.Expiry.IsZero() {
		ttl = time.Until(token.Expiry) - time.Minute
	}
	s.tokenCache.Set(clientTokenCacheKey, token.AccessToken, ttl)

	return token.AccessToken, nil
}

type searchRequest struct {
	Query   string        `json:"query"`
	Filters searchFilters `json:"filters"`
	Limit   int           `json:"limit"`
}

type searchFilters struct {
	Sections  []string `json:"sections,omitempty"`
	FileTypes []string `json:"file_types,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

type searchResponse struct {
	TotalCount int                `json:"total_count"`
	Assets     []result.LiveAsset `json:"assets"`
}

func (s *brandfolderService) SearchAssets(ctx context.Context, resolved intent.Intent) ([]result.AssetResult, error) {
	if !s.IsConfigured() || s.cfg.BrandfolderID == "" {
		return nil, errors.New("brandfolder search is not configured")
	}

	token, err := s.clientToken(ctx)
	if err != nil {
		return nil, err
	}

	body := buildSearchRequest(resolved)
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	url := fmt.Sprintf("%s/brandfolders/%s/search", s.cfg.APIBaseURL, s.cfg.BrandfolderID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("brandfolder search failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brandfolder search error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(bodyBytes, &searchResp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	s.sysLogger.Info("brandfolder_service", "live search completed", map[string]interface{}{
		"query":       body.Query,
		"total_found": searchResp.TotalCount,
	})

	return result.MapLiveResults(searchResp.Assets, resolved), nil
}

func buildSearchRequest(resolved intent.Intent) searchRequest {
	var terms []string
	for _, product := range resolved.Products {
		terms = append(terms, product.Name)
		if resolved.Brand == catalog.BrandSage && product.SageModel != "" {
			terms = append(terms, product.SageModel)
		} else {
			terms = append(terms, product.ModelCode)
		}
	}
	if len(terms) == 0 {
		terms = append(terms, resolved.OriginalRequest)
	}

	req := searchRequest{
		Query: strings.Join(terms, " "),
		Limit: 10,
	}
	for _, section := range resolved.Sections {
		req.Filters.Sections = append(req.Filters.Sections, section.Name)
	}
	req.Filters.FileTypes = resolved.Formats
	if resolved.Brand != "" {
		req.Filters.Tags = []string{strings.ToLower(resolved.Brand)}
	}
	return req
}

func randomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
