// Package catalog implements the external game database boundary against the
// RAWG REST API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gamehub/config"
	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/service"
	"gamehub/internal/errors"

	"github.com/sethvargo/go-retry"
)

const (
	defaultBaseURL  = "https://api.rawg.io/api"
	defaultPageSize = 40
	requestTimeout  = 15 * time.Second
)

// rawgClient is a concrete implementation of the CatalogSource interface.
type rawgClient struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRawgClient is the constructor for rawgClient.
func NewRawgClient(cfg *config.Config, logger *slog.Logger) service.CatalogSource {
	baseURL := defaultBaseURL
	pageSize := defaultPageSize
	apiKey := ""

	if cfg.Rawg != nil {
		if cfg.Rawg.BaseURL != "" {
			baseURL = strings.TrimSuffix(cfg.Rawg.BaseURL, "/")
		}
		if cfg.Rawg.PageSize > 0 {
			pageSize = cfg.Rawg.PageSize
		}
		apiKey = cfg.Rawg.APIKey
	}

	return &rawgClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// rawgGame mirrors the subset of the RAWG game payload the catalog uses.
type rawgGame struct {
	ID              json.Number `json:"id"`
	Name            string      `json:"name"`
	Released        *string     `json:"released"`
	BackgroundImage string      `json:"background_image"`
	Rating          float64     `json:"rating"`
	RatingsCount    int         `json:"ratings_count"`
	Platforms       []struct {
		Platform struct {
			Name string `json:"name"`
		} `json:"platform"`
	} `json:"platforms"`
	Genres []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

type rawgListResponse struct {
	Results []rawgGame `json:"results"`
}

// TopRated fetches the highest-rated games and maps them to catalog entities.
func (c *rawgClient) TopRated(ctx context.Context) ([]*entity.Game, error) {
	resp, err := c.fetchGames(ctx, url.Values{
		"ordering":  []string{"-rating"},
		"page_size": []string{strconv.Itoa(c.pageSize)},
	})
	if err != nil {
		return nil, err
	}

	games := make([]*entity.Game, 0, len(resp.Results))
	for _, raw := range resp.Results {
		games = append(games, toGameEntity(raw))
	}

	return games, nil
}

// Genres aggregates the distinct genre names of a sample page.
func (c *rawgClient) Genres(ctx context.Context) ([]string, error) {
	resp, err := c.fetchGames(ctx, url.Values{
		"ordering":  []string{"-rating"},
		"page_size": []string{"200"},
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var genres []string
	for _, raw := range resp.Results {
		for _, g := range raw.Genres {
			name := strings.ToUpper(g.Name)
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			genres = append(genres, name)
		}
	}

	return genres, nil
}

// Platforms aggregates the distinct platform names of a sample page.
func (c *rawgClient) Platforms(ctx context.Context) ([]string, error) {
	resp, err := c.fetchGames(ctx, url.Values{
		"ordering":  []string{"-rating"},
		"page_size": []string{"200"},
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var platforms []string
	for _, raw := range resp.Results {
		for _, p := range raw.Platforms {
			name := strings.ToUpper(p.Platform.Name)
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			platforms = append(platforms, name)
		}
	}

	return platforms, nil
}

// fetchGames calls the RAWG games endpoint, retrying transient failures with
// exponential backoff.
func (c *rawgClient) fetchGames(ctx context.Context, params url.Values) (*rawgListResponse, error) {
	params.Set("key", c.apiKey)
	endpoint := fmt.Sprintf("%s/games?%s", c.baseURL, params.Encode())

	var parsed rawgListResponse
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return errors.Wrap(err, "failed to build rawg request")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Network errors are worth retrying.
			return retry.RetryableError(errors.Wrap(err, "rawg request failed"))
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(errors.Errorf("rawg responded with status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return errors.Errorf("rawg responded with status %d", resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return errors.Wrap(err, "failed to decode rawg response")
		}

		return nil
	})
	if err != nil {
		c.logger.Warn("RAWG fetch failed", "error", err.Error())

		return nil, err
	}

	return &parsed, nil
}

func toGameEntity(raw rawgGame) *entity.Game {
	platforms := make([]string, 0, len(raw.Platforms))
	for _, p := range raw.Platforms {
		platforms = append(platforms, strings.ToUpper(p.Platform.Name))
	}

	genres := make([]string, 0, len(raw.Genres))
	for _, g := range raw.Genres {
		genres = append(genres, strings.ToUpper(g.Name))
	}

	return &entity.Game{
		ID:              raw.ID.String(),
		Name:            raw.Name,
		Released:        raw.Released,
		BackgroundImage: raw.BackgroundImage,
		Rating:          raw.Rating,
		RatingsCount:    raw.RatingsCount,
		Platforms:       platforms,
		Genres:          genres,
	}
}
