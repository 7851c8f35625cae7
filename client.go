// Package galleria is the embedded client for the galleria search engine.
// It wires the search pipeline directly over a Redis artwork store, without
// going through the HTTP API.
package galleria

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/galleria-cloud/galleria/internal/analyzer"
	"github.com/galleria-cloud/galleria/internal/cache"
	"github.com/galleria-cloud/galleria/internal/config"
	dbRedis "github.com/galleria-cloud/galleria/internal/db/redis"
	"github.com/galleria-cloud/galleria/internal/lexicon"
	"github.com/galleria-cloud/galleria/internal/market"
	artworkrepo "github.com/galleria-cloud/galleria/internal/repository/artwork"
	prefsrepo "github.com/galleria-cloud/galleria/internal/repository/prefs"
	"github.com/galleria-cloud/galleria/internal/scorer"
	searchuc "github.com/galleria-cloud/galleria/internal/usecase/search"
	"github.com/galleria-cloud/galleria/internal/vision"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the galleria SDK entry point.
type Client struct {
	store     *dbRedis.Store
	searchSvc *searchuc.Service
	artRepo   *artworkrepo.Repo
	prefsRepo *prefsrepo.Repo
}

// New creates a galleria Client and connects to the artwork store.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		readinessTimeout: defaultReadinessTimeout,
		logger:           zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("galleria: store address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("galleria: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("galleria: store not ready: %w", err)
	}

	return wireClient(store, cfg)
}

func wireClient(store *dbRedis.Store, cfg *clientConfig) (*Client, error) {
	searchCfg := buildSearchConfig(cfg)

	keyPrefix := cfg.keyPrefix
	if keyPrefix == "" {
		keyPrefix = artworkrepo.DefaultKeyPrefix
	}
	artRepo := artworkrepo.New(store).WithPrefix(keyPrefix)
	prefsRepo := prefsrepo.New(store).WithPrefix(keyPrefix)

	lex := lexicon.Default()
	marketSvc := market.New(artRepo, searchCfg.ComparableLimit, cfg.logger)
	extractor := vision.New(time.Duration(searchCfg.ImageFetchTimeout)*time.Second, cfg.logger)
	resultCache := cache.New(time.Duration(searchCfg.CacheTTLSec)*time.Second, nil)

	searchSvc, err := searchuc.New(
		analyzer.New(lex), scorer.New(), lex,
		marketSvc, extractor, artRepo, prefsRepo,
		resultCache, searchCfg, cfg.logger,
	)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("galleria: wire search service: %w", err)
	}

	return &Client{
		store:     store,
		searchSvc: searchSvc,
		artRepo:   artRepo,
		prefsRepo: prefsRepo,
	}, nil
}

func buildSearchConfig(cfg *clientConfig) config.SearchConfig {
	sc := config.SearchConfig{
		DefaultLimit:    cfg.defaultLimit,
		MaxLimit:        cfg.maxLimit,
		EnrichWorkers:   cfg.enrichWorkers,
		ComparableLimit: cfg.comparableLimit,
	}
	if cfg.cacheTTL > 0 {
		sc.CacheTTLSec = int(cfg.cacheTTL / time.Second)
	}
	if cfg.imageTimeout > 0 {
		sc.ImageFetchTimeout = int(cfg.imageTimeout / time.Second)
	}
	// Borrow the server-side defaults for everything left unset.
	full := config.Config{Search: sc}
	full.ApplyDefaults()
	return full.Search
}

// Close releases all resources.
func (c *Client) Close() {
	if c.searchSvc != nil {
		c.searchSvc.Close()
	}
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search returns the search service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc}
}

// Artworks returns the artwork management service.
func (c *Client) Artworks() *ArtworkService {
	return &ArtworkService{repo: c.artRepo}
}

// Preferences returns the user preference service.
func (c *Client) Preferences() *PreferenceService {
	return &PreferenceService{repo: c.prefsRepo}
}
