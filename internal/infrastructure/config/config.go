package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/voxdigify/crm-api/internal/core/ports"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Facebook  FacebookConfig
	Instagram InstagramConfig
}

// MongoConfig carries one connection string per entity group, mirroring the
// deployment where each group lives on its own cluster. URIs may repeat; the
// registry reuses clients per distinct URI.
type MongoConfig struct {
	CallsURI    string `env:"MONGODB_URI,          default=mongodb://localhost:27017"`
	MeetingsURI string `env:"MONGODB_MEETINGS_URI, default=mongodb://localhost:27017"`
	AccountsURI string `env:"MONGODB_ACCOUNT_URI,  default=mongodb://localhost:27017"`
	ContactsURI string `env:"MONGODB_CONTACT_URI,  default=mongodb://localhost:27017"`
	LeadsURI    string `env:"MONGODB_LEAD_URI,     default=mongodb://localhost:27017"`
	LoginURI    string `env:"MONGODB_LOGIN_URI,    default=mongodb://localhost:27017"`
	Database    string `env:"MONGO_DB,             default=crm"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// FacebookConfig configures the page proxies. PageIDs and PageTokens are maps
// keyed by page slug (e.g. FB_PAGE_IDS="visaprocessing:358188507375465").
type FacebookConfig struct {
	GraphBaseURL    string            `env:"FB_GRAPH_BASE_URL, default=https://graph.facebook.com/v16.0"`
	PageIDs         map[string]string `env:"FB_PAGE_IDS"`
	PageTokens      map[string]string `env:"FB_PAGE_TOKENS"`
	RateLimitPerMin int               `env:"GRAPH_RATE_LIMIT,  default=60"`
}

type InstagramConfig struct {
	GraphBaseURL      string `env:"IG_GRAPH_BASE_URL, default=https://graph.facebook.com/v17.0"`
	BusinessAccountID string `env:"INSTAGRAM_BUSINESS_ACCOUNT_ID"`
	AccessToken       string `env:"ACCESS_TOKEN_INSTAGRAM"`
}

// Pages merges the id and token maps into the page registry consumed by the
// social service. Slugs missing a token are dropped.
func (c FacebookConfig) Pages() map[string]ports.Page {
	pages := make(map[string]ports.Page, len(c.PageIDs))
	for slug, id := range c.PageIDs {
		token, ok := c.PageTokens[slug]
		if !ok {
			continue
		}
		pages[slug] = ports.Page{ID: id, AccessToken: token}
	}
	return pages
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
