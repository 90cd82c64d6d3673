package config

import (
	"strings"
	"sync"
	"time"
)

const (
	EnrichmentLinkedIn = "linkedin"
	EnrichmentFixture  = "fixture"
	EnrichmentOff      = "off"
)

type EnrichmentConfig struct {
	Mode                 string
	Timeout              time.Duration
	RatePerSec           float64
	UserAgent            string
	PlaceholderOnFailure bool
}

var (
	enrichmentConfig *EnrichmentConfig
	enrichmentOnce   sync.Once
)

func LoadEnrichmentConfig() *EnrichmentConfig {
	enrichmentOnce.Do(func() {
		enrichmentConfig = &EnrichmentConfig{
			Mode:                 strings.ToLower(envOr("ENRICHMENT_MODE", EnrichmentFixture)),
			Timeout:              envDuration("ENRICHMENT_TIMEOUT", 10*time.Second),
			RatePerSec:           envFloat("ENRICHMENT_RATE_PER_SEC", 1),
			UserAgent:            envOr("ENRICHMENT_USER_AGENT", "Mozilla/5.0 (compatible; talent-fit/1.0)"),
			PlaceholderOnFailure: envBool("ENRICHMENT_PLACEHOLDER_ON_FAILURE", false),
		}
	})
	return enrichmentConfig
}
