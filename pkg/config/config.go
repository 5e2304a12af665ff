package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration. Detection vocabularies, scoring
// weights and thresholds are config data rather than code so the heuristics can
// be tuned without recompilation.
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Status server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedwatch.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Source registry database configuration"`

	Collector CollectorConfig `yaml:"collector" json:"collector" jsonschema:"description=Collection orchestrator configuration"`

	Quality QualityConfig `yaml:"quality" json:"quality" jsonschema:"description=Feed quality analyzer configuration"`

	Detection DetectionConfig `yaml:"detection" json:"detection" jsonschema:"description=Realtime detector vocabularies and thresholds"`

	Priority PriorityConfig `yaml:"priority" json:"priority" jsonschema:"description=Source prioritizer configuration"`
}

// CollectorConfig holds fetch and orchestration settings
type CollectorConfig struct {
	MaxConcurrent   int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=15,description=Global ceiling on in-flight source fetches"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=15s,description=Per-source fetch timeout"`
	MonitorInterval time.Duration `yaml:"monitor_interval" json:"monitor_interval" jsonschema:"default=60s,description=Continuous monitoring re-collection interval"`
	MonitorSources  int           `yaml:"monitor_sources" json:"monitor_sources" jsonschema:"default=5,description=Number of sources watched by a monitoring session"`
	BatchDelay      time.Duration `yaml:"batch_delay" json:"batch_delay" jsonschema:"default=1s,description=Delay between batches in batch processing"`
	UserAgent       string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Feedwatch/1.0,description=User agent for feed requests"`
	ResponseBudget  time.Duration `yaml:"response_budget" json:"response_budget" jsonschema:"default=30s,description=Hard budget for emergency response execution"`
}

// QualityConfig holds relevance scoring settings for the quality analyzer
type QualityConfig struct {
	RelevanceFloor float64  `yaml:"relevance_floor" json:"relevance_floor" jsonschema:"default=0.3,minimum=0,maximum=1,description=Items scoring below this relevance are dropped"`
	Vocabulary     []string `yaml:"vocabulary" json:"vocabulary" jsonschema:"description=Domain vocabulary for topical relevance scoring"`
}

// DetectionConfig holds the emergency and movement detection vocabularies.
// Group order matters: category assignment checks groups in listed priority order.
type DetectionConfig struct {
	MonetaryPolicyTerms []string `yaml:"monetary_policy_terms" json:"monetary_policy_terms" jsonschema:"description=Central-bank and rate vocabulary"`
	EconomicDataTerms   []string `yaml:"economic_data_terms" json:"economic_data_terms" jsonschema:"description=Macro-indicator vocabulary"`
	MarketCrisisTerms   []string `yaml:"market_crisis_terms" json:"market_crisis_terms" jsonschema:"description=Crisis and volatility vocabulary"`
	GeopoliticalTerms   []string `yaml:"geopolitical_terms" json:"geopolitical_terms" jsonschema:"description=Geopolitical vocabulary"`
	TechnicalTerms      []string `yaml:"technical_terms" json:"technical_terms" jsonschema:"description=Technical-analysis vocabulary"`

	UrgencyWords      []string `yaml:"urgency_words" json:"urgency_words" jsonschema:"description=Time-pressure cue words"`
	ImpactWords       []string `yaml:"impact_words" json:"impact_words" jsonschema:"description=Scale and impact vocabulary"`
	HighImpactWords   []string `yaml:"high_impact_words" json:"high_impact_words" jsonschema:"description=Movement severity words scoring +3"`
	MediumImpactWords []string `yaml:"medium_impact_words" json:"medium_impact_words" jsonschema:"description=Movement severity words scoring +2"`
	CredibleSources   []string `yaml:"credible_sources" json:"credible_sources" jsonschema:"description=Source names granting a severity bonus"`
	Instruments       []string `yaml:"instruments" json:"instruments" jsonschema:"description=Known pair and currency vocabulary for tag extraction"`

	EmergencyThreshold float64 `yaml:"emergency_threshold" json:"emergency_threshold" jsonschema:"default=0.6,description=Composite score at or above which content is an emergency"`
	HighThreshold      float64 `yaml:"high_threshold" json:"high_threshold" jsonschema:"default=0.75,description=Composite score for high urgency"`
	CriticalThreshold  float64 `yaml:"critical_threshold" json:"critical_threshold" jsonschema:"default=0.9,description=Composite score for critical urgency"`
	LowThreshold       float64 `yaml:"low_threshold" json:"low_threshold" jsonschema:"default=0.4,description=Composite score for medium urgency (below is low)"`
}

// PriorityConfig holds prioritizer weights and source lists
type PriorityConfig struct {
	ReliableSources []string `yaml:"reliable_sources" json:"reliable_sources" jsonschema:"description=Names of known-reliable sources"`
	ActionWords     []string `yaml:"action_words" json:"action_words" jsonschema:"description=Action-oriented vocabulary for information value scoring"`
	Vocabulary      []string `yaml:"vocabulary" json:"vocabulary" jsonschema:"description=Domain vocabulary for relevance in information value scoring"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:feedwatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Collector.MaxConcurrent == 0 {
		c.Collector.MaxConcurrent = 15
	}
	if c.Collector.FetchTimeout == 0 {
		c.Collector.FetchTimeout = 15 * time.Second
	}
	if c.Collector.MonitorInterval == 0 {
		c.Collector.MonitorInterval = 60 * time.Second
	}
	if c.Collector.MonitorSources == 0 {
		c.Collector.MonitorSources = 5
	}
	if c.Collector.BatchDelay == 0 {
		c.Collector.BatchDelay = time.Second
	}
	if c.Collector.UserAgent == "" {
		c.Collector.UserAgent = "Feedwatch/1.0"
	}
	if c.Collector.ResponseBudget == 0 {
		c.Collector.ResponseBudget = 30 * time.Second
	}

	if c.Quality.RelevanceFloor == 0 {
		c.Quality.RelevanceFloor = 0.3
	}
	if len(c.Quality.Vocabulary) == 0 {
		c.Quality.Vocabulary = defaultDomainVocabulary
	}

	c.Detection.setDefaults()

	if len(c.Priority.ReliableSources) == 0 {
		c.Priority.ReliableSources = defaultReliableSources
	}
	if len(c.Priority.ActionWords) == 0 {
		c.Priority.ActionWords = defaultActionWords
	}
	if len(c.Priority.Vocabulary) == 0 {
		c.Priority.Vocabulary = defaultDomainVocabulary
	}
}

func (d *DetectionConfig) setDefaults() {
	if len(d.MonetaryPolicyTerms) == 0 {
		d.MonetaryPolicyTerms = defaultMonetaryPolicyTerms
	}
	if len(d.EconomicDataTerms) == 0 {
		d.EconomicDataTerms = defaultEconomicDataTerms
	}
	if len(d.MarketCrisisTerms) == 0 {
		d.MarketCrisisTerms = defaultMarketCrisisTerms
	}
	if len(d.GeopoliticalTerms) == 0 {
		d.GeopoliticalTerms = defaultGeopoliticalTerms
	}
	if len(d.TechnicalTerms) == 0 {
		d.TechnicalTerms = defaultTechnicalTerms
	}
	if len(d.UrgencyWords) == 0 {
		d.UrgencyWords = defaultUrgencyWords
	}
	if len(d.ImpactWords) == 0 {
		d.ImpactWords = defaultImpactWords
	}
	if len(d.HighImpactWords) == 0 {
		d.HighImpactWords = defaultHighImpactWords
	}
	if len(d.MediumImpactWords) == 0 {
		d.MediumImpactWords = defaultMediumImpactWords
	}
	if len(d.CredibleSources) == 0 {
		d.CredibleSources = defaultCredibleSources
	}
	if len(d.Instruments) == 0 {
		d.Instruments = defaultInstruments
	}
	if d.EmergencyThreshold == 0 {
		d.EmergencyThreshold = 0.6
	}
	if d.HighThreshold == 0 {
		d.HighThreshold = 0.75
	}
	if d.CriticalThreshold == 0 {
		d.CriticalThreshold = 0.9
	}
	if d.LowThreshold == 0 {
		d.LowThreshold = 0.4
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Collector.MaxConcurrent < 1 {
		return fmt.Errorf("collector.max_concurrent must be at least 1")
	}
	if cfg.Collector.FetchTimeout < time.Second {
		return fmt.Errorf("collector.fetch_timeout must be at least 1 second")
	}
	if cfg.Quality.RelevanceFloor < 0 || cfg.Quality.RelevanceFloor > 1 {
		return fmt.Errorf("quality.relevance_floor must be between 0 and 1")
	}
	if cfg.Detection.EmergencyThreshold <= cfg.Detection.LowThreshold {
		return fmt.Errorf("detection.emergency_threshold must be above detection.low_threshold")
	}
	if cfg.Detection.CriticalThreshold < cfg.Detection.HighThreshold {
		return fmt.Errorf("detection.critical_threshold must be at or above detection.high_threshold")
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
