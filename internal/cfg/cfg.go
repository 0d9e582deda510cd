package cfg

import (
	"os"
	"strconv"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/shoplens/go-backend/pkg/e"
	"github.com/shoplens/go-backend/pkg/logger"
)

type Config struct {
	Http        *HTTPConfig
	Db          *DBCfg
	Seed        *SeedCfg
	Recommender *RecommenderCfg
	Analytics   *AnalyticsCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DBCfg struct {
	Path          string // path to the SQLite database file
	MigrationsURL string
}

type SeedCfg struct {
	Size       int   // number of products generated on first run
	RandomSeed int64 // fixed seed keeps the sample catalog reproducible
}

// RecommenderCfg carries the scoring policy. The exact weighting is
// configuration, not code.
type RecommenderCfg struct {
	SimWeight      float64 // share of the score taken by feature similarity
	RatingWeight   float64
	DiscountWeight float64
	PriceWeight    float64
	DefaultTopK    int
}

type AnalyticsCfg struct {
	MinReviews  int // review floor for the top-rated ranking
	DefaultTopN int
	DefaultBins int
}

// Load reads the configuration from the environment and returns an error on
// any malformed value.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	seed, err := loadSeedCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	rec, err := loadRecommenderCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	analytics, err := loadAnalyticsCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:        http,
		Db:          loadDBCfg(),
		Seed:        seed,
		Recommender: rec,
		Analytics:   analytics,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8501"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadDBCfg() *DBCfg {
	const (
		defaultPath          = "data/shoplens.db"
		defaultMigrationsURL = "file://db/migrations"
	)

	return &DBCfg{
		Path:          getEnvOrDefault("SQLITE_PATH", defaultPath),
		MigrationsURL: getEnvOrDefault("MIGRATIONS_URL", defaultMigrationsURL),
	}
}

func loadSeedCfg(log logger.Logger) (*SeedCfg, error) {
	const (
		defaultSize       = 125
		defaultRandomSeed = 42
	)

	size, err := parseIntEnv("SEED_SIZE", defaultSize)
	if err != nil {
		log.Errorf(err, "invalid SEED_SIZE")
		return nil, err
	}

	randomSeed, err := parseIntEnv("SEED_RANDOM_SEED", defaultRandomSeed)
	if err != nil {
		log.Errorf(err, "invalid SEED_RANDOM_SEED")
		return nil, err
	}

	return &SeedCfg{
		Size:       size,
		RandomSeed: int64(randomSeed),
	}, nil
}

func loadRecommenderCfg(log logger.Logger) (*RecommenderCfg, error) {
	const (
		defaultSimWeight      = 0.7
		defaultRatingWeight   = 0.5
		defaultDiscountWeight = 0.2
		defaultPriceWeight    = 0.3
		defaultTopK           = 5
	)

	simWeight, err := parseFloatEnv("RECOMMENDER_SIM_WEIGHT", defaultSimWeight)
	if err != nil {
		log.Errorf(err, "invalid RECOMMENDER_SIM_WEIGHT")
		return nil, err
	}

	ratingWeight, err := parseFloatEnv("RECOMMENDER_RATING_WEIGHT", defaultRatingWeight)
	if err != nil {
		log.Errorf(err, "invalid RECOMMENDER_RATING_WEIGHT")
		return nil, err
	}

	discountWeight, err := parseFloatEnv("RECOMMENDER_DISCOUNT_WEIGHT", defaultDiscountWeight)
	if err != nil {
		log.Errorf(err, "invalid RECOMMENDER_DISCOUNT_WEIGHT")
		return nil, err
	}

	priceWeight, err := parseFloatEnv("RECOMMENDER_PRICE_WEIGHT", defaultPriceWeight)
	if err != nil {
		log.Errorf(err, "invalid RECOMMENDER_PRICE_WEIGHT")
		return nil, err
	}

	topK, err := parseIntEnv("RECOMMENDER_TOP_K", defaultTopK)
	if err != nil {
		log.Errorf(err, "invalid RECOMMENDER_TOP_K")
		return nil, err
	}

	return &RecommenderCfg{
		SimWeight:      simWeight,
		RatingWeight:   ratingWeight,
		DiscountWeight: discountWeight,
		PriceWeight:    priceWeight,
		DefaultTopK:    topK,
	}, nil
}

func loadAnalyticsCfg(log logger.Logger) (*AnalyticsCfg, error) {
	const (
		defaultMinReviews = 10
		defaultTopN       = 8
		defaultBins       = 20
	)

	minReviews, err := parseIntEnv("ANALYTICS_MIN_REVIEWS", defaultMinReviews)
	if err != nil {
		log.Errorf(err, "invalid ANALYTICS_MIN_REVIEWS")
		return nil, err
	}

	topN, err := parseIntEnv("ANALYTICS_TOP_N", defaultTopN)
	if err != nil {
		log.Errorf(err, "invalid ANALYTICS_TOP_N")
		return nil, err
	}

	bins, err := parseIntEnv("ANALYTICS_BINS", defaultBins)
	if err != nil {
		log.Errorf(err, "invalid ANALYTICS_BINS")
		return nil, err
	}

	return &AnalyticsCfg{
		MinReviews:  minReviews,
		DefaultTopN: topN,
		DefaultBins: bins,
	}, nil
}

// getEnvOrDefault returns the environment variable value or the default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv reads a duration or returns the default.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.Wrap(key, err)
	}

	return intValue, nil
}

func parseFloatEnv(key string, defaultValue float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	floatValue, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultValue, e.Wrap(key, err)
	}

	return floatValue, nil
}
