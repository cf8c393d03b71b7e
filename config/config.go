package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                    = "8080"
	DefaultJWTExpiryHours          = 24
	DefaultEmailCodeExpirySeconds  = 300
	DefaultEmailCodeLength         = 6
	DefaultBcryptCost              = 12
	DefaultPermanentBlockThreshold = 50
	DefaultEmailMode               = "log"
)

// Progressive lockout defaults: each threshold (inclusive) maps to the
// duration at the same index.
var (
	DefaultLockoutThresholds = []int{5, 10, 15, 20, 25}
	DefaultLockoutDurations  = []time.Duration{
		5 * time.Minute,
		15 * time.Minute,
		time.Hour,
		6 * time.Hour,
		24 * time.Hour,
	}
)

type Config struct {
	Env   string
	Port  string
	DBURL string

	JWTSecret      string
	JWTExpiryHours int

	EmailCodeExpiry time.Duration
	EmailCodeLength int
	BcryptCost      int

	LockoutThresholds       []int
	LockoutDurations        []time.Duration
	PermanentBlockThreshold int

	EmailMode    string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

func Load() *Config {
	env := getEnv("ENV", "development")

	// Env vars already set take precedence; godotenv never overrides them.
	envFile := "config/.env.dev"
	if env == "production" {
		envFile = "config/.env.prod"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No %s file found, relying on system env vars", envFile)
	}

	thresholds, durations := loadLockoutTiers()

	return &Config{
		Env:   env,
		Port:  getEnv("PORT", DefaultPort),
		DBURL: mustGetEnv("DB_URL"),

		JWTSecret:      mustGetEnv("JWT_SECRET"),
		JWTExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", DefaultJWTExpiryHours),

		EmailCodeExpiry: time.Duration(getEnvAsInt("EMAIL_CODE_EXPIRATION", DefaultEmailCodeExpirySeconds)) * time.Second,
		EmailCodeLength: getEnvAsInt("EMAIL_CODE_LENGTH", DefaultEmailCodeLength),
		BcryptCost:      getEnvAsInt("BCRYPT_COST", DefaultBcryptCost),

		LockoutThresholds:       thresholds,
		LockoutDurations:        durations,
		PermanentBlockThreshold: getEnvAsInt("PERMANENT_BLOCK_THRESHOLD", DefaultPermanentBlockThreshold),

		EmailMode:    getEnv("EMAIL_MODE", DefaultEmailMode),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "465"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
	}
}

// loadLockoutTiers parses LOCKOUT_THRESHOLDS ("5,10,15,20,25") and
// LOCKOUT_DURATIONS ("5m,15m,1h,6h,24h"). Both must parse and have matching
// lengths, otherwise the documented defaults apply.
func loadLockoutTiers() ([]int, []time.Duration) {
	rawThresholds := os.Getenv("LOCKOUT_THRESHOLDS")
	rawDurations := os.Getenv("LOCKOUT_DURATIONS")
	if rawThresholds == "" || rawDurations == "" {
		return DefaultLockoutThresholds, DefaultLockoutDurations
	}

	var thresholds []int
	for _, part := range strings.Split(rawThresholds, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			log.Printf("Invalid LOCKOUT_THRESHOLDS entry %q, using defaults", part)
			return DefaultLockoutThresholds, DefaultLockoutDurations
		}
		thresholds = append(thresholds, n)
	}

	var durations []time.Duration
	for _, part := range strings.Split(rawDurations, ",") {
		d, err := time.ParseDuration(strings.TrimSpace(part))
		if err != nil {
			log.Printf("Invalid LOCKOUT_DURATIONS entry %q, using defaults", part)
			return DefaultLockoutThresholds, DefaultLockoutDurations
		}
		durations = append(durations, d)
	}

	if len(thresholds) != len(durations) {
		log.Printf("LOCKOUT_THRESHOLDS and LOCKOUT_DURATIONS lengths differ, using defaults")
		return DefaultLockoutThresholds, DefaultLockoutDurations
	}

	return thresholds, durations
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
