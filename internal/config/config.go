package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host        string
	Port        string
	CORSOrigins []string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Storage struct {
	// postgres | memory
	Driver string
}

type Game struct {
	TimeoutGrace  time.Duration
	LedgerRetries int
	LedgerBackoff time.Duration
}

type Auth struct {
	SessionTTL time.Duration
	// HMAC key for guest tokens.
	Secret string
}

const (
	FanoutLocal = "local"
	FanoutRedis = "redis"
)

type Notify struct {
	Fanout  string
	Channel string
}

type RateLimit struct {
	RPS   float64
	Burst int
}

type Log struct {
	Level  string
	Format string
	// Rotated file copy of the log, off when empty.
	File string
}

type Config struct {
	HTTP      HTTPServer
	Redis     RedisCache
	Postgres  Postgres
	Storage   Storage
	Game      Game
	Auth      Auth
	Notify    Notify
	RateLimit RateLimit
	Log       Log
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := FromEnv()
	log.Printf("%s backend config : %+v\n", logtag, cfg.redacted())
	return cfg
}

// FromEnv builds the config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		HTTP:      *newHTTP(),
		Redis:     *newRedis(),
		Postgres:  *newPostgres(),
		Storage:   *newStorage(),
		Game:      *newGame(),
		Auth:      *newAuth(),
		Notify:    *newNotify(),
		RateLimit: *newRateLimit(),
		Log:       *newLog(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:        getenv("HTTP_PORT", "8080"),
		Host:        getenv("HTTP_HOST", "localhost"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "flowquest"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newStorage() *Storage {
	driver := strings.ToLower(getenv("STORAGE_DRIVER", DriverPostgres))
	if driver != DriverMemory {
		driver = DriverPostgres
	}
	return &Storage{Driver: driver}
}

func newGame() *Game {
	return &Game{
		TimeoutGrace:  getduration("GAME_TIMEOUT_GRACE", 5*time.Second),
		LedgerRetries: getint("LEDGER_RETRIES", 3),
		LedgerBackoff: getduration("LEDGER_BACKOFF", 20*time.Millisecond),
	}
}

func newAuth() *Auth {
	return &Auth{
		SessionTTL: getduration("SESSION_TTL", 24*time.Hour),
		Secret:     getenv("AUTH_SECRET", "shared"),
	}
}

func newNotify() *Notify {
	fanout := strings.ToLower(getenv("NOTIFY_FANOUT", FanoutLocal))
	if fanout != FanoutRedis {
		fanout = FanoutLocal
	}
	return &Notify{
		Fanout:  fanout,
		Channel: getenv("NOTIFY_CHANNEL", "flowquest:events"),
	}
}

func newRateLimit() *RateLimit {
	return &RateLimit{
		RPS:   getfloat("RATE_LIMIT_RPS", 5),
		Burst: getint("RATE_LIMIT_BURST", 10),
	}
}

func newLog() *Log {
	return &Log{
		Level:  getenv("LOG_LEVEL", "info"),
		Format: getenv("LOG_FORMAT", "text"),
		File:   os.Getenv("LOG_FILE"),
	}
}

func (c Config) redacted() Config {
	if c.Redis.Password != "" {
		c.Redis.Password = "***"
	}
	if c.Postgres.Password != "" {
		c.Postgres.Password = "***"
	}
	if c.Auth.Secret != "" {
		c.Auth.Secret = "***"
	}
	return c
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getint(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("%s %s=%q is not an int. Using default value %d", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getfloat(key string, defaultValue float64) float64 {
	raw := getenv(key, strconv.FormatFloat(defaultValue, 'f', -1, 64))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("%s %s=%q is not a number. Using default value %v", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getduration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("%s %s=%q is not a duration. Using default value %s", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
