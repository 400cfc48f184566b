package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (bot token, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeouts, class hours, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Telegram TelegramConfig
	Redis    RedisConfig
	AMQP     AMQPConfig
	Schedule ScheduleConfig
	Booking  BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	// Empty keeps the ops API same-origin.
	AllowOrigins  []string      `envconfig:"CORS_ALLOW_ORIGINS"`
	AllowMethods  []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders  []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	MaxAge        time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type TelegramConfig struct {
	Token       string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	Debug       bool   `envconfig:"TELEGRAM_DEBUG" default:"false"`
	PollTimeout int    `envconfig:"TELEGRAM_POLL_TIMEOUT" default:"60"`
	Workers     int    `envconfig:"TELEGRAM_WORKERS" default:"8"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
}

// AMQPConfig leaves URL empty to run without a broker.
type AMQPConfig struct {
	URL        string `envconfig:"AMQP_URL" default:""`
	Exchange   string `envconfig:"AMQP_EXCHANGE" default:"doglive"`
	RelayQueue string `envconfig:"AMQP_RELAY_QUEUE" default:"doglive.schedule.relay"`
}

// ScheduleConfig holds class hours as offsets from midnight UTC.
type ScheduleConfig struct {
	DayStart       time.Duration `envconfig:"SCHEDULE_DAY_START" default:"9h"`
	DayEnd         time.Duration `envconfig:"SCHEDULE_DAY_END" default:"21h"`
	SlotInterval   time.Duration `envconfig:"SCHEDULE_SLOT_INTERVAL" default:"1h"`
	RolloverCron   string        `envconfig:"SCHEDULE_ROLLOVER_CRON" default:"0 0 * * *"`
	RolloverOnBoot bool          `envconfig:"SCHEDULE_ROLLOVER_ON_BOOT" default:"true"`
}

type BookingConfig struct {
	FlowTTL time.Duration `envconfig:"BOOKING_FLOW_TTL" default:"15m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		CORS: CORSConfig{
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Telegram: TelegramConfig{
			Token:       "test-token",
			PollTimeout: 1,
			Workers:     2,
		},
		Redis: RedisConfig{
			Addr:     "localhost:16379",
			PoolSize: 4,
		},
		AMQP: AMQPConfig{
			Exchange:   "doglive.test",
			RelayQueue: "doglive.test.relay",
		},
		Schedule: ScheduleConfig{
			DayStart:     9 * time.Hour,
			DayEnd:       21 * time.Hour,
			SlotInterval: time.Hour,
			RolloverCron: "0 0 * * *",
		},
		Booking: BookingConfig{
			FlowTTL: 15 * time.Minute,
		},
	}
}
