package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel       string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	Host           string        `env:"HOST,default=localhost"`
	Port           int           `env:"PORT,default=8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=15s"`

	SinkTimeout      time.Duration `env:"SINK_TIMEOUT,default=2s"`
	ClientBufferSize int           `env:"CLIENT_BUFFER_SIZE,default=64"`
	MaxFanout        int           `env:"MAX_FANOUT,default=64"`
	TimelineSize     int           `env:"DEBUG_TIMELINE_SIZE,default=0"`
	RestartInterval  time.Duration `env:"RESTART_INTERVAL,default=1s"`
	MetricInterval   time.Duration `env:"METRIC_INTERVAL,default=10s"`

	JWTSecret        string        `env:"JWT_SECRET,required=true"`
	JWTTokenDuration time.Duration `env:"JWT_TOKEN_DURATION,default=24h"`

	InstanceID   string `env:"INSTANCE_ID"`
	RedisAddr    string `env:"REDIS_ADDR"`
	RedisChannel string `env:"REDIS_CHANNEL,default=chat-events"`

	KafkaBrokers       string `env:"KAFKA_BROKERS"`
	KafkaContentTopic  string `env:"KAFKA_CONTENT_TOPIC,default=content.deleted"`
	KafkaGroupID       string `env:"KAFKA_GROUP_ID,default=chat-core"`
	ContentEventBuffer int    `env:"CONTENT_EVENT_BUFFER,default=128"`
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return Config{}, fmt.Errorf("config file: %w", err)
	}
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.ClientBufferSize <= 0 {
		return Config{}, fmt.Errorf("CLIENT_BUFFER_SIZE must be positive, got %d", config.ClientBufferSize)
	}
	if config.SinkTimeout <= 0 {
		return Config{}, fmt.Errorf("SINK_TIMEOUT must be positive, got %s", config.SinkTimeout)
	}
	return config, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) Brokers() []string {
	if c.KafkaBrokers == "" {
		return nil
	}
	return strings.Split(c.KafkaBrokers, ",")
}
