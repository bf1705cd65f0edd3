package config

import (
	"context"
	"log"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const OrderEventsTopic = "order-events"

// Load reads a .env file from the working directory when there is one.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// KafkaEnabled reports whether a broker is configured.
func KafkaEnabled() bool {
	return os.Getenv("KAFKA_BROKER") != ""
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: strings.Split(os.Getenv("KAFKA_BROKER"), ","),
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(os.Getenv("KAFKA_BROKER"), ",")...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// NewHTTPClient returns the backend client. The cookie jar keeps the
// backend's login session between calls.
func NewHTTPClient() *http.Client {
	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Fatal("Failed to create cookie jar:", err)
	}
	return &http.Client{Jar: jar}
}

// DeviceID names the device whose session this process owns.
func DeviceID() string {
	if id := os.Getenv("DEVICE_ID"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	id := uuid.NewString()
	log.Printf("DEVICE_ID not set, using generated id %s", id)
	return id
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
