package configuration

import (
	"fmt"
	"os"
	"strconv"

	"video-studio/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App          App          `json:"app"`
	Database     Database     `json:"database"`
	RedisClient  RedisClient  `json:"redisClient"`
	Pubsub       Pubsub       `json:"pubsub"`
	ServiceBus   ServiceBus   `json:"serviceBus"`
	OpenAI       OpenAI       `json:"openAI"`
	Video        Video        `json:"video"`
	Monetization Monetization `json:"monetization"`
}

type App struct {
	Port        int    `json:"port"`
	TLSEnabled  bool   `json:"tlsEnabled"`
	TLSCertFile string `json:"tlsCertFile"`
	TLSKeyFile  string `json:"tlsKeyFile"`
}

type Database struct {
	Psql  Db `json:"psql"`
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Pubsub struct {
	ProjectID string `json:"projectID"`
	Topic     string `json:"topic"`
}

type ServiceBus struct {
	Namespace string `json:"namespace"`
	Queue     string `json:"queue"`
}

// OpenAI holds the script generation credentials. An empty APIKey switches
// the script usecase to template (mock) mode.
type OpenAI struct {
	APIKey string `json:"apiKey"`
	Model  string `json:"model"`
}

// Video holds per-provider generation credentials and the user-defined
// custom endpoint.
type Video struct {
	RunwayAPIKey      string `json:"runwayApiKey"`
	PikaAPIKey        string `json:"pikaApiKey"`
	StableVideoAPIKey string `json:"stableVideoApiKey"`
	CustomEndpoint    string `json:"customEndpoint"`
	CustomAPIKey      string `json:"customApiKey"`
}

// Monetization holds platform credentials for the revenue aggregator.
// SimulationMode keeps the demo numbers deterministic-friendly instead of
// unconditionally randomizing.
type Monetization struct {
	SimulationMode     bool   `json:"simulationMode"`
	YouTubeAPIKey      string `json:"youtubeApiKey"`
	YouTubeChannelID   string `json:"youtubeChannelId"`
	TikTokAccessToken  string `json:"tiktokAccessToken"`
	PatreonAccessToken string `json:"patreonAccessToken"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initIntegrations(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = os.Getenv("DB_PORT")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}

	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Port == "" {
		if v := os.Getenv("MONGO_PORT"); v != "" {
			C.Database.Mongo.Port = v
		} else {
			C.Database.Mongo.Port = "27017"
		}
	}
	if C.Database.Mongo.Name == "" {
		if v := os.Getenv("MONGO_DB_NAME"); v != "" {
			C.Database.Mongo.Name = v
		} else {
			C.Database.Mongo.Name = "video_studio"
		}
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10002
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10002
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		switch v {
		case "1", "true", "TRUE", "True":
			C.App.TLSEnabled = true
		case "0", "false", "FALSE", "False":
			C.App.TLSEnabled = false
		}
	}
	if C.App.TLSCertFile == "" {
		C.App.TLSCertFile = os.Getenv("TLS_CERT_FILE")
	}
	if C.App.TLSKeyFile == "" {
		C.App.TLSKeyFile = os.Getenv("TLS_KEY_FILE")
	}
}

func initIntegrations(C *Config) {
	if C.OpenAI.APIKey == "" {
		C.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if C.OpenAI.Model == "" {
		C.OpenAI.Model = "gpt-4"
	}
	if C.Video.RunwayAPIKey == "" {
		C.Video.RunwayAPIKey = os.Getenv("RUNWAY_API_KEY")
	}
	if C.Video.PikaAPIKey == "" {
		C.Video.PikaAPIKey = os.Getenv("PIKA_API_KEY")
	}
	if C.Video.StableVideoAPIKey == "" {
		C.Video.StableVideoAPIKey = os.Getenv("STABLE_VIDEO_API_KEY")
	}
	if C.Video.CustomEndpoint == "" {
		C.Video.CustomEndpoint = os.Getenv("CUSTOM_VIDEO_API_ENDPOINT")
	}
	if C.Video.CustomAPIKey == "" {
		C.Video.CustomAPIKey = os.Getenv("CUSTOM_VIDEO_API_KEY")
	}
	if C.Monetization.YouTubeAPIKey == "" {
		C.Monetization.YouTubeAPIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if C.Monetization.YouTubeChannelID == "" {
		C.Monetization.YouTubeChannelID = os.Getenv("YOUTUBE_CHANNEL_ID")
	}
	if C.Monetization.TikTokAccessToken == "" {
		C.Monetization.TikTokAccessToken = os.Getenv("TIKTOK_ACCESS_TOKEN")
	}
	if C.Monetization.PatreonAccessToken == "" {
		C.Monetization.PatreonAccessToken = os.Getenv("PATREON_ACCESS_TOKEN")
	}
	// MONETIZATION_MODE=simulation forces mock numbers regardless of credentials
	if os.Getenv("MONETIZATION_MODE") == "simulation" {
		C.Monetization.SimulationMode = true
	}
}
