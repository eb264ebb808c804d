package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	DB          DBConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Upload      UploadConfig
	NoShow      NoShowConfig
	AccessHours AccessHoursConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	ConnectAttempts int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// NoShowConfig drives the automatic "mark no-show" sweep. A single
// grace period is used by both the background sweeper and the manual
// endpoint.
type NoShowConfig struct {
	GracePeriod   time.Duration
	SweepInterval time.Duration
}

// AccessHoursConfig defines the daily window during which non-admin
// users may use the system. Hours are in 24h local time.
type AccessHoursConfig struct {
	StartHour int
	EndHour   int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine when everything comes from the environment
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port: getString("APP_PORT", "3000"),
			Env:  getString("APP_ENV", "production"),
		},
		DB: DBConfig{
			Host:            getString("DB_HOST", "localhost"),
			Port:            getString("DB_PORT", "3306"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			ConnectAttempts: getInt("DB_CONNECT_ATTEMPTS", 3),
		},
		Redis: RedisConfig{
			Host:     getString("REDIS_HOST", "localhost"),
			Port:     getString("REDIS_PORT", "6379"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: getDuration("JWT_ACCESS_EXPIRY", 8*time.Hour),
		},
		Upload: UploadConfig{
			Dir:      getString("UPLOAD_DIR", "./uploads"),
			MaxBytes: getInt64("UPLOAD_MAX_BYTES", 50*1024*1024),
		},
		NoShow: NoShowConfig{
			GracePeriod:   getDuration("NOSHOW_GRACE_PERIOD", time.Hour),
			SweepInterval: getDuration("NOSHOW_SWEEP_INTERVAL", 15*time.Minute),
		},
		AccessHours: AccessHoursConfig{
			StartHour: getInt("ACCESS_HOURS_START", 8),
			EndHour:   getInt("ACCESS_HOURS_END", 24),
		},
	}

	return config, nil
}

func getString(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if viper.IsSet(key) {
		return viper.GetInt64(key)
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}
