package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
)

// Config configuración del servicio cargada desde config.toml
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Database   DatabaseConfig   `toml:"database"`
	Calendar   CalendarConfig   `toml:"calendar"`
	Cloudinary CloudinaryConfig `toml:"cloudinary"`
	Schedule   ScheduleConfig   `toml:"schedule"`
}

// ServerConfig parámetros del servidor HTTP
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`     // segundos
	WriteTimeout    int      `toml:"write_timeout"`    // segundos
	IdleTimeout     int      `toml:"idle_timeout"`     // segundos
	ShutdownTimeout int      `toml:"shutdown_timeout"` // segundos
	AllowedOrigins  []string `toml:"allowed_origins"`  // orígenes CORS de la SPA
}

// LogsConfig configuración del logger
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configuración de métricas Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig conexión a PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // segundos
}

// DSN devuelve la cadena de conexión de PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// CalendarConfig feed de calendario externo (eventos ocupados y creación de citas)
type CalendarConfig struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"` // segundos
}

// CloudinaryConfig credenciales del almacenamiento de comprobantes
type CloudinaryConfig struct {
	CloudName string `toml:"cloud_name"`
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`
	Folder    string `toml:"folder"`
}

// ScheduleConfig parámetros del motor de disponibilidad.
// Las plantillas y festivos se inyectan por configuración para poder
// sustituirlos en pruebas sin tocar el algoritmo.
type ScheduleConfig struct {
	Timezone        string   `toml:"timezone"`
	HorizonDays     int      `toml:"horizon_days"`
	DurationMinutes int      `toml:"duration_minutes"`
	WeekdayTimes    []string `toml:"weekday_times"`
	SaturdayTimes   []string `toml:"saturday_times"`
	Holidays        []string `toml:"holidays"`
}

// Location devuelve la zona horaria de operación
func (s ScheduleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// Load carga la configuración desde un archivo TOML aplicando valores por defecto
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "logs/va-agenda-service.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "va-agenda-service",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Calendar: CalendarConfig{
			Timeout: 10,
		},
		Schedule: ScheduleConfig{
			Timezone:        domain.DefaultTimezone,
			HorizonDays:     domain.DefaultHorizonDays,
			DurationMinutes: domain.DefaultDurationMinutes,
			WeekdayTimes:    domain.DefaultWeekdayTimes,
			SaturdayTimes:   domain.DefaultSaturdayTimes,
			Holidays:        domain.DefaultHolidays,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Calendar.URL == "" {
		return fmt.Errorf("config: calendar.url is required")
	}
	if c.Schedule.HorizonDays <= 0 {
		return fmt.Errorf("config: schedule.horizon_days must be positive")
	}
	if c.Schedule.DurationMinutes <= 0 {
		return fmt.Errorf("config: schedule.duration_minutes must be positive")
	}
	if _, err := c.Schedule.Location(); err != nil {
		return err
	}
	return nil
}
