package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/avkostin/studio-booking/internal/domain"
	"github.com/avkostin/studio-booking/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения к базе
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AdminConfig настройки административного доступа
type AdminConfig struct {
	Password          string `toml:"password"`
	SessionSecret     string `toml:"session_secret"`
	SessionCookieName string `toml:"session_cookie_name"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
	SecureCookie      bool   `toml:"secure_cookie"`
}

// ScheduleConfig расписание работы студии
type ScheduleConfig struct {
	Timezone          string `toml:"timezone"`
	WorkingDays       []int  `toml:"working_days"` // ISO 1-7
	WorkStart         string `toml:"work_start"`   // HH:MM
	WorkEnd           string `toml:"work_end"`     // HH:MM
	SlotMinutes       int    `toml:"slot_minutes"`
	BookingWindowDays int    `toml:"booking_window_days"`
	MaxSessionMinutes int    `toml:"max_session_minutes"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "studio-booking"
	}

	if c.Admin.SessionCookieName == "" {
		c.Admin.SessionCookieName = "admin_session"
	}
	if c.Admin.SessionTTLMinutes == 0 {
		c.Admin.SessionTTLMinutes = 12 * 60
	}

	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = "Europe/Moscow"
	}
	if len(c.Schedule.WorkingDays) == 0 {
		c.Schedule.WorkingDays = []int{1, 2, 3, 4, 5}
	}
	if c.Schedule.WorkStart == "" {
		c.Schedule.WorkStart = "09:00"
	}
	if c.Schedule.WorkEnd == "" {
		c.Schedule.WorkEnd = "18:00"
	}
	if c.Schedule.SlotMinutes == 0 {
		c.Schedule.SlotMinutes = domain.DefaultSlotMinutes
	}
	if c.Schedule.BookingWindowDays == 0 {
		c.Schedule.BookingWindowDays = domain.DefaultBookingWindowDays
	}
	if c.Schedule.MaxSessionMinutes == 0 {
		c.Schedule.MaxSessionMinutes = domain.DefaultMaxSessionMinutes
	}
}

// Validate проверяет обязательные поля конфигурации
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Logs.File == "" {
		return fmt.Errorf("config: logs.file is required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("config: admin.password is required")
	}
	if c.Admin.SessionSecret == "" {
		return fmt.Errorf("config: admin.session_secret is required")
	}

	// Правила расписания проверяются доменной валидацией
	rules, err := c.ToScheduleRules()
	if err != nil {
		return err
	}
	return rules.Validate()
}

// ToScheduleRules конвертирует секцию schedule в доменные правила расписания
func (c *Config) ToScheduleRules() (domain.ScheduleRules, error) {
	loc, err := time.LoadLocation(c.Schedule.Timezone)
	if err != nil {
		return domain.ScheduleRules{}, fmt.Errorf("config: invalid schedule.timezone %q: %w", c.Schedule.Timezone, err)
	}

	workStart, err := types.NewTimeStringFromString(c.Schedule.WorkStart)
	if err != nil {
		return domain.ScheduleRules{}, fmt.Errorf("config: invalid schedule.work_start: %w", err)
	}
	workEnd, err := types.NewTimeStringFromString(c.Schedule.WorkEnd)
	if err != nil {
		return domain.ScheduleRules{}, fmt.Errorf("config: invalid schedule.work_end: %w", err)
	}

	return domain.ScheduleRules{
		Location:          loc,
		WorkingWeekdays:   c.Schedule.WorkingDays,
		WorkStart:         workStart,
		WorkEnd:           workEnd,
		SlotMinutes:       c.Schedule.SlotMinutes,
		BookingWindowDays: c.Schedule.BookingWindowDays,
		MaxSessionMinutes: c.Schedule.MaxSessionMinutes,
	}, nil
}

// SessionTTL время жизни административной сессии
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Admin.SessionTTLMinutes) * time.Minute
}
