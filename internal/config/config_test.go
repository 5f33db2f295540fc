package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[database]
dbname = "va_agenda"

[calendar]
url = "http://localhost:8091/api/v1"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	assert.Equal(t, domain.DefaultTimezone, cfg.Schedule.Timezone)
	assert.Equal(t, domain.DefaultHorizonDays, cfg.Schedule.HorizonDays)
	assert.Equal(t, domain.DefaultDurationMinutes, cfg.Schedule.DurationMinutes)
	assert.Equal(t, domain.DefaultWeekdayTimes, cfg.Schedule.WeekdayTimes)
	assert.Equal(t, domain.DefaultSaturdayTimes, cfg.Schedule.SaturdayTimes)
	assert.Equal(t, domain.DefaultHolidays, cfg.Schedule.Holidays)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9090
allowed_origins = ["https://vibracionalta.com"]

[database]
dbname = "va_agenda"

[calendar]
url = "http://localhost:8091/api/v1"

[schedule]
timezone = "America/Bogota"
horizon_days = 30
duration_minutes = 60
weekday_times = ["08:00", "10:00"]
saturday_times = []
holidays = ["2025-12-25"]
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"https://vibracionalta.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30, cfg.Schedule.HorizonDays)
	assert.Equal(t, 60, cfg.Schedule.DurationMinutes)
	assert.Equal(t, []string{"08:00", "10:00"}, cfg.Schedule.WeekdayTimes)
	assert.Empty(t, cfg.Schedule.SaturdayTimes)
	assert.Equal(t, []string{"2025-12-25"}, cfg.Schedule.Holidays)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "sin dbname",
			content: `
[calendar]
url = "http://localhost:8091/api/v1"
`,
		},
		{
			name: "sin calendar url",
			content: `
[database]
dbname = "va_agenda"
`,
		},
		{
			name: "zona horaria inválida",
			content: minimalConfig + `
[schedule]
timezone = "Marte/Olympus"
`,
		},
		{
			name: "horizonte no positivo",
			content: minimalConfig + `
[schedule]
horizon_days = 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-existe.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "va_agenda",
		Password: "secret",
		DBName:   "va_agenda",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=va_agenda password=secret dbname=va_agenda sslmode=disable",
		cfg.DSN(),
	)
}
