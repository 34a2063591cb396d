package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	solver "github.com/gehtsoft-usa/go_ballisticsolver"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultShotConfig(t *testing.T) {
	params, err := DefaultShotConfig().ShotParameters()
	require.NoError(t, err)

	assert.InDelta(t, 820, params.Ammunition().MuzzleVelocity().In(unit.VelocityMPS), 1e-9)
	assert.Equal(t, solver.DragTableG7, params.Ammunition().Bullet().BallisticCoefficient().Table())
	assert.InDelta(t, 500, params.Target().Distance().In(unit.DistanceMeter), 1e-9)
	assert.InDelta(t, 5, params.Weapon().SightHeight().In(unit.DistanceCentimeter), 1e-9)
	assert.Equal(t, unit.AngularMRad, params.Weapon().AdjustmentUnits())
	assert.True(t, params.Atmosphere().HasHumidity())
	assert.False(t, params.HasLocation())
}

func TestLoadShotConfig_Partial(t *testing.T) {
	path := writeConfig(t, "shot.json", `{
		"target_distance_m": 800,
		"drag_table": "g1",
		"adjustment_units": "MOA",
		"click_size": 0.25,
		"wind_speed_mps": 5,
		"wind_clock": 3,
		"latitude_deg": 45,
		"azimuth_deg": 90,
		"integration_method": "euler",
		"time_step": "500us"
	}`)

	cfg, err := LoadShotConfig(path)
	require.NoError(t, err)

	params, err := cfg.ShotParameters()
	require.NoError(t, err)
	assert.InDelta(t, 800, params.Target().Distance().In(unit.DistanceMeter), 1e-9)
	assert.Equal(t, solver.DragTableG1, params.Ammunition().Bullet().BallisticCoefficient().Table())
	assert.Equal(t, unit.AngularMOA, params.Weapon().AdjustmentUnits())
	assert.InDelta(t, 3, params.Wind().Clock(), 1e-9)
	require.True(t, params.HasLocation())
	assert.InDelta(t, 45, params.Location().Latitude().In(unit.AngularDegree), 1e-9)
	// omitted keys keep the defaults
	assert.InDelta(t, 820, params.Ammunition().MuzzleVelocity().In(unit.VelocityMPS), 1e-9)

	calc, err := cfg.Calculator()
	require.NoError(t, err)
	assert.Equal(t, solver.IntegrationEuler, calc.IntegrationMethod())
	assert.Equal(t, 500*time.Microsecond, calc.TimeStep())
}

func TestLoadShotConfig_Altitude(t *testing.T) {
	path := writeConfig(t, "shot.json", `{"altitude_m": 1500, "temperature_c": null, "pressure_hpa": null, "humidity_pct": null}`)

	cfg, err := LoadShotConfig(path)
	require.NoError(t, err)
	params, err := cfg.ShotParameters()
	require.NoError(t, err)

	assert.InDelta(t, 5.25, params.Atmosphere().Temperature().In(unit.TemperatureCelsius), 1e-9)
	assert.InDelta(t, 845.6, params.Atmosphere().Pressure().In(unit.PressureHPa), 0.5)
	assert.False(t, params.Atmosphere().HasHumidity())
}

func TestLoadShotConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errText string
	}{
		{"extension", "shot.yaml", `{}`, ".json extension"},
		{"syntax", "shot.json", `{"target_distance_m": }`, "failed to parse config JSON"},
		{"drag table", "shot.json", `{"drag_table": "G5"}`, "drag_table"},
		{"twist", "shot.json", `{"twist_direction": "up"}`, "twist_direction"},
		{"units", "shot.json", `{"adjustment_units": "deg"}`, "adjustment_units"},
		{"method", "shot.json", `{"integration_method": "verlet"}`, "integration_method"},
		{"time step", "shot.json", `{"time_step": "fast"}`, "time_step"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadShotConfig(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadShotConfig_Missing(t *testing.T) {
	_, err := LoadShotConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadShotConfig_TooLarge(t *testing.T) {
	path := writeConfig(t, "shot.json", `{"drag_table": "G7"`+strings.Repeat(" ", 1024*1024)+`}`)
	_, err := LoadShotConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestShotParameters_InvalidInput(t *testing.T) {
	cfg := DefaultShotConfig()
	cfg.HumidityPct = ptrFloat64(120)
	_, err := cfg.ShotParameters()
	assert.True(t, errors.Is(err, solver.ErrInvalidInput))

	cfg = DefaultShotConfig()
	cfg.ZeroDistanceM = 0
	_, err = cfg.ShotParameters()
	assert.True(t, errors.Is(err, solver.ErrInvalidInput))

	cfg = DefaultShotConfig()
	cfg.LatitudeDeg = ptrFloat64(95)
	_, err = cfg.ShotParameters()
	assert.True(t, errors.Is(err, solver.ErrInvalidInput))
}
