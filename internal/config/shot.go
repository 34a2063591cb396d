package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	solver "github.com/gehtsoft-usa/go_ballisticsolver"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

// ShotConfig is the JSON description of one shot. Every key carries its unit
// so that a file can be read without guessing. Optional values are pointers.
type ShotConfig struct {
	// Ammunition
	MuzzleVelocityMPS          float64  `json:"muzzle_velocity_mps"`
	BallisticCoefficient       float64  `json:"ballistic_coefficient"`
	DragTable                  string   `json:"drag_table"` // "G1" or "G7"
	BulletWeightGrains         float64  `json:"bullet_weight_gr"`
	ReferenceWeightGrains      *float64 `json:"reference_weight_gr,omitempty"`
	TemperatureSensitivityMPSC *float64 `json:"temperature_sensitivity_mps_per_c,omitempty"`
	CaliberInches              float64  `json:"caliber_in"`
	BulletLengthInches         float64  `json:"bullet_length_in"`

	// Weapon
	TwistInches     float64 `json:"twist_in"`
	TwistDirection  string  `json:"twist_direction"` // "right" or "left"
	SightHeightCM   float64 `json:"sight_height_cm"`
	ZeroDistanceM   float64 `json:"zero_distance_m"`
	AdjustmentUnits string  `json:"adjustment_units"` // "MRAD" or "MOA"
	ClickSize       float64 `json:"click_size"`       // in adjustment units

	// Target
	TargetDistanceM float64  `json:"target_distance_m"`
	InclinationDeg  *float64 `json:"inclination_deg,omitempty"`

	// Atmosphere. Altitude gives the standard atmosphere, temperature and
	// pressure override it.
	AltitudeM    *float64 `json:"altitude_m,omitempty"`
	TemperatureC *float64 `json:"temperature_c,omitempty"`
	PressureHPa  *float64 `json:"pressure_hpa,omitempty"`
	HumidityPct  *float64 `json:"humidity_pct,omitempty"`

	// Wind
	WindSpeedMPS float64 `json:"wind_speed_mps"`
	WindClock    float64 `json:"wind_clock"`

	// Location enables Coriolis when latitude is set
	LatitudeDeg *float64 `json:"latitude_deg,omitempty"`
	AzimuthDeg  *float64 `json:"azimuth_deg,omitempty"`

	// Calculator
	IntegrationMethod *string `json:"integration_method,omitempty"` // "rk4" or "euler"
	TimeStep          *string `json:"time_step,omitempty"`          // duration string like "1.5ms"
}

func ptrFloat64(v float64) *float64 { return &v }

// DefaultShotConfig returns the reference .308 shot: 175gr G7 0.45 at 820 m/s,
// 100 m zero and the target at 500 m in standard conditions.
func DefaultShotConfig() *ShotConfig {
	return &ShotConfig{
		MuzzleVelocityMPS:    820,
		BallisticCoefficient: 0.45,
		DragTable:            "G7",
		BulletWeightGrains:   175,
		CaliberInches:        0.308,
		BulletLengthInches:   1.24,
		TwistInches:          10,
		TwistDirection:       "right",
		SightHeightCM:        5,
		ZeroDistanceM:        100,
		AdjustmentUnits:      "MRAD",
		ClickSize:            0.1,
		TargetDistanceM:      500,
		TemperatureC:         ptrFloat64(15),
		PressureHPa:          ptrFloat64(1013),
		HumidityPct:          ptrFloat64(50),
	}
}

// LoadShotConfig loads a ShotConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the max file size.
// Fields omitted from the JSON file keep the values of DefaultShotConfig.
func LoadShotConfig(path string) (*ShotConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultShotConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the enumerations and duration strings. The physical limits
// are checked by ShotParameters.
func (c *ShotConfig) Validate() error {
	if _, err := c.dragTable(); err != nil {
		return err
	}
	if _, err := c.twistDirection(); err != nil {
		return err
	}
	if _, err := c.adjustmentUnits(); err != nil {
		return err
	}
	if _, err := c.integrationMethod(); err != nil {
		return err
	}
	if c.TimeStep != nil && *c.TimeStep != "" {
		if _, err := time.ParseDuration(*c.TimeStep); err != nil {
			return fmt.Errorf("invalid time_step '%s': %w", *c.TimeStep, err)
		}
	}
	return nil
}

func (c *ShotConfig) dragTable() (byte, error) {
	switch strings.ToUpper(c.DragTable) {
	case "G1":
		return solver.DragTableG1, nil
	case "G7":
		return solver.DragTableG7, nil
	default:
		return 0, fmt.Errorf("drag_table must be G1 or G7, got %q", c.DragTable)
	}
}

func (c *ShotConfig) twistDirection() (byte, error) {
	switch strings.ToLower(c.TwistDirection) {
	case "right", "":
		return solver.TwistRight, nil
	case "left":
		return solver.TwistLeft, nil
	default:
		return 0, fmt.Errorf("twist_direction must be right or left, got %q", c.TwistDirection)
	}
}

func (c *ShotConfig) adjustmentUnits() (byte, error) {
	switch strings.ToUpper(c.AdjustmentUnits) {
	case "MRAD", "MIL":
		return unit.AngularMRad, nil
	case "MOA":
		return unit.AngularMOA, nil
	default:
		return 0, fmt.Errorf("adjustment_units must be MRAD or MOA, got %q", c.AdjustmentUnits)
	}
}

func (c *ShotConfig) integrationMethod() (byte, error) {
	if c.IntegrationMethod == nil {
		return solver.IntegrationRK4, nil
	}
	switch strings.ToLower(*c.IntegrationMethod) {
	case "rk4", "":
		return solver.IntegrationRK4, nil
	case "euler":
		return solver.IntegrationEuler, nil
	default:
		return 0, fmt.Errorf("integration_method must be rk4 or euler, got %q", *c.IntegrationMethod)
	}
}

func (c *ShotConfig) atmosphere() (solver.Atmosphere, error) {
	base := solver.CreateDefaultAtmosphere()
	if c.AltitudeM != nil {
		base = solver.CreateICAOAtmosphere(unit.MustCreateDistance(*c.AltitudeM, unit.DistanceMeter))
	}
	temperature, pressure := base.Temperature(), base.Pressure()
	if c.TemperatureC != nil {
		temperature = unit.MustCreateTemperature(*c.TemperatureC, unit.TemperatureCelsius)
	}
	if c.PressureHPa != nil {
		pressure = unit.MustCreatePressure(*c.PressureHPa, unit.PressureHPa)
	}
	if c.HumidityPct == nil {
		return solver.CreateAtmosphere(temperature, pressure), nil
	}
	return solver.CreateAtmosphereWithHumidity(temperature, pressure, *c.HumidityPct)
}

// ShotParameters converts the configuration into validated shot parameters.
func (c *ShotConfig) ShotParameters() (solver.ShotParameters, error) {
	if err := c.Validate(); err != nil {
		return solver.ShotParameters{}, err
	}
	table, _ := c.dragTable()
	direction, _ := c.twistDirection()
	units, _ := c.adjustmentUnits()

	bc, err := solver.CreateBallisticCoefficient(c.BallisticCoefficient, table)
	if err != nil {
		return solver.ShotParameters{}, err
	}
	bullet := solver.CreateProjectile(bc,
		unit.MustCreateDistance(c.CaliberInches, unit.DistanceInch),
		unit.MustCreateDistance(c.BulletLengthInches, unit.DistanceInch),
		unit.MustCreateWeight(c.BulletWeightGrains, unit.WeightGrain))
	ammo := solver.CreateAmmunition(bullet, unit.MustCreateVelocity(c.MuzzleVelocityMPS, unit.VelocityMPS))
	if c.ReferenceWeightGrains != nil {
		ammo = ammo.WithReferenceWeight(unit.MustCreateWeight(*c.ReferenceWeightGrains, unit.WeightGrain))
	}
	if c.TemperatureSensitivityMPSC != nil {
		ammo = ammo.WithTemperatureSensitivity(*c.TemperatureSensitivityMPSC)
	}

	weapon := solver.CreateWeapon(unit.MustCreateDistance(c.SightHeightCM, unit.DistanceCentimeter),
		solver.CreateZeroInfo(unit.MustCreateDistance(c.ZeroDistanceM, unit.DistanceMeter)),
		solver.CreateTwist(direction, unit.MustCreateDistance(c.TwistInches, unit.DistanceInch)),
		unit.MustCreateAngular(c.ClickSize, units))

	atmosphere, err := c.atmosphere()
	if err != nil {
		return solver.ShotParameters{}, err
	}
	wind, err := solver.CreateWindInfo(unit.MustCreateVelocity(c.WindSpeedMPS, unit.VelocityMPS), c.WindClock)
	if err != nil {
		return solver.ShotParameters{}, err
	}

	var inclination float64
	if c.InclinationDeg != nil {
		inclination = *c.InclinationDeg
	}
	target := solver.CreateTarget(unit.MustCreateDistance(c.TargetDistanceM, unit.DistanceMeter),
		unit.MustCreateAngular(inclination, unit.AngularDegree))

	params, err := solver.CreateShotParameters(ammo, weapon, atmosphere, wind, target)
	if err != nil {
		return solver.ShotParameters{}, err
	}
	if c.LatitudeDeg != nil {
		var azimuth float64
		if c.AzimuthDeg != nil {
			azimuth = *c.AzimuthDeg
		}
		return params.WithLocation(solver.CreateLocation(
			unit.MustCreateAngular(*c.LatitudeDeg, unit.AngularDegree),
			unit.MustCreateAngular(azimuth, unit.AngularDegree)))
	}
	return params, nil
}

// Calculator returns the trajectory calculator configured by the integration settings.
func (c *ShotConfig) Calculator() (solver.TrajectoryCalculator, error) {
	calc := solver.CreateTrajectoryCalculator()
	method, err := c.integrationMethod()
	if err != nil {
		return calc, err
	}
	if err := calc.SetIntegrationMethod(method); err != nil {
		return calc, err
	}
	if c.TimeStep != nil && *c.TimeStep != "" {
		step, err := time.ParseDuration(*c.TimeStep)
		if err != nil {
			return calc, fmt.Errorf("invalid time_step '%s': %w", *c.TimeStep, err)
		}
		if err := calc.SetTimeStep(step); err != nil {
			return calc, err
		}
	}
	return calc, nil
}
