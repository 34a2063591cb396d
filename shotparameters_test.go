package go_ballisticsolver

import (
	"errors"
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shotInputs struct {
	ammunition Ammunition
	weapon     Weapon
	atmosphere Atmosphere
	wind       WindInfo
	target     Target
}

func validInputs(t *testing.T) shotInputs {
	t.Helper()
	bc, err := CreateBallisticCoefficient(0.45, DragTableG7)
	require.NoError(t, err)
	bullet := CreateProjectile(bc, unit.MustCreateDistance(0.308, unit.DistanceInch),
		unit.MustCreateDistance(1.24, unit.DistanceInch), unit.MustCreateWeight(175, unit.WeightGrain))
	return shotInputs{
		ammunition: CreateAmmunition(bullet, unit.MustCreateVelocity(820, unit.VelocityMPS)),
		weapon: CreateWeapon(unit.MustCreateDistance(5, unit.DistanceCentimeter),
			CreateZeroInfo(unit.MustCreateDistance(100, unit.DistanceMeter)),
			CreateTwist(TwistRight, unit.MustCreateDistance(10, unit.DistanceInch)),
			unit.MustCreateAngular(0.1, unit.AngularMRad)),
		atmosphere: CreateDefaultAtmosphere(),
		wind:       CreateNoWind(),
		target:     CreateLevelTarget(unit.MustCreateDistance(500, unit.DistanceMeter)),
	}
}

func (s shotInputs) create() (ShotParameters, error) {
	return CreateShotParameters(s.ammunition, s.weapon, s.atmosphere, s.wind, s.target)
}

func TestCreateShotParameters_Valid(t *testing.T) {
	params, err := validInputs(t).create()
	require.NoError(t, err)
	assert.False(t, params.HasLocation())
	assert.Equal(t, unit.AngularMRad, params.Weapon().AdjustmentUnits())
}

func TestCreateShotParameters_InvalidInput(t *testing.T) {
	bullet := func(s shotInputs) Projectile { return s.ammunition.Bullet() }
	withWeapon := func(s *shotInputs, sightHeight, zero, twist float64, direction byte, click unit.Angular) {
		s.weapon = CreateWeapon(unit.MustCreateDistance(sightHeight, unit.DistanceCentimeter),
			CreateZeroInfo(unit.MustCreateDistance(zero, unit.DistanceMeter)),
			CreateTwist(direction, unit.MustCreateDistance(twist, unit.DistanceInch)), click)
	}
	mrad := unit.MustCreateAngular(0.1, unit.AngularMRad)

	tests := []struct {
		name   string
		modify func(s *shotInputs)
	}{
		{"no ballistic coefficient", func(s *shotInputs) {
			b := bullet(*s)
			s.ammunition = CreateAmmunition(CreateProjectile(BallisticCoefficient{}, b.BulletDiameter(), b.BulletLength(), b.BulletWeight()),
				s.ammunition.MuzzleVelocity())
		}},
		{"zero velocity", func(s *shotInputs) {
			s.ammunition = CreateAmmunition(bullet(*s), unit.MustCreateVelocity(0, unit.VelocityMPS))
		}},
		{"zero weight", func(s *shotInputs) {
			b := bullet(*s)
			s.ammunition = CreateAmmunition(CreateProjectile(b.BallisticCoefficient(), b.BulletDiameter(), b.BulletLength(),
				unit.MustCreateWeight(0, unit.WeightGrain)), s.ammunition.MuzzleVelocity())
		}},
		{"negative reference weight", func(s *shotInputs) {
			s.ammunition = s.ammunition.WithReferenceWeight(unit.MustCreateWeight(-1, unit.WeightGrain))
		}},
		{"sensitivity", func(s *shotInputs) {
			s.ammunition = s.ammunition.WithTemperatureSensitivity(math.NaN())
		}},
		{"zero caliber", func(s *shotInputs) {
			b := bullet(*s)
			s.ammunition = CreateAmmunition(CreateProjectile(b.BallisticCoefficient(), unit.MustCreateDistance(0, unit.DistanceInch),
				b.BulletLength(), b.BulletWeight()), s.ammunition.MuzzleVelocity())
		}},
		{"zero length", func(s *shotInputs) {
			b := bullet(*s)
			s.ammunition = CreateAmmunition(CreateProjectile(b.BallisticCoefficient(), b.BulletDiameter(),
				unit.MustCreateDistance(0, unit.DistanceInch), b.BulletWeight()), s.ammunition.MuzzleVelocity())
		}},
		{"zero sight height", func(s *shotInputs) { withWeapon(s, 0, 100, 10, TwistRight, mrad) }},
		{"zero zero distance", func(s *shotInputs) { withWeapon(s, 5, 0, 10, TwistRight, mrad) }},
		{"negative twist", func(s *shotInputs) { withWeapon(s, 5, 100, -10, TwistRight, mrad) }},
		{"unknown twist direction", func(s *shotInputs) { withWeapon(s, 5, 100, 10, 0, mrad) }},
		{"degree clicks", func(s *shotInputs) {
			withWeapon(s, 5, 100, 10, TwistRight, unit.MustCreateAngular(0.1, unit.AngularDegree))
		}},
		{"zero click", func(s *shotInputs) {
			withWeapon(s, 5, 100, 10, TwistRight, unit.MustCreateAngular(0, unit.AngularMOA))
		}},
		{"zero pressure", func(s *shotInputs) {
			s.atmosphere = CreateAtmosphere(unit.MustCreateTemperature(15, unit.TemperatureCelsius),
				unit.MustCreatePressure(0, unit.PressureHPa))
		}},
		{"zero conditions pressure", func(s *shotInputs) {
			s.weapon = CreateWeapon(s.weapon.SightHeight(),
				CreateZeroInfoWithAtmosphere(s.weapon.Zero().ZeroDistance(),
					CreateAtmosphere(unit.MustCreateTemperature(15, unit.TemperatureCelsius), unit.MustCreatePressure(-1, unit.PressureHPa))),
				s.weapon.Twist(), s.weapon.ClickValue())
		}},
		{"below absolute zero", func(s *shotInputs) {
			s.atmosphere = CreateAtmosphere(unit.MustCreateTemperature(-300, unit.TemperatureCelsius),
				unit.MustCreatePressure(1013, unit.PressureHPa))
		}},
		{"vapor above pressure", func(s *shotInputs) {
			s.atmosphere, _ = CreateAtmosphereWithHumidity(unit.MustCreateTemperature(150, unit.TemperatureCelsius),
				unit.MustCreatePressure(1013, unit.PressureHPa), 100)
		}},
		{"zero conditions vapor above pressure", func(s *shotInputs) {
			humid, _ := CreateAtmosphereWithHumidity(unit.MustCreateTemperature(120, unit.TemperatureCelsius),
				unit.MustCreatePressure(1000, unit.PressureHPa), 100)
			s.weapon = CreateWeapon(s.weapon.SightHeight(), CreateZeroInfoWithAtmosphere(s.weapon.Zero().ZeroDistance(), humid),
				s.weapon.Twist(), s.weapon.ClickValue())
		}},
		{"no velocity left in cold powder", func(s *shotInputs) {
			s.ammunition = s.ammunition.WithTemperatureSensitivity(100)
			s.atmosphere = CreateAtmosphere(unit.MustCreateTemperature(-20, unit.TemperatureCelsius),
				unit.MustCreatePressure(1013, unit.PressureHPa))
		}},
		{"no velocity left in cold zero conditions", func(s *shotInputs) {
			s.ammunition = s.ammunition.WithTemperatureSensitivity(100)
			cold := CreateAtmosphere(unit.MustCreateTemperature(-20, unit.TemperatureCelsius),
				unit.MustCreatePressure(1013, unit.PressureHPa))
			s.weapon = CreateWeapon(s.weapon.SightHeight(), CreateZeroInfoWithAtmosphere(s.weapon.Zero().ZeroDistance(), cold),
				s.weapon.Twist(), s.weapon.ClickValue())
		}},
		{"negative wind", func(s *shotInputs) {
			s.wind = WindInfo{velocity: unit.MustCreateVelocity(-1, unit.VelocityMPS), clock: 3}
		}},
		{"wind clock", func(s *shotInputs) {
			s.wind = WindInfo{velocity: unit.MustCreateVelocity(1, unit.VelocityMPS), clock: 13}
		}},
		{"negative distance", func(s *shotInputs) {
			s.target = CreateLevelTarget(unit.MustCreateDistance(-1, unit.DistanceMeter))
		}},
		{"vertical target", func(s *shotInputs) {
			s.target = CreateTarget(unit.MustCreateDistance(100, unit.DistanceMeter), unit.MustCreateAngular(95, unit.AngularDegree))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validInputs(t)
			tt.modify(&s)
			_, err := s.create()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput), err.Error())
		})
	}
}

func TestCreateShotParameters_HumidAir(t *testing.T) {
	s := validInputs(t)
	hot, err := CreateAtmosphereWithHumidity(unit.MustCreateTemperature(35, unit.TemperatureCelsius),
		unit.MustCreatePressure(1000, unit.PressureHPa), 100)
	require.NoError(t, err)
	s.atmosphere = hot
	params, err := s.create()
	require.NoError(t, err)
	assert.InDelta(t, 1.1065, CreatePhysicsContext(params).Density(), 0.001)

	//the sensitivity is fine as long as some velocity is left
	s.ammunition = s.ammunition.WithTemperatureSensitivity(100)
	params, err = s.create()
	require.NoError(t, err)
	assert.InDelta(t, 820+20*100, CreatePhysicsContext(params).MuzzleVelocity().In(unit.VelocityMPS), 1e-9)
}

func TestWithLocation(t *testing.T) {
	params, err := validInputs(t).create()
	require.NoError(t, err)

	deg := func(v float64) unit.Angular { return unit.MustCreateAngular(v, unit.AngularDegree) }
	located, err := params.WithLocation(CreateLocation(deg(45), deg(90)))
	require.NoError(t, err)
	assert.True(t, located.HasLocation())
	assert.False(t, params.HasLocation())

	for _, latitude := range []float64{-91, 90.5, math.NaN()} {
		_, err := params.WithLocation(CreateLocation(deg(latitude), deg(0)))
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
	_, err = params.WithLocation(CreateLocation(deg(10), deg(math.Inf(1))))
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestWithTarget(t *testing.T) {
	params, err := validInputs(t).create()
	require.NoError(t, err)

	moved, err := params.WithTarget(CreateLevelTarget(unit.MustCreateDistance(0, unit.DistanceMeter)))
	require.NoError(t, err)
	assert.Equal(t, 0.0, moved.Target().Distance().Meters())

	_, err = params.WithTarget(CreateLevelTarget(unit.MustCreateDistance(math.Inf(1), unit.DistanceMeter)))
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestPhysicsContext(t *testing.T) {
	s := validInputs(t)
	wind, err := CreateWindInfo(unit.MustCreateVelocity(5, unit.VelocityMPS), 3)
	require.NoError(t, err)
	s.wind = wind
	params, err := s.create()
	require.NoError(t, err)
	params, err = params.WithLocation(CreateLocation(unit.MustCreateAngular(45, unit.AngularDegree), unit.MustCreateAngular(0, unit.AngularDegree)))
	require.NoError(t, err)

	c := CreatePhysicsContext(params)
	assert.InDelta(t, 1.225, c.Density(), 0.001)
	assert.InDelta(t, 340.27, c.SpeedOfSound().In(unit.VelocityMPS), 0.01)
	assert.Equal(t, 820.0, c.MuzzleVelocity().In(unit.VelocityMPS))
	assert.Equal(t, 0.45, c.BallisticCoefficient().Value())
	along, cross := c.WindComponents()
	assert.InDelta(t, 0, along.In(unit.VelocityMPS), 1e-9)
	assert.InDelta(t, 5, cross.In(unit.VelocityMPS), 1e-9)
	assert.True(t, c.hasLocation)
	assert.InDelta(t, 2.43, c.StabilityFactor(), 0.01)

	z := zeroContext(params)
	assert.Equal(t, 0.0, z.windAlong)
	assert.Equal(t, 0.0, z.windCross)
	assert.False(t, z.hasLocation)
	assert.Equal(t, 0.0, z.inclination)
	assert.Equal(t, c.density, z.density)
}
