package unit

//EnergyFootPound is foot-pounds
const EnergyFootPound byte = 30

//EnergyJoule is joules, the base unit of energy
const EnergyJoule byte = 31

const joulesPerFootPound = 1.3558179483

var energyUnits = quantity{
	name: "Energy",
	units: map[byte]conversion{
		EnergyFootPound: linear("ft·lb", 0, joulesPerFootPound),
		EnergyJoule:     linear("J", 0, 1),
	},
}

//Energy is a kinetic energy kept in joules
type Energy struct {
	value        float64
	defaultUnits byte
}

//CreateEnergy creates an energy in one of Energy* units
func CreateEnergy(value float64, units byte) (Energy, error) {
	v, err := energyUnits.toBase(value, units)
	if err != nil {
		return Energy{}, err
	}
	return Energy{value: v, defaultUnits: units}, nil
}

//MustCreateEnergy is CreateEnergy which panics on unknown units
func MustCreateEnergy(value float64, units byte) Energy {
	v, err := CreateEnergy(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the energy in the units specified or an error for unknown units
func (v Energy) Value(units byte) (float64, error) {
	return energyUnits.fromBase(v.value, units)
}

//Convert returns the same energy printed in other units
func (v Energy) Convert(units byte) Energy {
	v.defaultUnits = units
	return v
}

//In returns the energy in the units specified, 0 for unknown units
func (v Energy) In(units byte) float64 {
	return energyUnits.in(v.value, units)
}

func (v Energy) String() string {
	return energyUnits.format(v.value, v.defaultUnits)
}

//Units returns the units the energy is printed in
func (v Energy) Units() byte {
	return v.defaultUnits
}
