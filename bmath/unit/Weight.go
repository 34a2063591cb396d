package unit

//WeightGrain is grains
const WeightGrain byte = 70

//WeightGram is grams
const WeightGram byte = 72

//WeightPound is pounds
const WeightPound byte = 73

//WeightKilogram is kilograms, the base unit of weight
const WeightKilogram byte = 74

const kilogramsPerGrain = 6.479891e-5
const grainsPerPound = 7000

var weightUnits = quantity{
	name: "Weight",
	units: map[byte]conversion{
		WeightGrain:    linear("gr", 0, kilogramsPerGrain),
		WeightGram:     linear("g", 1, 0.001),
		WeightPound:    linear("lb", 3, grainsPerPound*kilogramsPerGrain),
		WeightKilogram: linear("kg", 3, 1),
	},
}

//Weight is a mass kept in kilograms
type Weight struct {
	value        float64
	defaultUnits byte
}

//CreateWeight creates a weight in one of Weight* units
func CreateWeight(value float64, units byte) (Weight, error) {
	v, err := weightUnits.toBase(value, units)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: v, defaultUnits: units}, nil
}

//MustCreateWeight is CreateWeight which panics on unknown units
func MustCreateWeight(value float64, units byte) Weight {
	v, err := CreateWeight(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the weight in the units specified or an error for unknown units
func (v Weight) Value(units byte) (float64, error) {
	return weightUnits.fromBase(v.value, units)
}

//Convert returns the same weight printed in other units
func (v Weight) Convert(units byte) Weight {
	v.defaultUnits = units
	return v
}

//In returns the weight in the units specified, 0 for unknown units
func (v Weight) In(units byte) float64 {
	return weightUnits.in(v.value, units)
}

func (v Weight) String() string {
	return weightUnits.format(v.value, v.defaultUnits)
}

//Units returns the units the weight is printed in
func (v Weight) Units() byte {
	return v.defaultUnits
}
