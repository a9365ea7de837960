package gm

// PixelsPerMeter is the number of pixels that make up one meter.
const PixelsPerMeter = 64

// Length is implemented by the length units. The ratio relates the unit to pixels.
type Length interface {
	Scalar
	LengthRatio() Ratio
}

// Pixels is a length in pixels. It is the canonical length unit.
type Pixels float64

// Meters is a length in meters, see PixelsPerMeter.
type Meters float64

var (
	PixelsRatio = Ratio{Num: 1, Den: 1}
	MetersRatio = Ratio{Num: PixelsPerMeter, Den: 1}
)

func (Pixels) LengthRatio() Ratio { return PixelsRatio }
func (Meters) LengthRatio() Ratio { return MetersRatio }

// ConvertLength converts a length into another length unit.
//
//	px := gm.ConvertLength[gm.Pixels](gm.Meters(2))
func ConvertLength[To, From Length](value From) To {
	var to To
	return To(ConvertRatio(float64(value), value.LengthRatio(), to.LengthRatio()))
}

func (p Pixels) Meters() Meters {
	return ConvertLength[Meters](p)
}

func (m Meters) Pixels() Pixels {
	return ConvertLength[Pixels](m)
}

func (p Pixels) String() string {
	return formatFloat(float64(p)) + "_px"
}

func (m Meters) String() string {
	return formatFloat(float64(m)) + "_mtr"
}
