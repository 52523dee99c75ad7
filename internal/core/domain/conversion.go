package domain

// UnitConversion is the result of converting one length into every supported unit.
type UnitConversion struct {
	Input       Length   `json:"input" yaml:"input"`
	Rem         float64  `json:"rem" yaml:"rem"`
	Conversions []Length `json:"conversions" yaml:"conversions"`
}

// ColorConversion is the result of a HEX to HSL or HSL to HEX conversion.
// Hex always carries the leading #.
type ColorConversion struct {
	Direction ColorDirection `json:"direction" yaml:"direction"`
	Hex       string         `json:"hex" yaml:"hex"`
	RGB       RGB            `json:"rgb" yaml:"rgb"`
	HSL       HSL            `json:"hsl" yaml:"hsl"`
}
