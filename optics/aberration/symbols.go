package aberration

import "fmt"

// Symbols lists the canonical polar expansion coefficients in order.
// Cnm is the magnitude of the order-n, multiplicity-m term and phinm its
// azimuthal orientation.
var Symbols = [...]string{
	"C10", "C12", "phi12",
	"C21", "phi21", "C23", "phi23",
	"C30", "C32", "phi32", "C34", "phi34",
	"C41", "phi41", "C43", "phi43", "C45", "phi45",
	"C50", "C52", "phi52", "C54", "phi54", "C56", "phi56",
}

// aliases maps common optical names to canonical symbols. The defocus alias
// additionally carries a sign inversion, handled in Resolve.
var aliases = map[string]string{
	"defocus":           "C10",
	"astigmatism":       "C12",
	"astigmatism_angle": "phi12",
	"coma":              "C21",
	"coma_angle":        "phi21",
	"Cs":                "C30",
	"C5":                "C50",
}

var canonical = func() map[string]bool {
	m := make(map[string]bool, len(Symbols))
	for _, s := range Symbols {
		m[s] = true
	}
	return m
}()

// Resolve maps a symbol or alias to its canonical symbol. The returned
// invert flag is true for the defocus alias, whose value is the negated C10
// coefficient.
func Resolve(symbol string) (name string, invert bool, err error) {
	if canonical[symbol] {
		return symbol, false, nil
	}

	if name, ok := aliases[symbol]; ok {
		return name, symbol == "defocus", nil
	}

	return "", false, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
}
