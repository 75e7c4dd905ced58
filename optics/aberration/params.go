package aberration

// ChangeFunc observes parameter writes. It receives the symbol as supplied
// by the caller and whether the stored value actually changed.
type ChangeFunc func(symbol string, changed bool)

// Params holds one value per canonical symbol. All symbols are always
// present; the zero state is an ideal (aberration-free) lens.
type Params struct {
	values   map[string]float64
	onChange ChangeFunc
}

// NewParams returns a Params with every coefficient set to zero.
func NewParams() *Params {
	values := make(map[string]float64, len(Symbols))
	for _, s := range Symbols {
		values[s] = 0
	}

	return &Params{values: values}
}

// SetOnChange registers a single change observer. A nil fn removes it.
func (p *Params) SetOnChange(fn ChangeFunc) {
	p.onChange = fn
}

// Set stores a coefficient value under a symbol or alias.
func (p *Params) Set(symbol string, value float64) error {
	name, invert, err := Resolve(symbol)
	if err != nil {
		return err
	}

	if invert {
		value = -value
	}

	old := p.values[name]
	p.values[name] = value

	if p.onChange != nil {
		p.onChange(symbol, old != value)
	}

	return nil
}

// Get returns the value stored under a symbol or alias.
func (p *Params) Get(symbol string) (float64, error) {
	name, invert, err := Resolve(symbol)
	if err != nil {
		return 0, err
	}

	v := p.values[name]
	if invert {
		v = -v
	}

	return v, nil
}

// SetAll applies every entry via Set. Application stops at the first
// unknown symbol; entries applied before the failure remain in place.
func (p *Params) SetAll(values map[string]float64) error {
	for symbol, value := range values {
		if err := p.Set(symbol, value); err != nil {
			return err
		}
	}

	return nil
}

// at returns a canonical coefficient without alias resolution.
func (p *Params) at(name string) float64 {
	return p.values[name]
}

// Defocus returns the defocus, the negated C10 coefficient.
func (p *Params) Defocus() float64 {
	return -p.values["C10"]
}

// Snapshot appends the coefficient values in Symbols order to dst and
// returns the result. It is the dependency-key form used by caches.
func (p *Params) Snapshot(dst []float64) []float64 {
	for _, s := range Symbols {
		dst = append(dst, p.values[s])
	}

	return dst
}
