package render

import "github.com/san-kum/labelmaker/internal/annotate"

type Options struct {
	Width    int
	Height   int
	Title    string
	TempUnit string
	TimeUnit string
	Toggles  annotate.Toggles
	// LeadStubs draws flat lead-in and lead-out stubs outside [0, total].
	LeadStubs bool
}

func DefaultOptions() Options {
	return Options{
		Width:     800,
		Height:    600,
		TempUnit:  "°C",
		TimeUnit:  "hr",
		Toggles:   annotate.AllToggles(),
		LeadStubs: true,
	}
}

func (o Options) RateUnit() string {
	return o.TempUnit + "/" + o.TimeUnit
}
