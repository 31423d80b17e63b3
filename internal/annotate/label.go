package annotate

// Toggles switches individual annotations on or off.
type Toggles struct {
	Name           bool `yaml:"name"`
	Handle         bool `yaml:"handle"`
	Email          bool `yaml:"email"`
	Notebook       bool `yaml:"notebook"`
	Start          bool `yaml:"start"`
	End            bool `yaml:"end"`
	Compound       bool `yaml:"compound"`
	TransportAgent bool `yaml:"transport_agent"`
	Times          bool `yaml:"times"`
	Temps          bool `yaml:"temps"`
	Rates          bool `yaml:"rates"`
	TimeTicks      bool `yaml:"time_ticks"`
	TempTicks      bool `yaml:"temp_ticks"`
}

func AllToggles() Toggles {
	return Toggles{
		Name: true, Handle: true, Email: true, Notebook: true,
		Start: true, End: true,
		Compound: true, TransportAgent: true,
		Times: true, Temps: true, Rates: true, TimeTicks: true, TempTicks: true,
	}
}

// Label bundles the header annotations printed above a diagram.
// SpaceTime may be nil when no date is known.
type Label struct {
	Identity  Identity
	SpaceTime *SpaceTime
	Chemicals Chemicals
}

// Header holds the three header columns: identity on the left, dates in
// the middle and chemistry on the right.
type Header struct {
	Left   []string `json:"left,omitempty"`
	Center []string `json:"center,omitempty"`
	Right  []string `json:"right,omitempty"`
}

func (h Header) Empty() bool {
	return len(h.Left) == 0 && len(h.Center) == 0 && len(h.Right) == 0
}

// Rows is the tallest column's height.
func (h Header) Rows() int {
	return max(len(h.Left), len(h.Center), len(h.Right))
}

func (l Label) Header(t Toggles) Header {
	h := Header{
		Left:  l.Identity.Lines(t),
		Right: l.Chemicals.Lines(t),
	}
	if l.SpaceTime != nil {
		h.Center = l.SpaceTime.Lines(t)
	}
	return h
}
