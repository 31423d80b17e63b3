package annotate

// Chemicals names the compound being grown and its transport agent.
type Chemicals struct {
	Compound       string `yaml:"compound" json:"compound"`
	TransportAgent string `yaml:"transport_agent" json:"transport_agent,omitempty"`
}

func (c Chemicals) CompoundLine() string {
	if c.Compound == "" {
		return ""
	}
	return c.Compound + " Synthesis"
}

// TransportAgentLine is empty when no transport agent is set.
func (c Chemicals) TransportAgentLine() string {
	if c.TransportAgent == "" {
		return ""
	}
	return "Transport Agent: " + c.TransportAgent
}

func (c Chemicals) Lines(t Toggles) []string {
	var lines []string
	if t.Compound {
		if l := c.CompoundLine(); l != "" {
			lines = append(lines, l)
		}
	}
	if t.TransportAgent {
		if l := c.TransportAgentLine(); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
