package annotate

import "fmt"

// DefaultEmailDomain is appended to the contact handle to build an email.
const DefaultEmailDomain = "jhu.edu"

// Identity describes the experimenter printed on a label.
type Identity struct {
	Name        string `yaml:"name" json:"name"`
	Handle      string `yaml:"handle" json:"handle"`
	Page        string `yaml:"page" json:"page,omitempty"`
	EmailDomain string `yaml:"email_domain" json:"email_domain,omitempty"`
}

type IdentityOption func(*Identity)

// WithPage sets the notebook page.
func WithPage(page string) IdentityOption {
	return func(id *Identity) { id.Page = page }
}

func WithEmailDomain(domain string) IdentityOption {
	return func(id *Identity) { id.EmailDomain = domain }
}

func NewIdentity(name, handle string, opts ...IdentityOption) Identity {
	id := Identity{Name: name, Handle: handle, EmailDomain: DefaultEmailDomain}
	for _, opt := range opts {
		opt(&id)
	}
	return id
}

// Email returns handle@domain, or an empty string without a handle.
func (id Identity) Email() string {
	if id.Handle == "" {
		return ""
	}
	domain := id.EmailDomain
	if domain == "" {
		domain = DefaultEmailDomain
	}
	return fmt.Sprintf("%s@%s", id.Handle, domain)
}

// Lines returns the identity lines enabled in t, top to bottom.
func (id Identity) Lines(t Toggles) []string {
	var lines []string
	if t.Name && id.Name != "" {
		lines = append(lines, id.Name)
	}
	if t.Handle && id.Handle != "" {
		lines = append(lines, id.Handle)
	}
	if t.Email && id.Handle != "" {
		lines = append(lines, id.Email())
	}
	if t.Notebook && id.Page != "" {
		lines = append(lines, id.Page)
	}
	return lines
}
