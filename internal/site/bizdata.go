package site

import (
	"strings"
)

// BusinessDataContext is the read-only snapshot of client facts used to fill
// component content and compute data-availability boosts. The engine never
// mutates it.
type BusinessDataContext struct {
	SiteID       string        `json:"site_id"`
	BusinessName string        `json:"business_name"`
	Tagline      string        `json:"tagline,omitempty"`
	Description  string        `json:"description,omitempty"`
	Industry     string        `json:"industry,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	Branding     Branding      `json:"branding,omitempty"`
	Contact      ContactInfo   `json:"contact,omitempty"`
	Team         []TeamMember  `json:"team,omitempty"`
	Testimonials []Testimonial `json:"testimonials,omitempty"`
	Services     []Service     `json:"services,omitempty"`
	Locations    []Location    `json:"locations,omitempty"`
	Hours        []DayHours    `json:"hours,omitempty"`
	Social       []SocialLink  `json:"social,omitempty"`
}

type Branding struct {
	LogoURL      string `json:"logo_url,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`
	AccentColor  string `json:"accent_color,omitempty"`
}

type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Bio   string `json:"bio,omitempty"`
	Photo string `json:"photo,omitempty"`
}

type Testimonial struct {
	Author string `json:"author"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating,omitempty"`
}

type Service struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

type Location struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address"`
	MapURL  string `json:"map_url,omitempty"`
}

type DayHours struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Availability reports which data groups hold usable content. The keys are the
// flag names the scorer and the component catalog refer to.
func (b *BusinessDataContext) Availability() map[string]bool {
	if b == nil {
		return map[string]bool{}
	}
	return map[string]bool{
		"branding":     b.Branding.LogoURL != "" || b.Branding.PrimaryColor != "",
		"contact":      b.Contact.Email != "" || b.Contact.Phone != "" || b.Contact.Address != "",
		"team":         len(b.Team) > 0,
		"testimonials": len(b.Testimonials) > 0,
		"services":     len(b.Services) > 0,
		"locations":    len(b.Locations) > 0,
		"hours":        len(b.Hours) > 0,
		"social":       len(b.Social) > 0,
	}
}

// Field resolves a dotted data path ("contact.email", "team", "tagline") to a
// value. ok is false when the path is unknown or the value is empty.
func (b *BusinessDataContext) Field(path string) (any, bool) {
	if b == nil {
		return nil, false
	}
	switch strings.ToLower(strings.TrimSpace(path)) {
	case "business_name", "name":
		return nonEmpty(b.BusinessName)
	case "tagline":
		return nonEmpty(b.Tagline)
	case "description":
		return nonEmpty(b.Description)
	case "industry":
		return nonEmpty(b.Industry)
	case "branding.logo_url":
		return nonEmpty(b.Branding.LogoURL)
	case "contact.email":
		return nonEmpty(b.Contact.Email)
	case "contact.phone":
		return nonEmpty(b.Contact.Phone)
	case "contact.address":
		return nonEmpty(b.Contact.Address)
	case "team":
		if len(b.Team) == 0 {
			return nil, false
		}
		return b.Team, true
	case "testimonials":
		if len(b.Testimonials) == 0 {
			return nil, false
		}
		return b.Testimonials, true
	case "services":
		if len(b.Services) == 0 {
			return nil, false
		}
		return b.Services, true
	case "locations":
		if len(b.Locations) == 0 {
			return nil, false
		}
		return b.Locations, true
	case "hours":
		if len(b.Hours) == 0 {
			return nil, false
		}
		return b.Hours, true
	case "social":
		if len(b.Social) == 0 {
			return nil, false
		}
		return b.Social, true
	}
	return nil, false
}

// Summary renders a compact plain-text digest for prompt payloads.
func (b *BusinessDataContext) Summary() string {
	if b == nil {
		return ""
	}
	var parts []string
	add := func(label, v string) {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, label+": "+strings.TrimSpace(v))
		}
	}
	add("business", b.BusinessName)
	add("tagline", b.Tagline)
	add("description", b.Description)
	add("industry", b.Industry)
	add("email", b.Contact.Email)
	add("phone", b.Contact.Phone)
	add("address", b.Contact.Address)
	avail := b.Availability()
	for _, flag := range []string{"branding", "contact", "team", "testimonials", "services", "locations", "hours", "social"} {
		if avail[flag] {
			parts = append(parts, "has "+flag)
		}
	}
	return strings.Join(parts, "; ")
}

func nonEmpty(s string) (any, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, false
	}
	return s, true
}
