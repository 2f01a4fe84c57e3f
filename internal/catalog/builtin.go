package catalog

// Builtin returns the standard component set. TextBlock is the generic
// fallback: every requirement it has carries a literal fallback, so it always
// renders.
func Builtin() Catalog {
	c, err := New("TextBlock",
		ComponentType{
			Name:        "Hero",
			Description: "full-width opening banner with headline, subheadline and primary action",
			Variants:    []string{"centered", "split", "image-bg"},
			Fields: []FieldSpec{
				{Name: "headline", Type: "string", Critical: true},
				{Name: "subheadline", Type: "text"},
				{Name: "cta_label", Type: "string"},
				{Name: "cta_href", Type: "url"},
			},
			Requirements: []ContentRequirement{
				{Field: "headline", Severity: Critical, DataPath: "tagline", Fallback: "Welcome"},
				{Field: "subheadline", Severity: Important, DataPath: "description", Fallback: "We are glad you are here."},
				{Field: "cta_label", Severity: Optional, Fallback: "Get in touch"},
			},
			DataFlags: []string{"branding"},
			Character: Character{HeavyEffects: true},
		},
		ComponentType{
			Name:        "Features",
			Description: "grid of short feature or benefit highlights",
			Variants:    []string{"grid", "columns"},
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "items", Type: "list", Critical: true},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "What we offer"},
				{Field: "items", Severity: Critical, DataPath: "services", Fallback: "Quality service; Friendly staff; Fair prices"},
			},
			DataFlags: []string{"services"},
			Character: Character{PlainLayout: true},
		},
		ComponentType{
			Name:        "Services",
			Description: "detailed list of services with descriptions and prices",
			Variants:    []string{"cards", "list"},
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "services", Type: "list", Critical: true},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "Our services"},
				{Field: "services", Severity: Critical, DataPath: "services"},
			},
			DataFlags: []string{"services"},
		},
		ComponentType{
			Name:        "About",
			Description: "story section describing the business",
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "body", Type: "text", Critical: true},
				{Name: "image_url", Type: "url"},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "About us"},
				{Field: "body", Severity: Critical, DataPath: "description", Fallback: "We are a local business dedicated to our customers."},
			},
			Character: Character{PlainLayout: true},
		},
		ComponentType{
			Name:        "Team",
			Description: "profiles of team members with roles and photos",
			Variants:    []string{"grid", "carousel"},
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "members", Type: "list", Critical: true},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "Meet the team"},
				{Field: "members", Severity: Critical, DataPath: "team"},
			},
			DataFlags: []string{"team"},
		},
		ComponentType{
			Name:        "Testimonials",
			Description: "customer quotes with attribution",
			Variants:    []string{"cards", "slider"},
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "quotes", Type: "list", Critical: true},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "What our customers say"},
				{Field: "quotes", Severity: Critical, DataPath: "testimonials"},
			},
			DataFlags: []string{"testimonials"},
			Character: Character{HeavyEffects: true},
		},
		ComponentType{
			Name:        "SocialProof",
			Description: "trust signals: ratings, review counts, social links",
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "links", Type: "list"},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "Trusted by our community"},
				{Field: "links", Severity: Important, DataPath: "social"},
			},
			DataFlags: []string{"social", "testimonials"},
			Character: Character{PlainLayout: true},
		},
		ComponentType{
			Name:        "Gallery",
			Description: "image gallery or portfolio grid",
			Variants:    []string{"masonry", "grid"},
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "images", Type: "list", Critical: true},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "Gallery"},
				{Field: "images", Severity: Critical, DataPath: "branding.logo_url"},
			},
			DataFlags: []string{"branding"},
			Character: Character{HeavyEffects: true},
		},
		ComponentType{
			Name:        "MenuShowcase",
			Description: "food or product menu grouped by category",
			Variants:    []string{"columns", "tabs"},
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "sections", Type: "list", Critical: true},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "Our menu"},
				{Field: "sections", Severity: Critical, DataPath: "services", Fallback: "House favorites; Seasonal specials"},
			},
			DataFlags: []string{"services"},
		},
		ComponentType{
			Name:        "Pricing",
			Description: "pricing tiers or packages",
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "tiers", Type: "list", Critical: true},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "Pricing"},
				{Field: "tiers", Severity: Critical, DataPath: "services"},
			},
			DataFlags: []string{"services"},
			Character: Character{PlainLayout: true},
		},
		ComponentType{
			Name:        "FAQ",
			Description: "frequently asked questions with answers",
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "questions", Type: "list", Critical: true},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "Frequently asked questions"},
				{Field: "questions", Severity: Critical, Fallback: "What are your hours?; How do I book?"},
			},
			Character: Character{PlainLayout: true},
		},
		ComponentType{
			Name:        "CallToAction",
			Description: "focused conversion strip with one action",
			Fields: []FieldSpec{
				{Name: "headline", Type: "string", Critical: true},
				{Name: "cta_label", Type: "string", Critical: true},
				{Name: "cta_href", Type: "url"},
			},
			Requirements: []ContentRequirement{
				{Field: "headline", Severity: Critical, Fallback: "Ready to get started?"},
				{Field: "cta_label", Severity: Critical, Fallback: "Contact us"},
			},
			Character: Character{HeavyEffects: true},
		},
		ComponentType{
			Name:        "ContactForm",
			Description: "contact form with business contact details",
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "email", Type: "string", Critical: true},
				{Name: "phone", Type: "string"},
				{Name: "address", Type: "text"},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "Get in touch"},
				{Field: "email", Severity: Critical, DataPath: "contact.email"},
				{Field: "phone", Severity: Important, DataPath: "contact.phone"},
				{Field: "address", Severity: Optional, DataPath: "contact.address"},
			},
			DataFlags: []string{"contact"},
			Character: Character{PlainLayout: true},
		},
		ComponentType{
			Name:        "LocationMap",
			Description: "map with address and directions",
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "address", Type: "text", Critical: true},
				{Name: "map_url", Type: "url"},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "Find us"},
				{Field: "address", Severity: Critical, DataPath: "contact.address"},
			},
			DataFlags: []string{"locations", "contact"},
		},
		ComponentType{
			Name:        "OpeningHours",
			Description: "weekly opening hours table",
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "hours", Type: "list", Critical: true},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "Opening hours"},
				{Field: "hours", Severity: Critical, DataPath: "hours"},
			},
			DataFlags: []string{"hours"},
			Character: Character{PlainLayout: true},
		},
		ComponentType{
			Name:        "Stats",
			Description: "headline numbers: years in business, customers served",
			Fields: []FieldSpec{
				{Name: "stats", Type: "list", Critical: true},
			},
			Requirements: []ContentRequirement{
				{Field: "stats", Severity: Critical, Fallback: "Locally owned; Customer focused"},
			},
			Character: Character{PlainLayout: true},
		},
		ComponentType{
			Name:        "Newsletter",
			Description: "email signup strip",
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "button_label", Type: "string"},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, Fallback: "Stay in the loop"},
				{Field: "button_label", Severity: Optional, Fallback: "Subscribe"},
			},
			Character: Character{PlainLayout: true},
		},
		ComponentType{
			Name:        "TextBlock",
			Description: "generic rich-text section; renders from fallback copy alone",
			Fields: []FieldSpec{
				{Name: "heading", Type: "string", Critical: true},
				{Name: "body", Type: "text", Critical: true},
			},
			Requirements: []ContentRequirement{
				{Field: "heading", Severity: Critical, DataPath: "business_name", Fallback: "About this page"},
				{Field: "body", Severity: Critical, DataPath: "description", Fallback: "Content for this section is on its way."},
			},
			Character: Character{PlainLayout: true},
		},
		ComponentType{
			Name:        "Navbar",
			Description: "site-wide navigation bar; generated once and shared",
			Variants:    []string{"simple", "centered", "with-cta"},
			Fields: []FieldSpec{
				{Name: "logo_text", Type: "string", Critical: true},
				{Name: "links", Type: "list", Critical: true},
				{Name: "cta_label", Type: "string"},
			},
			Requirements: []ContentRequirement{
				{Field: "logo_text", Severity: Critical, DataPath: "business_name", Fallback: "Home"},
				{Field: "links", Severity: Critical, Fallback: "Home"},
			},
			DataFlags: []string{"branding"},
		},
		ComponentType{
			Name:        "Footer",
			Description: "site-wide footer with contact, hours and social links; generated once and shared",
			Variants:    []string{"minimal", "detailed"},
			Fields: []FieldSpec{
				{Name: "business_name", Type: "string", Critical: true},
				{Name: "contact_line", Type: "string"},
				{Name: "links", Type: "list"},
				{Name: "social", Type: "list"},
			},
			Requirements: []ContentRequirement{
				{Field: "business_name", Severity: Critical, DataPath: "business_name", Fallback: "Our business"},
				{Field: "contact_line", Severity: Important, DataPath: "contact.email"},
				{Field: "social", Severity: Optional, DataPath: "social"},
			},
			DataFlags: []string{"contact", "social", "hours"},
		},
	)
	if err != nil {
		panic(err) // static data; a failure here is a programming error
	}
	return c
}
