package industry

import "github.com/dramac-main/dramac-cms-sub014/internal/site"

// Default returns the built-in knowledge base. Declaration order is the
// classifier's match order, so more specific industries come first.
func Default() *KnowledgeBase {
	return NewKnowledgeBase(
		restaurant(),
		healthcare(),
		fitness(),
		beauty(),
		legal(),
		realEstate(),
		trades(),
		education(),
		photography(),
		nonprofit(),
		retail(),
		technology(),
	)
}

func restaurant() Profile {
	return Profile{
		ID:       "restaurant",
		Label:    "Restaurants & Cafés",
		Keywords: []string{"restaurant", "café", "cafe", "coffee", "bistro", "bakery", "diner", "pizzeria", "eatery", "brunch", "food truck", "bar & grill", "taproom"},
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "welcome guests and surface the menu", Priority: 1, Homepage: true, Sections: []string{"hero", "features", "testimonials", "cta"}},
			{Name: "Menu", Slug: "menu", Purpose: "full menu with prices", Priority: 2, Sections: []string{"menu", "cta"}},
			{Name: "About", Slug: "about", Purpose: "story, team and atmosphere", Priority: 3, Sections: []string{"about", "team"}},
			{Name: "Contact", Slug: "contact", Purpose: "location, hours and reservations", Priority: 4, Sections: []string{"contact", "hours", "map"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":         {Components: []string{"Hero"}, Variant: "image-bg", FieldOverrides: map[string]any{"cta_label": "View menu"}},
			"menu":         {Components: []string{"MenuShowcase"}, Variant: "columns"},
			"features":     {Components: []string{"MenuShowcase", "Features"}},
			"testimonials": {Components: []string{"Testimonials", "SocialProof"}},
			"hours":        {Components: []string{"OpeningHours"}},
			"contact":      {Components: []string{"ContactForm"}, FieldOverrides: map[string]any{"heading": "Book a table"}},
			"map":          {Components: []string{"LocationMap"}},
			"cta":          {Components: []string{"CallToAction"}, FieldOverrides: map[string]any{"cta_label": "Reserve now"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#7c2d12", AccentColor: "#f59e0b", Background: "#fffbeb",
			HeadingFont: "Playfair Display", BodyFont: "Source Sans Pro", BorderRadius: "0.5rem",
		},
		Guidelines: []string{
			"Warm, appetizing language; mention signature dishes when known.",
			"Always surface opening hours and reservations prominently.",
		},
	}
}

func healthcare() Profile {
	return Profile{
		ID:       "healthcare",
		Label:    "Healthcare & Wellness",
		Keywords: []string{"clinic", "doctor", "dental", "dentist", "medical", "health", "therapy", "therapist", "chiropract", "pediatric", "veterinar"},
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "reassure patients and guide to booking", Priority: 1, Homepage: true, Sections: []string{"hero", "services", "testimonials", "cta"}},
			{Name: "Services", Slug: "services", Purpose: "treatments offered", Priority: 2, Sections: []string{"services", "faq"}},
			{Name: "Our Team", Slug: "team", Purpose: "practitioner credentials", Priority: 3, Sections: []string{"team"}},
			{Name: "Contact", Slug: "contact", Purpose: "appointments and directions", Priority: 4, Sections: []string{"contact", "hours", "map"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":         {Components: []string{"Hero"}, Variant: "split", FieldOverrides: map[string]any{"cta_label": "Book an appointment"}},
			"services":     {Components: []string{"Services", "Features"}},
			"team":         {Components: []string{"Team"}, Variant: "grid"},
			"testimonials": {Components: []string{"Testimonials"}},
			"faq":          {Components: []string{"FAQ"}},
			"contact":      {Components: []string{"ContactForm"}},
			"hours":        {Components: []string{"OpeningHours"}},
			"map":          {Components: []string{"LocationMap"}},
			"cta":          {Components: []string{"CallToAction"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#0e7490", AccentColor: "#22d3ee", Background: "#f0fdfa",
			HeadingFont: "Inter", BodyFont: "Inter", BorderRadius: "0.75rem",
		},
		Guidelines: []string{
			"Calm, trustworthy tone; avoid medical claims beyond the provided services.",
		},
	}
}

func fitness() Profile {
	return Profile{
		ID:       "fitness",
		Label:    "Fitness & Sports",
		Keywords: []string{"gym", "fitness", "yoga", "pilates", "crossfit", "personal trainer", "martial arts", "dance studio", "climbing"},
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "energize and convert visitors", Priority: 1, Homepage: true, Sections: []string{"hero", "features", "stats", "testimonials", "cta"}},
			{Name: "Classes", Slug: "classes", Purpose: "class schedule and programs", Priority: 2, Sections: []string{"services", "pricing"}},
			{Name: "Trainers", Slug: "trainers", Purpose: "coach profiles", Priority: 3, Sections: []string{"team"}},
			{Name: "Contact", Slug: "contact", Purpose: "trial signup", Priority: 4, Sections: []string{"contact", "hours"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":         {Components: []string{"Hero"}, Variant: "image-bg", FieldOverrides: map[string]any{"cta_label": "Start free trial"}},
			"features":     {Components: []string{"Features"}},
			"services":     {Components: []string{"Services"}},
			"pricing":      {Components: []string{"Pricing"}},
			"stats":        {Components: []string{"Stats"}},
			"team":         {Components: []string{"Team"}},
			"testimonials": {Components: []string{"Testimonials", "SocialProof"}},
			"contact":      {Components: []string{"ContactForm"}},
			"hours":        {Components: []string{"OpeningHours"}},
			"cta":          {Components: []string{"CallToAction"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#dc2626", AccentColor: "#fbbf24", Background: "#fafafa",
			HeadingFont: "Montserrat", BodyFont: "Open Sans", BorderRadius: "0.25rem",
		},
		Guidelines: []string{"High-energy, action-first copy; short sentences."},
	}
}

func beauty() Profile {
	return Profile{
		ID:       "beauty",
		Label:    "Beauty & Personal Care",
		Keywords: []string{"salon", "spa", "barber", "beauty", "nails", "hair", "makeup", "esthetic", "massage"},
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "showcase style and book visits", Priority: 1, Homepage: true, Sections: []string{"hero", "services", "gallery", "testimonials"}},
			{Name: "Services", Slug: "services", Purpose: "treatments and prices", Priority: 2, Sections: []string{"services", "pricing"}},
			{Name: "Contact", Slug: "contact", Purpose: "booking", Priority: 3, Sections: []string{"contact", "hours"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":         {Components: []string{"Hero"}, Variant: "centered", FieldOverrides: map[string]any{"cta_label": "Book now"}},
			"services":     {Components: []string{"Services"}},
			"pricing":      {Components: []string{"Pricing"}},
			"gallery":      {Components: []string{"Gallery"}},
			"testimonials": {Components: []string{"Testimonials"}},
			"contact":      {Components: []string{"ContactForm"}},
			"hours":        {Components: []string{"OpeningHours"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#9d174d", AccentColor: "#f9a8d4", Background: "#fdf2f8",
			HeadingFont: "Cormorant Garamond", BodyFont: "Lato", BorderRadius: "1rem",
		},
		Guidelines: []string{"Elegant, sensory language; lead with visuals."},
	}
}

func legal() Profile {
	return Profile{
		ID:       "legal",
		Label:    "Legal & Professional Services",
		Keywords: []string{"law firm", "attorney", "lawyer", "legal", "notary", "accounting", "accountant", "tax", "consultin", "advisory"},
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "establish authority", Priority: 1, Homepage: true, Sections: []string{"hero", "services", "stats", "cta"}},
			{Name: "Practice Areas", Slug: "practice-areas", Purpose: "what we handle", Priority: 2, Sections: []string{"services", "faq"}},
			{Name: "Attorneys", Slug: "attorneys", Purpose: "credentials", Priority: 3, Sections: []string{"team"}},
			{Name: "Contact", Slug: "contact", Purpose: "consultations", Priority: 4, Sections: []string{"contact"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":     {Components: []string{"Hero"}, Variant: "split", FieldOverrides: map[string]any{"cta_label": "Request a consultation"}},
			"services": {Components: []string{"Services"}},
			"stats":    {Components: []string{"Stats"}},
			"team":     {Components: []string{"Team"}},
			"faq":      {Components: []string{"FAQ"}},
			"contact":  {Components: []string{"ContactForm"}},
			"cta":      {Components: []string{"CallToAction"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#1e3a5f", AccentColor: "#b45309", Background: "#f8fafc",
			HeadingFont: "Merriweather", BodyFont: "Source Sans Pro", BorderRadius: "0.125rem",
		},
		Guidelines: []string{"Formal, precise tone; no superlatives or guarantees."},
	}
}

func realEstate() Profile {
	return Profile{
		ID:       "realestate",
		Label:    "Real Estate",
		Keywords: []string{"real estate", "realtor", "property", "properties", "homes for sale", "brokerage", "apartments"},
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "capture buyer and seller leads", Priority: 1, Homepage: true, Sections: []string{"hero", "features", "testimonials", "cta"}},
			{Name: "Listings", Slug: "listings", Purpose: "current properties", Priority: 2, Sections: []string{"gallery"}},
			{Name: "Agents", Slug: "agents", Purpose: "agent profiles", Priority: 3, Sections: []string{"team"}},
			{Name: "Contact", Slug: "contact", Purpose: "valuations and viewings", Priority: 4, Sections: []string{"contact"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":         {Components: []string{"Hero"}, Variant: "image-bg"},
			"features":     {Components: []string{"Features"}},
			"gallery":      {Components: []string{"Gallery"}},
			"team":         {Components: []string{"Team"}},
			"testimonials": {Components: []string{"Testimonials"}},
			"contact":      {Components: []string{"ContactForm"}},
			"cta":          {Components: []string{"CallToAction"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#065f46", AccentColor: "#d97706", Background: "#ffffff",
			HeadingFont: "DM Serif Display", BodyFont: "Nunito Sans", BorderRadius: "0.5rem",
		},
		Guidelines: []string{"Aspirational but concrete; neighborhoods and numbers."},
	}
}

func trades() Profile {
	return Profile{
		ID:       "trades",
		Label:    "Trades & Home Services",
		Keywords: []string{"plumb", "electrician", "roofing", "construction", "contractor", "landscap", "hvac", "painting", "cleaning service", "handyman", "renovation"},
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "win service calls", Priority: 1, Homepage: true, Sections: []string{"hero", "services", "testimonials", "cta"}},
			{Name: "Services", Slug: "services", Purpose: "jobs handled", Priority: 2, Sections: []string{"services", "faq"}},
			{Name: "Contact", Slug: "contact", Purpose: "quotes", Priority: 3, Sections: []string{"contact"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":         {Components: []string{"Hero"}, FieldOverrides: map[string]any{"cta_label": "Get a free quote"}},
			"services":     {Components: []string{"Services", "Features"}},
			"testimonials": {Components: []string{"Testimonials", "SocialProof"}},
			"faq":          {Components: []string{"FAQ"}},
			"contact":      {Components: []string{"ContactForm"}},
			"cta":          {Components: []string{"CallToAction"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#1d4ed8", AccentColor: "#f97316", Background: "#f9fafb",
			HeadingFont: "Oswald", BodyFont: "Roboto", BorderRadius: "0.25rem",
		},
		Guidelines: []string{"Direct, dependable tone; lead with service area and response time."},
	}
}

func education() Profile {
	return Profile{
		ID:       "education",
		Label:    "Education & Training",
		Keywords: []string{"school", "tutoring", "tutor", "course", "academy", "education", "training", "workshop", "bootcamp", "kindergarten"},
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "enrollment interest", Priority: 1, Homepage: true, Sections: []string{"hero", "features", "testimonials", "cta"}},
			{Name: "Programs", Slug: "programs", Purpose: "curriculum", Priority: 2, Sections: []string{"services", "faq"}},
			{Name: "Contact", Slug: "contact", Purpose: "enrollment", Priority: 3, Sections: []string{"contact"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":         {Components: []string{"Hero"}},
			"features":     {Components: []string{"Features"}},
			"services":     {Components: []string{"Services"}},
			"faq":          {Components: []string{"FAQ"}},
			"testimonials": {Components: []string{"Testimonials"}},
			"contact":      {Components: []string{"ContactForm"}},
			"cta":          {Components: []string{"CallToAction"}, FieldOverrides: map[string]any{"cta_label": "Enroll today"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#4338ca", AccentColor: "#fbbf24", Background: "#ffffff",
			HeadingFont: "Poppins", BodyFont: "Open Sans", BorderRadius: "0.5rem",
		},
		Guidelines: []string{"Encouraging, outcome-focused copy."},
	}
}

func photography() Profile {
	return Profile{
		ID:       "photography",
		Label:    "Photography & Creative",
		Keywords: []string{"photograph", "videograph", "design studio", "creative agency", "portfolio", "illustrat"},
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "portfolio first", Priority: 1, Homepage: true, Sections: []string{"hero", "gallery", "testimonials"}},
			{Name: "Portfolio", Slug: "portfolio", Purpose: "selected work", Priority: 2, Sections: []string{"gallery"}},
			{Name: "Contact", Slug: "contact", Purpose: "bookings", Priority: 3, Sections: []string{"contact"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":         {Components: []string{"Hero"}, Variant: "image-bg"},
			"gallery":      {Components: []string{"Gallery"}, Variant: "masonry"},
			"testimonials": {Components: []string{"Testimonials"}},
			"contact":      {Components: []string{"ContactForm"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#18181b", AccentColor: "#a1a1aa", Background: "#fafafa",
			HeadingFont: "Space Grotesk", BodyFont: "Inter", BorderRadius: "0",
		},
		Guidelines: []string{"Let images carry the page; minimal copy."},
	}
}

func nonprofit() Profile {
	return Profile{
		ID:       "nonprofit",
		Label:    "Nonprofits & Community",
		Keywords: []string{"nonprofit", "non-profit", "charity", "foundation", "volunteer", "donation", "community organization"},
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "mission and impact", Priority: 1, Homepage: true, Sections: []string{"hero", "about", "stats", "cta"}},
			{Name: "Get Involved", Slug: "get-involved", Purpose: "volunteering and giving", Priority: 2, Sections: []string{"features", "cta"}},
			{Name: "Contact", Slug: "contact", Purpose: "reach the team", Priority: 3, Sections: []string{"contact"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":    {Components: []string{"Hero"}, FieldOverrides: map[string]any{"cta_label": "Donate"}},
			"about":   {Components: []string{"About"}},
			"stats":   {Components: []string{"Stats"}},
			"features": {Components: []string{"Features"}},
			"contact": {Components: []string{"ContactForm"}},
			"cta":     {Components: []string{"CallToAction"}, FieldOverrides: map[string]any{"cta_label": "Support our mission"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#15803d", AccentColor: "#eab308", Background: "#f0fdf4",
			HeadingFont: "Bitter", BodyFont: "Source Sans Pro", BorderRadius: "0.5rem",
		},
		Guidelines: []string{"Mission-led storytelling; show impact in numbers."},
	}
}

func retail() Profile {
	return Profile{
		ID:       "retail",
		Label:    "Retail & E-commerce",
		Keywords: []string{"boutique", "store", "retail", "ecommerce", "e-commerce", "online shop", "merch", "apparel", "jewelry"},
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "feature products", Priority: 1, Homepage: true, Sections: []string{"hero", "features", "gallery", "newsletter"}},
			{Name: "About", Slug: "about", Purpose: "brand story", Priority: 2, Sections: []string{"about"}},
			{Name: "Contact", Slug: "contact", Purpose: "support and visits", Priority: 3, Sections: []string{"contact", "hours"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":       {Components: []string{"Hero"}, Variant: "image-bg", FieldOverrides: map[string]any{"cta_label": "Shop now"}},
			"features":   {Components: []string{"Features"}},
			"gallery":    {Components: []string{"Gallery"}},
			"about":      {Components: []string{"About"}},
			"newsletter": {Components: []string{"Newsletter"}},
			"contact":    {Components: []string{"ContactForm"}},
			"hours":      {Components: []string{"OpeningHours"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#111827", AccentColor: "#ef4444", Background: "#ffffff",
			HeadingFont: "DM Sans", BodyFont: "DM Sans", BorderRadius: "0.375rem",
		},
		Guidelines: []string{"Product-forward; clear prices and availability."},
	}
}

func technology() Profile {
	return Profile{
		ID:       "technology",
		Label:    "Technology & Startups",
		Keywords: []string{"software", "startup", "saas", "tech", " app", "platform", "digital product", "developer", " ai "},
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "explain the product", Priority: 1, Homepage: true, Sections: []string{"hero", "features", "stats", "cta"}},
			{Name: "Pricing", Slug: "pricing", Purpose: "plans", Priority: 2, Sections: []string{"pricing", "faq"}},
			{Name: "About", Slug: "about", Purpose: "team and vision", Priority: 3, Sections: []string{"about", "team"}},
			{Name: "Contact", Slug: "contact", Purpose: "sales and support", Priority: 4, Sections: []string{"contact"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":     {Components: []string{"Hero"}, Variant: "centered", FieldOverrides: map[string]any{"cta_label": "Start free"}},
			"features": {Components: []string{"Features"}, Variant: "grid"},
			"pricing":  {Components: []string{"Pricing"}},
			"stats":    {Components: []string{"Stats"}},
			"faq":      {Components: []string{"FAQ"}},
			"about":    {Components: []string{"About"}},
			"team":     {Components: []string{"Team"}},
			"contact":  {Components: []string{"ContactForm"}},
			"cta":      {Components: []string{"CallToAction"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#2563eb", AccentColor: "#8b5cf6", Background: "#ffffff",
			HeadingFont: "Inter", BodyFont: "Inter", BorderRadius: "0.75rem",
		},
		Guidelines: []string{"Benefit-led headlines; concrete outcomes over buzzwords."},
	}
}

func generalProfile() Profile {
	return Profile{
		ID:       GeneralID,
		Label:    "General Business",
		Keywords: nil,
		RecommendedPages: []PageTemplate{
			{Name: "Home", Slug: "home", Purpose: "introduce the business", Priority: 1, Homepage: true, Sections: []string{"hero", "features", "cta"}},
			{Name: "About", Slug: "about", Purpose: "who we are", Priority: 2, Sections: []string{"about"}},
			{Name: "Contact", Slug: "contact", Purpose: "get in touch", Priority: 3, Sections: []string{"contact"}},
		},
		SectionPreferences: map[string]SectionPreference{
			"hero":     {Components: []string{"Hero"}},
			"features": {Components: []string{"Features"}},
			"about":    {Components: []string{"About"}},
			"contact":  {Components: []string{"ContactForm"}},
			"cta":      {Components: []string{"CallToAction"}},
		},
		Tokens: site.DesignTokens{
			PrimaryColor: "#334155", AccentColor: "#0ea5e9", Background: "#ffffff",
			HeadingFont: "Inter", BodyFont: "Inter", BorderRadius: "0.5rem",
		},
		Guidelines: []string{"Neutral, friendly tone."},
	}
}
