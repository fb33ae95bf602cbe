package domain

// Brand holds the fixed company details used by the layout and call-to-action
// links. It is configuration, not content: every page reads the same values.
type Brand struct {
	Name         string `toml:"name"`
	Tagline      string `toml:"tagline"`
	PhoneDisplay string `toml:"phone_display"`
	PhoneTel     string `toml:"phone_tel"`
	Email        string `toml:"email"`
	PrimaryCTA   string `toml:"primary_cta"`
	SecondaryCTA string `toml:"secondary_cta"`
}

// DefaultBrand returns the stock Dragon Paving details.
func DefaultBrand() Brand {
	return Brand{
		Name:         "Dragon Paving",
		Tagline:      "Commercial paving you can trust",
		PhoneDisplay: "337-3DRAGON",
		PhoneTel:     "3373724666",
		Email:        "support@dragonpaving.com",
		PrimaryCTA:   "Get a Free Estimate",
		SecondaryCTA: "Call Now",
	}
}

// TelHref returns the tel: link target for the company phone number.
func (b Brand) TelHref() string {
	return "tel:" + b.PhoneTel
}

// MailtoHref returns the mailto: link target for the company email address.
func (b Brand) MailtoHref() string {
	return "mailto:" + b.Email
}
