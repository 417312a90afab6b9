package models

// Document is one configuration layer of a course listing.
//
// All three layers (course file, defaults file, auth file) share this schema;
// any file may carry any subset of the sections. The resolver merges layers
// field by field with course > defaults > auth precedence, so a section may
// be spread across files.
type Document struct {
	// Auth holds credentials, session state and the target group.
	Auth AuthSection `yaml:"auth"`

	// Course describes the listing itself: titles, summaries, long
	// descriptions, keyed by locale ("fi", "en", "sv").
	Course CourseSection `yaml:"course"`

	// Categories carries the platform taxonomy codes the listing is
	// filed under.
	Categories CategoriesSection `yaml:"categories"`

	// Demographics selects target age groups and genders.
	Demographics DemographicsSection `yaml:"demographics"`

	// Location is the primary venue.
	Location LocationSection `yaml:"location"`

	// Schedule defines the weekly recurrence window for the primary venue.
	Schedule ScheduleSection `yaml:"schedule"`

	// Registration configures sign-up requirements for the primary venue.
	Registration RegistrationSection `yaml:"registration"`

	// Pricing sets the price category and free-text pricing info.
	Pricing PricingSection `yaml:"pricing"`

	// Contacts lists ways to reach the organizer.
	Contacts []ContactEntry `yaml:"contacts"`

	// Image configures the listing photo.
	Image ImageSection `yaml:"image"`

	// Locations adds venues beyond the primary one. A venue without its
	// own schedule or registration inherits the top-level sections.
	Locations []Venue `yaml:"locations"`
}

// AuthSection carries credentials and session state. It normally lives in
// the auth file alone, never in course files.
type AuthSection struct {
	// Email and Password are the portal login credentials. Optional;
	// the login command prompts when they are absent.
	Email    string `yaml:"email"`
	Password string `yaml:"password"`

	// Cookies is the captured session cookie string
	// ("NAME=value; NAME2=value2"). Written by the login command and
	// rewritten in place on token refresh.
	Cookies string `yaml:"cookies"`

	// Group is the organization key listings are created under.
	Group string `yaml:"group"`

	// BaseURL overrides the portal address. Defaults to the production
	// portal when empty.
	BaseURL string `yaml:"base_url"`
}

type CourseSection struct {
	// Key is the server-side listing key (_key). Set by pull; required
	// by update and diff, ignored by create.
	Key string `yaml:"key"`

	// Status is the server-side lifecycle state as seen by pull.
	// Informational; never sent back.
	Status string `yaml:"status"`

	// Title per locale. The "fi" entry is required for submission.
	Title map[string]string `yaml:"title"`

	// Type is the activity type, "hobby" when empty.
	Type string `yaml:"type"`

	// RequiredLocales lists locales the platform must have translations
	// for. Defaults to ["fi"].
	RequiredLocales []string `yaml:"required_locales"`

	Summary     map[string]string `yaml:"summary"`
	Description map[string]string `yaml:"description"`
}

type CategoriesSection struct {
	Themes  []string `yaml:"themes"`
	Formats []string `yaml:"formats"`
	Locales []string `yaml:"locales"`
}

type DemographicsSection struct {
	AgeGroups []string `yaml:"age_groups"`
	Genders   []string `yaml:"genders"`
}

type LocationSection struct {
	// Type is the venue kind, "location_fixed" when empty.
	Type string `yaml:"type"`

	Regions []string `yaml:"regions"`

	// Accessibility defaults to ["ac_unknow"] (the platform's own code).
	Accessibility []string `yaml:"accessibility"`

	// Summary is free text about the venue, per locale.
	Summary map[string]string `yaml:"summary"`

	Address Address `yaml:"address"`
}

type Address struct {
	Street     string `yaml:"street"`
	PostalCode string `yaml:"postal_code"`
	City       string `yaml:"city"`
	State      string `yaml:"state"`

	// Country defaults to "FI".
	Country string `yaml:"country"`

	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`

	// Zoom is the map zoom level, 16 when unset.
	Zoom int `yaml:"zoom"`
}

type ScheduleSection struct {
	// Timezone defaults to "Europe/Helsinki".
	Timezone string `yaml:"timezone"`

	// StartDate and EndDate bound the course, as "YYYY-MM-DD".
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`

	// Weekly lists the recurring slots. At least one is required for
	// submission.
	Weekly []WeeklySlot `yaml:"weekly"`
}

// WeeklySlot is one recurring weekly time slot.
// Weekday runs 1 (Monday) through 7 (Sunday); times are "HH:MM".
type WeeklySlot struct {
	Weekday   int    `yaml:"weekday"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

type RegistrationSection struct {
	// Required is tri-state: nil means unset, so a layer that sets it to
	// false still overrides a lower layer's true.
	Required *bool `yaml:"required"`

	URL   string `yaml:"url"`
	Email string `yaml:"email"`

	// Info is free-text sign-up instructions, per locale.
	Info map[string]string `yaml:"info"`
}

type PricingSection struct {
	// Type is a platform price category code, e.g. "pr_free".
	Type string `yaml:"type"`

	Info map[string]string `yaml:"info"`
}

type ContactEntry struct {
	// Type is a platform contact kind (phone, email, www...).
	Type  string `yaml:"type"`
	Value string `yaml:"value"`

	// Description labels the contact per locale. Defaults are filled in
	// at submission time (fi "Lisätietoja", en "Details", sv "Detaljer").
	Description map[string]string `yaml:"description"`
}

type ImageSection struct {
	// Path is a local image file to upload, relative to the course file.
	Path string `yaml:"path"`

	// Alt is the image alt text.
	Alt string `yaml:"alt"`

	// ID is the server-side file key of an already uploaded image.
	ID string `yaml:"id"`
}

// Venue is one additional location block under `locations`.
type Venue struct {
	Location     LocationSection     `yaml:"location"`
	Schedule     ScheduleSection     `yaml:"schedule"`
	Registration RegistrationSection `yaml:"registration"`
}
