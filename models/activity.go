package models

// Activity is a course listing in the portal's wire format. The same shape
// serves as create/update request body (without Key and Status, which the
// server owns) and as response/list item.
type Activity struct {
	// Key is the server-side identifier (_key). Never sent in request
	// bodies; updates address it through the URL instead.
	Key string `json:"_key,omitempty"`

	// Status is the server-side lifecycle state, e.g. "published".
	Status string `json:"status,omitempty"`

	// Group is the owning organization key.
	Group string `json:"group,omitempty"`

	Traits Traits `json:"traits"`

	// Tags carries server-side classification, notably the visibility
	// window used to derive expired/pending states.
	Tags *Tags `json:"tags,omitempty"`

	// LockedAt/LockedBy implement the portal's optimistic edit lock.
	// LockedAt is unix milliseconds; LockedBy is "<group>:<millis>".
	LockedAt int64  `json:"lockedAt,omitempty"`
	LockedBy string `json:"lockedBy,omitempty"`
}

// Traits is the portal's bag of listing attributes.
type Traits struct {
	Type            string   `json:"type"`
	RequiredLocales []string `json:"requiredLocales"`

	Channels []Channel `json:"channels"`

	// Translations maps locale to listing texts.
	Translations map[string]TraitTexts `json:"translations"`

	Theme []string `json:"theme"`

	// Demographic mixes age groups and genders under "ageGroup/" and
	// "gender/" prefixes.
	Demographic []string `json:"demographic"`

	Format  []string `json:"format"`
	Locale  []string `json:"locale"`
	Region  []string `json:"region"`
	Pricing []string `json:"pricing"`

	Contacts []Contact `json:"contacts"`

	// Photo is the file key of the uploaded listing image.
	Photo    string `json:"photo,omitempty"`
	PhotoAlt string `json:"photoAlt,omitempty"`
}

// TraitTexts is the per-locale text block of a listing. Description and
// Pricing are HTML (paragraphs in <p dir="ltr"> wrappers).
type TraitTexts struct {
	Name        string `json:"name,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
	Pricing     string `json:"pricing,omitempty"`
}

// Channel is one venue of a listing with its schedule and sign-up settings.
type Channel struct {
	// ID is a client-generated UUID. Updates must reuse the server's
	// IDs or the portal treats the venue as replaced.
	ID string `json:"id"`

	Type []string `json:"type"`

	Events []Event `json:"events"`

	Translations map[string]ChannelTexts `json:"translations"`

	Map *MapInfo `json:"map,omitempty"`

	Accessibility []string `json:"accessibility"`

	RegistrationRequired bool   `json:"registrationRequired"`
	RegistrationURL      string `json:"registrationUrl"`
	RegistrationEmail    string `json:"registrationEmail"`
}

// Event is one recurring slot of a channel. Start is unix milliseconds at
// the first occurrence; Type "4" marks a recurring event.
type Event struct {
	Start    int64  `json:"start"`
	TimeZone string `json:"timeZone"`
	Type     string `json:"type"`

	Recurrence *Recurrence `json:"recurrence,omitempty"`
}

// Recurrence describes a weekly repetition ("P1W") ending at End (unix
// milliseconds).
type Recurrence struct {
	Period           string    `json:"period"`
	Exclude          []int64   `json:"exclude"`
	End              int64     `json:"end"`
	DaySpecificTimes []DayTime `json:"daySpecificTimes"`
}

// DayTime pins a recurrence to a weekday (1=Monday..7=Sunday) and a
// "HH:MM" start/end time.
type DayTime struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ChannelTexts is the per-locale venue block: postal address plus optional
// free texts.
type ChannelTexts struct {
	Summary      string       `json:"summary,omitempty"`
	Address      *WireAddress `json:"address,omitempty"`
	Registration string       `json:"registration,omitempty"`
}

// WireAddress is a postal address as the portal stores it. The Swedish
// translation omits the street and renames the state (Uusimaa -> Nyland).
type WireAddress struct {
	Street     string `json:"street,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
}

// MapInfo positions the venue on the portal map.
type MapInfo struct {
	Center Point `json:"center"`
	Zoom   int   `json:"zoom"`
}

// Point is a GeoJSON point; Coordinates are [longitude, latitude].
type Point struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Contact is one organizer contact of a listing.
type Contact struct {
	// ID is a client-generated UUID, reused across updates when the
	// contact (type, value) pair is unchanged.
	ID string `json:"id"`

	Type  string `json:"type"`
	Value string `json:"value"`

	Translations map[string]ContactTexts `json:"translations"`
}

type ContactTexts struct {
	Description string `json:"description"`
}

type Tags struct {
	Visibility *Visibility `json:"visibility,omitempty"`
}

// Visibility is the publication window in unix milliseconds.
type Visibility struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// ActivityList is one page of the group's listings.
type ActivityList struct {
	Items   []Activity `json:"items"`
	HasMore bool       `json:"hasMore"`
	Total   int        `json:"total"`
}
