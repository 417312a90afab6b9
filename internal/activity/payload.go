// Package activity converts between the operator-facing document schema
// and the portal's activity wire format: validation, payload building,
// the inverse mapping for pulled listings, and the semantic diff that
// drives updates.
package activity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lahella/models"
)

const (
	defaultCourseType   = "hobby"
	defaultLocationType = "location_fixed"
	defaultTimezone     = "Europe/Helsinki"
	defaultCountry      = "FI"
	defaultZoom         = 16

	// Event type "4" is the portal's recurring-event marker; recurrence
	// period is always one week.
	recurringEventType = "4"
	weeklyPeriod       = "P1W"

	geoPointType = "Point"
)

var (
	defaultRequiredLocales = []string{"fi"}
	defaultAccessibility   = []string{"ac_unknow"} // the platform's own spelling
	payloadLocales         = []string{"fi", "en"}

	contactDescriptionDefaults = map[string]string{
		"fi": "Lisätietoja",
		"en": "Details",
		"sv": "Detaljer",
	}
)

// BuildCreate maps a resolved document onto the portal's activity wire
// format. Pure: the photo binding comes from image.id (set by the caller
// after upload), never from I/O here.
func BuildCreate(doc *models.Document, now time.Time) (models.Activity, error) {
	d := withDefaults(doc)

	channels := make([]models.Channel, 0, 1+len(d.Locations))
	primary, err := buildChannel(d.Location, d.Schedule, d.Registration, uuid.NewString())
	if err != nil {
		return models.Activity{}, err
	}
	channels = append(channels, primary)

	for i, venue := range d.Locations {
		ch, err := buildChannel(venue.Location, venue.Schedule, venue.Registration, uuid.NewString())
		if err != nil {
			return models.Activity{}, fmt.Errorf("locations[%d]: %w", i, err)
		}
		channels = append(channels, ch)
	}

	traits := models.Traits{
		Type:            d.Course.Type,
		RequiredLocales: orEmpty(d.Course.RequiredLocales),
		Channels:        channels,
		Translations:    buildTranslations(d),
		Theme:           orEmpty(d.Categories.Themes),
		Demographic:     buildDemographics(d.Demographics),
		Format:          orEmpty(d.Categories.Formats),
		Locale:          orEmpty(d.Categories.Locales),
		Region:          orEmpty(d.Location.Regions),
		Pricing:         []string{},
		Contacts:        buildContacts(d.Contacts),
	}
	if d.Pricing.Type != "" {
		traits.Pricing = []string{d.Pricing.Type}
	}
	if d.Image.ID != "" {
		traits.Photo = d.Image.ID
		traits.PhotoAlt = d.Image.Alt
	}

	ms := now.UnixMilli()

	return models.Activity{
		Group:    d.Auth.Group,
		Traits:   traits,
		LockedAt: ms,
		LockedBy: fmt.Sprintf("%s:%d", d.Auth.Group, ms),
	}, nil
}

// withDefaults returns a copy of doc with the schema defaults filled in
// and venue fallbacks materialized: a venue without its own schedule or
// registration inherits the top-level section. Building and diffing both
// see exactly the values a submission would send.
func withDefaults(doc *models.Document) *models.Document {
	d := *doc

	if d.Course.Type == "" {
		d.Course.Type = defaultCourseType
	}
	if len(d.Course.RequiredLocales) == 0 {
		d.Course.RequiredLocales = append([]string(nil), defaultRequiredLocales...)
	}
	if d.Schedule.Timezone == "" {
		d.Schedule.Timezone = defaultTimezone
	}
	if d.Registration.Required == nil {
		required := false
		d.Registration.Required = &required
	}
	d.Location = locationWithDefaults(d.Location)

	if len(d.Locations) > 0 {
		venues := make([]models.Venue, len(d.Locations))
		for i, venue := range d.Locations {
			venue.Location = locationWithDefaults(venue.Location)
			if venue.Schedule.StartDate == "" && len(venue.Schedule.Weekly) == 0 {
				venue.Schedule = d.Schedule
			} else if venue.Schedule.Timezone == "" {
				venue.Schedule.Timezone = d.Schedule.Timezone
			}
			if registrationEmpty(venue.Registration) {
				venue.Registration = d.Registration
			} else if venue.Registration.Required == nil {
				required := false
				venue.Registration.Required = &required
			}
			venues[i] = venue
		}
		d.Locations = venues
	}

	if len(d.Contacts) > 0 {
		contacts := make([]models.ContactEntry, len(d.Contacts))
		for i, entry := range d.Contacts {
			entry.Description = describedContact(entry.Description)
			contacts[i] = entry
		}
		d.Contacts = contacts
	}

	return &d
}

// describedContact fills the per-locale contact descriptions with the
// platform's stock wording where the document has none.
func describedContact(description map[string]string) map[string]string {
	out := make(map[string]string, len(contactDescriptionDefaults))
	for locale, fallback := range contactDescriptionDefaults {
		if text := description[locale]; text != "" {
			out[locale] = text
		} else {
			out[locale] = fallback
		}
	}
	return out
}

func locationWithDefaults(loc models.LocationSection) models.LocationSection {
	if loc.Type == "" {
		loc.Type = defaultLocationType
	}
	if len(loc.Accessibility) == 0 {
		loc.Accessibility = append([]string(nil), defaultAccessibility...)
	}
	if loc.Address.Country == "" {
		loc.Address.Country = defaultCountry
	}
	if loc.Address.Zoom == 0 {
		loc.Address.Zoom = defaultZoom
	}
	return loc
}

func registrationEmpty(reg models.RegistrationSection) bool {
	return reg.Required == nil && reg.URL == "" && reg.Email == "" && len(reg.Info) == 0
}

// buildTranslations renders the per-locale listing texts. A locale is
// present only when the document has text for it.
func buildTranslations(d *models.Document) map[string]models.TraitTexts {
	out := make(map[string]models.TraitTexts, len(payloadLocales))
	for _, locale := range payloadLocales {
		texts := models.TraitTexts{
			Name:        d.Course.Title[locale],
			Summary:     TextToHTML(d.Course.Summary[locale]),
			Description: TextToHTML(d.Course.Description[locale]),
			Pricing:     TextToHTML(d.Pricing.Info[locale]),
		}
		if texts != (models.TraitTexts{}) {
			out[locale] = texts
		}
	}
	return out
}

// buildDemographics folds age groups and genders into the portal's
// single demographic list. Documents may carry either the short code or
// the platform-prefixed form; the prefix is added at most once.
func buildDemographics(demo models.DemographicsSection) []string {
	out := make([]string, 0, len(demo.AgeGroups)+len(demo.Genders))
	for _, code := range demo.AgeGroups {
		out = append(out, prefixOnce(code, "ageGroup/"))
	}
	for _, code := range demo.Genders {
		out = append(out, prefixOnce(code, "gender/"))
	}
	return out
}

func prefixOnce(code, prefix string) string {
	if strings.HasPrefix(code, prefix) {
		return code
	}
	return prefix + code
}

func buildContacts(entries []models.ContactEntry) []models.Contact {
	out := make([]models.Contact, 0, len(entries))
	for _, entry := range entries {
		out = append(out, models.Contact{
			ID:           uuid.NewString(),
			Type:         entry.Type,
			Value:        entry.Value,
			Translations: contactTranslations(entry.Description),
		})
	}
	return out
}

func contactTranslations(description map[string]string) map[string]models.ContactTexts {
	out := make(map[string]models.ContactTexts, len(description))
	for locale, text := range description {
		out[locale] = models.ContactTexts{Description: text}
	}
	return out
}

func buildChannel(loc models.LocationSection, sched models.ScheduleSection, reg models.RegistrationSection, id string) (models.Channel, error) {
	event, err := buildEvent(sched)
	if err != nil {
		return models.Channel{}, err
	}

	channel := models.Channel{
		ID:                   id,
		Type:                 []string{loc.Type},
		Events:               []models.Event{event},
		Translations:         channelTranslations(loc, reg),
		Accessibility:        loc.Accessibility,
		RegistrationRequired: reg.Required != nil && *reg.Required,
		RegistrationURL:      reg.URL,
		RegistrationEmail:    reg.Email,
	}
	if loc.Address.Latitude != 0 || loc.Address.Longitude != 0 {
		channel.Map = &models.MapInfo{
			Center: models.Point{
				Type:        geoPointType,
				Coordinates: []float64{loc.Address.Longitude, loc.Address.Latitude},
			},
			Zoom: loc.Address.Zoom,
		}
	}

	return channel, nil
}

// buildEvent renders the schedule as the portal expects it: one
// recurring event starting at start_date midnight whose weekly
// recurrence carries every slot and ends at end_date midnight.
func buildEvent(sched models.ScheduleSection) (models.Event, error) {
	start, err := dateToMillis(sched.StartDate, sched.Timezone)
	if err != nil {
		return models.Event{}, badValue("schedule.start_date", err)
	}
	end, err := dateToMillis(sched.EndDate, sched.Timezone)
	if err != nil {
		return models.Event{}, badValue("schedule.end_date", err)
	}

	times := make([]models.DayTime, 0, len(sched.Weekly))
	for _, slot := range sched.Weekly {
		times = append(times, models.DayTime{
			Weekday:   slot.Weekday,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	return models.Event{
		Start:    start,
		TimeZone: sched.Timezone,
		Type:     recurringEventType,
		Recurrence: &models.Recurrence{
			Period:           weeklyPeriod,
			Exclude:          []int64{},
			End:              end,
			DaySpecificTimes: times,
		},
	}, nil
}

// channelTranslations renders the venue address per locale: Finnish
// carries the street, English drops it, Swedish is address-only with
// the Uusimaa state rendered as Nyland.
func channelTranslations(loc models.LocationSection, reg models.RegistrationSection) map[string]models.ChannelTexts {
	address := loc.Address
	svState := address.State
	if svState == "Uusimaa" {
		svState = "Nyland"
	}

	return map[string]models.ChannelTexts{
		"fi": {
			Summary: TextToHTML(loc.Summary["fi"]),
			Address: &models.WireAddress{
				Street:     address.Street,
				PostalCode: address.PostalCode,
				City:       address.City,
				State:      address.State,
				Country:    address.Country,
			},
			Registration: TextToHTML(reg.Info["fi"]),
		},
		"en": {
			Summary: TextToHTML(loc.Summary["en"]),
			Address: &models.WireAddress{
				PostalCode: address.PostalCode,
				City:       address.City,
				State:      address.State,
				Country:    address.Country,
			},
			Registration: TextToHTML(reg.Info["en"]),
		},
		"sv": {
			Address: &models.WireAddress{
				PostalCode: address.PostalCode,
				City:       address.City,
				State:      svState,
				Country:    address.Country,
			},
		},
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
