package activity

import (
	"strings"

	"lahella/models"
)

// FromActivity maps a wire activity back into the document schema, so
// pulled listings can be edited, diffed, and re-submitted. HTML texts
// come back as plain text; the demographic list splits into its
// age-group and gender halves. The first channel becomes the top-level
// location/schedule/registration sections, any further channels become
// `locations` venue blocks.
func FromActivity(act models.Activity) *models.Document {
	doc := &models.Document{}
	traits := act.Traits

	doc.Course.Key = act.Key
	doc.Course.Status = act.Status
	doc.Course.Type = traits.Type
	doc.Course.RequiredLocales = traits.RequiredLocales

	for locale, texts := range traits.Translations {
		if texts.Name != "" {
			setLocaleText(&doc.Course.Title, locale, texts.Name)
		}
		if texts.Summary != "" {
			setLocaleText(&doc.Course.Summary, locale, HTMLToText(texts.Summary))
		}
		if texts.Description != "" {
			setLocaleText(&doc.Course.Description, locale, HTMLToText(texts.Description))
		}
		if texts.Pricing != "" {
			setLocaleText(&doc.Pricing.Info, locale, HTMLToText(texts.Pricing))
		}
	}

	doc.Categories.Themes = traits.Theme
	doc.Categories.Formats = traits.Format
	doc.Categories.Locales = traits.Locale

	for _, code := range traits.Demographic {
		switch {
		case strings.HasPrefix(code, "ageGroup/"):
			doc.Demographics.AgeGroups = append(doc.Demographics.AgeGroups, code)
		case strings.HasPrefix(code, "gender/"):
			doc.Demographics.Genders = append(doc.Demographics.Genders, code)
		}
	}

	if len(traits.Pricing) > 0 {
		doc.Pricing.Type = traits.Pricing[0]
	}

	for _, contact := range traits.Contacts {
		entry := models.ContactEntry{Type: contact.Type, Value: contact.Value}
		for locale, texts := range contact.Translations {
			if texts.Description != "" {
				setLocaleText(&entry.Description, locale, texts.Description)
			}
		}
		doc.Contacts = append(doc.Contacts, entry)
	}

	if traits.Photo != "" {
		doc.Image.ID = traits.Photo
		doc.Image.Alt = traits.PhotoAlt
	}

	doc.Location.Regions = traits.Region

	if len(traits.Channels) > 0 {
		location, schedule, registration := channelToSections(traits.Channels[0])
		location.Regions = doc.Location.Regions
		doc.Location = location
		doc.Schedule = schedule
		doc.Registration = registration

		for _, ch := range traits.Channels[1:] {
			location, schedule, registration := channelToSections(ch)
			doc.Locations = append(doc.Locations, models.Venue{
				Location:     location,
				Schedule:     schedule,
				Registration: registration,
			})
		}
	}

	return doc
}

// channelToSections is the inverse of buildChannel: one wire channel
// back into location, schedule, and registration sections.
func channelToSections(ch models.Channel) (models.LocationSection, models.ScheduleSection, models.RegistrationSection) {
	var location models.LocationSection
	if len(ch.Type) > 0 {
		location.Type = ch.Type[0]
	}
	location.Accessibility = ch.Accessibility

	fi := ch.Translations["fi"]
	en := ch.Translations["en"]

	// The Finnish block is the only one carrying the street.
	if fi.Address != nil {
		location.Address = models.Address{
			Street:     fi.Address.Street,
			PostalCode: fi.Address.PostalCode,
			City:       fi.Address.City,
			State:      fi.Address.State,
			Country:    fi.Address.Country,
		}
	}
	if ch.Map != nil && len(ch.Map.Center.Coordinates) == 2 {
		location.Address.Longitude = ch.Map.Center.Coordinates[0]
		location.Address.Latitude = ch.Map.Center.Coordinates[1]
		location.Address.Zoom = ch.Map.Zoom
	}
	if s := HTMLToText(fi.Summary); s != "" {
		setLocaleText(&location.Summary, "fi", s)
	}
	if s := HTMLToText(en.Summary); s != "" {
		setLocaleText(&location.Summary, "en", s)
	}

	required := ch.RegistrationRequired
	registration := models.RegistrationSection{
		Required: &required,
		URL:      ch.RegistrationURL,
		Email:    ch.RegistrationEmail,
	}
	if s := HTMLToText(fi.Registration); s != "" {
		setLocaleText(&registration.Info, "fi", s)
	}
	if s := HTMLToText(en.Registration); s != "" {
		setLocaleText(&registration.Info, "en", s)
	}

	var schedule models.ScheduleSection
	if len(ch.Events) > 0 {
		event := ch.Events[0]
		schedule.Timezone = event.TimeZone
		if schedule.Timezone == "" {
			schedule.Timezone = defaultTimezone
		}
		schedule.StartDate = millisToDate(event.Start, schedule.Timezone)
		if event.Recurrence != nil {
			schedule.EndDate = millisToDate(event.Recurrence.End, schedule.Timezone)
			for _, dt := range event.Recurrence.DaySpecificTimes {
				schedule.Weekly = append(schedule.Weekly, models.WeeklySlot{
					Weekday:   dt.Weekday,
					StartTime: dt.StartTime,
					EndTime:   dt.EndTime,
				})
			}
		}
	}

	return location, schedule, registration
}

func setLocaleText(m *map[string]string, locale, text string) {
	if *m == nil {
		*m = make(map[string]string)
	}
	(*m)[locale] = text
}
