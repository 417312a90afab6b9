package activity

import (
	"time"

	"lahella/models"
)

// BuildUpdate builds the request body for rewriting an existing listing.
// Wire identifiers from the server copy are preserved: channel ids are
// reused positionally, contact ids are reused while their type and value
// still match, and the stored photo survives unless image.id binds a new
// one. The listing key never enters the body; updates address it through
// the URL.
func BuildUpdate(doc *models.Document, current models.Activity, now time.Time) (models.Activity, error) {
	payload, err := BuildCreate(doc, now)
	if err != nil {
		return models.Activity{}, err
	}

	for i := range payload.Traits.Channels {
		if i < len(current.Traits.Channels) && current.Traits.Channels[i].ID != "" {
			payload.Traits.Channels[i].ID = current.Traits.Channels[i].ID
		}
	}

	for i, contact := range payload.Traits.Contacts {
		for _, existing := range current.Traits.Contacts {
			if existing.ID != "" && existing.Type == contact.Type && existing.Value == contact.Value {
				payload.Traits.Contacts[i].ID = existing.ID
				break
			}
		}
	}

	if payload.Traits.Photo == "" && current.Traits.Photo != "" {
		payload.Traits.Photo = current.Traits.Photo
		payload.Traits.PhotoAlt = current.Traits.PhotoAlt
	}

	return payload, nil
}
