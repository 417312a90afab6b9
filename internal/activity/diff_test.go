package activity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lahella/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// pulledCopy builds a document into a payload and maps it back, the way
// the server copy of a freshly submitted course reads after a pull.
func pulledCopy(t *testing.T, doc *models.Document) *models.Document {
	t.Helper()
	act, err := BuildCreate(doc, time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	act.Key = "activity-9001"
	act.Status = "published"
	return FromActivity(act)
}

func changePaths(changes []Change) []string {
	paths := make([]string, 0, len(changes))
	for _, change := range changes {
		paths = append(paths, change.Path)
	}
	return paths
}

// ── Diff: equivalence ─────────────────────────────────────────────────────────

// TestDiff_CreateThenPullShowsNoChanges verifies the core property: a
// document diffed against the pull of its own submission is clean, with
// every default, prefix, and markup conversion accounted for.
func TestDiff_CreateThenPullShowsNoChanges(t *testing.T) {
	// Arrange
	local := fullDocument()
	remote := pulledCopy(t, fullDocument())

	// Act
	changes, err := Diff(local, remote)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, changes)
}

// TestDiff_MinimalDocumentAgainstItsPull verifies the same property for
// a document that leaves every optional section to its default.
func TestDiff_MinimalDocumentAgainstItsPull(t *testing.T) {
	changes, err := Diff(validDocument(), pulledCopy(t, validDocument()))

	require.NoError(t, err)
	assert.Empty(t, changes)
}

// TestDiff_IgnoresBookkeepingAndCredentials verifies that the server
// key, the status, and the auth section never show up as changes.
func TestDiff_IgnoresBookkeepingAndCredentials(t *testing.T) {
	local := fullDocument()
	local.Course.Key = "some-other-key"
	local.Auth.Email = "operator@example.org"
	local.Auth.Password = "hunter2"
	local.Auth.Cookies = "AUTH_TOKEN=secret"

	changes, err := Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	assert.Empty(t, changes)
}

// TestDiff_RichTextComparesByText verifies that markup, whitespace and
// case differences in rich-text fields are not changes, while merging
// paragraphs is one.
func TestDiff_RichTextComparesByText(t *testing.T) {
	local := fullDocument()
	local.Course.Summary["fi"] = "KEHON ja  mielen rentoutusta."

	changes, err := Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	assert.Empty(t, changes)

	local = fullDocument()
	local.Course.Description["fi"] = "Opettelemme taijin perusliikkeet. Sopii aloittelijoille."

	changes, err = Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	assert.Equal(t, []string{"course.description.fi"}, changePaths(changes))
}

// TestDiff_SetFieldsIgnoreOrder verifies that reordering a set-like
// list is not a change but dropping an element is.
func TestDiff_SetFieldsIgnoreOrder(t *testing.T) {
	local := fullDocument()
	local.Categories.Themes = []string{"ht_urheilu", "ht_hyvinvointi"}

	changes, err := Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	assert.Empty(t, changes)

	local = fullDocument()
	local.Categories.Themes = []string{"ht_urheilu"}

	changes, err = Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	assert.Equal(t, []string{"categories.themes"}, changePaths(changes))
}

// TestDiff_ShortDemographicFormsMatchPrefixed verifies that documents
// written with short demographic codes compare clean against the
// prefixed form the server stores.
func TestDiff_ShortDemographicFormsMatchPrefixed(t *testing.T) {
	local := fullDocument()
	local.Demographics.AgeGroups = []string{"range:18-29", "range:30-62"}
	local.Demographics.Genders = []string{"male", "female"}

	changes, err := Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	assert.Empty(t, changes)
}

// ── Diff: detection ───────────────────────────────────────────────────────────

// TestDiff_TitleChange verifies a plain value change carries both
// sides.
func TestDiff_TitleChange(t *testing.T) {
	local := fullDocument()
	local.Course.Title["fi"] = "Taiji jatkokurssi"

	changes, err := Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "course.title.fi", changes[0].Path)
	assert.Equal(t, "Taiji jatkokurssi", changes[0].Local)
	assert.Equal(t, "Taiji alkeiskurssi", changes[0].Server)
}

// TestDiff_AddedAndRemovedFields verifies one-sided fields: a field
// only the local document has reads as added, a field only the server
// has reads as removed.
func TestDiff_AddedAndRemovedFields(t *testing.T) {
	local := fullDocument()
	local.Registration.Email = "ilmo@example.org"
	local.Pricing.Info = nil

	changes, err := Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	require.Equal(t, []string{"pricing.info.fi", "registration.email"}, changePaths(changes))
	assert.Nil(t, changes[0].Local)
	assert.Equal(t, "Koko kausi 95 euroa.", changes[0].Server)
	assert.Equal(t, "ilmo@example.org", changes[1].Local)
	assert.Nil(t, changes[1].Server)
}

// TestDiff_WeeklySlotChange verifies that schedule slots compare field
// by field.
func TestDiff_WeeklySlotChange(t *testing.T) {
	local := fullDocument()
	local.Schedule.Weekly[0].EndTime = "12:30"

	changes, err := Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "schedule.weekly.0.end_time", changes[0].Path)
}

// TestDiff_VenueFieldsCompareIndividually verifies that venue blocks
// diff per field under their own path, with inherited schedule and
// registration never reading as changes.
func TestDiff_VenueFieldsCompareIndividually(t *testing.T) {
	base := fullDocument()
	base.Locations = []models.Venue{{
		Location: models.LocationSection{
			Address: models.Address{Street: "Sivukatu 2", City: "Espoo"},
		},
	}}
	remote := pulledCopy(t, base)

	changes, err := Diff(base, remote)

	require.NoError(t, err)
	assert.Empty(t, changes)

	local := fullDocument()
	local.Locations = []models.Venue{{
		Location: models.LocationSection{
			Address: models.Address{Street: "Sivukatu 4", City: "Espoo"},
		},
	}}

	changes, err = Diff(local, remote)

	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "locations.0.location.address.street", changes[0].Path)
	assert.Equal(t, "Sivukatu 4", changes[0].Local)
	assert.Equal(t, "Sivukatu 2", changes[0].Server)
}

// ── Diff: server-side artifacts ───────────────────────────────────────────────

// TestDiff_GeocodedPinSuppressed verifies that map pins the server
// derives from a street address never read as changes.
func TestDiff_GeocodedPinSuppressed(t *testing.T) {
	// The server copy carries a geocoded pin; the local document has
	// only the street.
	local := fullDocument()
	local.Location.Address.Latitude = 0
	local.Location.Address.Longitude = 0

	changes, err := Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	assert.Empty(t, changes)

	// Both sides carry a pin but the street still decides the location.
	local = fullDocument()
	local.Location.Address.Latitude = 60.18

	changes, err = Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	assert.Empty(t, changes)
}

// TestDiff_OperatorPinReported verifies that on a street-less address
// the pin is operator-placed and differences are real changes.
func TestDiff_OperatorPinReported(t *testing.T) {
	base := fullDocument()
	base.Location.Address.Street = ""
	remote := pulledCopy(t, base)

	local := fullDocument()
	local.Location.Address.Street = ""
	local.Location.Address.Latitude = 60.2

	changes, err := Diff(local, remote)

	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "location.address.latitude", changes[0].Path)
}

// TestDiff_ImagePathSuppressedWhenBound verifies that the local file
// path is not a change while both sides carry the same uploaded image,
// and is one as soon as the ids diverge.
func TestDiff_ImagePathSuppressedWhenBound(t *testing.T) {
	local := fullDocument()
	local.Image.Path = "toinen-kuva.jpg"

	changes, err := Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	assert.Empty(t, changes)

	local = fullDocument()
	local.Image.ID = "img-999"

	changes, err = Diff(local, pulledCopy(t, fullDocument()))

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"image.id", "image.path"}, changePaths(changes))
}

// ── Change rendering ──────────────────────────────────────────────────────────

// TestChange_String verifies the display form of each change kind and
// the truncation of long values.
func TestChange_String(t *testing.T) {
	added := Change{Path: "registration.url", Local: "https://example.org/ilmo"}
	assert.Equal(t, `+ registration.url: "https://example.org/ilmo"`, added.String())

	removed := Change{Path: "image.id", Server: "img-123"}
	assert.Equal(t, `- image.id: "img-123"`, removed.String())

	changed := Change{Path: "course.title.fi", Local: "Uusi nimi", Server: "Vanha nimi"}
	assert.Equal(t, `~ course.title.fi: "Vanha nimi" -> "Uusi nimi"`, changed.String())

	numeric := Change{Path: "location.address.zoom", Local: 16, Server: 14}
	assert.Equal(t, "~ location.address.zoom: 14 -> 16", numeric.String())

	long := Change{Path: "course.description.fi", Local: strings.Repeat("a", 100)}
	rendered := long.String()
	assert.Contains(t, rendered, "...")
	assert.Less(t, len(rendered), 100)
}
