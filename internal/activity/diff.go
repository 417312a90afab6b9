package activity

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"

	"lahella/models"
)

// Change is one field-level difference between the local document and
// the server copy. Local or Server is nil when the field exists on one
// side only.
type Change struct {
	Path   string
	Local  any
	Server any
}

const displayLimit = 60

// String renders the change the way the CLI prints it: + for a field
// added locally, - for a field only the server has, ~ for a changed
// value with the server value first.
func (c Change) String() string {
	switch {
	case c.Server == nil:
		return fmt.Sprintf("+ %s: %s", c.Path, formatValue(c.Local))
	case c.Local == nil:
		return fmt.Sprintf("- %s: %s", c.Path, formatValue(c.Server))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, formatValue(c.Server), formatValue(c.Local))
	}
}

func formatValue(v any) string {
	if v == nil {
		return "(none)"
	}
	if s, ok := v.(string); ok {
		if utf8.RuneCountInString(s) > displayLimit {
			runes := []rune(s)
			s = string(runes[:displayLimit-3]) + "..."
		}
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

// Rich-text fields compare by extracted paragraphs rather than markup.
// The leading forms match top-level sections, the dotted containment
// form matches the same sections nested under a venue.
var htmlTextFields = []string{
	"course.summary.",
	"course.description.",
	"pricing.info.",
	"registration.info.",
	"location.summary.",
}

// Set-like list fields compare regardless of element order.
var setFields = []string{
	"categories.themes",
	"categories.formats",
	"categories.locales",
	"demographics.age_groups",
	"demographics.genders",
	"location.regions",
	"location.accessibility",
}

// Diff compares a local document against the server copy field by
// field. Both sides see the same schema defaults, rich-text fields
// compare by their extracted paragraphs, set-like lists ignore order,
// and server-side artifacts (geocoded map pins, the path of an already
// bound image) are filtered out.
func Diff(local, remote *models.Document) ([]Change, error) {
	localFlat, err := flatten(withDefaults(local))
	if err != nil {
		return nil, err
	}
	remoteFlat, err := flatten(withDefaults(remote))
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(localFlat)+len(remoteFlat))
	for path := range localFlat {
		paths = append(paths, path)
	}
	for path := range remoteFlat {
		if _, ok := localFlat[path]; !ok {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	var changes []Change
	for _, path := range paths {
		if ignoredPath(path) {
			continue
		}
		localValue, remoteValue := localFlat[path], remoteFlat[path]
		if equalAt(path, localValue, remoteValue) {
			continue
		}
		changes = append(changes, Change{Path: path, Local: localValue, Server: remoteValue})
	}

	changes = suppressGeocoded(changes, localFlat, remoteFlat)
	changes = suppressBoundImage(changes, localFlat, remoteFlat)
	return changes, nil
}

// ignoredPath filters bookkeeping that never constitutes an edit: the
// server key and status, and the credentials section a resolved
// document carries.
func ignoredPath(path string) bool {
	return path == "course.key" || path == "course.status" || strings.HasPrefix(path, "auth.")
}

func equalAt(path string, local, remote any) bool {
	switch {
	case isHTMLTextField(path):
		return HTMLTextsEqual(asString(local), asString(remote))
	case isSetField(path):
		return cmp.Equal(setElems(path, local), setElems(path, remote),
			cmpopts.SortSlices(func(a, b string) bool { return a < b }),
			cmpopts.EquateEmpty())
	default:
		return cmp.Equal(local, remote)
	}
}

func isHTMLTextField(path string) bool {
	for _, field := range htmlTextFields {
		if strings.HasPrefix(path, field) || strings.Contains(path, "."+field) {
			return true
		}
	}
	return false
}

func isSetField(path string) bool {
	for _, field := range setFields {
		if path == field || strings.HasSuffix(path, "."+field) {
			return true
		}
	}
	return false
}

// suppressGeocoded drops map-pin changes the operator does not control.
// The server geocodes street addresses, so a pin that differs from a
// street-derived one is not a local edit; a pin on a street-less
// address is operator-placed and stays in the diff.
func suppressGeocoded(changes []Change, localFlat, remoteFlat map[string]any) []Change {
	kept := changes[:0]
	for _, change := range changes {
		if coordinatePath(change.Path) && geocodeArtifact(change.Path, localFlat, remoteFlat) {
			continue
		}
		kept = append(kept, change)
	}
	return kept
}

func geocodeArtifact(path string, localFlat, remoteFlat map[string]any) bool {
	if _, ok := localFlat[path]; !ok {
		return true // pin exists only on the server
	}
	street := path[:strings.LastIndex(path, ".")] + ".street"
	return localFlat[street] != nil || remoteFlat[street] != nil
}

// suppressBoundImage drops image.path changes when both sides carry the
// same uploaded image id: the local file path says nothing about the
// bytes already on the server.
func suppressBoundImage(changes []Change, localFlat, remoteFlat map[string]any) []Change {
	localID, _ := localFlat["image.id"].(string)
	remoteID, _ := remoteFlat["image.id"].(string)
	if localID == "" || localID != remoteID {
		return changes
	}
	kept := changes[:0]
	for _, change := range changes {
		if change.Path == "image.path" {
			continue
		}
		kept = append(kept, change)
	}
	return kept
}

// flatten renders a document as dot-notation leaf paths. Mappings and
// lists of mappings recurse (list elements by index); scalar lists stay
// whole so set-like fields compare as units. Empty leaves are dropped:
// an absent field and an empty one mean the same thing in a document.
func flatten(doc *models.Document) (map[string]any, error) {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("flatten document: %w", err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("flatten document: %w", err)
	}

	flat := make(map[string]any)
	flattenInto(flat, "", tree)
	return flat, nil
}

func flattenInto(flat map[string]any, prefix string, tree map[string]any) {
	for key, value := range tree {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		addLeaf(flat, path, value)
	}
}

func addLeaf(flat map[string]any, path string, value any) {
	switch v := value.(type) {
	case map[string]any:
		flattenInto(flat, path, v)
	case []any:
		if !allMappings(v) {
			if len(v) > 0 {
				flat[path] = v
			}
			return
		}
		for i, item := range v {
			addLeaf(flat, fmt.Sprintf("%s.%d", path, i), item)
		}
	default:
		if emptyLeaf(value) || unsetCoordinate(path, value) {
			return
		}
		flat[path] = value
	}
}

func allMappings(list []any) bool {
	if len(list) == 0 {
		return false
	}
	for _, item := range list {
		if _, ok := item.(map[string]any); !ok {
			return false
		}
	}
	return true
}

func emptyLeaf(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

// unsetCoordinate reports whether a zero latitude or longitude should
// read as "no pin", matching the payload builder's omission of the map
// for them.
func unsetCoordinate(path string, value any) bool {
	if !coordinatePath(path) {
		return false
	}
	switch n := value.(type) {
	case int:
		return n == 0
	case float64:
		return n == 0
	}
	return false
}

func coordinatePath(path string) bool {
	return strings.HasSuffix(path, ".latitude") || strings.HasSuffix(path, ".longitude")
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// setElems returns a list normalized for set comparison. Demographic
// codes compare in their platform-prefixed form, the same way the
// payload builder sends them.
func setElems(path string, v any) []string {
	elems := asStringSlice(v)
	prefix := ""
	switch {
	case strings.HasSuffix(path, "demographics.age_groups"):
		prefix = "ageGroup/"
	case strings.HasSuffix(path, "demographics.genders"):
		prefix = "gender/"
	}
	if prefix == "" {
		return elems
	}
	out := make([]string, len(elems))
	for i, elem := range elems {
		out[i] = prefixOnce(elem, prefix)
	}
	return out
}

func asStringSlice(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, fmt.Sprintf("%v", item))
	}
	return out
}
