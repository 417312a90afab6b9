package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"dario.cat/mergo"

	"lahella/models"
)

// Resolver assembles the effective course document from up to three layers:
// the course file, the shared defaults file, and the auth file.
//
// Precedence is course > defaults > auth, decided field by field: a course
// file that sets only one field of a section still inherits the rest of the
// section from the lower layers.
type Resolver struct {
	course   *models.Document
	defaults *models.Document
	auth     *models.Document
	err      error
}

func NewResolver() *Resolver {
	return &Resolver{}
}

// WithCourse loads the course file, the highest-precedence layer.
// The file must exist and parse.
func (r *Resolver) WithCourse(path string) *Resolver {
	r.course = r.load(path, true)
	return r
}

// WithDefaults loads the shared defaults file. An absent file is skipped;
// a present but malformed one is still an error.
func (r *Resolver) WithDefaults(path string) *Resolver {
	r.defaults = r.load(path, false)
	return r
}

// WithAuth loads the auth file, the lowest-precedence layer. The file must
// exist and parse: it carries the group key and session state every
// network-facing command needs.
func (r *Resolver) WithAuth(path string) *Resolver {
	r.auth = r.load(path, true)
	return r
}

func (r *Resolver) load(path string, required bool) *models.Document {
	if !required {
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	doc, err := LoadDocument(path)
	if err != nil {
		r.err = errors.Join(r.err, err)
		return nil
	}
	return doc
}

// Resolve merges the loaded layers into one document.
//
// Returns the first accumulated loading error instead, so a malformed or
// missing required layer surfaces even when other layers loaded fine.
func (r *Resolver) Resolve() (*models.Document, error) {
	if r.err != nil {
		return nil, fmt.Errorf("error occured during resolving configuration layers: %w", r.err)
	}

	doc := new(models.Document)
	for _, layer := range []*models.Document{r.course, r.defaults, r.auth} {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(doc, layer, mergo.WithTransformers(triStateTransformer{})); err != nil {
			return nil, fmt.Errorf("error merging configuration layers: %w", err)
		}
	}

	return doc, nil
}

// triStateTransformer keeps *bool fields layered correctly: a pointer
// already set by a higher-precedence layer wins even when it points at
// false, which plain merging would treat as a zero value to overwrite.
type triStateTransformer struct{}

func (triStateTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf((*bool)(nil)) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && dst.IsNil() {
			dst.Set(src)
		}
		return nil
	}
}
