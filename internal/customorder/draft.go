// Package customorder holds the bespoke-order form while a visitor fills it
// in and turns it into a message for the shop's messaging app.
package customorder

import (
	"errors"
	"fmt"
	"strings"
)

type Field string

const (
	FieldName                Field = "name"
	FieldEmail               Field = "email"
	FieldPhone               Field = "phone"
	FieldProjectType         Field = "projectType"
	FieldSize                Field = "size"
	FieldColorPreferences    Field = "colorPreferences"
	FieldMaterialPreferences Field = "materialPreferences"
	FieldSpecialInstructions Field = "specialInstructions"
	FieldInspirationImages   Field = "inspirationImages"
)

// Fields lists every form field in message order.
var Fields = []Field{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldProjectType,
	FieldSize,
	FieldColorPreferences,
	FieldMaterialPreferences,
	FieldSpecialInstructions,
	FieldInspirationImages,
}

var Required = []Field{FieldName, FieldEmail, FieldPhone}

var ProjectTypes = []string{"Wedding Keepsake", "Memorial Piece", "Home Decor", "Jewelry", "Other"}

var labels = map[Field]string{
	FieldName:                "Name",
	FieldEmail:               "Email",
	FieldPhone:               "Phone",
	FieldProjectType:         "Project Type",
	FieldSize:                "Size",
	FieldColorPreferences:    "Color Preferences",
	FieldMaterialPreferences: "Material Preferences",
	FieldSpecialInstructions: "Special Instructions",
	FieldInspirationImages:   "Inspiration Images",
}

func (f Field) Label() string {
	return labels[f]
}

var ErrUnknownField = errors.New("unknown custom order field")

// MissingFieldsError is returned by Submit when required fields are empty.
type MissingFieldsError struct {
	Fields []Field
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Label()
	}
	return "please fill in the required fields: " + strings.Join(names, ", ")
}

// Linker turns message text into an outbound link.
type Linker interface {
	MessageLink(text string) string
}

type Draft struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	ProjectType         string `json:"projectType"`
	Size                string `json:"size"`
	ColorPreferences    string `json:"colorPreferences"`
	MaterialPreferences string `json:"materialPreferences"`
	SpecialInstructions string `json:"specialInstructions"`
	InspirationImages   string `json:"inspirationImages"`
}

// Submission is what a successful Submit hands to the caller.
type Submission struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

func (d *Draft) field(f Field) (*string, error) {
	switch f {
	case FieldName:
		return &d.Name, nil
	case FieldEmail:
		return &d.Email, nil
	case FieldPhone:
		return &d.Phone, nil
	case FieldProjectType:
		return &d.ProjectType, nil
	case FieldSize:
		return &d.Size, nil
	case FieldColorPreferences:
		return &d.ColorPreferences, nil
	case FieldMaterialPreferences:
		return &d.MaterialPreferences, nil
	case FieldSpecialInstructions:
		return &d.SpecialInstructions, nil
	case FieldInspirationImages:
		return &d.InspirationImages, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
}

// SetField overwrites one field. Input format checks belong to the form.
func (d *Draft) SetField(name string, value string) error {
	p, err := d.field(Field(name))
	if err != nil {
		return err
	}
	*p = value
	return nil
}

func (d *Draft) Get(f Field) string {
	p, err := d.field(f)
	if err != nil {
		return ""
	}
	return *p
}

// Missing returns the required fields that are empty. Whitespace counts as a
// value, as it does for an HTML required input.
func (d *Draft) Missing() []Field {
	var missing []Field
	for _, f := range Required {
		if d.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

func (d *Draft) IsEmpty() bool {
	return *d == Draft{}
}

func (d *Draft) Reset() {
	*d = Draft{}
}

// Message renders the draft into the fixed message template.
func (d *Draft) Message() string {
	var b strings.Builder
	b.WriteString("New Custom Order Request\n")
	for _, f := range Fields {
		value := d.Get(f)
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "\n%s: %s", f.Label(), value)
	}
	return b.String()
}

// Submit validates the required fields, serializes the draft, builds the
// outbound link and resets the draft. Nothing changes when fields are missing.
func (d *Draft) Submit(linker Linker) (Submission, error) {
	if missing := d.Missing(); len(missing) > 0 {
		return Submission{}, &MissingFieldsError{Fields: missing}
	}

	msg := d.Message()
	sub := Submission{Message: msg, Link: linker.MessageLink(msg)}
	d.Reset()
	return sub, nil
}
