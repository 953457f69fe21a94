package customorder

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkerMock struct {
	calls []string
}

func (l *linkerMock) MessageLink(text string) string {
	l.calls = append(l.calls, text)
	return "https://wa.me/1?text=" + url.QueryEscape(text)
}

func filledDraft(t *testing.T) *Draft {
	d := &Draft{}
	values := map[Field]string{
		FieldName:                "Priya Sharma",
		FieldEmail:               "priya@example.com",
		FieldPhone:               "+91 98765 43210",
		FieldProjectType:         "Wedding Keepsake",
		FieldSize:                "6x6 inches",
		FieldColorPreferences:    "Pastel pinks",
		FieldMaterialPreferences: "Gold flakes",
		FieldSpecialInstructions: "Include the date 12/02/2024",
		FieldInspirationImages:   "https://example.com/bouquet.jpg",
	}
	for f, v := range values {
		require.NoError(t, d.SetField(string(f), v))
	}
	return d
}

func TestSetField_Overwrites(t *testing.T) {
	d := &Draft{}

	require.NoError(t, d.SetField("name", "first"))
	require.NoError(t, d.SetField("name", "second"))
	assert.Equal(t, "second", d.Name)
}

func TestSetField_Unknown(t *testing.T) {
	d := &Draft{}

	err := d.SetField("budget", "100")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.True(t, d.IsEmpty())
}

func TestSubmit_ContainsEveryValueAndResets(t *testing.T) {
	d := filledDraft(t)
	before := *d
	linker := &linkerMock{}

	sub, err := d.Submit(linker)
	require.NoError(t, err)

	require.NotEmpty(t, sub.Message)
	for _, f := range Fields {
		assert.Contains(t, sub.Message, before.Get(f), "field %s", f)
	}
	assert.Equal(t, []string{sub.Message}, linker.calls)
	assert.True(t, strings.HasPrefix(sub.Link, "https://wa.me/"))
	assert.True(t, d.IsEmpty())
	assert.Equal(t, Draft{}, *d)
}

func TestSubmit_MissingRequired(t *testing.T) {
	d := &Draft{}
	require.NoError(t, d.SetField("email", "a@b.c"))
	require.NoError(t, d.SetField("size", "large"))
	linker := &linkerMock{}

	_, err := d.Submit(linker)

	var missing *MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []Field{FieldName, FieldPhone}, missing.Fields)
	assert.Contains(t, err.Error(), "Name, Phone")
	assert.Empty(t, linker.calls, "nothing is sent")
	assert.Equal(t, "a@b.c", d.Email, "draft is kept for retry")
}

func TestSubmit_WhitespaceIsAValue(t *testing.T) {
	d := filledDraft(t)
	require.NoError(t, d.SetField("phone", ""))
	assert.Equal(t, []Field{FieldPhone}, d.Missing())

	require.NoError(t, d.SetField("phone", "   "))
	assert.Empty(t, d.Missing())

	sub, err := d.Submit(&linkerMock{})
	require.NoError(t, err)
	assert.Contains(t, sub.Message, "Phone:    ")
}

func TestMessage_Template(t *testing.T) {
	d := &Draft{Name: "A", Email: "a@b.c", Phone: "1"}

	msg := d.Message()
	lines := strings.Split(msg, "\n")
	assert.Equal(t, "New Custom Order Request", lines[0])
	assert.Contains(t, msg, "Name: A")
	assert.Contains(t, msg, "Project Type: -")
	assert.Len(t, lines, 2+len(Fields))
}
