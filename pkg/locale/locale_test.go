package locale_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sgaunet/dateutil/pkg/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var afternoon = civil.DateTime{
	Date: civil.Date{Year: 2023, Month: time.June, Day: 15},
	Time: civil.Time{Hour: 14, Minute: 30},
}

func TestStyle_String(t *testing.T) {
	assert.Equal(t, "short", locale.StyleShort.String())
	assert.Equal(t, "medium", locale.StyleMedium.String())
	assert.Equal(t, "long", locale.StyleLong.String())
	assert.Equal(t, "full", locale.StyleFull.String())
	assert.Equal(t, "Style(0)", locale.Style(0).String())
	assert.Equal(t, "Style(9)", locale.Style(9).String())
}

func TestStyle_IsValid(t *testing.T) {
	for _, s := range locale.Styles() {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, locale.Style(0).IsValid())
	assert.False(t, locale.Style(5).IsValid())
	assert.False(t, locale.Style(-1).IsValid())
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected locale.Style
	}{
		{"short", locale.StyleShort},
		{"MEDIUM", locale.StyleMedium},
		{" Long ", locale.StyleLong},
		{"full", locale.StyleFull},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := locale.ParseStyle(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	for _, bad := range []string{"", "tiny", "Style(1)"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := locale.ParseStyle(bad)
			assert.ErrorIs(t, err, locale.ErrInvalidStyle)
		})
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, language.AmericanEnglish, locale.Default().Tag())
	assert.Equal(t, "en-US", locale.Default().String())
	assert.Equal(t, locale.Default(), locale.Supported()[0])
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "en-US"},
		{"en-US", "en-US"},
		{"en", "en-US"},
		{"en-GB", "en-GB"},
		{"de", "de-DE"},
		{"de-AT", "de-DE"},
		{"fr-FR", "fr-FR"},
		{"fr-CA", "fr-FR"},
		{"es-ES", "es-ES"},
		{"ja-JP", "en-US"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			loc, err := locale.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, loc.String())
		})
	}
}

func TestParse_InvalidTag(t *testing.T) {
	loc, err := locale.Parse("not a tag!")
	require.Error(t, err)
	assert.Nil(t, loc)
	assert.ErrorIs(t, err, locale.ErrInvalidTag)
}

func TestLocale_Formatter(t *testing.T) {
	tests := []struct {
		tag      string
		style    locale.Style
		expected string
	}{
		{"en-US", locale.StyleShort, "6/15/23, 2:30 PM"},
		{"en-US", locale.StyleMedium, "Jun 15, 2023, 2:30:00 PM"},
		{"en-US", locale.StyleLong, "June 15, 2023 at 2:30:00 PM"},
		{"en-US", locale.StyleFull, "Thursday, June 15, 2023 at 2:30:00 PM"},
		{"en-GB", locale.StyleShort, "15/06/2023, 14:30"},
		{"en-GB", locale.StyleMedium, "15 Jun 2023, 14:30:00"},
		{"en-GB", locale.StyleFull, "Thursday, 15 June 2023 at 14:30:00"},
		{"de-DE", locale.StyleShort, "15.06.23, 14:30"},
		{"de-DE", locale.StyleMedium, "15.06.2023, 14:30:00"},
		{"de-DE", locale.StyleLong, "15. Juni 2023 um 14:30:00"},
		{"de-DE", locale.StyleFull, "Donnerstag, 15. Juni 2023 um 14:30:00"},
		{"fr-FR", locale.StyleShort, "15/06/2023 14:30"},
		{"fr-FR", locale.StyleLong, "15 juin 2023 à 14:30:00"},
		{"fr-FR", locale.StyleFull, "jeudi 15 juin 2023 à 14:30:00"},
		{"es-ES", locale.StyleShort, "15/6/23, 14:30"},
		{"es-ES", locale.StyleLong, "15 de junio de 2023, 14:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.style.String(), func(t *testing.T) {
			loc, err := locale.Parse(tt.tag)
			require.NoError(t, err)

			f, err := loc.Formatter(tt.style)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Format(afternoon))
		})
	}
}

func TestLocale_FormatterParsesItsOwnOutput(t *testing.T) {
	for _, loc := range locale.Supported() {
		for _, style := range locale.Styles() {
			t.Run(loc.String()+"/"+style.String(), func(t *testing.T) {
				f, err := loc.Formatter(style)
				require.NoError(t, err)

				got, err := f.Parse(f.Format(afternoon))
				require.NoError(t, err)
				assert.Equal(t, afternoon, got)
			})
		}
	}
}

func TestLocale_InvalidStyle(t *testing.T) {
	loc := locale.Default()

	_, err := loc.Pattern(0)
	require.ErrorIs(t, err, locale.ErrInvalidStyle)

	f, err := loc.Formatter(locale.Style(7))
	require.ErrorIs(t, err, locale.ErrInvalidStyle)
	assert.Nil(t, f)
}

func TestLocale_Pattern(t *testing.T) {
	p, err := locale.Default().Pattern(locale.StyleLong)
	require.NoError(t, err)
	assert.Equal(t, "MMMM d, y 'at' h:mm:ss a", p)
}
