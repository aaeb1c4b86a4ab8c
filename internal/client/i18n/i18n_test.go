package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_T(t *testing.T) {
	assert.Equal(t, "Productos", New("es").T("products.title"))
	assert.Equal(t, "Produits", New("fr").T("products.title"))
	assert.Equal(t, "Products", New("en").T("products.title"))
}

func TestTranslator_FallsBackToEnglish(t *testing.T) {
	bn := New("bn")
	assert.Equal(t, "Unit", bn.T("products.unit"))
	assert.Equal(t, "no.such.key", bn.T("no.such.key"))
}

func TestNew_UnknownLanguage(t *testing.T) {
	tr := New("de")
	assert.Equal(t, "en", tr.Lang())
	assert.Equal(t, "Logged out.", tr.T("auth.loggedOut"))
}

func TestTranslator_FormatsArgs(t *testing.T) {
	assert.Equal(t, "Logged in as a@b.io (EDITOR).", New("en").T("auth.loggedIn", "a@b.io", "EDITOR"))
	assert.Equal(t, "Comando desconocido: foo. Escriba 'help'.", New("es").T("app.unknownCommand", "foo"))
}

func TestTranslator_Number(t *testing.T) {
	assert.Equal(t, "1,234.57", New("en").Number(1234.567))
	assert.Equal(t, "2.2", New("en").Number(2.2))
	assert.Equal(t, "0", New("en").Number(0))
	assert.NotEqual(t, New("en").Number(1234.5), New("fr").Number(1234.5), "French grouping differs")
}

func TestTranslator_Amount(t *testing.T) {
	assert.Equal(t, "2.20", New("en").Amount(2.2))
	assert.Equal(t, "0.00", New("en").Amount(0))
	assert.Equal(t, "1,234.57", New("en").Amount(1234.567))
	assert.Equal(t, "2,20", New("es").Amount(2.2))
}

func TestTranslator_ParseNumber(t *testing.T) {
	tests := []struct {
		lang    string
		in      string
		want    float64
		wantErr bool
	}{
		{lang: "en", in: "1500", want: 1500},
		{lang: "en", in: "1,500", want: 1500},
		{lang: "en", in: "1,234,567.25", want: 1234567.25},
		{lang: "en", in: "10.5", want: 10.5},
		{lang: "en", in: " -2.5 ", want: -2.5},
		{lang: "en", in: "10,5", wantErr: true},
		{lang: "en", in: "1,50", wantErr: true},
		{lang: "en", in: "1.2.3", wantErr: true},
		{lang: "en", in: "10.", wantErr: true},
		{lang: "en", in: "abc", wantErr: true},
		{lang: "en", in: "", wantErr: true},
		{lang: "en", in: "-", wantErr: true},
		{lang: "en", in: "1e5", wantErr: true},

		{lang: "es", in: "10,5", want: 10.5},
		{lang: "es", in: "1.500", want: 1500},
		{lang: "es", in: "1.500,75", want: 1500.75},
		{lang: "es", in: "1.5", wantErr: true},
		{lang: "es", in: "1,500.5", wantErr: true},

		{lang: "fr", in: "1 500,5", want: 1500.5},
		{lang: "fr", in: "1\u00a0500", want: 1500},
		{lang: "fr", in: "1\u202f500", want: 1500},
		{lang: "fr", in: "0,25", want: 0.25},
		{lang: "fr", in: "1 50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.in, func(t *testing.T) {
			got, err := New(tt.lang).ParseNumber(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidNumber)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTranslator_PlainRoundTrips(t *testing.T) {
	for _, lang := range []string{"en", "es", "fr", "bn"} {
		tr := New(lang)
		for _, v := range []float64{0, 10.5, 1500, 1234567.125} {
			got, err := tr.ParseNumber(tr.Plain(v))
			require.NoError(t, err, "%s %v", lang, v)
			assert.Equal(t, v, got, lang)
		}
	}
	assert.Equal(t, "10,5", New("es").Plain(10.5))
	assert.Equal(t, "1500", New("en").Plain(1500))
}

func TestEveryTranslationHasEnglishSource(t *testing.T) {
	for lang, table := range messages {
		for id := range table {
			_, ok := messages[Fallback][id]
			assert.True(t, ok, "%s: %s has no English message", lang, id)
		}
	}
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Español", LanguageName("es"))
	assert.Equal(t, "xx", LanguageName("xx"))
}
