package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	require.Equal(t, LangRO, Parse("ro"))
	require.Equal(t, LangEN, Parse(" EN "))
	require.Equal(t, LangDE, Parse("de"))
	require.Equal(t, LangHU, Parse("hu"))
	require.Equal(t, DefaultLang, Parse(""))
	require.Equal(t, DefaultLang, Parse("fr"))
}

func TestTranslationLookup(t *testing.T) {
	require.Equal(t, "Zona", T(LangRO)("zone"))
	require.Equal(t, "Zone", T(LangEN)("zone"))
	require.Equal(t, "Övezet", T(LangHU)("zone"))
	require.Equal(t, "Zone", T(LangDE)("zone"))
}

func TestLookupFallsBackToKey(t *testing.T) {
	require.Equal(t, "no_such_key", T(LangEN)("no_such_key"))
}

func TestCatalogsCoverTheSameKeys(t *testing.T) {
	reference := translations[LangHU]
	for lang, catalog := range translations {
		require.Len(t, catalog, len(reference), "catalog %s", lang)
		for key := range reference {
			_, ok := catalog[key]
			require.True(t, ok, "catalog %s missing key %s", lang, key)
		}
	}
}
