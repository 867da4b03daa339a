package translit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Vracar", "Врацар"},
		{"Njegoš", "Његош"},
		{"NJEGOŠ", "ЊЕГОШ"},
		{"nJ", "нЈ"},
		{"Džak", "Џак"},
		{"DŽAK", "ЏАК"},
		{"džep", "џеп"},
		{"dz", "дз"},
		{"Ljubljana", "Љубљана"},
		{"Đurđevdan", "Ђурђевдан"},
		{"Škola 12.", "Школа 12."},
		{"Основна школа", "Основна школа"},
		{"ćevap čorba", "ћевап чорба"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Transliterate(tt.in))
		})
	}
}

func TestTransliterate_DecomposedInput(t *testing.T) {
	// z + combining caron
	decomposed := "dz\u030cep"
	assert.Equal(t, Transliterate("džep"), Transliterate(decomposed))
	assert.Equal(t, "џеп", Transliterate(decomposed))
}

func TestExpandAmbiguousVariants_NoAmbiguity(t *testing.T) {
	for _, in := range []string{"Beograd", "Njegoš", "škola", "123", ""} {
		variants := ExpandAmbiguousVariants(in)
		require.Len(t, variants, 1, in)
		assert.Equal(t, Transliterate(in), variants[0])
	}
}

func TestExpandAmbiguousVariants_C(t *testing.T) {
	assert.Equal(t, []string{"Врацар", "Враћар", "Врачар"}, ExpandAmbiguousVariants("Vracar"))
	assert.Equal(t, []string{"Цацак", "Ћаћак", "Чачак"}, ExpandAmbiguousVariants("Cacak"))
	assert.Equal(t, []string{"ЦЕЦА", "ЋЕЋА", "ЧЕЧА"}, ExpandAmbiguousVariants("CECA"))
}

func TestExpandAmbiguousVariants_DigraphNextToC(t *testing.T) {
	variants := ExpandAmbiguousVariants("njc")
	assert.Equal(t, []string{"њц", "њћ", "њч"}, variants)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "ош \"вук караџић\"", Fold("ОШ \"Вук Караџић\""))
	assert.Equal(t, "džep", Fold("DŽEP"))
	assert.Equal(t, Fold("džep"), Fold("dz\u030cep"))
}

func TestSearchVariants(t *testing.T) {
	assert.Nil(t, SearchVariants(""))
	assert.Equal(t, []string{"вук", "vuk"}, SearchVariants("Vuk"))
	assert.Equal(t, []string{"вук"}, SearchVariants("ВУК"))
	assert.Equal(t, []string{"врацар", "враћар", "врачар", "vracar"}, SearchVariants("VRACAR"))
}

func TestSearchVariants_MatchesEveryAuthoredSpelling(t *testing.T) {
	// Each Latin word is stored in Cyrillic with one of the three readings of
	// c; the Latin query has to find all of them.
	words := []string{"vracar", "cacak", "ivanjica", "kraljevci", "pancevo"}
	readings := []string{"ц", "ћ", "ч"}

	for _, word := range words {
		for _, reading := range readings {
			stored := strings.ReplaceAll(Transliterate(word), "ц", reading)
			name := Fold("ОШ " + stored)

			matched := false
			for _, v := range SearchVariants(word) {
				if strings.Contains(name, v) {
					matched = true
					break
				}
			}
			assert.True(t, matched, "%q should match %q", word, stored)
		}
	}
}

func TestSearch_VracarNeedsAmbiguityExpansion(t *testing.T) {
	name := Fold("ОШ Врачар")

	assert.NotContains(t, name, Transliterate("vracar"))

	matched := false
	for _, v := range SearchVariants("vracar") {
		if strings.Contains(name, v) {
			matched = true
		}
	}
	assert.True(t, matched)
}
