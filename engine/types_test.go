package engine

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTense(t *testing.T) {
	for _, tense := range Tenses {
		got, err := ParseTense(tense.String())
		require.NoError(t, err)
		assert.Equal(t, tense, got)
	}

	got, err := ParseTense("  PAST ")
	require.NoError(t, err)
	assert.Equal(t, Past, got)

	_, err = ParseTense("pluperfect")
	assert.True(t, errors.Is(err, ErrUnknownTense))
}

func TestParseAspect(t *testing.T) {
	for _, aspect := range Aspects {
		got, err := ParseAspect(aspect.String())
		require.NoError(t, err)
		assert.Equal(t, aspect, got)
	}

	for _, alias := range []string{"perfect_continuous", "PerfectContinuous", "perfect continuous"} {
		got, err := ParseAspect(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, PerfectContinuous, got)
	}

	got, err := ParseAspect("Progressive")
	require.NoError(t, err)
	assert.Equal(t, Continuous, got)
	assert.Equal(t, "continuous", got.String())

	_, err = ParseAspect("habitual")
	assert.ErrorIs(t, err, ErrUnknownAspect)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Tense(7)", Tense(7).String())
	assert.Equal(t, "Aspect(-1)", Aspect(-1).String())
	assert.Equal(t, "Perfect Continuous", PerfectContinuous.Label())
	assert.Equal(t, "third", Third.String())
	assert.Equal(t, "object", RoleObject.String())
}

func TestEnumsMarshalAsText(t *testing.T) {
	in := Combination{Tense: Future, Aspect: PerfectContinuous}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tense":"future","aspect":"perfect-continuous"}`, string(data))

	var out Combination
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"tense":"someday"}`), &out)
	assert.ErrorIs(t, err, ErrUnknownTense)
}

func TestCombinationsOrder(t *testing.T) {
	combos := Combinations()
	require.Len(t, combos, 12)
	assert.Equal(t, Combination{Present, Simple}, combos[0])
	assert.Equal(t, Combination{Present, PerfectContinuous}, combos[3])
	assert.Equal(t, Combination{Future, PerfectContinuous}, combos[11])
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig(he, eat)
	assert.Equal(t, Present, cfg.Tense)
	assert.Equal(t, Simple, cfg.Aspect)
	assert.Nil(t, cfg.Object)
	assert.False(t, cfg.Negation)
	assert.False(t, cfg.Question)

	withObj := NewConfig(he, eat, WithObject(apple))
	require.NotNil(t, withObj.Object)
	assert.Equal(t, "apple", withObj.Object.Word())
}
