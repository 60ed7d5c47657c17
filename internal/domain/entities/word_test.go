package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_SynonymsAndFirstDefinition(t *testing.T) {
	ex := "Her ebullient mood lifted the room."
	w := &Word{
		Word: "ebullient",
		Definitions: []Definition{
			{Definition: "cheerful and full of energy", Example: &ex, Synonyms: []string{"buoyant", "exuberant"}},
			{Definition: "boiling", Synonyms: []string{"bubbling"}},
		},
	}

	assert.Equal(t, []string{"buoyant", "exuberant", "bubbling"}, w.Synonyms())
	assert.True(t, w.HasSynonym("bubbling"))
	assert.False(t, w.HasSynonym("dour"))

	def, ok := w.FirstDefinition()
	assert.True(t, ok)
	assert.Equal(t, ex, def.ExampleText())

	_, ok = (&Word{Word: "empty"}).FirstDefinition()
	assert.False(t, ok)
	assert.Empty(t, (&Word{}).Synonyms())
	assert.Equal(t, "", Definition{}.ExampleText())
}

func TestUserSettings_ToggleGroup(t *testing.T) {
	s := NewUserSettings(1)
	s.ToggleGroup(3)
	s.ToggleGroup(1)
	assert.Equal(t, []int{1, 3}, s.SelectedGroups)

	s.ToggleGroup(3)
	assert.Equal(t, []int{1}, s.SelectedGroups)
	assert.True(t, s.HasGroup(1))
	assert.False(t, s.HasGroup(3))
}
