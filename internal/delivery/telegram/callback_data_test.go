package telegram

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

func TestDecodeCallback(t *testing.T) {
	tests := []struct {
		data   string
		action string
		params []string
	}{
		{data: "wg", action: "wg", params: []string{}},
		{data: "wl:2:1", action: "wl", params: []string{"2", "1"}},
		{data: "qs:type:synonym", action: "qs", params: []string{"type", "synonym"}},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			cd := decodeCallback(tt.data)
			assert.Equal(t, tt.action, cd.Action)
			assert.Equal(t, tt.params, cd.Params)
			assert.Equal(t, tt.data, cd.Raw)
		})
	}
}

func TestCallbackRoundTrip(t *testing.T) {
	cd := decodeCallback(buildWordListCallback(3, 4))
	group, ok := cd.intParam(0)
	require.True(t, ok)
	page, ok := cd.intParam(1)
	require.True(t, ok)
	assert.Equal(t, 3, group)
	assert.Equal(t, 4, page)

	_, ok = cd.intParam(5)
	assert.False(t, ok)
	assert.Empty(t, cd.param(5))
}

func TestParseQuizAnswer(t *testing.T) {
	sid, q, o, ok := parseQuizAnswer(decodeCallback(buildQuizAnswerCallback(1234567890123, 9, 3)))
	require.True(t, ok)
	assert.Equal(t, int64(1234567890123), sid)
	assert.Equal(t, 9, q)
	assert.Equal(t, 3, o)

	for _, bad := range []string{"qa", "qa:1:2", "qa:x:1:2", "qa:1:y:2", "qa:1:2:z"} {
		_, _, _, ok := parseQuizAnswer(decodeCallback(bad))
		assert.False(t, ok, bad)
	}
}

func TestParseMatchTile(t *testing.T) {
	id := uuid.New()
	data := buildMatchTileCallback(id, 11)
	assert.LessOrEqual(t, len(data), 64)

	gotID, idx, ok := parseMatchTile(decodeCallback(data))
	require.True(t, ok)
	assert.Equal(t, id, gotID)
	assert.Equal(t, 11, idx)

	_, _, ok = parseMatchTile(decodeCallback("mt:not-a-uuid:1"))
	assert.False(t, ok)
}

func TestGridCallback(t *testing.T) {
	cd := decodeCallback(buildGridCallback(entities.GridSize{Rows: 4, Cols: 5}))
	assert.Equal(t, actionMatchSetup, cd.Action)
	assert.Equal(t, []string{setupGrid, "4x5"}, cd.Params)
}
