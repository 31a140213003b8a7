package models_test

import (
	"testing"

	"pixhub/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMediaType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        models.MediaType
	}{
		{"png is image", "image/png", models.MediaTypeImage},
		{"jpeg is image", "image/jpeg", models.MediaTypeImage},
		{"mp4 is video", "video/mp4", models.MediaTypeVideo},
		{"anything else is video", "application/pdf", models.MediaTypeVideo},
		{"empty content type is video", "", models.MediaTypeVideo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.DetectMediaType(tt.contentType))
		})
	}
}

func TestNewMedia(t *testing.T) {
	ownerID := uuid.New()

	m := models.NewMedia(ownerID, "image/png", "cat.png", "/uploads/123-456.png")

	require.NoError(t, m.Validate())
	assert.Equal(t, "cat.png", m.Title)
	assert.Equal(t, models.MediaTypeImage, m.Type)
	assert.Equal(t, ownerID, m.OwnerID)
	assert.False(t, m.IsFavorite)
	assert.NotEqual(t, uuid.Nil, m.ID)
}

func TestNewMedia_IDsAreOrderedAndUnique(t *testing.T) {
	ownerID := uuid.New()

	// UUIDv7 упорядочен по времени: даже созданные в один момент
	// идентификаторы различимы и не убывают
	var prev models.Media
	for i := 0; i < 100; i++ {
		m := models.NewMedia(ownerID, "image/png", "a.png", "/uploads/a.png")
		if i > 0 {
			assert.NotEqual(t, prev.ID, m.ID)
			assert.LessOrEqual(t, prev.ID.String(), m.ID.String())
		}
		prev = m
	}
}

func TestMedia_Validate(t *testing.T) {
	valid := models.NewMedia(uuid.New(), "video/mp4", "clip.mp4", "/uploads/clip.mp4")

	t.Run("valid media", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		m := valid
		m.Title = ""
		err := m.Validate()
		require.Error(t, err)
		assert.True(t, models.IsMediaValidationError(err))
	})

	t.Run("missing url", func(t *testing.T) {
		m := valid
		m.URL = ""
		assert.Error(t, m.Validate())
	})

	t.Run("unknown type", func(t *testing.T) {
		m := valid
		m.Type = "audio"
		assert.ErrorContains(t, m.Validate(), "invalid media type")
	})
}

func TestMediaList_ValueScan(t *testing.T) {
	list := models.MediaList{
		models.NewMedia(uuid.New(), "image/png", "one.png", "/uploads/one.png"),
		models.NewMedia(uuid.New(), "video/mp4", "two.mp4", "/uploads/two.mp4"),
	}

	val, err := list.Value()
	require.NoError(t, err)

	var restored models.MediaList
	require.NoError(t, restored.Scan(val))

	require.Len(t, restored, 2)
	assert.Equal(t, list[0].ID, restored[0].ID)
	assert.Equal(t, list[1].Type, restored[1].Type)

	t.Run("nil list serializes as empty array", func(t *testing.T) {
		var empty models.MediaList
		val, err := empty.Value()
		require.NoError(t, err)
		assert.Equal(t, []byte("[]"), val)
	})

	t.Run("scan nil yields empty list", func(t *testing.T) {
		var l models.MediaList
		require.NoError(t, l.Scan(nil))
		assert.Empty(t, l)
	})
}
