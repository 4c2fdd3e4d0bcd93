package mongodb

import (
	"testing"
	"time"

	"peeko/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeValue(t *testing.T) {
	in := bson.M{
		"kind":  "image",
		"size":  float64(3),
		"tags":  bson.A{"a", bson.M{"nested": true}},
		"frame": bson.D{{Key: "w", Value: int32(64)}},
	}

	got := normalizeValue(in)

	want := map[string]any{
		"kind":  "image",
		"size":  float64(3),
		"tags":  []any{"a", map[string]any{"nested": true}},
		"frame": map[string]any{"w": int32(64)},
	}
	assert.Equal(t, want, got)
}

func TestMessageDocumentMapping(t *testing.T) {
	sourceID := uuid.New()
	msg := &entity.Message{
		ID:              primitive.NewObjectID().Hex(),
		SourceCode:      "A9F3C2",
		DestinationCode: "0B12FF",
		SourceUserID:    &sourceID,
		SourceType:      entity.SourceTypeUser,
		Content:         "hi",
		Meta:            map[string]any{"emoji": "wave"},
		CreatedAt:       time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC),
	}

	doc := fromMessageDomain(msg)
	assert.Equal(t, msg.ID, doc.ID.Hex())
	assert.Equal(t, sourceID.String(), doc.SourceUserID)
	assert.Empty(t, doc.DestinationUserID)

	back := toMessageDomain(doc)
	require.NotNil(t, back.SourceUserID)
	assert.Equal(t, sourceID, *back.SourceUserID)
	assert.Nil(t, back.DestinationUserID)
	assert.Equal(t, msg.Meta, back.Meta)
	assert.Equal(t, msg.Content, back.Content)
	assert.Equal(t, msg.CreatedAt, back.CreatedAt)
}

func TestMessageDocumentMapping_EmptyMeta(t *testing.T) {
	doc := fromMessageDomain(&entity.Message{SourceCode: "A", DestinationCode: "B"})
	assert.NotNil(t, doc.Meta)
	assert.True(t, doc.ID.IsZero())

	back := toMessageDomain(doc)
	assert.Equal(t, map[string]any{}, back.Meta)
}
