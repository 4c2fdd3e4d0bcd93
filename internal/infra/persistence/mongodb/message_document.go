package mongodb

import (
	"time"

	"peeko/internal/domain/entity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// messageDocument mirrors one document of the 'messages' collection.
type messageDocument struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Source            string             `bson:"source"`
	Destination       string             `bson:"destination"`
	SourceUserID      string             `bson:"source_user_id,omitempty"`
	DestinationUserID string             `bson:"destination_user_id,omitempty"`
	SourceType        string             `bson:"source_type"`
	Content           string             `bson:"content"`
	Meta              bson.M             `bson:"meta"`
	Opened            bool               `bson:"opened"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func fromMessageDomain(m *entity.Message) *messageDocument {
	doc := &messageDocument{
		Source:      m.SourceCode,
		Destination: m.DestinationCode,
		SourceType:  string(m.SourceType),
		Content:     m.Content,
		Meta:        bson.M(m.Meta),
		Opened:      m.Opened,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if doc.Meta == nil {
		doc.Meta = bson.M{}
	}
	if m.SourceUserID != nil {
		doc.SourceUserID = m.SourceUserID.String()
	}
	if m.DestinationUserID != nil {
		doc.DestinationUserID = m.DestinationUserID.String()
	}
	if id, err := primitive.ObjectIDFromHex(m.ID); err == nil {
		doc.ID = id
	}

	return doc
}

func toMessageDomain(doc *messageDocument) *entity.Message {
	meta, _ := normalizeValue(map[string]any(doc.Meta)).(map[string]any)
	if meta == nil {
		meta = map[string]any{}
	}

	return &entity.Message{
		ID:                doc.ID.Hex(),
		SourceCode:        doc.Source,
		DestinationCode:   doc.Destination,
		SourceUserID:      parseUserRef(doc.SourceUserID),
		DestinationUserID: parseUserRef(doc.DestinationUserID),
		SourceType:        entity.SourceType(doc.SourceType),
		Content:           doc.Content,
		Meta:              meta,
		Opened:            doc.Opened,
		CreatedAt:         doc.CreatedAt,
		UpdatedAt:         doc.UpdatedAt,
	}
}

func toMessageDomains(docs []*messageDocument) []*entity.Message {
	messages := make([]*entity.Message, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, toMessageDomain(doc))
	}

	return messages
}

func parseUserRef(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}

	return &id
}

// normalizeValue converts driver container types back to plain Go maps and slices so that
// meta reads back the same shape it was written with.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case bson.M:
		return normalizeMap(val)
	case map[string]any:
		return normalizeMap(val)
	case bson.D:
		out := make(map[string]any, len(val))
		for _, e := range val {
			out[e.Key] = normalizeValue(e.Value)
		}

		return out
	case bson.A:
		return normalizeSlice(val)
	case []any:
		return normalizeSlice(val)
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}

	return out
}

func normalizeSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = normalizeValue(v)
	}

	return out
}
