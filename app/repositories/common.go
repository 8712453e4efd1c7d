package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// BlogPostKeyPrefix namespaces blog post documents in the key space.
const BlogPostKeyPrefix = "blogpost:"

var (
	ErrNotFound = errors.New("record not found")
)

func blogPostKey(id string) []byte {
	return []byte(BlogPostKeyPrefix + id)
}

// newID returns a time-ordered id so key order follows insertion order.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}
