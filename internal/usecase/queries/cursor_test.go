//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"foodies-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	at := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)

	encoded := queries.EncodeAfterCursor(at, id)

	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, at.Equal(gotTime), "expected %v, got %v", at, gotTime)
}

func TestDecodeAfterCursorRejectsGarbage(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{"empty", ""},
		{"not base64", "!!!not-base64!!!"},
		{"wrong version", base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.NewString()))},
		{"missing uuid", base64.URLEncoding.EncodeToString([]byte("v1:123456"))},
		{"bad timestamp", base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{"bad uuid", base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(c.cursor)
			require.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
