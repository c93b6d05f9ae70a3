package helix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamforge/helixmod/pkg/helix"
)

// record mirrors the shape of a typical endpoint record for decode tests.
type record struct {
	UserID   string `json:"user_id" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
}

const twoRecordPayload = `{
	"data": [
		{"user_id": "424596340", "user_name": "quotrok"},
		{"user_id": "423374343", "user_name": "glowillig"}
	],
	"pagination": {
		"cursor": "eyJiIjpudWxsLCJhIjp7IkN1cnNvciI6IjEifX0"
	}
}`

func TestDecodeEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("well-formed payload", func(t *testing.T) {
		t.Parallel()

		env, err := helix.DecodeEnvelope[record]([]byte(twoRecordPayload), helix.DecodeStrict)
		require.NoError(t, err)
		require.Len(t, env.Data, 2)
		assert.Equal(t, "quotrok", env.Data[0].UserName)
		assert.Equal(t, "glowillig", env.Data[1].UserName)
		assert.Equal(t, helix.Cursor("eyJiIjpudWxsLCJhIjp7IkN1cnNvciI6IjEifX0"), env.Pagination.Cursor)
	})

	t.Run("absent pagination means exhausted", func(t *testing.T) {
		t.Parallel()

		payload := `{"data": [{"user_id": "1", "user_name": "a"}]}`
		env, err := helix.DecodeEnvelope[record]([]byte(payload), helix.DecodeStrict)
		require.NoError(t, err)
		assert.Empty(t, env.Pagination.Cursor)
	})

	t.Run("empty data array", func(t *testing.T) {
		t.Parallel()

		env, err := helix.DecodeEnvelope[record]([]byte(`{"data": []}`), helix.DecodeStrict)
		require.NoError(t, err)
		assert.Empty(t, env.Data)
	})

	t.Run("not JSON", func(t *testing.T) {
		t.Parallel()

		_, err := helix.DecodeEnvelope[record]([]byte("not json"), helix.DecodeLenient)
		var decodeErr *helix.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, -1, decodeErr.RecordIndex)
	})
}

func TestDecodeEnvelope_UnknownFields(t *testing.T) {
	t.Parallel()

	withExtra := `{
		"data": [
			{"user_id": "1", "user_name": "a"},
			{"user_id": "2", "user_name": "b", "favorite_color": "teal"}
		]
	}`
	stripped := `{
		"data": [
			{"user_id": "1", "user_name": "a"},
			{"user_id": "2", "user_name": "b"}
		]
	}`

	t.Run("strict mode rejects unknown record field", func(t *testing.T) {
		t.Parallel()

		_, err := helix.DecodeEnvelope[record]([]byte(withExtra), helix.DecodeStrict)
		var decodeErr *helix.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, 1, decodeErr.RecordIndex)
		assert.Equal(t, "favorite_color", decodeErr.Field)
	})

	t.Run("strict mode rejects unknown envelope field", func(t *testing.T) {
		t.Parallel()

		_, err := helix.DecodeEnvelope[record]([]byte(`{"data": [], "extra": 1}`), helix.DecodeStrict)
		var decodeErr *helix.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, -1, decodeErr.RecordIndex)
		assert.Equal(t, "extra", decodeErr.Field)
	})

	t.Run("lenient mode matches strict decode of stripped payload", func(t *testing.T) {
		t.Parallel()

		lenient, err := helix.DecodeEnvelope[record]([]byte(withExtra), helix.DecodeLenient)
		require.NoError(t, err)

		strict, err := helix.DecodeEnvelope[record]([]byte(stripped), helix.DecodeStrict)
		require.NoError(t, err)

		assert.Equal(t, strict, lenient)
	})
}

func TestDecodeEnvelope_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		payload   string
		wantIndex int
		wantField string
	}{
		{
			name:      "type mismatch names record and field",
			payload:   `{"data": [{"user_id": "1", "user_name": "a"}, {"user_id": 7, "user_name": "b"}]}`,
			wantIndex: 1,
			wantField: "user_id",
		},
		{
			name:      "missing mandatory field names record and field",
			payload:   `{"data": [{"user_id": "1"}]}`,
			wantIndex: 0,
			wantField: "user_name",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := helix.DecodeEnvelope[record]([]byte(tt.payload), helix.DecodeLenient)
			var decodeErr *helix.DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.wantIndex, decodeErr.RecordIndex)
			assert.Equal(t, tt.wantField, decodeErr.Field)
		})
	}
}
