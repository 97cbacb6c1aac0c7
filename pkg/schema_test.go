package pkg

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesAreInDependencyOrder(t *testing.T) {
	position := make(map[string]int, len(Tables))
	for i, table := range Tables {
		position[table] = i
	}
	for _, rel := range Relationships {
		from, ok := position[rel.Table]
		require.True(t, ok, "unknown table %s", rel.Table)
		to, ok := position[rel.ReferencedRelation]
		require.True(t, ok, "unknown referenced table %s", rel.ReferencedRelation)
		assert.Less(t, to, from, "%s must come after %s", rel.Table, rel.ReferencedRelation)
	}
}

func TestRelationshipsOf(t *testing.T) {
	want := []Relationship{{
		ForeignKeyName:     "chat_messages_user_id_fkey",
		Table:              TableChatMessages,
		Columns:            []string{"user_id"},
		ReferencedRelation: TableUsers,
		ReferencedColumns:  []string{"id"},
	}}
	if diff := cmp.Diff(want, RelationshipsOf(TableChatMessages)); diff != "" {
		t.Errorf("RelationshipsOf(chat_messages) mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, RelationshipsOf(TableUsers))
	assert.Len(t, RelationshipsOf(TableSessions), 1)
}

func TestInsertOmitsDefaultedColumns(t *testing.T) {
	userID := uuid.MustParse("7d0f3c52-4a3e-4bb4-9d2b-4b8f1d1d8e21")
	data, err := json.Marshal(ChatMessageInsert{UserID: userID, Content: "bonjour"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_id":"7d0f3c52-4a3e-4bb4-9d2b-4b8f1d1d8e21","content":"bonjour"}`, string(data))
}

func TestUpdateCarriesOnlySetColumns(t *testing.T) {
	data, err := json.Marshal(NotificationUpdate{Read: SetTo(true)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"read":true}`, string(data))
}

func TestUpdateClearsNullableColumns(t *testing.T) {
	title := "Scan prêt"
	data, err := json.Marshal(UserUpdate{Prenom: SetNull[string](), AvatarURL: SetNull[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"prenom":null,"avatar_url":null}`, string(data))

	data, err = json.Marshal(NotificationUpdate{Title: &title, Read: SetNull[bool]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Scan prêt","read":null}`, string(data))
}

func TestUpdateDecodeKeepsNullApartFromAbsent(t *testing.T) {
	var upd MedicalQuestionnaireUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"condition":null,"reponse":"oui"}`), &upd))

	assert.Equal(t, SetNull[string](), upd.Condition)
	assert.True(t, upd.CreatedAt.IsZero())
	require.NotNil(t, upd.Reponse)
	assert.Equal(t, "oui", *upd.Reponse)

	require.NoError(t, json.Unmarshal([]byte(`{"condition":"diabète"}`), &upd))
	assert.Equal(t, SetTo("diabète"), upd.Condition)
}

func TestRowKeepsNullColumns(t *testing.T) {
	var row NotificationRow
	require.NoError(t, json.Unmarshal([]byte(`{
		"id":"0b7c1a3e-1111-4c2b-8e55-3f6a2b9c0d10",
		"user_id":"7d0f3c52-4a3e-4bb4-9d2b-4b8f1d1d8e21",
		"title":"Scan prêt","body":"Vos mesures sont disponibles.",
		"read":null,"created_at":"2025-03-01T10:00:00Z"}`), &row))
	assert.Nil(t, row.Read)
	require.NotNil(t, row.CreatedAt)
	assert.Equal(t, 2025, row.CreatedAt.Year())
}
