package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRepository_DecodesAPIPayload(t *testing.T) {
	payload := `{
		"id": 42,
		"name": "x",
		"full_name": "alice/x",
		"private": true,
		"visibility": "private",
		"description": null,
		"topics": ["go"],
		"html_url": "https://github.com/alice/x",
		"stargazers_count": 3,
		"forks_count": 1,
		"watchers_count": 3,
		"open_issues_count": 0,
		"fork": true,
		"archived": false,
		"created_at": "2021-03-04T05:06:07Z",
		"owner": {"login": "alice", "avatar_url": "https://avatars.example.com/alice"}
	}`

	var raw RawRepository
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	assert.Equal(t, int64(42), raw.ID)
	assert.True(t, raw.Private)
	require.NotNil(t, raw.Visibility)
	assert.Equal(t, "private", *raw.Visibility)
	assert.Nil(t, raw.Description)
	assert.Nil(t, raw.Homepage)
	assert.True(t, raw.Fork)
	require.NotNil(t, raw.CreatedAt)
	assert.Equal(t, 2021, raw.CreatedAt.Year())
	assert.Nil(t, raw.UpdatedAt)
	assert.Equal(t, "alice", raw.OwnerLogin())
	assert.Nil(t, raw.Owner.HTMLURL)
}

func TestRawRepository_OwnerLogin(t *testing.T) {
	login := "bob"

	assert.Equal(t, "", RawRepository{}.OwnerLogin())
	assert.Equal(t, "", RawRepository{Owner: &RawOwner{}}.OwnerLogin())
	assert.Equal(t, "bob", RawRepository{Owner: &RawOwner{Login: &login}}.OwnerLogin())
}
