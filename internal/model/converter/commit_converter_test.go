package converter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/entity"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/model"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/model/converter"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/schema"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/testutil"
)

func TestCommitToEntity(t *testing.T) {
	payload, err := schema.Decode[model.CommitPayload](testutil.Marshal(t, testutil.Commit("abc123", "fix bug")))
	require.NoError(t, err)

	c := converter.CommitToEntity(&payload)

	assert.Equal(t, "abc123", c.SHA)
	assert.Equal(t, "fix bug", c.Commit.Message)
	assert.Equal(t, "A", c.Commit.Author.Name)
	assert.Equal(t, "a@x.com", c.Commit.Author.Email)
	assert.True(t, c.Commit.Author.Date.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "t1", c.Commit.Tree.SHA)
	assert.Equal(t, entity.Verification{Verified: false, Reason: "unsigned"}, c.Commit.Verification)
	assert.Equal(t, "octocat", c.Author.Login)
	assert.Equal(t, int64(19864447), c.Committer.ID)
	assert.Empty(t, c.Parents)
}

func TestCommitRoundTrip(t *testing.T) {
	doc := testutil.Commit("def456", "line one\n\nline two")
	testutil.Child(t, testutil.Child(t, doc, "commit"), "author")["date"] = "2024-06-30T23:59:59.5+02:00"
	doc["parents"] = []any{map[string]any{"sha": "p1", "url": "u1", "html_url": "h1"}}
	in := testutil.Marshal(t, doc)

	payload, err := schema.Decode[model.CommitPayload](in)
	require.NoError(t, err)

	out, err := schema.Encode(converter.CommitToPayload(converter.CommitToEntity(&payload)))
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
}

func TestCommitToPayload_NilParents(t *testing.T) {
	p := converter.CommitToPayload(entity.Commit{})
	require.NotNil(t, p.Parents)
	assert.Empty(t, p.Parents)

	// Every required field is filled, so the zero commit still validates.
	_, err := schema.Encode(p)
	assert.NoError(t, err)
}
