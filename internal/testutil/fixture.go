// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
)

// User returns a complete platform user document.
func User(login string, id int64) map[string]any {
	base := "https://api.github.com/users/" + login
	return map[string]any{
		"login":               login,
		"id":                  id,
		"node_id":             fmt.Sprintf("MDQ6VXNlcj%d", id),
		"avatar_url":          fmt.Sprintf("https://avatars.githubusercontent.com/u/%d?v=4", id),
		"gravatar_id":         "",
		"url":                 base,
		"html_url":            "https://github.com/" + login,
		"followers_url":       base + "/followers",
		"following_url":       base + "/following{/other_user}",
		"gists_url":           base + "/gists{/gist_id}",
		"starred_url":         base + "/starred{/owner}{/repo}",
		"subscriptions_url":   base + "/subscriptions",
		"organizations_url":   base + "/orgs",
		"repos_url":           base + "/repos",
		"events_url":          base + "/events{/privacy}",
		"received_events_url": base + "/received_events",
		"type":                "User",
		"site_admin":          false,
	}
}

// Commit returns a complete commit document as listed by the commits endpoint.
func Commit(sha, message string) map[string]any {
	apiBase := "https://api.github.com/repos/octo/demo"
	return map[string]any{
		"sha":     sha,
		"node_id": "C_kwDO" + sha,
		"commit": map[string]any{
			"author": map[string]any{
				"name":  "A",
				"email": "a@x.com",
				"date":  "2023-01-01T00:00:00Z",
			},
			"committer": map[string]any{
				"name":  "GitHub",
				"email": "noreply@github.com",
				"date":  "2023-01-02T03:04:05Z",
			},
			"message": message,
			"tree": map[string]any{
				"sha": "t1",
				"url": apiBase + "/git/trees/t1",
			},
			"url":           apiBase + "/git/commits/" + sha,
			"comment_count": 0,
			"verification": map[string]any{
				"verified":  false,
				"reason":    "unsigned",
				"signature": nil,
				"payload":   nil,
			},
		},
		"url":          apiBase + "/commits/" + sha,
		"html_url":     "https://github.com/octo/demo/commit/" + sha,
		"comments_url": apiBase + "/commits/" + sha + "/comments",
		"author":       User("octocat", 583231),
		"committer":    User("web-flow", 19864447),
		"parents":      []any{},
	}
}

// Marshal encodes v or fails the test.
func Marshal(t testing.TB, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return data
}

// Child returns the nested object stored under key, or fails the test.
func Child(t testing.TB, doc map[string]any, key string) map[string]any {
	t.Helper()
	child, ok := doc[key].(map[string]any)
	if !ok {
		t.Fatalf("fixture key %q is not an object", key)
	}
	return child
}
