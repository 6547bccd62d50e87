package entity

import (
	"encoding/json"
	"time"
)

// Commit is one repository commit as listed by the hosting API.
type Commit struct {
	SHA         string
	NodeID      string
	Commit      CommitDetail
	URL         string
	HTMLURL     string
	CommentsURL string
	Author      User
	Committer   User
	// Parents are passed through untouched.
	Parents []json.RawMessage
}

type CommitDetail struct {
	Author       Signature
	Committer    Signature
	Message      string
	Tree         Tree
	URL          string
	CommentCount int64
	Verification Verification
}

// Signature is the git-level identity recorded in the commit object.
type Signature struct {
	Name  string
	Email string
	Date  time.Time
}

type Tree struct {
	SHA string
	URL string
}

type Verification struct {
	Verified bool
	Reason   string
}

// User is the platform account linked to a commit author or committer.
type User struct {
	Login             string
	ID                int64
	NodeID            string
	AvatarURL         string
	GravatarID        string
	URL               string
	HTMLURL           string
	FollowersURL      string
	FollowingURL      string
	GistsURL          string
	StarredURL        string
	SubscriptionsURL  string
	OrganizationsURL  string
	ReposURL          string
	EventsURL         string
	ReceivedEventsURL string
	Type              string
	SiteAdmin         bool
}
