package model

import (
	"encoding/json"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/schema"
)

// CommitPayload is one element of GET /repos/{owner}/{repo}/commits.
// Pointer fields tell an absent field apart from a zero value; every field is
// required and unknown fields are rejected by the decoder.
type CommitPayload struct {
	SHA         *string              `json:"sha" validate:"required" required:"true"`
	NodeID      *string              `json:"node_id" validate:"required" required:"true"`
	Commit      *CommitDetailPayload `json:"commit" validate:"required" required:"true"`
	URL         *string              `json:"url" validate:"required" required:"true"`
	HTMLURL     *string              `json:"html_url" validate:"required" required:"true"`
	CommentsURL *string              `json:"comments_url" validate:"required" required:"true"`
	Author      *UserPayload         `json:"author" validate:"required" required:"true"`
	Committer   *UserPayload         `json:"committer" validate:"required" required:"true"`
	Parents     []json.RawMessage    `json:"parents" validate:"required" required:"true"`
	_           struct{}             `additionalProperties:"false"`
}

type CommitDetailPayload struct {
	Author       *SignaturePayload    `json:"author" validate:"required" required:"true"`
	Committer    *SignaturePayload    `json:"committer" validate:"required" required:"true"`
	Message      *string              `json:"message" validate:"required" required:"true"`
	Tree         *TreePayload         `json:"tree" validate:"required" required:"true"`
	URL          *string              `json:"url" validate:"required" required:"true"`
	CommentCount *int64               `json:"comment_count" validate:"required" required:"true"`
	Verification *VerificationPayload `json:"verification" validate:"required" required:"true"`
	_            struct{}             `additionalProperties:"false"`
}

type SignaturePayload struct {
	Name  *string           `json:"name" validate:"required" required:"true"`
	Email *string           `json:"email" validate:"required" required:"true"`
	Date  *schema.Timestamp `json:"date" validate:"required,timestamp" required:"true"`
	_     struct{}          `additionalProperties:"false"`
}

type TreePayload struct {
	SHA *string  `json:"sha" validate:"required" required:"true"`
	URL *string  `json:"url" validate:"required" required:"true"`
	_   struct{} `additionalProperties:"false"`
}

type VerificationPayload struct {
	Verified  *bool       `json:"verified" validate:"required" required:"true"`
	Reason    *string     `json:"reason" validate:"required" required:"true"`
	Signature schema.Null `json:"signature" validate:"required,isnull" required:"true"`
	Payload   schema.Null `json:"payload" validate:"required,isnull" required:"true"`
	_         struct{}    `additionalProperties:"false"`
}

type UserPayload struct {
	Login             *string  `json:"login" validate:"required" required:"true"`
	ID                *int64   `json:"id" validate:"required" required:"true"`
	NodeID            *string  `json:"node_id" validate:"required" required:"true"`
	AvatarURL         *string  `json:"avatar_url" validate:"required" required:"true"`
	GravatarID        *string  `json:"gravatar_id" validate:"required" required:"true"`
	URL               *string  `json:"url" validate:"required" required:"true"`
	HTMLURL           *string  `json:"html_url" validate:"required" required:"true"`
	FollowersURL      *string  `json:"followers_url" validate:"required" required:"true"`
	FollowingURL      *string  `json:"following_url" validate:"required" required:"true"`
	GistsURL          *string  `json:"gists_url" validate:"required" required:"true"`
	StarredURL        *string  `json:"starred_url" validate:"required" required:"true"`
	SubscriptionsURL  *string  `json:"subscriptions_url" validate:"required" required:"true"`
	OrganizationsURL  *string  `json:"organizations_url" validate:"required" required:"true"`
	ReposURL          *string  `json:"repos_url" validate:"required" required:"true"`
	EventsURL         *string  `json:"events_url" validate:"required" required:"true"`
	ReceivedEventsURL *string  `json:"received_events_url" validate:"required" required:"true"`
	Type              *string  `json:"type" validate:"required" required:"true"`
	SiteAdmin         *bool    `json:"site_admin" validate:"required" required:"true"`
	_                 struct{} `additionalProperties:"false"`
}
