package converter

import (
	"encoding/json"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/entity"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/model"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/schema"
)

// CommitToEntity expects a payload that already passed schema.Decode, so every
// pointer is set.
func CommitToEntity(p *model.CommitPayload) entity.Commit {
	return entity.Commit{
		SHA:         *p.SHA,
		NodeID:      *p.NodeID,
		Commit:      commitDetailToEntity(p.Commit),
		URL:         *p.URL,
		HTMLURL:     *p.HTMLURL,
		CommentsURL: *p.CommentsURL,
		Author:      userToEntity(p.Author),
		Committer:   userToEntity(p.Committer),
		Parents:     p.Parents,
	}
}

func CommitToPayload(c entity.Commit) *model.CommitPayload {
	parents := c.Parents
	if parents == nil {
		parents = []json.RawMessage{}
	}
	return &model.CommitPayload{
		SHA:         ptr(c.SHA),
		NodeID:      ptr(c.NodeID),
		Commit:      commitDetailToPayload(c.Commit),
		URL:         ptr(c.URL),
		HTMLURL:     ptr(c.HTMLURL),
		CommentsURL: ptr(c.CommentsURL),
		Author:      userToPayload(c.Author),
		Committer:   userToPayload(c.Committer),
		Parents:     parents,
	}
}

func commitDetailToEntity(p *model.CommitDetailPayload) entity.CommitDetail {
	return entity.CommitDetail{
		Author:       signatureToEntity(p.Author),
		Committer:    signatureToEntity(p.Committer),
		Message:      *p.Message,
		Tree:         entity.Tree{SHA: *p.Tree.SHA, URL: *p.Tree.URL},
		URL:          *p.URL,
		CommentCount: *p.CommentCount,
		Verification: entity.Verification{
			Verified: *p.Verification.Verified,
			Reason:   *p.Verification.Reason,
		},
	}
}

func commitDetailToPayload(d entity.CommitDetail) *model.CommitDetailPayload {
	return &model.CommitDetailPayload{
		Author:       signatureToPayload(d.Author),
		Committer:    signatureToPayload(d.Committer),
		Message:      ptr(d.Message),
		Tree:         &model.TreePayload{SHA: ptr(d.Tree.SHA), URL: ptr(d.Tree.URL)},
		URL:          ptr(d.URL),
		CommentCount: ptr(d.CommentCount),
		Verification: &model.VerificationPayload{
			Verified:  ptr(d.Verification.Verified),
			Reason:    ptr(d.Verification.Reason),
			Signature: schema.NullValue(),
			Payload:   schema.NullValue(),
		},
	}
}

func signatureToEntity(p *model.SignaturePayload) entity.Signature {
	return entity.Signature{
		Name:  *p.Name,
		Email: *p.Email,
		Date:  p.Date.Time(),
	}
}

func signatureToPayload(s entity.Signature) *model.SignaturePayload {
	return &model.SignaturePayload{
		Name:  ptr(s.Name),
		Email: ptr(s.Email),
		Date:  ptr(schema.NewTimestamp(s.Date)),
	}
}

func userToEntity(p *model.UserPayload) entity.User {
	return entity.User{
		Login:             *p.Login,
		ID:                *p.ID,
		NodeID:            *p.NodeID,
		AvatarURL:         *p.AvatarURL,
		GravatarID:        *p.GravatarID,
		URL:               *p.URL,
		HTMLURL:           *p.HTMLURL,
		FollowersURL:      *p.FollowersURL,
		FollowingURL:      *p.FollowingURL,
		GistsURL:          *p.GistsURL,
		StarredURL:        *p.StarredURL,
		SubscriptionsURL:  *p.SubscriptionsURL,
		OrganizationsURL:  *p.OrganizationsURL,
		ReposURL:          *p.ReposURL,
		EventsURL:         *p.EventsURL,
		ReceivedEventsURL: *p.ReceivedEventsURL,
		Type:              *p.Type,
		SiteAdmin:         *p.SiteAdmin,
	}
}

func userToPayload(u entity.User) *model.UserPayload {
	return &model.UserPayload{
		Login:             ptr(u.Login),
		ID:                ptr(u.ID),
		NodeID:            ptr(u.NodeID),
		AvatarURL:         ptr(u.AvatarURL),
		GravatarID:        ptr(u.GravatarID),
		URL:               ptr(u.URL),
		HTMLURL:           ptr(u.HTMLURL),
		FollowersURL:      ptr(u.FollowersURL),
		FollowingURL:      ptr(u.FollowingURL),
		GistsURL:          ptr(u.GistsURL),
		StarredURL:        ptr(u.StarredURL),
		SubscriptionsURL:  ptr(u.SubscriptionsURL),
		OrganizationsURL:  ptr(u.OrganizationsURL),
		ReposURL:          ptr(u.ReposURL),
		EventsURL:         ptr(u.EventsURL),
		ReceivedEventsURL: ptr(u.ReceivedEventsURL),
		Type:              ptr(u.Type),
		SiteAdmin:         ptr(u.SiteAdmin),
	}
}

func ptr[T any](v T) *T { return &v }
