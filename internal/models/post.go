package models

import (
	"time"
)

type Post struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Content     string     `json:"content"`
	PublishDate time.Time  `json:"publishDate"`
	EditedDate  *time.Time `json:"editedDate,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
}

// Clone returns a copy that shares no memory with p.
func (p Post) Clone() Post {
	if p.EditedDate != nil {
		edited := *p.EditedDate
		p.EditedDate = &edited
	}
	return p
}

// Reply is a post attached to exactly one top-level post.
type Reply struct {
	Post
	ParentPostID string `json:"parentPostId"`
	NLikes       int    `json:"nLikes"`
}

func (r Reply) Clone() Reply {
	r.Post = r.Post.Clone()
	return r
}

type PostWithUser struct {
	Post
	NReplies int  `json:"nReplies"`
	User     User `json:"user"`
}

type PostWithReplies struct {
	PostWithUser
	Replies []ReplyWithUser `json:"replies"`
}

// ReplyWithUser always reports zero replies: threads are one level deep.
type ReplyWithUser struct {
	Reply
	NReplies int         `json:"nReplies"`
	User     UserMinimal `json:"user"`
}
