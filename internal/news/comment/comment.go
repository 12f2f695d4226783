package comment

import "time"

// Comment is a user-authored reply attached to one article.
type Comment struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// Field names for validation
const (
	FieldUsername = "username"
	FieldBody     = "body"
)
