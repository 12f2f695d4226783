package schema

// CommentTable represents the 'comments' table
type CommentTable struct {
	Table     string
	CommentID string
	ArticleID string
	Author    string
	Body      string
	Votes     string
	CreatedAt string
}

// Comment is the schema definition for comments
var Comment = CommentTable{
	Table:     "comments",
	CommentID: "comment_id",
	ArticleID: "article_id",
	Author:    "author",
	Body:      "body",
	Votes:     "votes",
	CreatedAt: "created_at",
}
