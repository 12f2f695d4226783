package article

import (
	"time"

	"github.com/taibuivan/paperboy/internal/platform/database/schema"
	"github.com/taibuivan/paperboy/internal/platform/listquery"
)

// Article is a published news item filed under a topic.
//
// CommentCount is derived at read time (left-join aggregate), never stored,
// and is canonically an integer in both list and detail projections. Body is
// a pointer because the list projection omits it.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          *string   `json:"body,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// NewArticle is the accepted POST /articles body. ArticleImgURL is optional;
// when absent the column default applies.
type NewArticle struct {
	Author        string  `json:"author"`
	Title         string  `json:"title"`
	Body          string  `json:"body"`
	Topic         string  `json:"topic"`
	ArticleImgURL *string `json:"article_img_url"`
}

// NewComment is the accepted POST /articles/{article_id}/comments body.
type NewComment struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// Filter holds the optional predicates for the articles listing.
type Filter struct {
	Topic string
}

// Field names for validation
const (
	FieldAuthor = "author"
	FieldTitle  = "title"
	FieldBody   = "body"
	FieldTopic  = "topic"
)

// ListRules is the whitelist the articles listing validates its query
// parameters against. comment_count is sortable even though it is derived.
var ListRules = listquery.Rules{
	Sortable: []string{
		schema.Article.Author,
		schema.Article.Title,
		schema.Article.ArticleID,
		schema.Article.Topic,
		schema.Article.CreatedAt,
		schema.Article.Votes,
		"comment_count",
	},
	DefaultSort: schema.Article.CreatedAt,
}

// CommentListRules covers the nested comments listing, which paginates but
// exposes no sort parameters.
var CommentListRules = listquery.Rules{}
