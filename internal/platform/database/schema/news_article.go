package schema

// ArticleTable represents the 'articles' table
type ArticleTable struct {
	Table         string
	ArticleID     string
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     string
	Votes         string
	ArticleImgURL string
}

// Article is the schema definition for articles
var Article = ArticleTable{
	Table:         "articles",
	ArticleID:     "article_id",
	Title:         "title",
	Topic:         "topic",
	Author:        "author",
	Body:          "body",
	CreatedAt:     "created_at",
	Votes:         "votes",
	ArticleImgURL: "article_img_url",
}
