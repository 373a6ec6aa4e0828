package schema

// BlogCommentTable represents the 'blog.comment' table
type BlogCommentTable struct {
	Table     string
	ID        string
	PostID    string
	UserName  string
	UserEmail string
	Body      string
	CreatedAt string
}

// BlogComment is the schema definition for blog.comment
var BlogComment = BlogCommentTable{
	Table:     "blog.comment",
	ID:        "id",
	PostID:    "postid",
	UserName:  "username",
	UserEmail: "useremail",
	Body:      "body",
	CreatedAt: "createdat",
}

func (t BlogCommentTable) Columns() []string {
	return []string{t.ID, t.PostID, t.UserName, t.UserEmail, t.Body, t.CreatedAt}
}
