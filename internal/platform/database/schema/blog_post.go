package schema

// BlogPostTable represents the 'blog.post' table
type BlogPostTable struct {
	Table     string
	ID        string
	Title     string
	Excerpt   string
	Slug      string
	Content   string
	ImageURL  string
	AuthorID  string
	CreatedAt string
}

// BlogPost is the schema definition for blog.post
var BlogPost = BlogPostTable{
	Table:     "blog.post",
	ID:        "id",
	Title:     "title",
	Excerpt:   "excerpt",
	Slug:      "slug",
	Content:   "content",
	ImageURL:  "imageurl",
	AuthorID:  "authorid",
	CreatedAt: "createdat",
}

func (t BlogPostTable) Columns() []string {
	return []string{t.ID, t.Title, t.Excerpt, t.Slug, t.Content, t.ImageURL, t.AuthorID, t.CreatedAt}
}
