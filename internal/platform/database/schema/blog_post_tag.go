package schema

// BlogPostTagTable represents the 'blog.post_tag' join table (Post M2M Tag)
type BlogPostTagTable struct {
	Table  string
	PostID string
	TagID  string
}

// BlogPostTag is the schema definition for blog.post_tag
var BlogPostTag = BlogPostTagTable{
	Table:  "blog.post_tag",
	PostID: "postid",
	TagID:  "tagid",
}
