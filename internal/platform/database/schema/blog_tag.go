package schema

// BlogTagTable represents the 'blog.tag' table
type BlogTagTable struct {
	Table   string
	ID      string
	Caption string
}

// BlogTag is the schema definition for blog.tag
var BlogTag = BlogTagTable{
	Table:   "blog.tag",
	ID:      "id",
	Caption: "caption",
}

func (t BlogTagTable) Columns() []string {
	return []string{t.ID, t.Caption}
}
