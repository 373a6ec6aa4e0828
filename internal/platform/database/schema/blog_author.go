package schema

// BlogAuthorTable represents the 'blog.author' table
type BlogAuthorTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
	Email     string
}

// BlogAuthor is the schema definition for blog.author
var BlogAuthor = BlogAuthorTable{
	Table:     "blog.author",
	ID:        "id",
	FirstName: "firstname",
	LastName:  "lastname",
	Email:     "email",
}

func (t BlogAuthorTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName, t.Email}
}
