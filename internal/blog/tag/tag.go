package tag

// Tag is a caption applied to posts. Many-to-many with Post.
type Tag struct {
	ID      int64  `json:"id"`
	Caption string `json:"caption"`
}
