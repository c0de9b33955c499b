package tags

// Tag labels posts. Posts carry any number of tags.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
