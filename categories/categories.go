package categories

// Category groups posts. Managed by the backend; the client only lists,
// creates and removes them.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
