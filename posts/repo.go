package posts

// Filter narrows a post listing. Zero values mean no filtering.
type Filter struct {
	CategoryID string
	TagID      string
}

type Repo interface {
	List(filter Filter) ([]Post, error)
	Get(postID string) (*Post, error)
	Drafts() ([]Post, error)
	Create(fields *Fields) (*Post, error)
	Update(postID string, fields *Fields) (*Post, error)
	Delete(postID string) error
}
