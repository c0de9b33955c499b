package tags

type Repo interface {
	List() ([]Tag, error)
	Create(name string) (*Tag, error)
	Delete(tagID string) error
}
