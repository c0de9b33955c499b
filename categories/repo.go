package categories

type Repo interface {
	List() ([]Category, error)
	Create(name string) (*Category, error)
	Delete(categoryID string) error
}
