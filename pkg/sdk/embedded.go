package sdk

import (
	"github.com/celerix-dev/celerix-directory/internal/auth"
	"github.com/celerix-dev/celerix-directory/internal/directory"
	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

// Embedded wraps a local directory service in the UserDirectory interface.
// It runs inside the caller's process against the caller's own store, so
// there is no principal; role checks belong to the HTTP surface.
type Embedded struct {
	dir *directory.Directory
}

// NewEmbedded wraps an in-process directory service.
func NewEmbedded(dir *directory.Directory) *Embedded {
	return &Embedded{dir: dir}
}

func (e *Embedded) CreateUser(email, password, name, role string) (schema.PublicUser, error) {
	// Hash here: the directory only stores opaque credential blobs.
	credential := ""
	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return schema.PublicUser{}, err
		}
		credential = hash
	}
	return e.dir.Create(email, credential, name, role)
}

func (e *Embedded) GetUser(id string) (schema.PublicUser, error) {
	user, err := e.dir.GetByID(id)
	if err != nil {
		return schema.PublicUser{}, err
	}
	return user.Public(), nil
}

func (e *Embedded) ListUsers() ([]schema.PublicUser, error) {
	users, err := e.dir.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]schema.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (e *Embedded) ListPage(page, limit int) (schema.Page, error) {
	result, err := e.dir.ListPaged(page, limit)
	if err != nil {
		return schema.Page{}, err
	}
	return result.Public(), nil
}

func (e *Embedded) DeleteUser(id string) (schema.DeletedUser, error) {
	// No requesting principal in embedded mode, so the self-deletion guard
	// never triggers.
	return e.dir.Delete(id, "")
}

func (e *Embedded) Ping() error {
	_, err := e.dir.ListAll()
	return err
}
