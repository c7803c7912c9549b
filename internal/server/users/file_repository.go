package users

import (
	"context"
	"strings"
	"time"

	"github.com/dberestov/taskdeck/internal/common"
	"github.com/dberestov/taskdeck/internal/server/docstore"
)

// document is the on-disk shape of the user store. The camelCase keys match
// the {"users": [], "nextId": 1} layout of existing data files.
type document struct {
	Users  []User `json:"users"`
	NextID int64  `json:"nextId"`
}

// FileRepository keeps every user in one JSON document behind the docstore
// lock. Only this repository touches the backing file.
type FileRepository struct {
	store *docstore.Store
}

func NewFileRepository(store *docstore.Store) *FileRepository {
	return &FileRepository{store: store}
}

// Create appends a new user. The duplicate check runs inside the same locked
// cycle that assigns the id, so two racing registrations of the same email
// cannot both succeed.
func (r *FileRepository) Create(ctx context.Context, email, passwordHash string) (*User, error) {
	var created User

	err := docstore.Update(r.store, func(doc *document) error {
		for _, u := range doc.Users {
			if strings.EqualFold(u.Email, email) {
				return common.ErrDuplicateEmail
			}
		}

		if doc.NextID < 1 {
			doc.NextID = 1
		}
		created = User{
			ID:           doc.NextID,
			Email:        strings.ToLower(email),
			PasswordHash: passwordHash,
			CreatedAt:    time.Now().UTC(),
		}
		doc.Users = append(doc.Users, created)
		doc.NextID++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *FileRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	doc, err := docstore.Read[document](r.store)
	if err != nil {
		return nil, err
	}

	for _, u := range doc.Users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *FileRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	doc, err := docstore.Read[document](r.store)
	if err != nil {
		return nil, err
	}

	for _, u := range doc.Users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, common.ErrNotFound
}
