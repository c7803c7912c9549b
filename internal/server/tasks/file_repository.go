package tasks

import (
	"context"
	"time"

	"github.com/dberestov/taskdeck/internal/common"
	"github.com/dberestov/taskdeck/internal/server/docstore"
)

// document is the on-disk shape of the task store. The camelCase keys match
// the {"todos": [], "nextId": 1} layout of existing data files.
type document struct {
	Tasks  []Task `json:"todos"`
	NextID int64  `json:"nextId"`
}

// find locates the owner's task by id; a task owned by someone else is the
// same as absent.
func (d *document) find(ownerID, id int64) int {
	for i, t := range d.Tasks {
		if t.ID == id && t.OwnerID == ownerID {
			return i
		}
	}
	return -1
}

// FileRepository keeps every task in one JSON document behind the docstore
// lock. Only this repository touches the backing file.
type FileRepository struct {
	store *docstore.Store
}

func NewFileRepository(store *docstore.Store) *FileRepository {
	return &FileRepository{store: store}
}

// ListByOwner returns the owner's tasks in insertion order. The result is
// never nil so it serializes as an empty JSON array.
func (r *FileRepository) ListByOwner(ctx context.Context, ownerID int64) ([]Task, error) {
	doc, err := docstore.Read[document](r.store)
	if err != nil {
		return nil, err
	}

	owned := []Task{}
	for _, t := range doc.Tasks {
		if t.OwnerID == ownerID {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

func (r *FileRepository) Create(ctx context.Context, ownerID int64, text string) (*Task, error) {
	var created Task

	err := docstore.Update(r.store, func(doc *document) error {
		if doc.NextID < 1 {
			doc.NextID = 1
		}
		created = Task{
			ID:        doc.NextID,
			OwnerID:   ownerID,
			Text:      text,
			CreatedAt: time.Now().UTC(),
		}
		doc.Tasks = append(doc.Tasks, created)
		doc.NextID++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *FileRepository) Update(ctx context.Context, ownerID, id int64, change Change) (*Task, error) {
	var updated Task

	err := docstore.Update(r.store, func(doc *document) error {
		i := doc.find(ownerID, id)
		if i < 0 {
			return common.ErrNotFound
		}

		if change.Text != nil {
			doc.Tasks[i].Text = *change.Text
		}
		if change.Completed != nil {
			doc.Tasks[i].Completed = *change.Completed
		}
		now := time.Now().UTC()
		doc.Tasks[i].UpdatedAt = &now

		updated = doc.Tasks[i]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the task and returns its prior state.
func (r *FileRepository) Delete(ctx context.Context, ownerID, id int64) (*Task, error) {
	var deleted Task

	err := docstore.Update(r.store, func(doc *document) error {
		i := doc.find(ownerID, id)
		if i < 0 {
			return common.ErrNotFound
		}

		deleted = doc.Tasks[i]
		doc.Tasks = append(doc.Tasks[:i], doc.Tasks[i+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &deleted, nil
}
