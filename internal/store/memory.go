package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crewdeck-dev/crewdeck/internal/models"
)

// MemoryStore keeps all three collections in process memory. Lists come
// back in insertion order. Every operation takes the lock, so mutations
// on a record are serialized.
type MemoryStore struct {
	mu sync.RWMutex

	members     map[string]models.TeamMember
	memberOrder []string

	tasks     map[string]models.Task
	taskOrder []string

	uploads     map[string]models.Upload
	uploadOrder []string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		members: make(map[string]models.TeamMember),
		tasks:   make(map[string]models.Task),
		uploads: make(map[string]models.Upload),
	}
}

var _ Store = (*MemoryStore)(nil)

func copyTask(t models.Task) models.Task {
	out := t
	out.Assignees = append(out.Assignees[:0:0], t.Assignees...)
	return out
}

func (s *MemoryStore) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]models.TeamMember, 0, len(s.memberOrder))
	for _, id := range s.memberOrder {
		members = append(members, s.members[id])
	}
	return members, nil
}

func (s *MemoryStore) GetTeamMember(ctx context.Context, id string) (models.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := s.members[id]
	if !ok {
		return models.TeamMember{}, ErrNotFound
	}
	return member, nil
}

func (s *MemoryStore) CreateTeamMember(ctx context.Context, insert InsertTeamMember) (models.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := models.TeamMember{
		ID:     uuid.NewString(),
		Name:   insert.Name,
		Role:   insert.Role,
		Avatar: insert.Avatar,
		Color:  insert.Color,
	}
	s.members[member.ID] = member
	s.memberOrder = append(s.memberOrder, member.ID)
	return member, nil
}

func (s *MemoryStore) UpdateTeamMember(ctx context.Context, id string, patch TeamMemberPatch) (models.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.members[id]
	if !ok {
		return models.TeamMember{}, ErrNotFound
	}

	if patch.Name != nil {
		member.Name = *patch.Name
	}
	if patch.Role != nil {
		member.Role = *patch.Role
	}
	if patch.Avatar != nil {
		member.Avatar = *patch.Avatar
	}
	if patch.Color != nil {
		member.Color = *patch.Color
	}

	s.members[id] = member
	return member, nil
}

func (s *MemoryStore) ListTasks(ctx context.Context) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]models.Task, 0, len(s.taskOrder))
	for _, id := range s.taskOrder {
		tasks = append(tasks, copyTask(s.tasks[id]))
	}
	return tasks, nil
}

func (s *MemoryStore) GetTask(ctx context.Context, id string) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, ErrNotFound
	}
	return copyTask(task), nil
}

func (s *MemoryStore) CreateTask(ctx context.Context, insert InsertTask) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress := 0
	if insert.Progress != nil {
		progress = *insert.Progress
	}

	task := models.Task{
		ID:          uuid.NewString(),
		Title:       insert.Title,
		Description: insert.Description,
		Assignees:   append([]string(nil), insert.Assignees...),
		Status:      insert.Status,
		Category:    insert.Category,
		Progress:    progress,
		DueDate:     insert.DueDate,
		CreatedAt:   time.Now().UTC(),
	}
	s.tasks[task.ID] = task
	s.taskOrder = append(s.taskOrder, task.ID)
	return copyTask(task), nil
}

func (s *MemoryStore) UpdateTask(ctx context.Context, id string, patch TaskPatch) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, ErrNotFound
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Assignees != nil {
		task.Assignees = append([]string(nil), patch.Assignees...)
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.Progress != nil {
		task.Progress = *patch.Progress
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}

	s.tasks[id] = task
	return copyTask(task), nil
}

func (s *MemoryStore) DeleteTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false, nil
	}

	delete(s.tasks, id)
	s.taskOrder = removeID(s.taskOrder, id)
	return true, nil
}

func (s *MemoryStore) ListUploads(ctx context.Context) ([]models.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uploads := make([]models.Upload, 0, len(s.uploadOrder))
	for _, id := range s.uploadOrder {
		uploads = append(uploads, s.uploads[id])
	}
	return uploads, nil
}

func (s *MemoryStore) GetUpload(ctx context.Context, id string) (models.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	upload, ok := s.uploads[id]
	if !ok {
		return models.Upload{}, ErrNotFound
	}
	return upload, nil
}

func (s *MemoryStore) CreateUpload(ctx context.Context, insert InsertUpload) (models.Upload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	upload := models.Upload{
		ID:           uuid.NewString(),
		Filename:     insert.Filename,
		OriginalName: insert.OriginalName,
		MemberName:   insert.MemberName,
		FileSize:     insert.FileSize,
		FileType:     insert.FileType,
		UploadedAt:   time.Now().UTC(),
	}
	s.uploads[upload.ID] = upload
	s.uploadOrder = append(s.uploadOrder, upload.ID)
	return upload, nil
}

func (s *MemoryStore) DeleteUpload(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.uploads[id]; !ok {
		return false, nil
	}

	delete(s.uploads, id)
	s.uploadOrder = removeID(s.uploadOrder, id)
	return true, nil
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
