package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewdeck-dev/crewdeck/internal/models"
)

// GormStore is the postgres-backed variant. Each operation is a single
// statement (or a load-then-save pair on one row), so the database's
// per-row atomicity gives the same serialization the memory variant gets
// from its lock. Concurrent patches to one record are last-write-wins.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

func (s *GormStore) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := s.db.WithContext(ctx).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *GormStore) GetTeamMember(ctx context.Context, id string) (models.TeamMember, error) {
	var member models.TeamMember
	if err := s.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TeamMember{}, ErrNotFound
		}
		return models.TeamMember{}, err
	}
	return member, nil
}

func (s *GormStore) CreateTeamMember(ctx context.Context, insert InsertTeamMember) (models.TeamMember, error) {
	member := models.TeamMember{
		ID:     uuid.NewString(),
		Name:   insert.Name,
		Role:   insert.Role,
		Avatar: insert.Avatar,
		Color:  insert.Color,
	}
	if err := s.db.WithContext(ctx).Create(&member).Error; err != nil {
		return models.TeamMember{}, err
	}
	return member, nil
}

func (s *GormStore) UpdateTeamMember(ctx context.Context, id string, patch TeamMemberPatch) (models.TeamMember, error) {
	member, err := s.GetTeamMember(ctx, id)
	if err != nil {
		return models.TeamMember{}, err
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

	if err := s.db.WithContext(ctx).Save(&member).Error; err != nil {
		return models.TeamMember{}, err
	}
	return member, nil
}

func (s *GormStore) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.WithContext(ctx).Order("created_at").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *GormStore) GetTask(ctx context.Context, id string) (models.Task, error) {
	var task models.Task
	if err := s.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

func (s *GormStore) CreateTask(ctx context.Context, insert InsertTask) (models.Task, error) {
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
	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *GormStore) UpdateTask(ctx context.Context, id string, patch TaskPatch) (models.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, err
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

	if err := s.db.WithContext(ctx).Save(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *GormStore) DeleteTask(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Task{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) ListUploads(ctx context.Context) ([]models.Upload, error) {
	var uploads []models.Upload
	if err := s.db.WithContext(ctx).Order("uploaded_at").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

func (s *GormStore) GetUpload(ctx context.Context, id string) (models.Upload, error) {
	var upload models.Upload
	if err := s.db.WithContext(ctx).First(&upload, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Upload{}, ErrNotFound
		}
		return models.Upload{}, err
	}
	return upload, nil
}

func (s *GormStore) CreateUpload(ctx context.Context, insert InsertUpload) (models.Upload, error) {
	upload := models.Upload{
		ID:           uuid.NewString(),
		Filename:     insert.Filename,
		OriginalName: insert.OriginalName,
		MemberName:   insert.MemberName,
		FileSize:     insert.FileSize,
		FileType:     insert.FileType,
		UploadedAt:   time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&upload).Error; err != nil {
		return models.Upload{}, err
	}
	return upload, nil
}

func (s *GormStore) DeleteUpload(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Upload{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
