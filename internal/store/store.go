// Package store owns the three dashboard collections. All access goes
// through the Store interface; every returned record is a value snapshot,
// never a live alias into the backing state.
package store

import (
	"context"
	"errors"

	"github.com/crewdeck-dev/crewdeck/internal/models"
)

// ErrNotFound is returned when a referenced id does not exist. It is the
// only failure the store raises on its own; anything else comes from the
// backing medium.
var ErrNotFound = errors.New("record not found")

// InsertTeamMember is the client-supplied portion of a team member.
type InsertTeamMember struct {
	Name   string
	Role   string
	Avatar string
	Color  string
}

// InsertTask is the client-supplied portion of a task. Progress is a
// pointer so an omitted value can default to 0 at create time.
type InsertTask struct {
	Title       string
	Description string
	Assignees   []string
	Status      string
	Category    string
	Progress    *int
	DueDate     string
}

// InsertUpload is the metadata for an already-persisted blob. Filename is
// the system-generated blob key; callers must never pass a client value.
type InsertUpload struct {
	Filename     string
	OriginalName string
	MemberName   string
	FileSize     int64
	FileType     string
}

// TeamMemberPatch updates a team member. Nil fields are left unchanged.
type TeamMemberPatch struct {
	Name   *string
	Role   *string
	Avatar *string
	Color  *string
}

// TaskPatch updates a task. Nil fields are left unchanged; a non-nil
// Assignees replaces the whole sequence. Identity and CreatedAt are not
// patchable.
type TaskPatch struct {
	Title       *string
	Description *string
	Assignees   []string
	Status      *string
	Category    *string
	Progress    *int
	DueDate     *string
}

// Store is the contract both the in-memory and the postgres variants
// satisfy. Mutations on a single record are serialized by the backing
// medium; there are no cross-record transactions. Team members have no
// delete operation on purpose.
type Store interface {
	ListTeamMembers(ctx context.Context) ([]models.TeamMember, error)
	GetTeamMember(ctx context.Context, id string) (models.TeamMember, error)
	CreateTeamMember(ctx context.Context, insert InsertTeamMember) (models.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, patch TeamMemberPatch) (models.TeamMember, error)

	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	CreateTask(ctx context.Context, insert InsertTask) (models.Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (models.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)

	ListUploads(ctx context.Context) ([]models.Upload, error)
	GetUpload(ctx context.Context, id string) (models.Upload, error)
	CreateUpload(ctx context.Context, insert InsertUpload) (models.Upload, error)
	DeleteUpload(ctx context.Context, id string) (bool, error)
}
