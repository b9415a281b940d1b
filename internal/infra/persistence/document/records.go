package document

import (
	"cmp"
	"slices"
	"time"

	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/repository"

	"github.com/google/uuid"
)

// userRecord keeps the original file layout, where the hash lives under "password".
type userRecord struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type taskRecord struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toUserDomain(r *userRecord) *entity.User {
	return &entity.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.Password,
		Name:         r.Name,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toTaskDomain(r *taskRecord) *entity.Task {
	return &entity.Task{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Status:      entity.TaskStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func fromTaskDomain(t *entity.Task) taskRecord {
	return taskRecord{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (s *snapshot) userIndex(match func(*userRecord) bool) int {
	return slices.IndexFunc(s.Users, func(r userRecord) bool { return match(&r) })
}

func (s *snapshot) taskIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.Tasks, func(r taskRecord) bool { return r.ID == id })
}

func (s *snapshot) findUserByID(id uuid.UUID) (*entity.User, error) {
	i := s.userIndex(func(r *userRecord) bool { return r.ID == id })
	if i < 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&s.Users[i]), nil
}

func (s *snapshot) findUserByEmail(email string) (*entity.User, error) {
	i := s.userIndex(func(r *userRecord) bool { return r.Email == email })
	if i < 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&s.Users[i]), nil
}

func (s *snapshot) createUser(user *entity.User) error {
	if s.userIndex(func(r *userRecord) bool { return r.Email == user.Email }) >= 0 {
		return repository.ErrEmailTaken
	}

	s.Users = append(s.Users, fromUserDomain(user))

	return nil
}

func (s *snapshot) updateUser(user *entity.User) error {
	i := s.userIndex(func(r *userRecord) bool { return r.ID == user.ID })
	if i < 0 {
		return repository.ErrUserNotFound
	}

	taken := s.userIndex(func(r *userRecord) bool { return r.Email == user.Email && r.ID != user.ID })
	if taken >= 0 {
		return repository.ErrEmailTaken
	}

	rec := &s.Users[i]
	rec.Email = user.Email
	rec.Name = user.Name
	rec.Password = user.PasswordHash
	rec.UpdatedAt = user.UpdatedAt

	return nil
}

func (s *snapshot) createTask(task *entity.Task) error {
	if s.userIndex(func(r *userRecord) bool { return r.ID == task.UserID }) < 0 {
		return repository.ErrUserNotFound
	}

	s.Tasks = append(s.Tasks, fromTaskDomain(task))

	return nil
}

func (s *snapshot) findTaskByID(id uuid.UUID) (*entity.Task, error) {
	i := s.taskIndex(id)
	if i < 0 {
		return nil, repository.ErrTaskNotFound
	}

	return toTaskDomain(&s.Tasks[i]), nil
}

func (s *snapshot) listTasksByUser(userID uuid.UUID) []*entity.Task {
	tasks := make([]*entity.Task, 0)
	for i := range s.Tasks {
		if s.Tasks[i].UserID == userID {
			tasks = append(tasks, toTaskDomain(&s.Tasks[i]))
		}
	}

	slices.SortFunc(tasks, func(a, b *entity.Task) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.ID.String(), a.ID.String())
	})

	return tasks
}

func (s *snapshot) updateTask(task *entity.Task) error {
	i := s.taskIndex(task.ID)
	if i < 0 {
		return repository.ErrTaskNotFound
	}

	rec := &s.Tasks[i]
	rec.Title = task.Title
	rec.Description = task.Description
	rec.Status = string(task.Status)
	rec.UpdatedAt = task.UpdatedAt

	return nil
}

func (s *snapshot) deleteTask(id uuid.UUID) error {
	i := s.taskIndex(id)
	if i < 0 {
		return repository.ErrTaskNotFound
	}

	s.Tasks = slices.Delete(s.Tasks, i, i+1)

	return nil
}
