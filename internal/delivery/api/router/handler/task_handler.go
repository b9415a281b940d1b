package handler

import (
	"net/http"

	"taskhub/internal/delivery/api/response"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"omitempty,taskstatus"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,taskstatus"`
}

type taskResponse struct {
	Task *entity.Task `json:"task"`
}

type taskListResponse struct {
	Tasks []*entity.Task `json:"tasks"`
}

type deleteResponse struct {
	Success bool `json:"success"`
}

// TaskHandler serves the task collection of the authenticated caller.
type TaskHandler struct {
	uc usecase.TaskUsecase
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// ListTasks handles GET /api/tasks?search=.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), caller.UserID, c.QueryParam("search"))
	if err != nil {
		return response.Operation(err, "An error occurred while fetching tasks")
	}
	if tasks == nil {
		tasks = []*entity.Task{}
	}

	return ok(c, taskListResponse{Tasks: tasks})
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if _, err := bindRequest(c, &req, "title"); err != nil {
		return err
	}

	task, err := h.uc.CreateTask(c.Request().Context(), caller.UserID, &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return response.Operation(err, "An error occurred while creating task")
	}

	return response.Success(c, http.StatusCreated, taskResponse{Task: task})
}

// GetTask handles GET /api/tasks/:id.
func (h *TaskHandler) GetTask(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	task, err := h.uc.GetTask(c.Request().Context(), caller.UserID, taskID)
	if err != nil {
		return response.Operation(err, "An error occurred while fetching task")
	}

	return ok(c, taskResponse{Task: task})
}

// UpdateTask handles PUT /api/tasks/:id. The existence and ownership checks
// run before the body is validated.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.uc.GetTask(ctx, caller.UserID, taskID); err != nil {
		return response.Operation(err, "An error occurred while updating task")
	}

	var req updateTaskRequest
	body, err := bindRequest(c, &req)
	if err != nil {
		return err
	}
	_, descriptionSet := body["description"]

	task, err := h.uc.UpdateTask(ctx, caller.UserID, taskID, &usecase.UpdateTaskInput{
		Title:          req.Title,
		DescriptionSet: descriptionSet,
		Description:    req.Description,
		Status:         req.Status,
	})
	if err != nil {
		return response.Operation(err, "An error occurred while updating task")
	}

	return ok(c, taskResponse{Task: task})
}

// DeleteTask handles DELETE /api/tasks/:id.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTask(c.Request().Context(), caller.UserID, taskID); err != nil {
		return response.Operation(err, "An error occurred while deleting task")
	}

	return ok(c, deleteResponse{Success: true})
}

// taskIDParam parses the :id path parameter. A malformed ID cannot name a task, so it is a 404.
func taskIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrTaskNotFound)
	}

	return id, nil
}
