package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestio-app/gestio/internal/application/project/usecases"
	"github.com/gestio-app/gestio/internal/shared/biztime"
	"github.com/gestio-app/gestio/internal/shared/logger"
	"github.com/gestio-app/gestio/internal/shared/utils"
)

// ProjectHandler handles project and task tracking HTTP requests
type ProjectHandler struct {
	createProjectUC *usecases.CreateProjectUseCase
	updateProjectUC *usecases.UpdateProjectUseCase
	deleteProjectUC *usecases.DeleteProjectUseCase
	getProjectUC    *usecases.GetProjectUseCase
	listProjectsUC  *usecases.ListProjectsUseCase
	createTaskUC    *usecases.CreateTaskUseCase
	updateTaskUC    *usecases.UpdateTaskUseCase
	deleteTaskUC    *usecases.DeleteTaskUseCase
	listTasksUC     *usecases.ListTasksUseCase
	logger          logger.Interface
}

func NewProjectHandler(
	createProjectUC *usecases.CreateProjectUseCase,
	updateProjectUC *usecases.UpdateProjectUseCase,
	deleteProjectUC *usecases.DeleteProjectUseCase,
	getProjectUC *usecases.GetProjectUseCase,
	listProjectsUC *usecases.ListProjectsUseCase,
	createTaskUC *usecases.CreateTaskUseCase,
	updateTaskUC *usecases.UpdateTaskUseCase,
	deleteTaskUC *usecases.DeleteTaskUseCase,
	listTasksUC *usecases.ListTasksUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC: createProjectUC,
		updateProjectUC: updateProjectUC,
		deleteProjectUC: deleteProjectUC,
		getProjectUC:    getProjectUC,
		listProjectsUC:  listProjectsUC,
		createTaskUC:    createTaskUC,
		updateTaskUC:    updateTaskUC,
		deleteTaskUC:    deleteTaskUC,
		listTasksUC:     listTasksUC,
		logger:          logger.NewLogger(),
	}
}

type ProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ClientID    *uint  `json:"client_id"`
	Deadline    string `json:"deadline"`
}

func (r *ProjectRequest) deadline() (*time.Time, error) {
	if r.Deadline == "" {
		return nil, nil
	}
	d, err := biztime.ParseDateInBizTimezone(r.Deadline)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type TaskRequest struct {
	Title  string `json:"title" binding:"required"`
	Status string `json:"status"`
}

// CreateProject creates a new project
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProjectRequest true "Project data"
// @Success 201 {object} utils.Response{data=dto.ProjectDTO}
// @Failure 400 {object} utils.Response
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	deadline, err := req.deadline()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid deadline, expected YYYY-MM-DD")
		return
	}

	result, err := h.createProjectUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		ClientID:    req.ClientID,
		Deadline:    deadline,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// UpdateProject updates an existing project
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body ProjectRequest true "Project data"
// @Success 200 {object} utils.Response{data=dto.ProjectDTO}
// @Failure 404 {object} utils.Response
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project ID")
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update project", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	deadline, err := req.deadline()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid deadline, expected YYYY-MM-DD")
		return
	}

	result, err := h.updateProjectUC.Execute(c.Request.Context(), usecases.UpdateProjectCommand{
		ProjectID:   id,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		ClientID:    req.ClientID,
		Deadline:    deadline,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteProject deletes a project and its tasks
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project ID")
		return
	}

	if err := h.deleteProjectUC.Execute(c.Request.Context(), usecases.DeleteProjectCommand{ProjectID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "project deleted", nil)
}

// GetProject returns a project with its tasks
// @Summary Get project
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} utils.Response{data=dto.ProjectDTO}
// @Failure 404 {object} utils.Response
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project ID")
		return
	}

	result, err := h.getProjectUC.Execute(c.Request.Context(), usecases.GetProjectQuery{ProjectID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProjects returns all projects with progress
// @Summary List projects
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]dto.ProjectDTO}
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	result, err := h.listProjectsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateTask adds a task to a project
// @Summary Create task
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body TaskRequest true "Task data"
// @Success 201 {object} utils.Response{data=dto.TaskDTO}
// @Failure 404 {object} utils.Response
// @Router /projects/{id}/tasks [post]
func (h *ProjectHandler) CreateTask(c *gin.Context) {
	projectID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project ID")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create task", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createTaskUC.Execute(c.Request.Context(), usecases.CreateTaskCommand{
		ProjectID: projectID,
		Title:     req.Title,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListTasks returns the tasks of a project
// @Summary List tasks
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} utils.Response{data=[]dto.TaskDTO}
// @Failure 404 {object} utils.Response
// @Router /projects/{id}/tasks [get]
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	projectID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project ID")
		return
	}

	result, err := h.listTasksUC.Execute(c.Request.Context(), usecases.ListTasksQuery{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTask updates a task's title or status
// @Summary Update task
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskID path int true "Task ID"
// @Param request body TaskRequest true "Task data"
// @Success 200 {object} utils.Response{data=dto.TaskDTO}
// @Failure 404 {object} utils.Response
// @Router /tasks/{taskID} [put]
func (h *ProjectHandler) UpdateTask(c *gin.Context) {
	taskID, err := parseUintParam(c, "taskID")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid task ID")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update task", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateTaskUC.Execute(c.Request.Context(), usecases.UpdateTaskCommand{
		TaskID: taskID,
		Title:  req.Title,
		Status: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteTask removes a task
// @Summary Delete task
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param taskID path int true "Task ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /tasks/{taskID} [delete]
func (h *ProjectHandler) DeleteTask(c *gin.Context) {
	taskID, err := parseUintParam(c, "taskID")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid task ID")
		return
	}

	if err := h.deleteTaskUC.Execute(c.Request.Context(), usecases.DeleteTaskCommand{TaskID: taskID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "task deleted", nil)
}
