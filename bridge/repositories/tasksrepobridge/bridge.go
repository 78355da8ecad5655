package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrazmi/taskapi/bridge/scaffolding/errs"
	"github.com/jrazmi/taskapi/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/infrastructure/web"
	"github.com/jrazmi/taskapi/sdk/logger"
)

// Confirmation messages returned by the write endpoints.
const (
	msgCreated = "Task created successfully"
	msgUpdated = "Task updated successfully"
	msgDeleted = "Task deleted successfully"
)

// bridge provides HTTP handlers for Task operations.
type bridge struct {
	log            *logger.Logger
	taskRepository *tasksrepo.Repository
}

func newBridge(log *logger.Logger, taskRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		log:            log,
		taskRepository: taskRepository,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	page, err := parsePage(qp)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	orderBy, err := parseOrderBy(qp)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	filter, err := parseFilter(qp)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tasks, info, err := b.taskRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return toAppError(err)
	}

	return fopbridge.NewPaginatedResponse(r.URL, MarshalListToBridge(tasks), info)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	qpath, err := parsePath(r)
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	task, err := b.taskRepository.Get(ctx, qpath.TaskID)
	if err != nil {
		return toAppError(err)
	}

	return MarshalToBridge(task)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input NewTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid request body: %s", err)
	}

	if err := input.Validate(); err != nil {
		return toAppError(err)
	}

	ct, err := MarshalCreateToRepository(input)
	if err != nil {
		return toAppError(err)
	}

	task, err := b.taskRepository.Create(ctx, ct)
	if err != nil {
		return toAppError(err)
	}

	return web.NewJSONResponseWithStatus(fopbridge.NewRecordID(task.ID, msgCreated), http.StatusCreated)
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	qpath, err := parsePath(r)
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	var input UpdateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid request body: %s", err)
	}

	if err := input.Validate(); err != nil {
		return toAppError(err)
	}

	ut, err := MarshalUpdateToRepository(input)
	if err != nil {
		return toAppError(err)
	}

	if err := b.taskRepository.Update(ctx, qpath.TaskID, ut); err != nil {
		return toAppError(err)
	}

	return fopbridge.NewMessageResponse(msgUpdated)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	qpath, err := parsePath(r)
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	if err := b.taskRepository.Delete(ctx, qpath.TaskID); err != nil {
		return toAppError(err)
	}

	return fopbridge.NewMessageResponse(msgDeleted)
}

// toAppError maps service errors to their HTTP kind. Persistence failures
// keep their message; anything unexpected is only logged.
func toAppError(err error) *errs.Error {
	if ve, ok := tasksrepo.IsValidationError(err); ok {
		fields := make([]errs.FieldError, len(ve.Fields))
		for i, fe := range ve.Fields {
			fields[i] = errs.FieldError{Field: fe.Field, Err: fe.Err}
		}
		return errs.NewFieldErrors("validation failed", fields)
	}

	switch {
	case errors.Is(err, tasksrepo.ErrTaskNotFound):
		return errs.Newf(errs.NotFound, "task not found")
	case errors.Is(err, tasksrepo.ErrPersistence):
		return errs.New(errs.Internal, err)
	default:
		return errs.New(errs.InternalOnlyLog, err)
	}
}
