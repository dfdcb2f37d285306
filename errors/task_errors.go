// errors/task_errors.go
package errors

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskConflict    = errors.New("task conflict")
	ErrInvalidTaskData = errors.New("invalid task data")

	ErrIterationNotFound    = errors.New("iteration not found")
	ErrInvalidIterationData = errors.New("invalid iteration data")

	ErrAssignmentNotFound    = errors.New("task assignment not found")
	ErrAssignmentConflict    = errors.New("task assignment conflict")
	ErrInvalidAssignmentData = errors.New("invalid task assignment data")

	ErrCommentNotFound    = errors.New("comment not found")
	ErrInvalidCommentData = errors.New("invalid comment data")
)
