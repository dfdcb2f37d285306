package errors

import "errors"

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrInvalidDocumentData = errors.New("invalid document data")

	ErrNotificationNotFound    = errors.New("notification not found")
	ErrInvalidNotificationData = errors.New("invalid notification data")
)
