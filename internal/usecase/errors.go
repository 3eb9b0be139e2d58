package usecase

import "errors"

// Every service call reports failures through this tagged enumeration;
// handlers map each kind to a status and envelope code.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidID          = errors.New("invalid identifier")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrJobNotAccepting    = errors.New("job not accepting applications")
	ErrAlreadyApplied     = errors.New("already applied")
	ErrInvalidExperience  = errors.New("invalid experience format")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidFileType    = errors.New("invalid file type")
	ErrUploadFailed       = errors.New("upload failed")
	ErrInternal           = errors.New("internal error")
)
