package storage

import "errors"

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
	ErrInvalidMimeType = errors.New("file type is not allowed")
	ErrUnknownBucket   = errors.New("unknown storage bucket")
	ErrBadSignature    = errors.New("invalid or expired file signature")
)
