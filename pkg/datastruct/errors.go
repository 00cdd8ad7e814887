package datastruct

import (
	"go.llib.dev/adt/pkg/alloc"
	"go.llib.dev/adt/pkg/elemtype"
	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrEmptyCollection errorkit.Error = "ErrEmptyCollection"
	ErrCollectionFull  errorkit.Error = "ErrCollectionFull"
	ErrIndexOutOfRange errorkit.Error = "ErrIndexOutOfRange"
	ErrKeyNotFound     errorkit.Error = "ErrKeyNotFound"
	ErrDuplicateKey    errorkit.Error = "ErrDuplicateKey"
	ErrInvalidCapacity errorkit.Error = "ErrInvalidCapacity"
)

const (
	// ErrTypeMismatch is returned when a datum does not match the declared element type.
	ErrTypeMismatch = elemtype.ErrTypeMismatch
	// ErrOutOfMemory is returned when a buffer or node could not be acquired.
	ErrOutOfMemory = alloc.ErrOutOfMemory
)
