package list

import "github.com/cockroachdb/errors"

var (
	ErrIndexOutOfRange        = errors.New("index out of range")
	ErrEmptyList              = errors.New("list is empty")
	ErrNoSuchElement          = errors.New("no such element")
	ErrIllegalState           = errors.New("no element to modify")
	ErrConcurrentModification = errors.New("concurrent modification")
)

func outOfRange(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index: %d, size: %d", index, size)
}
