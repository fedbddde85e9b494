package stream

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/remotedata/pkg/remotedata"
)

// Update is one observed state of a resource, stamped with an id and the UTC
// time it was created.
type Update[E, T any] struct {
	id        uuid.UUID
	createdAt time.Time
	data      remotedata.RemoteData[E, T]
}

func Stamp[E, T any](data remotedata.RemoteData[E, T]) Update[E, T] {
	return Update[E, T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		data:      data,
	}
}

// Carry replaces the data of from and keeps its id and creation time, so a
// transformed update can still be correlated with its source.
func Carry[E, T, F, U any](from Update[E, T], data remotedata.RemoteData[F, U]) Update[F, U] {
	return Update[F, U]{
		id:        from.id,
		createdAt: from.createdAt,
		data:      data,
	}
}

func (u Update[E, T]) Id() uuid.UUID {
	return u.id
}

func (u Update[E, T]) CreatedAt() time.Time {
	return u.createdAt
}

func (u Update[E, T]) Data() remotedata.RemoteData[E, T] {
	return u.data
}

// IsSettled reports whether the fetch behind u has completed, either way.
func (u Update[E, T]) IsSettled() bool {
	return u.data.IsSuccess() || u.data.IsFailure()
}
