//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"resource-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches taxonomy sentinel", func(t *testing.T) {
		err := errs.Mark(errors.New("start must be before end"), errs.ErrValidation)
		assert.True(t, errs.IsValidation(err))
		assert.False(t, errs.IsConflict(err))
		assert.False(t, errs.IsNotFound(err))
	})

	t.Run("nil error returns mark itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrNotFound)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("validation helper", func(t *testing.T) {
		err := errs.Validation("bad input")
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "bad input")
	})

	t.Run("wrap keeps mark", func(t *testing.T) {
		err := errs.Wrap(errs.Validation("bad input"), "reserve intervention")
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "reserve intervention")
	})
}

type kindError struct{}

func (kindError) Error() string { return "kind" }

func TestIs(t *testing.T) {
	t.Run("delegates to Is method", func(t *testing.T) {
		err := errs.Wrap(isConflict{}, "reserve")
		assert.True(t, errs.IsConflict(err))
	})

	t.Run("As reaches wrapped type", func(t *testing.T) {
		err := errs.Mark(errs.Wrap(kindError{}, "ctx"), errs.ErrValidation)
		var target kindError
		assert.True(t, errs.As(err, &target))
	})
}

type isConflict struct{}

func (isConflict) Error() string        { return "overlap" }
func (isConflict) Is(target error) bool { return target == errs.ErrConflict }
