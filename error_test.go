package tabgenie_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/tabgenie"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := tabgenie.Errorf(tabgenie.ENOTFOUND, "dataset %q not found", "totto")

	assert.Equal(t, tabgenie.ENOTFOUND, tabgenie.ErrorCode(err))
	assert.Equal(t, "dataset \"totto\" not found", tabgenie.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns empty code for nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tabgenie.ErrorCode(nil))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("build: %w", tabgenie.Errorf(tabgenie.EMALFORMED, "missing table"))

		assert.Equal(t, tabgenie.EMALFORMED, tabgenie.ErrorCode(err))
	})

	t.Run("finds codes inside joined errors", func(t *testing.T) {
		t.Parallel()

		err := errors.Join(errors.New("plain"), tabgenie.Errorf(tabgenie.ETRIPLE, "bad row"))

		assert.Equal(t, tabgenie.ETRIPLE, tabgenie.ErrorCode(err))
	})

	t.Run("returns internal code for other errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, tabgenie.EINTERNAL, tabgenie.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns empty message for nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tabgenie.ErrorMessage(nil))
	})

	t.Run("hides details of other errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", tabgenie.ErrorMessage(errors.New("boom")))
	})
}
