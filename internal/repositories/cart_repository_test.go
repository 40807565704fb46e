package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapCartItemCreateErr(t *testing.T) {
	assert.NoError(t, mapCartItemCreateErr(nil))

	// Two requests racing to add the same line: the loser hits the
	// (cart_id, jewelry_item_id) unique index and must surface as the same
	// duplicate error the single-flight path returns.
	dup := fmt.Errorf("insert cart_items: %w", gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, mapCartItemCreateErr(dup), ErrCartItemExists)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapCartItemCreateErr(other))
}
