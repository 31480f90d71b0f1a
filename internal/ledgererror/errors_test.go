package ledgererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidAmountError(t *testing.T) {
	err := &InvalidAmountError{Value: "abc"}
	assert.Contains(t, err.Error(), "abc")
	assert.Contains(t, err.Error(), "positive")
}

func TestUnknownCategoryError(t *testing.T) {
	err := &UnknownCategoryError{Category: "Viagens"}
	assert.Contains(t, err.Error(), "Viagens")
}

func TestEmptyDescriptionError(t *testing.T) {
	err := &EmptyDescriptionError{}
	assert.Contains(t, err.Error(), "description")
}

func TestStoreErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := &StoreError{Op: "write", Path: "financas.json", Err: cause}

	assert.Contains(t, err.Error(), "financas.json")
	assert.True(t, errors.Is(err, cause))
}
