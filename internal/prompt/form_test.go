package prompt_test

import (
	"testing"

	"github.com/hbjs97/cswap/internal/prompt"
	"github.com/hbjs97/cswap/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestIdentifierValidator(t *testing.T) {
	validate := prompt.IdentifierValidator([]string{"work", "home"})

	assert.NoError(t, validate("school"))
	assert.Error(t, validate("work"))
	assert.ErrorIs(t, validate(""), store.ErrInvalidIdentifier)
	assert.ErrorIs(t, validate("a/b"), store.ErrInvalidIdentifier)
}

func TestRunProfileSelect_NoChoices(t *testing.T) {
	_, err := (&prompt.HuhFormRunner{}).RunProfileSelect(nil)
	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}
