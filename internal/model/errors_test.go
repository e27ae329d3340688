package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{NewValidation("bad input"), ErrValidation},
		{NewNotFound("gone"), ErrNotFound},
		{NewConflict("already suspended"), ErrConflict},
		{NewUnsupportedMedia("not json"), ErrUnsupportedMedia},
		{NewPersistence("insert failed", fmt.Errorf("driver: boom")), ErrPersistence},
	}

	for _, tc := range cases {
		assert.True(t, errors.Is(tc.err, tc.sentinel), tc.err.Error())
		// no cross-matching between kinds
		for _, other := range cases {
			if other.sentinel != tc.sentinel {
				assert.False(t, errors.Is(tc.err, other.sentinel))
			}
		}
	}
}

func TestPersistenceErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("driver: connection reset")
	err := NewPersistence("create customer", cause)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPersistence))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "create customer")
	assert.Contains(t, err.Error(), "connection reset")
}
