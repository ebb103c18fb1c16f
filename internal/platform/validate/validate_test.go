// Copyright (c) 2026 ArtScope. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenna9192/artscope/internal/platform/apperr"
	"github.com/jenna9192/artscope/internal/platform/validate"
)

func TestValidator_Rules(t *testing.T) {
	tests := []struct {
		name     string
		run      func(v *validate.Validator)
		wantFail bool
	}{
		{"required_ok", func(v *validate.Validator) { v.Required("query", "sunflowers") }, false},
		{"required_empty", func(v *validate.Validator) { v.Required("query", "") }, true},
		{"required_whitespace", func(v *validate.Validator) { v.Required("query", "   ") }, true},
		{"max_len_runes", func(v *validate.Validator) { v.MaxLen("query", "éééé", 4) }, false},
		{"max_len_exceeded", func(v *validate.Validator) { v.MaxLen("query", "ééééé", 4) }, true},
		{"uuid_v7", func(v *validate.Validator) { v.UUID("id", "0190f5c4-7a8e-7c3b-9d4e-2f1a6b8c9d0e") }, false},
		{"uuid_uppercase", func(v *validate.Validator) { v.UUID("id", "0190F5C4-7A8E-7C3B-9D4E-2F1A6B8C9D0E") }, false},
		{"uuid_truncated", func(v *validate.Validator) { v.UUID("id", "0190f5c4-7a8e") }, true},
		{"uuid_braced", func(v *validate.Validator) { v.UUID("id", "{0190f5c4-7a8e-7c3b-9d4e-2f1a6b8c9d0e}") }, true},
		{"uuid_empty", func(v *validate.Validator) { v.UUID("id", "") }, true},
		{"one_of_ok", func(v *validate.Validator) { v.OneOf("kind", "periods", "departments", "mediums", "periods") }, false},
		{"one_of_unknown", func(v *validate.Validator) { v.OneOf("kind", "colours", "departments", "mediums", "periods") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			tt.run(v)
			assert.Equal(t, tt.wantFail, v.Err() != nil)

			if !tt.wantFail {
				assert.NoError(t, v.Err())
				return
			}
			ae := apperr.As(v.Err())
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Len(t, ae.Details, 1)
		})
	}
}

func TestValidator_ChainAccumulates(t *testing.T) {
	err := (&validate.Validator{}).
		Required("query", "").
		MaxLen("query", "a very long query string", 5).
		OneOf("kind", "colours", "departments", "mediums").
		Custom("leaf", false, "unused").
		Custom("subgroup", true, "A subgroup requires a group").
		Err()

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 4)
	assert.Equal(t, "subgroup", ae.Details[3].Field)
}
