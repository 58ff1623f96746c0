package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"sentinel", ErrLegalCodeNotFound, "legal_code_not_found"},
		{"wrapped", fmt.Errorf("find legal code: %w", ErrLegalCodeNotFound), "legal_code_not_found"},
		{"message", fmt.Errorf("title: %w", ErrMessageNotFound), "message_not_found"},
		{"typed", &MissingDefaultTranslationError{Key: "k"}, "missing_default_translation"},
		{"foreign", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestMissingDefaultTranslationError_Message(t *testing.T) {
	err := &MissingDefaultTranslationError{Key: "s1c"}
	assert.Contains(t, err.Error(), `"s1c"`)
}
