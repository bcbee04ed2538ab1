package ginserver

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"smarthost/internal/domain/shared/domainerr"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domainerr.Invalid("check_out", "must be after check_in"), http.StatusBadRequest},
		{"not found", domainerr.NotFound("property", 9), http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("add room: %w", domainerr.NotFound("property", 9)), http.StatusBadRequest},
		{"conflict", domainerr.Conflict("host", "Alice"), http.StatusConflict},
		{"replayed validation", domainerr.FromKind("validation", "bad dates"), http.StatusBadRequest},
		{"internal", domainerr.Internal("commands: handler not found"), http.StatusInternalServerError},
		{"storage", errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
