//go:build unit

package user_test

import (
	"testing"

	"fleet-workflow/internal/domain/notification"
	"fleet-workflow/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	testCases := []struct {
		input   string
		want    user.Role
		channel notification.Channel
		errIs   error
	}{
		{input: "admin", want: user.RoleAdmin, channel: notification.ChannelAdmin},
		{input: "tecnico", want: user.RoleTecnico, channel: notification.ChannelTecnico},
		{input: "viewer", errIs: user.ErrInvalidRole},
		{input: "", errIs: user.ErrInvalidRole},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := user.NewRole(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, role)
			assert.Equal(t, tc.channel, role.Channel())
		})
	}
}
