package users

import (
	"errors"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/users"
	"go.uber.org/zap"
)

// Delete handles DELETE /v1/users/:id
func Delete(c web.Context) error {
	ctx := c.Request().Context()

	err := users.Remove(ctx, c.UserID, c.L)
	if errors.Is(err, users.ErrNotFound) {
		return c.NotFound("user not found")
	}
	if err != nil {
		c.L.Error("failed to delete user", zap.Error(err))
		return c.InternalError("failed to delete user")
	}

	c.L.Info("account deleted", zap.String("user_id", c.UserID))
	return c.NoContent()
}
