package middleware

import (
	"github.com/hameda9795/farsi-dutch-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware guards handlers that require an unlocked bot. The /start
// command and the password flow in the text handler stay outside it.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			// Ensure user exists
			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send("خطایی پیش آمد. لطفاً دوباره تلاش کنید.")
			}

			// Check authorization
			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send("خطایی پیش آمد. لطفاً دوباره تلاش کنید.")
			}

			if !authorized {
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{
						Text:      "برای استفاده از ربات ابتدا رمز ورود را وارد کنید.",
						ShowAlert: true,
					})
				}
				return c.Send("برای استفاده از ربات ابتدا رمز ورود را وارد کنید. /start")
			}

			return next(c)
		}
	}
}
