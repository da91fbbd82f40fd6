package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified,
// just acknowledge the callback. Otherwise acknowledge and return the error
// so the caller can send a new message instead.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	// The message was already edited by another callback; acknowledging is
	// all that is left to do
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries not matched by a static button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Info("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Handle specific button callbacks by Unique first
	switch callback.Unique {
	case "start_test":
		return h.handleStartTest(c)
	case "next_question":
		return h.handleNextQuestion(c)
	case "end_test":
		return h.handleEndTest(c)
	case "stats":
		return h.handleStats(c)
	case "my_words":
		return h.handleMyWords(c)
	case "important_words":
		return h.handleImportantWords(c)
	case "main_menu":
		return h.handleStart(c)
	}

	// Dynamic buttons carry their payload in the unique part; older clients
	// may deliver it in Data instead
	payload := callback.Unique
	if payload == "" {
		payload = data
	}
	switch {
	case strings.HasPrefix(payload, "ans_"):
		return h.handleAnswerSelection(c, payload)
	case strings.HasPrefix(payload, "imp_"):
		return h.handleMarkImportant(c, payload, true)
	case strings.HasPrefix(payload, "unimp_"):
		return h.handleMarkImportant(c, payload, false)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
