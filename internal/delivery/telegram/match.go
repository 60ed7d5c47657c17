package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

func (h *Handler) renderMatchSetup(ctx context.Context, userID int64) (string, *tgbotapi.InlineKeyboardMarkup, error) {
	us, err := h.svc.Settings.GetOrCreate(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	return formatMatchSetup(us), buildMatchSetupKeyboard(us, h.svc.Words.GroupNumbers()), nil
}

func renderMatch(g entities.MatchGame) view {
	if g.Phase == entities.MatchComplete {
		return view{text: formatMatchComplete(g), kb: buildMatchCompleteKeyboard()}
	}
	return view{text: formatMatchBoard(g), kb: buildMatchBoardKeyboard(g)}
}

func (h *Handler) handleMatchSetupCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (view, error) {
	userID := cb.From.ID

	var err error
	switch cd.param(0) {
	case setupMenu:
	case setupGroup:
		group, ok := cd.intParam(1)
		if !ok {
			return view{}, nil
		}
		_, err = h.svc.Settings.ToggleGroup(ctx, userID, group)
	case setupGrid:
		grid, perr := entities.ParseGridSize(cd.param(1))
		if perr != nil {
			return view{}, nil
		}
		_, err = h.svc.Settings.SetGridSize(ctx, userID, grid)
	case setupStart:
		return h.startGame(ctx, userID)
	case setupQuit:
		h.svc.Match.Abandon(userID)
	default:
		return view{}, nil
	}
	if err != nil {
		return view{}, err
	}

	text, kb, err := h.renderMatchSetup(ctx, userID)
	return view{text: text, kb: kb}, err
}

func (h *Handler) startGame(ctx context.Context, userID int64) (view, error) {
	us, err := h.svc.Settings.GetOrCreate(ctx, userID)
	if err != nil {
		return view{}, err
	}

	game, err := h.svc.Match.StartGame(userID, us.SelectedGroups, us.GridSize)
	if err != nil {
		return view{}, err
	}

	v := renderMatch(game)
	if game.PairCount() < us.GridSize.PairCount() {
		v.toast = "Not enough synonym pairs for a full board."
	}
	return v, nil
}

// handleMatchTileCallback selects a tile. When a pair is selected the board
// shows the outcome and is resolved after a short delay.
func (h *Handler) handleMatchTileCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (view, error) {
	gameID, idx, ok := parseMatchTile(cd)
	if !ok {
		return view{}, nil
	}

	userID := cb.From.ID
	game, delay, err := h.svc.Match.Select(userID, gameID, idx)
	if err != nil {
		return view{}, err
	}

	if delay > 0 {
		chatID, msgID := cb.Message.Chat.ID, cb.Message.MessageID
		time.AfterFunc(delay, func() {
			h.resolveMatch(ctx, userID, gameID, chatID, msgID)
		})
	}

	return renderMatch(game), nil
}

func (h *Handler) resolveMatch(ctx context.Context, userID int64, gameID uuid.UUID, chatID int64, msgID int) {
	game, err := h.svc.Match.Resolve(ctx, userID, gameID)
	if err != nil {
		h.logger.Debug("matching game resolve skipped",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return
	}

	v := renderMatch(game)
	h.edit(chatID, msgID, v.text, v.kb)
}
