package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/gridironhq/gridiron/internal/analysis"
	"github.com/gridironhq/gridiron/internal/service"
)

type Handler struct {
	analyzer *service.Analyzer
}

func NewHandler(analyzer *service.Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to Gridiron! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/report - Full weekly report\n/needs - Positional team needs\n/pickups - Waiver wire suggestions\n/trades - Sell high and buy low targets\n/lineup - Optimal starting lineup"
	case "report":
		h.handleReport(&msg)
	case "needs":
		h.handleNeeds(&msg)
	case "pickups":
		h.handlePickups(&msg)
	case "trades":
		h.handleTrades(&msg)
	case "lineup":
		h.handleLineup(&msg)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleReport(msg *tgbotapi.MessageConfig) {
	rendered, err := h.analyzer.WeeklyReport(nil)
	if err != nil {
		msg.Text = fmt.Sprintf("Error building weekly report: %v", err)
	} else {
		msg.Text = rendered
	}
}

func (h *Handler) handleNeeds(msg *tgbotapi.MessageConfig) {
	needs, err := h.analyzer.TeamNeedsSection()
	if err != nil {
		msg.Text = fmt.Sprintf("Error analyzing team needs: %v", err)
	} else {
		msg.Text = needs
	}
}

func (h *Handler) handlePickups(msg *tgbotapi.MessageConfig) {
	pickups, err := h.analyzer.PickupsSection(analysis.DefaultPickupLimit)
	if err != nil {
		msg.Text = fmt.Sprintf("Error finding pickups: %v", err)
	} else {
		msg.Text = pickups
	}
}

func (h *Handler) handleTrades(msg *tgbotapi.MessageConfig) {
	trades, err := h.analyzer.TradesSection()
	if err != nil {
		msg.Text = fmt.Sprintf("Error finding trade targets: %v", err)
	} else {
		msg.Text = trades
	}
}

func (h *Handler) handleLineup(msg *tgbotapi.MessageConfig) {
	optimal, err := h.analyzer.LineupSection()
	if err != nil {
		msg.Text = fmt.Sprintf("Error optimizing lineup: %v", err)
	} else {
		msg.Text = optimal
	}
}
