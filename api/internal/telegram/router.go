package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"thermal-sense/api/internal/detect"
)

type Router struct {
	Bot      *tgbotapi.BotAPI
	Detector *detect.Service

	// HotThresholdC: порог «горячей» кружки по умолчанию, °C.
	HotThresholdC float64
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	if upd.Message.IsCommand() {
		r.HandleCommand(upd)
		return
	}
	if len(upd.Message.Photo) > 0 {
		r.acceptPhoto(*upd.Message)
		return
	}
	r.send(upd.Message.Chat.ID, "Send me a photo and I will look for cups and estimate how hot they are.")
}

func (r *Router) HandleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Thermal Sense: send a photo of your cups.\nCommands: /health, /threshold [°C|reset]")
	case "health":
		r.send(cid, "✅ OK")
	case "threshold":
		r.send(cid, r.thresholdCommand(cid, upd.Message.CommandArguments()))
	default:
		r.send(cid, "Unknown command")
	}
}

// thresholdCommand handles "/threshold", "/threshold 45" and "/threshold reset".
func (r *Router) thresholdCommand(chatID int64, args string) string {
	arg := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(args), "°C"))
	switch strings.ToLower(arg) {
	case "":
		return fmt.Sprintf("Hot threshold: %.1f°C", r.threshold(chatID))
	case "reset":
		resetThreshold(chatID)
		return fmt.Sprintf("Hot threshold reset to %.1f°C", r.HotThresholdC)
	}
	c, err := strconv.ParseFloat(strings.ReplaceAll(arg, ",", "."), 64)
	if err != nil || c < -50 || c > 150 {
		return "Usage: /threshold 40.5 (between -50 and 150), or /threshold reset"
	}
	setThreshold(chatID, c)
	return fmt.Sprintf("Hot threshold set to %.1f°C", c)
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	_, _ = r.Bot.Send(msg)
}

func (r *Router) SendError(chatID int64, err error) {
	r.send(chatID, fmt.Sprintf("Detection error: %v", err))
}
