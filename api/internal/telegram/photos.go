package telegram

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"thermal-sense/api/internal/detect"
)

func (r *Router) acceptPhoto(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	// последний размер самый крупный
	ph := msg.Photo[len(msg.Photo)-1]
	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		r.SendError(cid, err)
		return
	}
	imgBytes, err := download(file.Link(r.Bot.Token))
	if err != nil {
		r.SendError(cid, err)
		return
	}
	r.runDetect(context.Background(), cid, imgBytes)
}

func (r *Router) runDetect(ctx context.Context, chatID int64, img []byte) {
	out := r.Detector.Detect(ctx, detect.Request{Image: base64.StdEncoding.EncodeToString(img)})
	if out.Err != nil {
		if out.Err.Kind == detect.KindParse {
			log.Printf("bot: chat %d: unparsable model reply", chatID)
			r.send(chatID, "The model answered, but not with a detection list. Try another photo.")
			return
		}
		r.SendError(chatID, fmt.Errorf("%s", out.Err.Message))
		return
	}

	threshold := r.threshold(chatID)
	caption := FormatCaption(out.Items, threshold)
	annotated, err := Annotate(img, out.Items, threshold)
	if err != nil {
		log.Printf("bot: annotate: %v", err)
		r.send(chatID, caption)
		return
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "thermal.jpg", Bytes: annotated})
	photo.Caption = caption
	if _, err := r.Bot.Send(photo); err != nil {
		log.Printf("bot: send photo: %v", err)
		r.send(chatID, caption)
	}
}

func download(url string) ([]byte, error) {
	resp, err := httpClient().Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}

func httpClient() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}
