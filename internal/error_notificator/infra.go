package error_notificator

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
}

// NewInfra читает OPS_BOT_TOKEN и OPS_CHAT_ID; без них уведомления уходят только в лог
func NewInfra() *Infra {
	token := os.Getenv("OPS_BOT_TOKEN")
	chatID, _ := strconv.ParseInt(os.Getenv("OPS_CHAT_ID"), 10, 64)

	if token == "" || chatID == 0 {
		log.Printf("[error_notificator] ops bot not configured, falling back to log only")
		return &Infra{}
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("[error_notificator] bot init fail: %v", err)
		return &Infra{}
	}

	return &Infra{bot: bot, adminChatID: chatID}
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	text := fmt.Sprintf(
		"❗ Ошибка в talkmate\n\nОшибка: %v\n\nДетали: %s",
		err,
		details,
	)

	if i.bot == nil {
		log.Printf("[error_notificator] %s", text)
		return nil
	}

	_, sendErr := i.bot.Send(tgbotapi.NewMessage(i.adminChatID, text))
	if sendErr != nil {
		log.Printf("[error_notificator] send fail: %v", sendErr)
		return sendErr
	}

	return nil
}
