package ai

import "strings"

const (
	followUpMarker = "Follow-up Question:"
	answerLabel    = "Answer:"
)

type Reply struct {
	Answer   string
	FollowUp string
}

// ParseReply режет сырой ответ модели по первому вхождению метки follow-up.
// Без метки весь текст считается ответом — модель не обязана соблюдать формат.
func ParseReply(raw string) Reply {
	idx := strings.Index(raw, followUpMarker)
	if idx < 0 {
		return Reply{Answer: strings.TrimSpace(raw)}
	}

	answer := strings.TrimSpace(strings.TrimPrefix(raw[:idx], answerLabel))
	followUp := strings.TrimSpace(raw[idx+len(followUpMarker):])

	return Reply{Answer: answer, FollowUp: followUp}
}
