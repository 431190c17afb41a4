package ai

import (
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/talkmate/talkmate-backend/internal/ports"
)

// historyWindow — фиксированное окно контекста, ограничивает размер промпта
const historyWindow = 3

// Текст промптов менять нельзя: на метки Answer / Follow-up Question завязан парсер
const systemPrompt = `You are a helpful assistant. 
            Provide a clear, corrected answer to the user's question in no more than five sentences. 
            Avoid using asterisks (*) anywhere. 
            Then, suggest a related follow-up question to continue the conversation. 
            Format your response exactly as follows:
            Answer: <your answer>
            Follow-up Question: <related question>`

const grammarPromptFormat = "Correct this sentence for grammar. Give up to one corrected versions, but no explanation. Return in double quotes.:\n\n'%s'\n\n"

// BuildMessages собирает [system, (user, assistant) x история, user].
// Чистая функция; на пустой ввод возвращает ports.ErrEmptyInput.
func BuildMessages(history []ports.Turn, userText string) ([]openai.ChatCompletionMessage, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return nil, ports.ErrEmptyInput
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2+2*len(history))
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})

	for _, turn := range history {
		messages = append(messages,
			openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleUser,
				Content: turn.Message,
			},
			openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: turn.Response,
			},
		)
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userText,
	})

	return messages, nil
}
