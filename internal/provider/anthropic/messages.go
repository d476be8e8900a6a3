package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"

	ai "github.com/spetersoncode/switchboard"
)

// convertMessages splits system messages out into the system prompt and
// converts the rest in order. Empty messages are rejected by the gateway before
// they get here; the Anthropic API refuses empty text blocks.
func convertMessages(messages []ai.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var result []anthropic.MessageParam
	var system []anthropic.TextBlockParam

	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		case ai.RoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	return result, system
}
