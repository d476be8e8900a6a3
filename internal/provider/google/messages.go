package google

import (
	"google.golang.org/genai"

	ai "github.com/spetersoncode/switchboard"
)

// convertMessages maps assistant turns to the "model" role and gathers system
// messages into a single system instruction.
func convertMessages(messages []ai.Message) ([]*genai.Content, *genai.Content) {
	var contents []*genai.Content
	var system *genai.Content

	for _, msg := range messages {
		part := &genai.Part{Text: msg.Content}

		switch msg.Role {
		case ai.RoleSystem:
			if system == nil {
				system = &genai.Content{}
			}
			system.Parts = append(system.Parts, part)
		case ai.RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{part}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{part}})
		}
	}

	return contents, system
}
