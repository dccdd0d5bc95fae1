package openai

import (
	"github.com/kwen-qodo/screenshot-to-code/internal/utils"
	"github.com/kwen-qodo/screenshot-to-code/providers/ai"
)

// requestToChatCompletion converts the canonical request into the chat
// completions wire format. Messages pass through structurally: text parts map
// to text parts and image parts keep their data URL untouched, since OpenAI
// accepts data URLs directly in image_url content.
//
// Token limits follow the model shape: reasoning models (o1) take
// max_completion_tokens and reject both max_tokens and temperature; everything
// else takes max_tokens plus the catalog temperature. A nil catalog
// temperature omits the field entirely so the provider default applies.
func requestToChatCompletion(req ai.StreamRequest) chatCompletionRequest {
	messages := make([]chatMessage, 0, len(req.Messages))
	for _, message := range req.Messages {
		messages = append(messages, chatMessage{
			Role:    string(message.Role),
			Content: contentPartsToChat(message.Content),
		})
	}

	request := chatCompletionRequest{
		Model:    req.Model.Identifier,
		Messages: messages,
	}

	if req.Model.Reasoning {
		request.MaxCompletionTokens = utils.Ptr(req.Model.MaxOutputTokens)
		return request
	}

	request.MaxTokens = utils.Ptr(req.Model.MaxOutputTokens)
	if req.Model.DefaultTemperature != nil {
		request.Temperature = utils.Ptr(*req.Model.DefaultTemperature)
	}
	return request
}

func contentPartsToChat(parts []ai.ContentPart) []chatContentPart {
	converted := make([]chatContentPart, 0, len(parts))
	for _, part := range parts {
		switch part.Type {
		case ai.PartText:
			converted = append(converted, chatContentPart{Type: "text", Text: part.Text})

		case ai.PartImage:
			if part.ImageURL == nil {
				continue
			}
			converted = append(converted, chatContentPart{
				Type: "image_url",
				ImageURL: &chatImageURL{
					URL:    part.ImageURL.URL,
					Detail: part.ImageURL.Detail,
				},
			})
		}
	}
	return converted
}
