package anthropic

import (
	"github.com/kwen-qodo/screenshot-to-code/internal/utils"
	"github.com/kwen-qodo/screenshot-to-code/providers/ai"
)

// requestToMessages converts the canonical request into the Messages API wire
// format. The input messages are never mutated: content is deep-copied into
// wire blocks, so callers can safely reuse the same message slice across
// providers.
//
// Two transformations diverge from plain passthrough:
//   - A leading system message moves into the top-level system field; the
//     Messages API rejects role "system" inside the messages array.
//   - Every image part carrying a data URL is transcoded into a base64 image
//     source block. A malformed data URL fails with *ai.ImageDecodeError
//     naming the index of the offending message in the original slice.
func requestToMessages(req ai.StreamRequest) (messagesRequest, error) {
	request := messagesRequest{
		Model:     req.Model.Identifier,
		MaxTokens: req.Model.MaxOutputTokens,
	}
	if req.Model.DefaultTemperature != nil {
		request.Temperature = utils.Ptr(*req.Model.DefaultTemperature)
	}

	for index, message := range req.Messages {
		// Only a leading system message becomes the system field. A system
		// message appearing mid-conversation would be a front-end bug; it is
		// folded into the system prompt as well rather than dropped.
		if message.Role == ai.RoleSystem {
			if request.System != "" {
				request.System += "\n"
			}
			request.System += message.Text()
			continue
		}

		blocks, err := contentPartsToBlocks(message.Content, index)
		if err != nil {
			return messagesRequest{}, err
		}
		request.Messages = append(request.Messages, anthropicMessage{
			Role:    string(message.Role),
			Content: blocks,
		})
	}

	return request, nil
}

// contentPartsToBlocks copies message parts into Messages API content blocks,
// transcoding data-URL images into base64 sources. messageIndex identifies
// the source message for error reporting.
func contentPartsToBlocks(parts []ai.ContentPart, messageIndex int) ([]contentBlock, error) {
	blocks := make([]contentBlock, 0, len(parts))
	for _, part := range parts {
		switch part.Type {
		case ai.PartText:
			blocks = append(blocks, contentBlock{Type: "text", Text: part.Text})

		case ai.PartImage:
			if part.ImageURL == nil {
				continue
			}
			dataURL, err := ai.ParseDataURL(part.ImageURL.URL)
			if err != nil {
				return nil, &ai.ImageDecodeError{MessageIndex: messageIndex, Reason: err.Error()}
			}
			blocks = append(blocks, contentBlock{
				Type: "image",
				Source: &imageSource{
					Type:      "base64",
					MediaType: dataURL.MediaType,
					Data:      dataURL.Data,
				},
			})
		}
	}
	return blocks, nil
}
