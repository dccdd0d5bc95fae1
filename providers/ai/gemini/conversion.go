package gemini

import (
	"github.com/kwen-qodo/screenshot-to-code/internal/utils"
	"github.com/kwen-qodo/screenshot-to-code/providers/ai"
)

// requestToGenerateContent converts the canonical request into the Gemini
// wire format. System messages collect into systemInstruction; user and
// assistant turns map to "user" and "model" contents.
//
// Image handling is deliberately narrow: only the final message's image parts
// are considered, and only the first of them is forwarded — inline for a data
// URL, by fileUri for a remote reference. Earlier screenshots belong to turns
// the model has already answered, and multi-image prompts are not supported
// on this path. A malformed data URL fails with *ai.ImageDecodeError naming
// the final message's index.
func requestToGenerateContent(req ai.StreamRequest) (generateContentRequest, error) {
	request := generateContentRequest{
		GenerationConfig: &generationConfig{
			MaxOutputTokens: req.Model.MaxOutputTokens,
		},
	}
	if req.Model.DefaultTemperature != nil {
		request.GenerationConfig.Temperature = utils.Ptr(*req.Model.DefaultTemperature)
	}

	lastIndex := len(req.Messages) - 1

	for index, message := range req.Messages {
		if message.Role == ai.RoleSystem {
			if text := message.Text(); text != "" {
				if request.SystemInstruction == nil {
					request.SystemInstruction = &geminiContent{}
				}
				request.SystemInstruction.Parts = append(request.SystemInstruction.Parts, geminiPart{Text: text})
			}
			continue
		}

		content := geminiContent{Role: geminiRole(message.Role)}
		if text := message.Text(); text != "" {
			content.Parts = append(content.Parts, geminiPart{Text: text})
		}

		if index == lastIndex {
			imagePart, err := firstImagePart(message, index)
			if err != nil {
				return generateContentRequest{}, err
			}
			if imagePart != nil {
				content.Parts = append(content.Parts, *imagePart)
			}
		}

		if len(content.Parts) > 0 {
			request.Contents = append(request.Contents, content)
		}
	}

	return request, nil
}

// firstImagePart extracts the first image of the message, or nil when the
// message carries no images.
func firstImagePart(message ai.Message, messageIndex int) (*geminiPart, error) {
	for _, part := range message.Content {
		if part.Type != ai.PartImage || part.ImageURL == nil {
			continue
		}

		if !ai.IsDataURL(part.ImageURL.URL) {
			return &geminiPart{FileData: &fileData{FileURI: part.ImageURL.URL}}, nil
		}

		dataURL, err := ai.ParseDataURL(part.ImageURL.URL)
		if err != nil {
			return nil, &ai.ImageDecodeError{MessageIndex: messageIndex, Reason: err.Error()}
		}
		return &geminiPart{InlineData: &inlineData{
			MimeType: dataURL.MediaType,
			Data:     dataURL.Data,
		}}, nil
	}
	return nil, nil
}

// geminiRole maps canonical roles to the two roles Gemini accepts in contents.
func geminiRole(role ai.MessageRole) string {
	if role == ai.RoleAssistant {
		return "model"
	}
	return "user"
}
