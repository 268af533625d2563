// ABOUTME: Wire types for the generateContent endpoint of the hosted model API
// ABOUTME: Only the fields the report requester sends or reads are modeled

package report

import "strings"

type textPart struct {
	Text    string `json:"text,omitempty"`
	Thought bool   `json:"thought,omitempty"`
}

type content struct {
	Role  string     `json:"role,omitempty"`
	Parts []textPart `json:"parts"`
}

type googleSearch struct{}

type tool struct {
	GoogleSearch *googleSearch `json:"googleSearch,omitempty"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type generationConfig struct {
	ThinkingConfig *thinkingConfig `json:"thinkingConfig,omitempty"`
}

type generateContentRequest struct {
	SystemInstruction content           `json:"systemInstruction"`
	Contents          []content         `json:"contents"`
	Tools             []tool            `json:"tools"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

func newGenerateContentRequest(topic string, thinkingBudget int) generateContentRequest {
	return generateContentRequest{
		SystemInstruction: content{Parts: []textPart{{Text: SystemInstruction()}}},
		Contents: []content{{
			Role:  "user",
			Parts: []textPart{{Text: UserPrompt(topic)}},
		}},
		Tools: []tool{{GoogleSearch: &googleSearch{}}},
		GenerationConfig: &generationConfig{
			ThinkingConfig: &thinkingConfig{ThinkingBudget: thinkingBudget},
		},
	}
}

// webChunk is the web citation inside a grounding chunk
type webChunk struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type groundingChunk struct {
	Web *webChunk `json:"web"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type candidate struct {
	Content           *content           `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

// text concatenates the non-thought text parts of the first candidate
func (r *generateContentResponse) text() string {
	if len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		if part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// groundingChunks returns the first candidate's citations, if any
func (r *generateContentResponse) groundingChunks() []groundingChunk {
	if len(r.Candidates) == 0 || r.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	return r.Candidates[0].GroundingMetadata.GroundingChunks
}

type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
