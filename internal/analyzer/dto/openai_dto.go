package dto

// OpenAIRequest is the request payload for the OpenAI chat completions API.
type OpenAIRequest struct {
	Model          string                `json:"model"`
	Messages       []OpenAIMessage       `json:"messages"`
	ResponseFormat *OpenAIResponseFormat `json:"response_format,omitempty"`
}

// OpenAIMessage is one chat message.
type OpenAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIResponseFormat constrains the model output; {"type":"json_object"}
// forces a single JSON object.
type OpenAIResponseFormat struct {
	Type string `json:"type"`
}

// OpenAIResponse is the response from the OpenAI chat completions API.
type OpenAIResponse struct {
	Choices []OpenAIChoice `json:"choices"`
	Error   *OpenAIError   `json:"error,omitempty"`
}

// OpenAIChoice is one completion candidate.
type OpenAIChoice struct {
	Message OpenAIChoiceMessage `json:"message"`
}

// OpenAIChoiceMessage is the message of a completion candidate.
type OpenAIChoiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Refusal string `json:"refusal,omitempty"`
}

// OpenAIError is the error body returned on non-2xx responses.
type OpenAIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}
