package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tantsahamarket/chatbot/internal/catalog"
	"github.com/tantsahamarket/chatbot/internal/models"
)

// sessionInfo annotates buffered responses with the conversation
// context accumulated so far.
type sessionInfo struct {
	SessionID         string               `json:"sessionId"`
	Interests         []string             `json:"interests"`
	MentionedProducts []string             `json:"mentionedProducts"`
	Preferences       *models.Preferences  `json:"preferences,omitempty"`
	LeadQualified     bool                 `json:"leadQualified"`
	SuggestedAccount  bool                 `json:"suggestedAccount"`
	SuggestedProducts []catalog.Suggestion `json:"suggestedProducts,omitempty"`
	FollowUpQuestions []string             `json:"followUpQuestions,omitempty"`
}

type bufferedResponse struct {
	openai.ChatCompletionResponse
	SessionInfo sessionInfo `json:"sessionInfo"`
}

// writeJSON writes a JSON body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// pipeStream proxies the upstream SSE stream to the caller: each delta
// chunk is re-emitted as an OpenAI-style "data:" event, terminated by
// "data: [DONE]". Returns the number of chunks forwarded and any read
// error after the response status has been committed.
func pipeStream(w http.ResponseWriter, stream *openai.ChatCompletionStream) (int, error) {
	defer stream.Close()

	flusher, _ := w.(http.Flusher)

	chunks := 0
	for {
		chunk, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			fmt.Fprint(w, "data: [DONE]\n\n")
			if flusher != nil {
				flusher.Flush()
			}
			return chunks, err
		}

		b, merr := json.Marshal(chunk)
		if merr != nil {
			return chunks, merr
		}
		fmt.Fprintf(w, "data: %s\n\n", b)
		if flusher != nil {
			flusher.Flush()
		}
		chunks++
	}
}
