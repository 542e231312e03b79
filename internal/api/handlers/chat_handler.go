package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tantsahamarket/chatbot/internal/catalog"
	"github.com/tantsahamarket/chatbot/internal/chat"
	"github.com/tantsahamarket/chatbot/internal/config"
	"github.com/tantsahamarket/chatbot/internal/models"
	"github.com/tantsahamarket/chatbot/internal/upstream"
)

var validate = validator.New()

type ChatHandler struct {
	cfg      *config.Config
	limiter  *chat.RateLimiter
	sessions *chat.SessionManager
	faq      *chat.FaqCache
	gateway  upstream.Gateway
	logger   *slog.Logger
}

func NewChatHandler(cfg *config.Config, limiter *chat.RateLimiter, sessions *chat.SessionManager, faq *chat.FaqCache, gateway upstream.Gateway, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		cfg:      cfg,
		limiter:  limiter,
		sessions: sessions,
		faq:      faq,
		gateway:  gateway,
		logger:   logger,
	}
}

// ChatRequest is the POST body. Stream defaults to true when absent.
type ChatRequest struct {
	Messages []models.Message `json:"messages" validate:"required,max=100,dive"`
	Stream   *bool            `json:"stream"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	SessionID string `json:"sessionId"`
	Fallback  bool   `json:"fallback,omitempty"`
}

type cannedChoice struct {
	Message models.Message `json:"message"`
}

type cannedResponse struct {
	Choices   []cannedChoice `json:"choices"`
	SessionID string         `json:"sessionId"`
	CacheHit  bool           `json:"cacheHit"`
}

// HandleChat runs the full pipeline for one conversation turn:
// rate-limit, validate, resolve session, classify, short-circuit on
// canned answers, then proxy to the gateway streaming or buffered.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	ctx := r.Context()

	clientIP := r.Header.Get("X-Forwarded-For")
	if clientIP == "" {
		clientIP = "unknown"
	}
	clientID := r.Header.Get("X-Client-Id")
	if clientID == "" {
		clientID = "anonymous"
	}
	sessionID := r.Header.Get("X-Session-Id")
	if sessionID == "" {
		sessionID = chat.NewSessionID()
	}
	preferredLanguage := r.Header.Get("X-Language")

	rl, err := h.limiter.Check(ctx, clientIP)
	if err != nil {
		h.writeError(w, reqInfo{startTime, sessionID, clientID, clientIP, preferredLanguage, rl}, chat.NewError(http.StatusInternalServerError, chat.ClassServer, "rate limiter unavailable", err))
		return
	}

	info := reqInfo{startTime, sessionID, clientID, clientIP, preferredLanguage, rl}

	if !rl.Allowed {
		h.logEvent(info, "rate_limit", 0, 0, nil, errors.New("rate limit exceeded"), chat.ClassClient)

		retryAfter := int(math.Ceil(time.Until(rl.ResetTime).Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		h.setRateHeaders(w, rl, sessionID)
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Error:     chat.RateLimitMessage(languageOr(preferredLanguage, "fr")),
			SessionID: sessionID,
		})
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, info, chat.NewError(http.StatusBadRequest, chat.ClassClient, "invalid request body (JSON expected)", err))
		return
	}

	if err := validate.Struct(&req); err != nil {
		h.writeError(w, info, chat.NewError(http.StatusBadRequest, chat.ClassClient, envelopeError(err), err))
		return
	}

	if err := chat.ValidateMessages(req.Messages); err != nil {
		h.writeError(w, info, chat.NewError(http.StatusBadRequest, chat.ClassClient, err.Error(), err))
		return
	}

	lastUserMessage := chat.LastUserMessage(req.Messages)

	detectedLanguage := "fr"
	if lastUserMessage != "" {
		detectedLanguage = chat.DetectLanguage(lastUserMessage)
	}
	language := languageOr(preferredLanguage, detectedLanguage)

	session, err := h.sessions.GetOrCreate(ctx, sessionID, clientID, language)
	if err != nil {
		h.writeError(w, info, chat.NewError(http.StatusInternalServerError, chat.ClassServer, "session store unavailable", err))
		return
	}

	intent := chat.DetectIntent(lastUserMessage, session)
	session.LastIntent = intent
	if intent == chat.IntentContact {
		session.ContactRequested = true
	}

	// Ownership questions always get the fixed canned answer, never
	// the gateway.
	if lastUserMessage != "" && intent == chat.IntentOwnership {
		response := chat.OwnershipResponse(language)
		_ = h.sessions.Save(ctx, session)
		h.logEvent(info, intent, len(req.Messages), len(response), nil, nil, "")
		h.writeCanned(w, rl, session.ID, response)
		return
	}

	if lastUserMessage != "" {
		cached, err := h.faq.Lookup(ctx, lastUserMessage, language)
		if err == nil && cached != "" {
			_ = h.sessions.Save(ctx, session)
			h.logEvent(info, intent, len(req.Messages), len(cached), nil, nil, "")
			h.writeCanned(w, rl, session.ID, cached)
			return
		}
	}

	if lastUserMessage != "" {
		for _, product := range chat.ExtractMentionedProducts(lastUserMessage, session) {
			session.AddInterest(product)
		}
	}

	conversion := models.DeriveConversion(session, intent)

	if err := h.sessions.Save(ctx, session); err != nil {
		h.writeError(w, info, chat.NewError(http.StatusInternalServerError, chat.ClassServer, "session store unavailable", err))
		return
	}

	processed := chat.CompactHistory(req.Messages, session)
	systemPrompt := chat.BuildSystemPrompt(session, intent, time.Now())

	accept := r.Header.Get("Accept")
	supportsStreaming := strings.Contains(accept, "text/event-stream") ||
		req.Stream == nil || *req.Stream

	if supportsStreaming {
		h.streamResponse(ctx, w, info, session, intent, conversion, systemPrompt, processed)
		return
	}
	h.bufferResponse(ctx, w, info, session, intent, conversion, systemPrompt, processed)
}

func (h *ChatHandler) streamResponse(ctx context.Context, w http.ResponseWriter, info reqInfo, session *models.Session, intent string, conversion *models.ConversionEvent, systemPrompt string, messages []models.Message) {
	callCtx, cancel := context.WithTimeout(ctx, h.cfg.UpstreamTimeout)
	defer cancel()

	stream, err := h.gateway.Stream(callCtx, systemPrompt, messages)
	if err != nil {
		h.writeError(w, info, err)
		return
	}

	h.logEvent(info, intent, len(messages), 0, conversion, nil, "")

	h.setRateHeaders(w, info.rl, session.ID)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Client-Id", info.clientID)
	w.Header().Set("X-Session-TTL", strconv.FormatInt(models.SessionTTL.Milliseconds(), 10))
	w.Header().Set("X-Session-Interests", strings.Join(session.Interests, ","))
	w.Header().Set("X-Lead-Qualified", strconv.FormatBool(conversion.LeadQualified))
	w.WriteHeader(http.StatusOK)

	if _, err := pipeStream(w, stream); err != nil {
		// Status is already committed; the stream just ends early.
		h.logEvent(info, intent, len(messages), 0, conversion, err, chat.ClassNetwork)
	}
}

// bufferResponse relies on the gateway's per-attempt timeout; the
// retry budget may exceed one attempt's window, so no outer deadline
// is applied here.
func (h *ChatHandler) bufferResponse(ctx context.Context, w http.ResponseWriter, info reqInfo, session *models.Session, intent string, conversion *models.ConversionEvent, systemPrompt string, messages []models.Message) {
	completion, err := h.gateway.Complete(ctx, systemPrompt, messages)
	if err != nil {
		h.writeError(w, info, err)
		return
	}

	if len(completion.Choices) > 0 {
		content := strings.ToLower(completion.Choices[0].Message.Content)
		conversion.AccountSuggested = strings.Contains(content, "compte") || strings.Contains(content, "account")
	}

	month := catalog.MonthName(time.Now().Month())
	suggestions := catalog.Suggestions(intent, session.MentionedProducts, session.Language, month)
	hasExport := false
	for _, s := range suggestions {
		if s.Category == "export" {
			hasExport = true
		}
	}

	response := bufferedResponse{
		ChatCompletionResponse: completion,
		SessionInfo: sessionInfo{
			SessionID:         session.ID,
			Interests:         session.Interests,
			MentionedProducts: session.MentionedProducts,
			Preferences:       session.Preferences,
			LeadQualified:     conversion.LeadQualified,
			SuggestedAccount:  conversion.AccountSuggested,
			SuggestedProducts: suggestions,
			FollowUpQuestions: chat.FollowUpQuestions(session, len(suggestions), hasExport),
		},
	}

	body, merr := json.Marshal(response)
	if merr != nil {
		h.writeError(w, info, chat.NewError(http.StatusInternalServerError, chat.ClassServer, "response encoding failed", merr))
		return
	}

	h.logEvent(info, intent, len(messages), len(body), conversion, nil, "")

	h.setRateHeaders(w, info.rl, session.ID)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Client-Id", info.clientID)
	w.Header().Set("X-Session-TTL", strconv.FormatInt(models.SessionTTL.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// reqInfo carries the per-request identifiers threaded through logging
// and error shaping.
type reqInfo struct {
	startTime         time.Time
	sessionID         string
	clientID          string
	clientIP          string
	preferredLanguage string
	rl                chat.RateLimitResult
}

func (h *ChatHandler) writeCanned(w http.ResponseWriter, rl chat.RateLimitResult, sessionID, content string) {
	h.setRateHeaders(w, rl, sessionID)
	writeJSON(w, http.StatusOK, cannedResponse{
		Choices:   []cannedChoice{{Message: models.Message{Role: "assistant", Content: content}}},
		SessionID: sessionID,
		CacheHit:  true,
	})
}

func (h *ChatHandler) setRateHeaders(w http.ResponseWriter, rl chat.RateLimitResult, sessionID string) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(models.RateLimitMax))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(rl.Remaining))
	if !rl.ResetTime.IsZero() {
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(rl.ResetTime.Unix(), 10))
	}
	w.Header().Set("X-Session-Id", sessionID)
}

// writeError translates any failure into a classified JSON response
// with a localized fallback message, logging it once with full
// context. Internal details are only attached in development.
func (h *ChatHandler) writeError(w http.ResponseWriter, info reqInfo, err error) {
	language := languageOr(info.preferredLanguage, "fr")

	status := http.StatusInternalServerError
	class := chat.ClassServer
	message := chat.FallbackResponse(language)

	var chatErr *chat.Error
	switch {
	case errors.As(err, &chatErr):
		status = chatErr.Status
		class = chatErr.Class
		message = chatErr.Message
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusRequestTimeout
		class = chat.ClassNetwork
		message = chat.TimeoutMessage(language)
	}

	h.logEvent(info, "error", 0, 0, nil, err, class)

	h.setRateHeaders(w, info.rl, info.sessionID)
	w.Header().Set("X-Error-Type", class)

	resp := errorResponse{
		Error:     message,
		SessionID: info.sessionID,
		Fallback:  status >= http.StatusInternalServerError,
	}
	if h.cfg.IsDevelopment() {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func (h *ChatHandler) logEvent(info reqInfo, intent string, messageCount, responseLength int, conversion *models.ConversionEvent, err error, class string) {
	attrs := []any{
		slog.String("session_id", info.sessionID),
		slog.String("client_id", info.clientID),
		slog.String("ip", info.clientIP),
		slog.String("intent", intent),
		slog.Int("message_count", messageCount),
		slog.Int("response_length", responseLength),
		slog.Int64("latency_ms", time.Since(info.startTime).Milliseconds()),
	}
	if conversion != nil {
		attrs = append(attrs, slog.Any("conversion", conversion))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()), slog.String("error_type", class))
		h.logger.Error("chat", attrs...)
		return
	}
	h.logger.Info("chat", attrs...)
}

func languageOr(preferred, fallback string) string {
	switch preferred {
	case "fr", "mg", "en":
		return preferred
	}
	return fallback
}

// envelopeError maps struct-level validation failures to the messages
// callers see.
func envelopeError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch {
			case fe.Field() == "Messages" && fe.Tag() == "required":
				return `missing or invalid "messages" field`
			case fe.Field() == "Messages" && fe.Tag() == "max":
				return fmt.Sprintf("too many messages (max %d)", models.MaxMessages)
			case fe.Field() == "Role":
				return fmt.Sprintf("invalid role: %v", fe.Value())
			}
		}
	}
	return "invalid request"
}
