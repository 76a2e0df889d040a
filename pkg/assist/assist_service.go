package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"recipehub/domain"
	"recipehub/internal/utils"
)

type (
	// AssistService turns a free-form idea into a recipe draft. Drafts are never
	// persisted here; callers submit them through the normal create path.
	AssistService interface {
		GenerateRecipeDraft(ctx context.Context, req domain.GenerateRecipeRequest) (domain.RecipeDraft, error)
	}

	assistService struct {
		httpClient *http.Client
	}
)

func NewAssistService() AssistService {
	return &assistService{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *assistService) GenerateRecipeDraft(ctx context.Context, req domain.GenerateRecipeRequest) (domain.RecipeDraft, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return domain.RecipeDraft{}, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return domain.RecipeDraft{}, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	prompt := fmt.Sprintf(
		"You are a professional chef writing recipes for a home-cooking community. "+
			"Turn the following idea into one complete recipe: %q. "+
			"Generate the response as a single valid JSON object with these fields: "+
			"title, description, category, difficulty (easy, medium or hard), "+
			"prep_time_minutes, cook_time_minutes, servings, "+
			"ingredients (array of strings), instructions (array of strings), tags (array of strings). "+
			"Make the recipe realistic and the steps precise. "+
			"Do not include any explanations or text outside of the JSON object.",
		req.Idea,
	)

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return domain.RecipeDraft{}, err
	}

	geminiReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.RecipeDraft{}, err
	}
	geminiReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(geminiReq)
	if err != nil {
		return domain.RecipeDraft{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.RecipeDraft{}, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return domain.RecipeDraft{}, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return domain.RecipeDraft{}, domain.ErrGenerationFailed
	}

	responseText := strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text)

	// The model sometimes wraps the JSON in markdown fences or prose.
	startIdx := strings.Index(responseText, "{")
	endIdx := strings.LastIndex(responseText, "}")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return domain.RecipeDraft{}, domain.ErrGenerationFailed
	}
	responseText = responseText[startIdx : endIdx+1]

	var draft domain.RecipeDraft
	if err := json.Unmarshal([]byte(responseText), &draft); err != nil {
		return domain.RecipeDraft{}, domain.ErrGenerationFailed
	}

	if draft.Servings <= 0 {
		draft.Servings = 4
	}
	if draft.Difficulty == "" {
		draft.Difficulty = "medium"
	}

	return draft, nil
}
