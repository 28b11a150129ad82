package agent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/courtside-labs/boxscore-cli/internal/model"
	"github.com/courtside-labs/boxscore-cli/pkg/anthropic"
)

// defaultVisionConfidence applies when the reply carries no parseable
// CONFIDENCE: line.
const defaultVisionConfidence = 0.85

// Vision answers questions by reading the game's boxscore screenshot.
type Vision struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewVision creates the vision engine.
func NewVision(client anthropic.Client, modelID string, maxTokens int64) *Vision {
	return &Vision{client: client, model: modelID, maxTokens: maxTokens}
}

const visionSystemPrompt = `You are an expert basketball analyst analyzing game boxscores.
When answering questions about the boxscore image:
1. Look carefully at all player statistics shown
2. Provide a clear, concise answer
3. Include specific numbers from the boxscore
4. After your answer, on a new line, provide a confidence score from 0.0 to 1.0 in the format: CONFIDENCE: 0.XX

Focus on accuracy - the data in the image is the source of truth.`

const visionPromptFormat = `Analyze this basketball boxscore image and answer the following question:

Question: %s

Instructions:
- Look at the complete boxscore data shown in the image
- Find the specific statistics needed to answer the question
- Provide a clear, direct answer with specific numbers
- If the question asks about "top" or "most", find the maximum value
- Include the player name and their team when relevant

Answer the question based solely on what you can see in the image.`

// mediaTypes maps file extensions to declared media types.
var mediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Ask answers a question about the screenshot at the given path. The path
// must be set and the file must exist before any external call is made.
func (v *Vision) Ask(ctx context.Context, question, screenshotPath string) model.AgentResult {
	if screenshotPath == "" {
		return model.AgentResult{Error: "No screenshot path provided"}
	}
	data, err := os.ReadFile(screenshotPath)
	if err != nil {
		return model.AgentResult{Error: "Screenshot not found: " + screenshotPath}
	}

	mediaType, ok := mediaTypes[strings.ToLower(filepath.Ext(screenshotPath))]
	if !ok {
		mediaType = "image/png"
	}

	resp, err := v.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     v.model,
		MaxTokens: v.maxTokens,
		System:    []anthropic.SystemBlock{{Text: visionSystemPrompt}},
		Messages: []anthropic.Message{{
			Role:    "user",
			Content: visionPrompt(question),
			Image:   &anthropic.Image{MediaType: mediaType, Data: data},
		}},
	})
	if err != nil {
		return model.AgentResult{Error: "Vision analysis failed: " + err.Error()}
	}
	resp.Usage.LogCost(v.model, "vision")

	answer, confidence := parseVisionReply(resp.Text())
	return model.AgentResult{
		Answer:     answer,
		Confidence: confidence,
		Screenshot: screenshotPath,
	}
}

func visionPrompt(question string) string {
	return fmt.Sprintf(visionPromptFormat, question)
}

// parseVisionReply splits the model's self-reported confidence out of its
// answer. Any line starting CONFIDENCE: is parsed as a float, clamped to
// [0, 1], and removed from the answer body; remaining lines are rejoined in
// order.
func parseVisionReply(text string) (string, float64) {
	confidence := defaultVisionConfidence
	var answerLines []string

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.HasPrefix(strings.ToUpper(line), "CONFIDENCE:") {
			if _, raw, ok := strings.Cut(line, ":"); ok {
				if c, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
					confidence = min(1.0, max(0.0, c))
				}
			}
			continue
		}
		answerLines = append(answerLines, line)
	}

	return strings.TrimSpace(strings.Join(answerLines, "\n")), confidence
}
