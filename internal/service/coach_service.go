package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/noah-isme/eduverse-api/internal/models"
	"github.com/noah-isme/eduverse-api/pkg/config"
	"github.com/noah-isme/eduverse-api/pkg/gemini"
)

// Degraded answers of the free-text capabilities.
const (
	ExplainNotConfigured = "AI Service is not configured. Please check your API Key."
	ExplainEmpty         = "I couldn't generate an explanation at this time."
	ExplainFailed        = "Sorry, I'm having trouble connecting to the knowledge base right now."

	HintNotConfigured = "AI Service is not configured."
	HintEmpty         = "Keep trying! Break the problem down into smaller steps."
	HintFailed        = "I couldn't generate a hint right now."

	DefaultGradeLevel = "10th Grade"
)

const (
	capabilityExplain   = "explain"
	capabilityHint      = "hint"
	capabilityStudyPlan = "study_plan"
	capabilityRoadmap   = "roadmap"
	capabilityQuiz      = "quiz"

	dueDateLayout = "Mon Jan 02 2006"
)

// Generator produces model output for a prompt.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.Request) (string, error)
}

// GeneratorFactory builds the model client from an API key.
type GeneratorFactory func(apiKey string) (Generator, error)

// GeminiFactory returns a factory building GenAI clients with the given settings.
func GeminiFactory(cfg config.GeminiConfig) GeneratorFactory {
	return func(apiKey string) (Generator, error) {
		client, err := gemini.NewClient(context.Background(), gemini.Options{
			APIKey:  apiKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

// CoachServiceParams configures a CoachService.
type CoachServiceParams struct {
	APIKey     string
	NewClient  GeneratorFactory
	Chats      *ChatStore
	Metrics    *MetricsService
	Logger     *zap.Logger
	Clock      func() time.Time
	IDProvider func() string
}

// CoachService is the AI orchestration layer. Every capability returns a usable value:
// free-text capabilities degrade to fixed sentences and structured ones to nil.
type CoachService struct {
	apiKey    string
	newClient GeneratorFactory
	chats     *ChatStore
	metrics   *MetricsService
	logger    *zap.Logger

	once   sync.Once
	client Generator
}

// NewCoachService builds a CoachService. The model client is created on first use.
func NewCoachService(params CoachServiceParams) *CoachService {
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	if params.Chats == nil {
		params.Chats = NewChatStore(defaultTranscriptLimit, defaultSessionLimit, params.Clock, params.IDProvider)
	}
	return &CoachService{
		apiKey:    strings.TrimSpace(params.APIKey),
		newClient: params.NewClient,
		chats:     params.Chats,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// Configured reports whether an API key is available.
func (s *CoachService) Configured() bool {
	return s.apiKey != "" && s.newClient != nil
}

// generator returns the cached client, constructing it once. It returns nil when no key
// is configured or construction failed.
func (s *CoachService) generator() Generator {
	if !s.Configured() {
		return nil
	}
	s.once.Do(func() {
		client, err := s.newClient(s.apiKey)
		if err != nil {
			s.logger.Error("failed to create model client", zap.Error(err))
			return
		}
		s.client = client
	})
	return s.client
}

// ExplainConcept explains a concept for a student of the given grade level.
func (s *CoachService) ExplainConcept(ctx context.Context, concept, subject, grade string) string {
	if strings.TrimSpace(grade) == "" {
		grade = DefaultGradeLevel
	}
	prompt := fmt.Sprintf(`You are an expert %s tutor for a %s student.
Explain the concept of "%s" clearly and concisely.
Use an analogy if possible to make it easier to understand.
Keep the response under 200 words.
Format with Markdown.`, subject, grade, concept)

	return s.generateText(ctx, capabilityExplain, prompt, ExplainNotConfigured, ExplainEmpty, ExplainFailed)
}

// GetHomeworkHint returns a guiding hint that does not give the answer away.
func (s *CoachService) GetHomeworkHint(ctx context.Context, description, subject string) string {
	prompt := fmt.Sprintf(`The student is working on this %s task: "%s".
Provide a helpful hint or a guiding question to help them solve it themselves.
DO NOT provide the final answer or write the essay for them.
Be encouraging.`, subject, description)

	return s.generateText(ctx, capabilityHint, prompt, HintNotConfigured, HintEmpty, HintFailed)
}

// GenerateStudyPlan schedules the given tasks into the available hours.
func (s *CoachService) GenerateStudyPlan(ctx context.Context, tasks []models.Task, hours float64) *models.StudyPlan {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, fmt.Sprintf("%s: %s (Due: %s)", task.Subject, task.Title, task.DueDate.Format(dueDateLayout)))
	}
	prompt := fmt.Sprintf(`I have %s hours available for studying today.
Here are my tasks:
%s

Create a study schedule for me. Prioritize tasks due sooner.
Break down the time into sessions with breaks.
Return ONLY valid JSON with this structure:
{
  "plan": [
    { "time": "00:00 - 00:00", "activity": "Subject - Activity", "type": "study" | "break" }
  ],
  "tip": "A quick study tip"
}`, formatHours(hours), strings.Join(lines, "\n"))

	var plan models.StudyPlan
	if !s.generateJSON(ctx, capabilityStudyPlan, prompt, studyPlanSchema, &plan) {
		return nil
	}
	return &plan
}

// GenerateCareerRoadmap lists milestones from high school to the given career.
func (s *CoachService) GenerateCareerRoadmap(ctx context.Context, career string) *models.CareerRoadmap {
	prompt := fmt.Sprintf(`I am a high school student who wants to become a "%s".
Create a roadmap of key milestones I need to achieve, starting from now (High School) to getting the job.
Include education, skills, and experience steps.
Return JSON.`, career)

	var roadmap models.CareerRoadmap
	if !s.generateJSON(ctx, capabilityRoadmap, prompt, roadmapSchema, &roadmap) {
		return nil
	}
	for i := range roadmap.Roadmap {
		if roadmap.Roadmap[i].ID == "" {
			roadmap.Roadmap[i].ID = fmt.Sprintf("step-%d", i+1)
		}
	}
	return &roadmap
}

// GenerateQuiz builds three multiple choice questions on a topic.
func (s *CoachService) GenerateQuiz(ctx context.Context, subject, topic string) *models.Quiz {
	prompt := fmt.Sprintf("Generate 3 multiple choice questions for %s about %s. Return JSON.", subject, topic)

	var quiz models.Quiz
	if !s.generateJSON(ctx, capabilityQuiz, prompt, quizSchema, &quiz) {
		return nil
	}
	return &quiz
}

func (s *CoachService) generateText(ctx context.Context, capability, prompt, notConfigured, empty, failed string) string {
	client := s.generator()
	if client == nil {
		s.metrics.RecordAIRequest(capability, AIOutcomeUnconfigured, 0)
		return notConfigured
	}

	start := time.Now()
	text, err := client.GenerateContent(ctx, gemini.Request{Prompt: prompt})
	elapsed := time.Since(start)
	if err != nil {
		s.logger.Error("model call failed", zap.String("capability", capability), zap.Error(err))
		s.metrics.RecordAIRequest(capability, AIOutcomeError, elapsed)
		return failed
	}
	if strings.TrimSpace(text) == "" {
		s.metrics.RecordAIRequest(capability, AIOutcomeEmpty, elapsed)
		return empty
	}
	s.metrics.RecordAIRequest(capability, AIOutcomeOK, elapsed)
	return text
}

// generateJSON requests schema constrained output and decodes it into dest. It reports
// false on every failure, each of which has already been logged.
func (s *CoachService) generateJSON(ctx context.Context, capability, prompt string, schema *genai.Schema, dest interface{}) bool {
	client := s.generator()
	if client == nil {
		s.metrics.RecordAIRequest(capability, AIOutcomeUnconfigured, 0)
		return false
	}

	start := time.Now()
	text, err := client.GenerateContent(ctx, gemini.Request{Prompt: prompt, Schema: schema})
	elapsed := time.Since(start)
	if err != nil {
		s.logger.Error("model call failed", zap.String("capability", capability), zap.Error(err))
		s.metrics.RecordAIRequest(capability, AIOutcomeError, elapsed)
		return false
	}

	payload := stripCodeFence(text)
	if payload == "" {
		s.logger.Warn("model returned no content", zap.String("capability", capability))
		s.metrics.RecordAIRequest(capability, AIOutcomeEmpty, elapsed)
		return false
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		s.logger.Error("model returned invalid JSON", zap.String("capability", capability), zap.Error(err))
		s.metrics.RecordAIRequest(capability, AIOutcomeInvalid, elapsed)
		return false
	}
	s.metrics.RecordAIRequest(capability, AIOutcomeOK, elapsed)
	return true
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if nl := strings.IndexByte(trimmed, '\n'); nl >= 0 {
		trimmed = trimmed[nl+1:]
	} else {
		trimmed = strings.TrimPrefix(trimmed, "json")
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func formatHours(hours float64) string {
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%d", int(hours))
	}
	return fmt.Sprintf("%.1f", hours)
}

var (
	studyPlanSchema = gemini.Object(map[string]*genai.Schema{
		"plan": gemini.ArrayOf(gemini.Object(map[string]*genai.Schema{
			"time":     gemini.String(),
			"activity": gemini.String(),
			"type":     gemini.String(string(models.StudySessionStudy), string(models.StudySessionBreak)),
		})),
		"tip": gemini.String(),
	})

	roadmapSchema = gemini.Object(map[string]*genai.Schema{
		"roadmap": gemini.ArrayOf(gemini.Object(map[string]*genai.Schema{
			"title":       gemini.String(),
			"description": gemini.String(),
			"timeframe":   gemini.String(),
			"type": gemini.String(
				string(models.RoadmapStepEducation),
				string(models.RoadmapStepSkill),
				string(models.RoadmapStepExperience),
			),
		})),
	})

	quizSchema = gemini.Object(map[string]*genai.Schema{
		"questions": gemini.ArrayOf(gemini.Object(map[string]*genai.Schema{
			"question":           gemini.String(),
			"options":            gemini.ArrayOf(gemini.String()),
			"correctAnswerIndex": gemini.Integer(),
		})),
	})
)
