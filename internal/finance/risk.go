package finance

import "github.com/finlearn/finlearn/models"

// RiskProfile is the result of scoring a completed risk quiz: the raw point
// total and the learning level it classifies into.
type RiskProfile struct {
	Score int                  `json:"score"`
	Level models.LearningLevel `json:"level"`
}

// Thresholds defines the inclusive score boundaries of a classification
// scheme. A score ≤ BeginnerMax classifies as Beginner, a score ≥
// AdvancedMin as Advanced, and everything between as Intermediate.
//
// Keeping the scheme as data ties the question count, point range and
// boundaries together: a quiz with a different shape must ship its own
// Thresholds rather than reuse these.
type Thresholds struct {
	BeginnerMax int
	AdvancedMin int
}

// DefaultThresholds is the canonical scheme for the 3-question onboarding
// quiz where every answer is worth 1–3 points (total range 3–9):
// 3–4 Beginner, 5–7 Intermediate, 8–9 Advanced.
var DefaultThresholds = Thresholds{BeginnerMax: 4, AdvancedMin: 8}

// QuizOption is one selectable answer of a quiz question.
type QuizOption struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// QuizQuestion is a single question of the risk quiz. Each question has a
// stable id and two to three options carrying integer point values.
type QuizQuestion struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Options []QuizOption `json:"options"`
}

// Quiz is the canonical onboarding risk questionnaire. Answers are submitted
// as a map of question id to the chosen option's point value.
var Quiz = []QuizQuestion{
	{
		ID:   "q1",
		Text: "How would you describe your financial knowledge?",
		Options: []QuizOption{
			{Label: "Beginner - I'm just starting", Points: 1},
			{Label: "Intermediate - I know the basics", Points: 2},
			{Label: "Advanced - I understand markets", Points: 3},
		},
	},
	{
		ID:   "q2",
		Text: "What is your primary investment goal?",
		Options: []QuizOption{
			{Label: "Safety - Preserve my capital", Points: 1},
			{Label: "Growth - Moderate returns", Points: 2},
			{Label: "Aggressive - Maximize returns", Points: 3},
		},
	},
	{
		ID:   "q3",
		Text: "How do you react to market drops?",
		Options: []QuizOption{
			{Label: "Panic & Sell", Points: 1},
			{Label: "Wait it out", Points: 2},
			{Label: "Buy more", Points: 3},
		},
	},
}

// ScoreRisk sums the submitted answer points and classifies the total with
// the canonical [DefaultThresholds].
//
// The result depends only on the sum of the values: two answer sets with the
// same total always yield the same profile. An empty answer set scores 0 and
// classifies as Beginner.
func ScoreRisk(answers map[string]int) RiskProfile {
	return ScoreRiskWith(answers, DefaultThresholds)
}

// ScoreRiskWith scores answers against an explicit classification scheme.
func ScoreRiskWith(answers map[string]int, t Thresholds) RiskProfile {
	score := 0
	for _, points := range answers {
		score += points
	}

	level := models.LevelBeginner
	switch {
	case score >= t.AdvancedMin:
		level = models.LevelAdvanced
	case score > t.BeginnerMax:
		level = models.LevelIntermediate
	}

	return RiskProfile{Score: score, Level: level}
}
