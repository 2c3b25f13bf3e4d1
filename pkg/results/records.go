package results

// Level is the coarse persona directive used by the questionnaire protocol.
type Level string

const (
	LevelHigh Level = "high"
	LevelLow  Level = "low"
)

// GenerationRecord is one row of the trait-generation result table: the
// prompted coordinate, the generated text, and the judge's verdict. Judge
// fields are pointers because the judge may omit any of them; Score holds the
// raw token from the judge's JSON ("1", "-2", sometimes "Nondistinguishable")
// so that downstream coercion sees exactly what the judge said.
type GenerationRecord struct {
	ModelKey          string  `json:"model_key"`
	ModelID           string  `json:"model_id"`
	PromptedTrait     string  `json:"prompted_trait"`
	PromptedScore     int     `json:"prompted_score"`
	Question          string  `json:"question"`
	GeneratedText     string  `json:"generated_text"`
	JudgeScore        *string `json:"judge_score"`
	JudgeClues        *string `json:"judge_clues"`
	JudgeReasoning    *string `json:"judge_reasoning"`
	JudgeDecisionType *string `json:"judge_decision_type"`
}

// QuestionnaireRecord is one row of the questionnaire result table: the raw
// textual answer a model gave to a BFI-44 item while role-playing a persona
// level. Scoring the answer happens downstream, not here.
type QuestionnaireRecord struct {
	ModelKey      string `json:"model_key"`
	Trait         string `json:"trait"`
	PromptedLevel Level  `json:"prompted_level"`
	QType         string `json:"Q_type"`
	Answer        string `json:"Answer"`
}
