package judge

import (
	"context"
	"fmt"

	"github.com/kamilpajak/traitlab/internal/llm"
	"github.com/kamilpajak/traitlab/pkg/bigfive"
	"go.uber.org/zap"
)

// Judge scores generated text for trait expression via a hosted model.
type Judge struct {
	gen     llm.Generator
	modelID string
	logger  *zap.Logger
}

// New builds a Judge backed by the given generator and judge model ID.
func New(gen llm.Generator, modelID string, logger *zap.Logger) *Judge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Judge{gen: gen, modelID: modelID, logger: logger}
}

// Evaluate asks the judge model how strongly the generated text expresses the
// trait and parses its verdict. Judge calls always run at temperature 0. A
// backend error propagates to the caller, which drops the row; an unparseable
// reply instead yields the sentinel verdict and the row survives.
func (j *Judge) Evaluate(ctx context.Context, trait bigfive.Trait, question, generated string) (Verdict, error) {
	raw, err := j.gen.Generate(ctx, j.modelID, llm.Request{
		System:      SystemPrompt(trait),
		User:        UserPrompt(question, generated),
		Temperature: llm.Temp(0),
	})
	if err != nil {
		return Verdict{}, err
	}

	v := ParseVerdict(raw)
	if v.IsParseError() {
		j.logger.Warn("judge verdict did not parse",
			zap.String("trait", trait.Name),
			zap.String("raw", raw))
	}
	return v, nil
}

// SystemPrompt is the judge instruction for one trait: detect the author's
// score on the [-2,2] scale (or Nondistinguishable) via a five-step protocol
// ending in pure JSON with keys score, clues, reasoning, decision type.
func SystemPrompt(t bigfive.Trait) string {
	name := t.Name
	c := t.Classification
	return fmt.Sprintf("You will be provided with answers to questions. "+
		"Detect the score of %s for the author of the INPUT from the list [-2, -1, 0, 1, 2] or Nondistinguishable. "+
		"Use INSTRUCTION. "+
		"TASK: "+
		"1. First, list CLUES (i.e., keywords, phrases, contextual information, semantic relations, semantic meaning, tones, references) that support the score determination of %s of INPUT. "+
		"2. Second, deduce the diagnostic REASONING process from premises (i.e., clues, input) that supports the INPUT score determination (Limit the number of words to 130). "+
		"3. Third, based on clues, reasoning and input, determine the score of %s for the author of INPUT from the list [-2, -1, 0, 1, 2] or Nondistinguishable. "+
		"4. Mark what made you choose this score as decision type: Explicit signs, Implicit signs, Intuition, Nondistinguishable. "+
		"5. Provide your output in JSON format with the keys: score, clues, reasoning, decision type. PROVIDE ONLY JSON. "+
		"INSTRUCTION: "+
		"- Definition: %s "+
		"- High score of %s (maximum 2): '%s' "+
		"- Low score of %s (minimum -2): '%s' "+
		"- Explicit signs: The person mentions obvious facts that are connected with this trait score. "+
		"- Implicit signs: The person mentions facts that may imply them having this trait score. "+
		"- Intuition: My intuition tells that the person has this trait score. "+
		"- Nondistinguishable: I can't tell what trait score the person has. "+
		"- If the text does not contain substantial, significant, and convincing indicators of the trait score, then use Nondistinguishable. "+
		"- Choose something other than Nondistinguishable if you have a high degree of confidence in the answer.",
		name, name, name, c.Definition, name, c.High, name, c.Low)
}

// UserPrompt pairs the original question with the text under judgment.
func UserPrompt(question, generated string) string {
	return fmt.Sprintf("Question: %s INPUT: %s", question, generated)
}
