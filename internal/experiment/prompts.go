package experiment

import (
	"fmt"
	"strings"

	"github.com/kamilpajak/traitlab/pkg/bigfive"
	"github.com/kamilpajak/traitlab/pkg/results"
)

// PersonaPrompt instructs a model to answer as a person whose trait is rated
// score on the 1-5 scale, quoting the generation-view anchors.
func PersonaPrompt(t bigfive.Trait, score int) string {
	return fmt.Sprintf("TASK: Answer the QUESTION according to your PERSONALITY. Use INSTRUCTION. "+
		"Use at most 5 sentences. Do not mention your personality traits in the text. "+
		"Type only the answer, without the information about your personality score. "+
		"PERSONALITY: - Your personality trait \"%s\" is rated as %d. "+
		"INSTRUCTION: - The personality trait is rated from 1 to 5. 1 is the lowest score and 5 is the highest score. "+
		"- %s - %s",
		t.Name, score, t.Generation.Low, t.Generation.High)
}

// QuestionPrompt wraps a generation question in its fenced block.
func QuestionPrompt(question string) string {
	return fmt.Sprintf("QUESTION:\n```\n%s\n```", question)
}

// QuestionnairePrompt instructs a model to role-play a persona level and
// answer using only the literal Likert phrases, listed twice: as bullet
// options and as a bracketed constant list.
func QuestionnairePrompt(t bigfive.Trait, level results.Level, scale []bigfive.LikertOption) string {
	description := t.Generation.High
	if level == results.LevelLow {
		description = t.Generation.Low
	}
	traitPrompt := fmt.Sprintf("Act as a person with a %s score in %s. %s", level, t.Name, description)

	options := make([]string, len(scale))
	quoted := make([]string, len(scale))
	for i, opt := range scale {
		options[i] = "- " + opt.Phrase
		quoted[i] = "'" + opt.Phrase + "'"
	}

	return fmt.Sprintf("TASK: Indicate your level of agreement or disagreement with the statement in the CHARACTERISTICS according to your PERSONALITY. "+
		"Use only the PROVIDED OPTIONS. "+
		"PERSONALITY: ``` %s ``` "+
		"PROVIDED OPTIONS: %s "+
		"Provide your output only from the constant list [%s] without explanation.",
		traitPrompt, strings.Join(options, "\n"), strings.Join(quoted, ", "))
}

// StatementPrompt wraps a BFI-44 item statement in its fenced block.
func StatementPrompt(statement string) string {
	return fmt.Sprintf("CHARACTERISTICS:\n```\n%s\n```", statement)
}
