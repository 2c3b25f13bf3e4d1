// Package experiment drives the two personality sweeps over a model roster:
// persona-prompted text generation scored by a judge model, and BFI-44
// questionnaire role-play. Both sweeps are single-threaded and visit their
// coordinate space in a fixed order, so two runs against deterministic
// backends produce identical row sequences.
package experiment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kamilpajak/traitlab/internal/judge"
	"github.com/kamilpajak/traitlab/internal/llm"
	"github.com/kamilpajak/traitlab/pkg/bigfive"
	"github.com/kamilpajak/traitlab/pkg/results"
)

// Intensity bounds of the prompted 1-5 trait scale.
const (
	scoreMin = 1
	scoreMax = 5
)

// Params configures an Engine. Roster and Judge are required; the remaining
// fields default to the full Big Five catalogue, a no-op logger and a no-op
// reporter.
type Params struct {
	Roster     []llm.Model
	Judge      *judge.Judge
	Traits     []bigfive.Trait
	Questions  []string
	ItemGroups []bigfive.ItemGroup
	Likert     []bigfive.LikertOption
	Logger     *zap.Logger
	Reporter   Reporter
}

// Engine executes the sweeps described by its Params.
type Engine struct {
	roster    []llm.Model
	judge     *judge.Judge
	traits    []bigfive.Trait
	questions []string
	groups    []bigfive.ItemGroup
	scale     []bigfive.LikertOption
	logger    *zap.Logger
	reporter  Reporter
}

// New builds an Engine, filling unset optional Params with defaults.
func New(p Params) *Engine {
	if p.Traits == nil {
		p.Traits = bigfive.Traits()
	}
	if p.Questions == nil {
		p.Questions = bigfive.Questions()
	}
	if p.ItemGroups == nil {
		p.ItemGroups = bigfive.ItemGroups()
	}
	if p.Likert == nil {
		p.Likert = bigfive.LikertScale()
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Reporter == nil {
		p.Reporter = NopReporter{}
	}
	return &Engine{
		roster:    p.Roster,
		judge:     p.Judge,
		traits:    p.Traits,
		questions: p.Questions,
		groups:    p.ItemGroups,
		scale:     p.Likert,
		logger:    p.Logger,
		reporter:  p.Reporter,
	}
}

// Run executes the generation sweep followed by the questionnaire sweep and
// assembles a complete Run. It returns an error only when the context is
// cancelled; per-row backend failures are counted and skipped.
func (e *Engine) Run(ctx context.Context) (*results.Run, error) {
	run := results.NewRun()

	gen, genSkips, err := e.RunGeneration(ctx)
	if err != nil {
		return nil, err
	}
	quest, questSkips, err := e.RunQuestionnaire(ctx)
	if err != nil {
		return nil, err
	}

	run.Generation = gen
	run.Questionnaire = quest
	run.Skips = results.SkipCounts{
		Generation:    genSkips.Generation,
		Judge:         genSkips.Judge,
		ParseErrors:   genSkips.ParseErrors,
		Questionnaire: questSkips.Questionnaire,
	}
	run.FinishedAt = time.Now().UTC()
	return run, nil
}

// RunGeneration sweeps model x trait x intensity x question. Each visited
// coordinate asks the model to answer in persona and hands the answer to the
// judge. A failed generation or a failed judge call drops the row; an
// unparseable judge reply keeps the row with the parse-error verdict.
func (e *Engine) RunGeneration(ctx context.Context) ([]results.GenerationRecord, results.SkipCounts, error) {
	var (
		records []results.GenerationRecord
		skips   results.SkipCounts
	)

	total := len(e.roster) * len(e.traits) * scoreMax * len(e.questions)
	e.reporter.Emit(ProgressEvent{Type: "start", Protocol: "generation", MaxStep: total})

	step := 0
	for _, model := range e.roster {
		e.logger.Info("testing model", zap.String("model", model.Spec.Key))
		for _, trait := range e.traits {
			for score := scoreMin; score <= scoreMax; score++ {
				for _, question := range e.questions {
					step++
					if err := ctx.Err(); err != nil {
						return records, skips, err
					}
					e.reporter.Emit(ProgressEvent{
						Type:    "step",
						Step:    step,
						MaxStep: total,
						Message: fmt.Sprintf("Generating for %s, %s, Score %d...", model.Spec.Key, trait.Name, score),
					})

					text, err := model.Gen.Generate(ctx, model.Spec.ModelID, llm.Request{
						System: PersonaPrompt(trait, score),
						User:   QuestionPrompt(question),
					})
					if err != nil {
						skips.Generation++
						e.logger.Warn("generation failed, skipping row",
							zap.String("model", model.Spec.Key),
							zap.String("trait", trait.Name),
							zap.Int("prompted_score", score),
							zap.String("question", question),
							zap.Error(err))
						continue
					}

					verdict, err := e.judge.Evaluate(ctx, trait, question, text)
					if err != nil {
						skips.Judge++
						e.logger.Warn("judge failed, skipping row",
							zap.String("model", model.Spec.Key),
							zap.String("trait", trait.Name),
							zap.Int("prompted_score", score),
							zap.String("question", question),
							zap.Error(err))
						continue
					}
					if verdict.IsParseError() {
						skips.ParseErrors++
					}

					records = append(records, results.GenerationRecord{
						ModelKey:          model.Spec.Key,
						ModelID:           model.Spec.ModelID,
						PromptedTrait:     trait.Name,
						PromptedScore:     score,
						Question:          question,
						GeneratedText:     text,
						JudgeScore:        verdict.Score,
						JudgeClues:        verdict.Clues,
						JudgeReasoning:    verdict.Reasoning,
						JudgeDecisionType: verdict.DecisionType,
					})
				}
			}
		}
	}

	e.reporter.Emit(ProgressEvent{Type: "done", Protocol: "generation", Rows: len(records)})
	return records, skips, nil
}

// RunQuestionnaire sweeps model x trait group x level x item. Each (model,
// group, level) cell fixes one persona system prompt and asks every item in
// the group; answers are recorded verbatim and failed calls are skipped.
func (e *Engine) RunQuestionnaire(ctx context.Context) ([]results.QuestionnaireRecord, results.SkipCounts, error) {
	var (
		records []results.QuestionnaireRecord
		skips   results.SkipCounts
	)

	levels := []results.Level{results.LevelHigh, results.LevelLow}
	total := len(e.roster) * len(e.groups) * len(levels)
	e.reporter.Emit(ProgressEvent{Type: "start", Protocol: "questionnaire", MaxStep: total})

	step := 0
	for _, model := range e.roster {
		for _, group := range e.groups {
			trait, ok := e.traitFor(group.Code)
			if !ok {
				e.logger.Error("no trait definition for item group, skipping",
					zap.String("group", group.Key))
				continue
			}
			for _, level := range levels {
				step++
				e.reporter.Emit(ProgressEvent{
					Type:    "step",
					Step:    step,
					MaxStep: total,
					Message: fmt.Sprintf("Running Questionnaire for %s on %s (%s)...", model.Spec.Key, trait.Name, level),
				})

				system := QuestionnairePrompt(trait, level, e.scale)
				for _, item := range group.Items {
					if err := ctx.Err(); err != nil {
						return records, skips, err
					}

					answer, err := model.Gen.Generate(ctx, model.Spec.ModelID, llm.Request{
						System: system,
						User:   StatementPrompt(item.Statement),
					})
					if err != nil {
						skips.Questionnaire++
						// Silent at normal log levels; the skip count is the
						// only trace.
						e.logger.Debug("questionnaire item failed, skipping row",
							zap.String("model", model.Spec.Key),
							zap.String("trait", trait.Name),
							zap.String("level", string(level)),
							zap.Int("item", item.Num),
							zap.Error(err))
						continue
					}

					records = append(records, results.QuestionnaireRecord{
						ModelKey:      model.Spec.Key,
						Trait:         trait.Name,
						PromptedLevel: level,
						QType:         string(item.Type),
						Answer:        answer,
					})
				}
			}
		}
	}

	e.reporter.Emit(ProgressEvent{Type: "done", Protocol: "questionnaire", Rows: len(records)})
	return records, skips, nil
}

func (e *Engine) traitFor(code bigfive.Code) (bigfive.Trait, bool) {
	for _, t := range e.traits {
		if t.Code == code {
			return t, true
		}
	}
	return bigfive.Trait{}, false
}
