package bigfive

// LikertOption pairs a literal response phrase with its score.
type LikertOption struct {
	Phrase string
	Score  int
}

// The questionnaire instructs models to answer with one of these exact
// phrases; downstream scoring matches them back to 1-5 by substring.
var likertScale = []LikertOption{
	{Phrase: "disagree strongly with the statement", Score: 1},
	{Phrase: "disagree a little with the statement", Score: 2},
	{Phrase: "agree nor disagree with the statement", Score: 3},
	{Phrase: "agree a little with the statement", Score: 4},
	{Phrase: "agree strongly with the statement", Score: 5},
}

// LikertScale returns the five response options ordered from strong
// disagreement (1) to strong agreement (5).
func LikertScale() []LikertOption {
	return likertScale
}
