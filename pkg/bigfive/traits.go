// Package bigfive holds the static Big Five experiment data: trait
// definitions, open-ended generation questions, the BFI-44 item bank, and the
// Likert response scale. The data is fixed configuration and is never mutated
// during a run.
package bigfive

// Code identifies one of the five personality dimensions.
type Code string

const (
	Openness          Code = "O"
	Conscientiousness Code = "C"
	Extraversion      Code = "E"
	Agreeableness     Code = "A"
	Neuroticism       Code = "N"
)

// GenerationView describes a trait for persona construction on the 1-5 scale.
type GenerationView struct {
	Low  string
	High string
}

// ClassificationView describes a trait for judging on the [-2,2] scale.
type ClassificationView struct {
	Definition string
	Low        string
	High       string
}

// Trait bundles both views of a personality dimension.
type Trait struct {
	Code           Code
	Name           string
	Generation     GenerationView
	Classification ClassificationView
}

var traits = []Trait{
	{
		Code: Openness,
		Name: "Openness",
		Generation: GenerationView{
			Low:  "A person with a low score is practical and prefers routine.",
			High: "A person with a high score is imaginative, curious, and open to new experiences.",
		},
		Classification: ClassificationView{
			Definition: "Openness to experience describes a person's tendency to be open to new ideas, creative, curious, and appreciative of art and beauty.",
			Low:        "A person with a low score is practical, conventional, and prefers routine over new experiences.",
			High:       "A person with a high score is imaginative, adventurous, and receptive to a wide range of ideas and emotions.",
		},
	},
	{
		Code: Conscientiousness,
		Name: "Conscientiousness",
		Generation: GenerationView{
			Low:  "A person with a low score is disorganized and careless.",
			High: "A person with a high score is disciplined, organized, and achievement-oriented.",
		},
		Classification: ClassificationView{
			Definition: "Conscientiousness refers to the tendency to be organized, responsible, and dependable.",
			Low:        "A person with a low score is impulsive, disorganized, and less focused on long-term goals.",
			High:       "A person with a high score is disciplined, detail-oriented, and reliable in their commitments.",
		},
	},
	{
		Code: Extraversion,
		Name: "Extraversion",
		Generation: GenerationView{
			Low:  "A person with a low score is reserved and solitary.",
			High: "A person with a high score is outgoing, sociable, and energetic.",
		},
		Classification: ClassificationView{
			Definition: "Extraversion reflects a person's level of sociability, assertiveness, and emotional expression.",
			Low:        "A person with a low score is reserved, reflective, and prefers solitary activities or small groups.",
			High:       "A person with a high score is outgoing, energetic, and thrives in social situations.",
		},
	},
	{
		Code: Agreeableness,
		Name: "Agreeableness",
		Generation: GenerationView{
			Low:  "A person with a low score is critical and uncooperative.",
			High: "A person with a high score is compassionate, cooperative, and trusting.",
		},
		Classification: ClassificationView{
			Definition: "Agreeableness indicates a person's tendency to be compassionate, cooperative, and considerate of others.",
			Low:        "A person with a low score is competitive, critical, and may be seen as untrusting or suspicious.",
			High:       "A person with a high score is friendly, helpful, and empathetic towards others.",
		},
	},
	{
		Code: Neuroticism,
		Name: "Neuroticism",
		Generation: GenerationView{
			Low:  "A person with a low score is calm, secure, and emotionally stable.",
			High: "A person with a high score is anxious, insecure, and prone to negative emotions.",
		},
		Classification: ClassificationView{
			Definition: "Neuroticism, often referred to as emotional stability, describes the tendency to experience negative emotions like anxiety, anger, and sadness.",
			Low:        "A person with a low score is calm, secure, and resilient to stress.",
			High:       "A person with a high score is emotionally reactive, prone to stress, and may experience frequent mood swings.",
		},
	},
}

// Traits returns the five personality dimensions in O, C, E, A, N order.
func Traits() []Trait {
	return traits
}

// TraitByCode looks up a trait by its single-letter code.
func TraitByCode(c Code) (Trait, bool) {
	for _, t := range traits {
		if t.Code == c {
			return t, true
		}
	}
	return Trait{}, false
}
