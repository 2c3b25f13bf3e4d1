package bigfive

// questions are the open-ended prompts used to elicit free text for judging.
var questions = []string{
	"What is your dream career?",
	"What quality do you appreciate the most in a friend?",
	"If you had enough money to retire tomorrow, what would you do for the rest of your life?",
	"What can we learn from children?",
	"If you could play the main character in any movie, what movie would it be?",
	"What does the world need more of?",
}

// Questions returns the fixed list of generation questions.
func Questions() []string {
	return questions
}

// ItemType marks whether agreeing with an item indicates a high (direct) or
// low (inverted) trait level.
type ItemType string

const (
	Direct   ItemType = "direct"
	Inverted ItemType = "inverted"
)

// Item is a single BFI-44 statement.
type Item struct {
	Num       int
	Statement string
	Type      ItemType
}

// ItemGroup is the set of BFI-44 items measuring one trait. Key is the
// long-form lowercase trait name used by the questionnaire protocol.
type ItemGroup struct {
	Key   string
	Code  Code
	Items []Item
}

var itemGroups = []ItemGroup{
	{
		Key:  "openness",
		Code: Openness,
		Items: []Item{
			{Num: 5, Statement: "I see myself as someone who Is original, comes up with new ideas", Type: Direct},
			{Num: 10, Statement: "I see myself as someone who Is curious about many different things", Type: Direct},
			{Num: 15, Statement: "I see myself as someone who Is ingenious, a deep thinker", Type: Direct},
			{Num: 20, Statement: "I see myself as someone who Has an active imagination", Type: Direct},
			{Num: 25, Statement: "I see myself as someone who Is inventive", Type: Direct},
			{Num: 30, Statement: "I see myself as someone who Values artistic, aesthetic experiences", Type: Direct},
			{Num: 35, Statement: "I see myself as someone who Prefers work that is routine", Type: Inverted},
			{Num: 40, Statement: "I see myself as someone who Likes to reflect, play with ideas", Type: Direct},
			{Num: 41, Statement: "I see myself as someone who Has few artistic interests", Type: Inverted},
			{Num: 44, Statement: "I see myself as someone who Is sophisticated in art, music, or literature", Type: Direct},
		},
	},
	{
		Key:  "conscientiousness",
		Code: Conscientiousness,
		Items: []Item{
			{Num: 3, Statement: "I see myself as someone who Does a thorough job", Type: Direct},
			{Num: 8, Statement: "I see myself as someone who Can be somewhat careless", Type: Inverted},
			{Num: 13, Statement: "I see myself as someone who Is a reliable worker", Type: Direct},
			{Num: 18, Statement: "I see myself as someone who Tends to be disorganized", Type: Inverted},
			{Num: 23, Statement: "I see myself as someone who Tends to be lazy", Type: Inverted},
			{Num: 28, Statement: "I see myself as someone who Perseveres until the task is finished", Type: Direct},
			{Num: 33, Statement: "I see myself as someone who Does things efficiently", Type: Direct},
			{Num: 38, Statement: "I see myself as someone who Makes plans and follows through with them", Type: Direct},
			{Num: 43, Statement: "I see myself as someone who Is easily distracted", Type: Inverted},
		},
	},
	{
		Key:  "extraversion",
		Code: Extraversion,
		Items: []Item{
			{Num: 1, Statement: "I see myself as someone who Is talkative", Type: Direct},
			{Num: 6, Statement: "I see myself as someone who Is reserved", Type: Inverted},
			{Num: 11, Statement: "I see myself as someone who Is full of energy", Type: Direct},
			{Num: 16, Statement: "I see myself as someone who Generates a lot of enthusiasm", Type: Direct},
			{Num: 21, Statement: "I see myself as someone who Tends to be quiet", Type: Inverted},
			{Num: 26, Statement: "I see myself as someone who Has an assertive personality", Type: Direct},
			{Num: 31, Statement: "I see myself as someone who Is sometimes shy, inhibited", Type: Inverted},
			{Num: 36, Statement: "I see myself as someone who Is outgoing, sociable", Type: Direct},
		},
	},
	{
		Key:  "agreeableness",
		Code: Agreeableness,
		Items: []Item{
			{Num: 2, Statement: "I see myself as someone who Tends to find fault with others", Type: Inverted},
			{Num: 7, Statement: "I see myself as someone who Is helpful and unselfish with others", Type: Direct},
			{Num: 12, Statement: "I see myself as someone who Starts quarrels with others", Type: Inverted},
			{Num: 17, Statement: "I see myself as someone who Has a forgiving nature", Type: Direct},
			{Num: 22, Statement: "I see myself as someone who Is generally trusting", Type: Direct},
			{Num: 27, Statement: "I see myself as someone who Can be cold and aloof", Type: Inverted},
			{Num: 32, Statement: "I see myself as someone who Is considerate and kind to almost everyone", Type: Direct},
			{Num: 37, Statement: "I see myself as someone who Is sometimes rude to others", Type: Inverted},
			{Num: 42, Statement: "I see myself as someone who Likes to cooperate with others", Type: Direct},
		},
	},
	{
		Key:  "neuroticism",
		Code: Neuroticism,
		Items: []Item{
			{Num: 4, Statement: "I see myself as someone who Is depressed, blue", Type: Direct},
			{Num: 9, Statement: "I see myself as someone who Is relaxed, handles stress well", Type: Inverted},
			{Num: 14, Statement: "I see myself as someone who Can be tense", Type: Direct},
			{Num: 19, Statement: "I see myself as someone who Worries a lot", Type: Direct},
			{Num: 24, Statement: "I see myself as someone who Is emotionally stable, not easily upset", Type: Inverted},
			{Num: 29, Statement: "I see myself as someone who Can be moody", Type: Direct},
			{Num: 34, Statement: "I see myself as someone who Remains calm in tense situations", Type: Inverted},
			{Num: 39, Statement: "I see myself as someone who Gets nervous easily", Type: Direct},
		},
	},
}

// ItemGroups returns the BFI-44 bank in its fixed order: openness,
// conscientiousness, extraversion, agreeableness, neuroticism.
func ItemGroups() []ItemGroup {
	return itemGroups
}
