package exercise

// ExpectedCount is the number of records every generation prompt asks for.
const ExpectedCount = 10

const DefaultTheme = "general vocabulary"

type Vocabulary struct {
	EnglishWord      string `json:"english_word"`
	RightTranslation string `json:"right_translation"`
	WrongTranslation string `json:"wrong_translation"`
}

type VocabularySet struct {
	ExerciseList []Vocabulary `json:"exercise_list"`
}

// Grammar is a French sentence with one induced error. Answer is expected
// to be one of Words, but only the prompt asks for it.
type Grammar struct {
	Exercise    string   `json:"exercise"`
	Words       []string `json:"words"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

func (g Grammar) AnswerInWords() bool {
	for _, w := range g.Words {
		if w == g.Answer {
			return true
		}
	}
	return false
}

type GrammarSet struct {
	ExerciseList []Grammar `json:"exercise_list"`
}

type ChatReply struct {
	Response    string  `json:"response"`
	Translation *string `json:"translation"`
	AudioText   *string `json:"audioText"`
}
