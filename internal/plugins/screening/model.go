package screening

// Result is one completed anxiety questionnaire. Results are append-only;
// history endpoints return them in the order they were taken.
type Result struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	Date           string `json:"date"`
	Score          int    `json:"score"`
	Interpretation string `json:"interpretation"`
}

// RecordID identifies the result inside its stored list.
func (r Result) RecordID() string { return r.ID }

// Option is one answer choice shared by every question.
type Option struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Questionnaire is the static GAD-7 style form served to clients.
type Questionnaire struct {
	Questions []string `json:"questions"`
	Options   []Option `json:"options"`
}

// SubmitRequest carries one answer score per question, in question order.
type SubmitRequest struct {
	Answers []int `json:"answers"`
}

// questions are asked about the last two weeks, scored 0 to 3 each.
var questions = []string{
	"Feeling nervous, anxious, or on edge",
	"Not being able to stop or control worrying",
	"Worrying too much about different things",
	"Trouble relaxing",
	"Being so restless that it is hard to sit still",
	"Becoming easily annoyed or irritable",
	"Feeling afraid as if something awful might happen",
}

var options = []Option{
	{Label: "Not at all", Score: 0},
	{Label: "Several days", Score: 1},
	{Label: "More than half the days", Score: 2},
	{Label: "Nearly every day", Score: 3},
}

const (
	minAnswerScore = 0
	maxAnswerScore = 3
)

// interpret maps a total score to its severity band.
func interpret(score int) string {
	switch {
	case score <= 4:
		return "Minimal anxiety"
	case score <= 9:
		return "Mild anxiety"
	case score <= 14:
		return "Moderate anxiety"
	default:
		return "Severe anxiety"
	}
}
