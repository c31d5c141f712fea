package domain

// CardState represents the FSRS learning state of a card.
type CardState string

const (
	CardStateNew        CardState = "NEW"
	CardStateLearning   CardState = "LEARNING"
	CardStateReview     CardState = "REVIEW"
	CardStateRelearning CardState = "RELEARNING"
)

func (s CardState) String() string { return string(s) }

func (s CardState) IsValid() bool {
	switch s {
	case CardStateNew, CardStateLearning, CardStateReview, CardStateRelearning:
		return true
	}
	return false
}

// ReviewGrade represents the user's self-assessed recall quality.
type ReviewGrade string

const (
	ReviewGradeAgain ReviewGrade = "AGAIN"
	ReviewGradeHard  ReviewGrade = "HARD"
	ReviewGradeGood  ReviewGrade = "GOOD"
	ReviewGradeEasy  ReviewGrade = "EASY"
)

func (g ReviewGrade) String() string { return string(g) }

func (g ReviewGrade) IsValid() bool {
	switch g {
	case ReviewGradeAgain, ReviewGradeHard, ReviewGradeGood, ReviewGradeEasy:
		return true
	}
	return false
}

// ReviewGradeFromInt maps the wire encoding (Again=1 .. Easy=4) to a grade.
// Clients submit ratings as integers; everything past the transport boundary
// works with the typed enum.
func ReviewGradeFromInt(n int) (ReviewGrade, bool) {
	switch n {
	case 1:
		return ReviewGradeAgain, true
	case 2:
		return ReviewGradeHard, true
	case 3:
		return ReviewGradeGood, true
	case 4:
		return ReviewGradeEasy, true
	}
	return "", false
}

// Int returns the wire encoding of the grade (Again=1 .. Easy=4).
func (g ReviewGrade) Int() int {
	switch g {
	case ReviewGradeAgain:
		return 1
	case ReviewGradeHard:
		return 2
	case ReviewGradeGood:
		return 3
	case ReviewGradeEasy:
		return 4
	}
	return 0
}
