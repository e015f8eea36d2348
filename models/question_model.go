package models

// Question is a multiple-choice item. CorrectOption is restricted to A-D by a
// CHECK constraint in the store.
type Question struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Text          string  `gorm:"column:question;type:text;not null" json:"question" validate:"required"`
	OptionA       string  `gorm:"type:text;not null" json:"option_a" validate:"required"`
	OptionB       string  `gorm:"type:text;not null" json:"option_b" validate:"required"`
	OptionC       string  `gorm:"type:text;not null" json:"option_c" validate:"required"`
	OptionD       string  `gorm:"type:text;not null" json:"option_d" validate:"required"`
	CorrectOption string  `gorm:"type:text;not null;check:correct_option IN ('A','B','C','D')" json:"correct_option" validate:"required,oneof=A B C D"`
	Explanation   *string `gorm:"type:text" json:"explanation"`
}

type OptionSet struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// QuestionView is the shape returned by the question listing endpoint.
type QuestionView struct {
	ID            uint      `json:"id"`
	Question      string    `json:"question"`
	Options       OptionSet `json:"options"`
	CorrectOption string    `json:"correct_option"`
	Explanation   *string   `json:"explanation"`
}

func (q Question) View() QuestionView {
	return QuestionView{
		ID:       q.ID,
		Question: q.Text,
		Options: OptionSet{
			A: q.OptionA,
			B: q.OptionB,
			C: q.OptionC,
			D: q.OptionD,
		},
		CorrectOption: q.CorrectOption,
		Explanation:   q.Explanation,
	}
}
