package quiz

// Option is one selectable answer. Swatch is set for palette questions only.
type Option struct {
	Text   string `json:"text"`
	Value  string `json:"value"`
	Icon   string `json:"icon,omitempty"`
	Swatch string `json:"color,omitempty"`
}

// Question is a multiple choice quiz step.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// StyleProfile is the result of the style quiz.
type StyleProfile struct {
	Key             string   `json:"key"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
	KeyPieces       []string `json:"keyPieces"`
	Colors          []string `json:"colors"`
	Accessories     []string `json:"accessories"`
	Celebrities     []string `json:"celebrities"`
	Tips            []string `json:"tips"`
}

// Swatches are the hex colors of a palette.
type Swatches struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Neutral    string `json:"neutral"`
	Complement string `json:"complement"`
}

// Palette is the result of the color palette quiz.
type Palette struct {
	Key             string   `json:"key"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Colors          Swatches `json:"colors"`
	Characteristics []string `json:"characteristics"`
	Recommendations []string `json:"recommendations"`
}

// AnswersRequest carries answer values in question order.
type AnswersRequest struct {
	Answers []string `json:"answers"`
}
