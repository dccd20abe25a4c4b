package feedback

import (
	"time"

	"github.com/lookia/lookia/internal/domain/look"
)

// Value is the like/dislike verdict on a recommendation.
type Value string

const (
	Like    Value = "like"
	Dislike Value = "dislike"
)

// Valid reports whether v is one of the accepted verdicts.
func (v Value) Valid() bool {
	return v == Like || v == Dislike
}

// Record is a stored feedback entry with denormalized profile and look copies.
type Record struct {
	ID             string              `json:"id"`
	LookID         string              `json:"lookId,omitempty"`
	UserProfile    look.Profile        `json:"userProfile"`
	Recommendation look.Recommendation `json:"recommendation"`
	Feedback       Value               `json:"feedback"`
	Reason         *string             `json:"reason,omitempty"`
	Suggestions    *string             `json:"suggestions,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// CreateRequest is the payload for a new feedback entry.
type CreateRequest struct {
	LookID         string               `json:"lookId"`
	UserProfile    *look.Profile        `json:"userProfile"`
	Recommendation *look.Recommendation `json:"recommendation"`
	Feedback       Value                `json:"feedback"`
	Reason         *string              `json:"reason"`
	Suggestions    *string              `json:"suggestions"`
}

// CreateResponse acknowledges a stored entry.
type CreateResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	FeedbackID string `json:"feedbackId"`
}

// UpdateRequest patches an entry; nil fields are left untouched.
type UpdateRequest struct {
	ID          string  `json:"id"`
	Feedback    *Value  `json:"feedback"`
	Reason      *string `json:"reason"`
	Suggestions *string `json:"suggestions"`
}

// Patch is the validated form of UpdateRequest handed to repositories.
type Patch struct {
	Feedback    *Value
	Reason      *string
	Suggestions *string
}

// Apply mutates r with the non-nil fields of p.
func (p Patch) Apply(r *Record) {
	if p.Feedback != nil {
		r.Feedback = *p.Feedback
	}
	if p.Reason != nil {
		reason := *p.Reason
		r.Reason = &reason
	}
	if p.Suggestions != nil {
		suggestions := *p.Suggestions
		r.Suggestions = &suggestions
	}
}

// Tally counts verdicts for one category value.
type Tally struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// CategoryBreakdown groups tallies by profile attribute.
type CategoryBreakdown struct {
	Ocasiao       map[string]Tally `json:"ocasiao"`
	Estilo        map[string]Tally `json:"estilo"`
	Clima         map[string]Tally `json:"clima"`
	Personalidade map[string]Tally `json:"personalidade"`
}

// Stats summarizes all stored feedback.
type Stats struct {
	Total              int               `json:"total"`
	Likes              int               `json:"likes"`
	Dislikes           int               `json:"dislikes"`
	LikePercentage     int               `json:"likePercentage"`
	FeedbackByCategory CategoryBreakdown `json:"feedbackByCategory"`
}
