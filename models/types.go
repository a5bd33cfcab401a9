package models

import "time"

// Create-user messages
const (
	MessageUserCreated = "User created successfully"
	MessageUserExists  = "User already exists"
)

// Request types

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
}

type FollowRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Username string `json:"username" validate:"required"`
}

// Favorite is a pointer so an explicit false can be told apart from a missing field
type FavoriteRequest struct {
	PresentationDay string `json:"presentation_day" validate:"required"`
	BandID          string `json:"band_id" validate:"required"`
	Favorite        *bool  `json:"favorite" validate:"required"`
}

// Response types

type CreateUserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	UserID  string `json:"user_id"`
}

type UserSummary struct {
	Username string `json:"username"`
	UserID   string `json:"user_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Domain types

type Festival struct {
	ID            string         `json:"id,omitempty"`
	Name          string         `json:"festival_name"`
	Dates         []string       `json:"dates"`
	Presentations []Presentation `json:"presentations"`
}

type Presentation struct {
	Day   string `json:"presentation_day"`
	Bands []Band `json:"bands"`
}

// Band is a single slot in the lineup. Stage is stored as "scenario" in
// festival documents.
type Band struct {
	BandID    string    `json:"band_id"`
	Name      string    `json:"band_name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Stage     string    `json:"scenario"`
}

type User struct {
	ID        string       `json:"-"`
	Username  string       `json:"username"`
	Following []FollowEdge `json:"following"`
}

// FollowEdge carries the followed user's username as it was at follow time.
type FollowEdge struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// FavoriteKey is comparable and used directly as a map key.
type FavoriteKey struct {
	PresentationDay string `json:"presentation_day"`
	BandID          string `json:"band_id"`
}

type UserFestivalFavorites struct {
	FestivalID    string        `json:"festival_id"`
	FavoriteBands []FavoriteKey `json:"favorite_bands"`
}

// Schedule types

type Schedule struct {
	FestivalID    string                 `json:"festival_id"`
	FestivalName  string                 `json:"festival_name"`
	FestivalDates []string               `json:"festival_dates"`
	Presentations []PresentationSchedule `json:"presentations"`
}

type PresentationSchedule struct {
	PresentationDay string          `json:"presentation_day"`
	Bands           []ScheduledBand `json:"bands"`
}

type ScheduledBand struct {
	BandID    string       `json:"band_id"`
	BandName  string       `json:"band_name"`
	StartTime time.Time    `json:"start_time"`
	EndTime   time.Time    `json:"end_time"`
	Stage     string       `json:"stage"`
	Favorite  bool         `json:"favorite"`
	Following []FollowEdge `json:"following"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
