package models

import (
	"time"
)

// TournamentStatus represents the lifecycle state of a tournament
type TournamentStatus string

const (
	TournamentStatusPending  TournamentStatus = "pending"
	TournamentStatusActive   TournamentStatus = "active"
	TournamentStatusFinished TournamentStatus = "finished"
)

// Tournament represents a bracket of participants
type Tournament struct {
	ID        int64            `db:"id"`
	Name      string           `db:"name"`
	Status    TournamentStatus `db:"status"`
	CreatedAt time.Time        `db:"created_at"`
}

// TournamentParticipant links a user into a tournament.
// FinalPosition is set only when the tournament is finished.
type TournamentParticipant struct {
	ID            int64 `db:"id"`
	TournamentID  int64 `db:"id_tournament"`
	UserID        int64 `db:"id_user"`
	IsAI          bool  `db:"is_ai"`
	FinalPosition *int  `db:"final_position"`
}
