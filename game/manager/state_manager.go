package manager

import (
	"time"

	"github.com/google/uuid"

	"snake-classic/game/types"
)

// GameRecord is one finished game of the session
type GameRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
}

// Duration is the wall time the game lasted
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps score bookkeeping: current score, high score, session history
type StateManager struct {
	score        int
	highScore    int
	sessionHigh  int
	scoreHistory []GameRecord
	startTime    time.Time
}

func NewStateManager(highScore int) *StateManager {
	if highScore < 0 {
		highScore = 0
	}
	return &StateManager{
		highScore:    highScore,
		scoreHistory: make([]GameRecord, 0, types.MaxHistory),
	}
}

// BeginGame zeroes the score and stamps the start time
func (sm *StateManager) BeginGame(now time.Time) {
	sm.score = 0
	sm.startTime = now
}

// ResetScore zeroes the score without starting a new record
func (sm *StateManager) ResetScore() {
	sm.score = 0
}

// AddScore credits one food. improved reports a new high score.
func (sm *StateManager) AddScore() (score int, improved bool) {
	sm.score += types.ScoreIncrement
	if sm.score > sm.sessionHigh {
		sm.sessionHigh = sm.score
	}
	if sm.score > sm.highScore {
		sm.highScore = sm.score
		improved = true
	}
	return sm.score, improved
}

// EndGame appends the finished game to the history and returns its record
func (sm *StateManager) EndGame(now time.Time, length int) GameRecord {
	record := GameRecord{
		ID:        uuid.New().String(),
		StartTime: sm.startTime,
		EndTime:   now,
		Score:     sm.score,
		Length:    length,
	}
	sm.AddToHistory(record)
	return record
}

func (sm *StateManager) AddToHistory(record GameRecord) {
	if len(sm.scoreHistory) >= types.MaxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, record)
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetSessionHigh() int {
	return sm.sessionHigh
}

// GetScoreHistory returns a copy of the session history, oldest first
func (sm *StateManager) GetScoreHistory() []GameRecord {
	out := make([]GameRecord, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}
