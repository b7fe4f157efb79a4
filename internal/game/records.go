package game

import "gorm.io/gorm"

// MatchRecord is the persisted summary of a finished game.
type MatchRecord struct {
	gorm.Model
	GameID          string `gorm:"uniqueIndex"`
	VictoryType     VictoryType
	TriggerPlayerID string
	WinnerID        string
	WinnerName      string
	Rounds          int
	Participants    []MatchParticipant `gorm:"foreignKey:MatchRecordID"`
}

func (MatchRecord) TableName() string { return "match_records" }

// MatchParticipant is one hero's final line in a MatchRecord.
type MatchParticipant struct {
	gorm.Model
	MatchRecordID uint `gorm:"index"`
	PlayerID      string
	PlayerName    string `gorm:"index"`
	HeroClass     HeroClass
	FinalState    HeroState
	FaithScore    int
	DevilScore    int
	Winner        bool
}

func (MatchParticipant) TableName() string { return "match_participants" }

// PlayerProfile aggregates results by player name across games.
type PlayerProfile struct {
	gorm.Model
	PlayerName  string `gorm:"uniqueIndex"`
	GamesPlayed int
	Wins        int
}

// Unify leaderboard table name as "player_profiles"
func (PlayerProfile) TableName() string { return "player_profiles" }

// NewMatchRecord summarises a finished state. It returns false while the
// game has no result.
func NewMatchRecord(gameID string, st GameState) (MatchRecord, bool) {
	if st.Result == nil {
		return MatchRecord{}, false
	}
	rec := MatchRecord{
		GameID:          gameID,
		VictoryType:     st.Result.VictoryType,
		TriggerPlayerID: st.Result.TriggerPlayerID,
		WinnerID:        st.Result.WinnerID,
		Rounds:          st.RoundNumber,
	}
	for _, p := range st.Players {
		won := p.ID == st.Result.WinnerID
		if won {
			rec.WinnerName = p.Name
		}
		rec.Participants = append(rec.Participants, MatchParticipant{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			HeroClass:  p.HeroClass,
			FinalState: p.State,
			FaithScore: p.FaithScore,
			DevilScore: p.DevilScore,
			Winner:     won,
		})
	}
	return rec, true
}
