package game

import "github.com/ericogr/hexcrusade/internal/hex"

// EventType tags an Event.
type EventType string

const (
	EventPlayerMoved         EventType = "PLAYER_MOVED"
	EventPlayerAttacked      EventType = "PLAYER_ATTACKED"
	EventPlayerDied          EventType = "PLAYER_DIED"
	EventPlayerRespawned     EventType = "PLAYER_RESPAWNED"
	EventMonsterDied         EventType = "MONSTER_DIED"
	EventRevelationCompleted EventType = "REVELATION_COMPLETED"
	EventGameOver            EventType = "GAME_OVER"
	EventStatUpgraded        EventType = "STAT_UPGRADED"
	EventMoveDiceRolled      EventType = "MOVE_DICE_ROLLED"

	EventMonsterAttacked   EventType = "MONSTER_ATTACKED"
	EventSkillUsed         EventType = "SKILL_USED"
	EventMonsterPhase      EventType = "MONSTER_PHASE"
	EventRoundStarted      EventType = "ROUND_STARTED"
	EventRevelationDrawn   EventType = "REVELATION_DRAWN"
	EventHealed            EventType = "HEALED"
	EventMonsterRespawned  EventType = "MONSTER_RESPAWNED"
	EventStateChanged      EventType = "STATE_CHANGED"
	EventDemonSwordTaken   EventType = "DEMON_SWORD_TAKEN"
	EventDemonSwordDropped EventType = "DEMON_SWORD_DROPPED"
)

// TargetKind says whether TargetID names a hero or a monster.
type TargetKind string

const (
	TargetPlayer  TargetKind = "player"
	TargetMonster TargetKind = "monster"
)

// Event is an observational log entry. Fields not relevant to Type stay
// zero.
type Event struct {
	Type         EventType      `json:"type"`
	PlayerID     string         `json:"playerId,omitempty"`
	SourceID     string         `json:"sourceId,omitempty"`
	TargetID     string         `json:"targetId,omitempty"`
	TargetKind   TargetKind     `json:"targetKind,omitempty"`
	MonsterID    string         `json:"monsterId,omitempty"`
	SkillID      string         `json:"skillId,omitempty"`
	RevelationID string         `json:"revelationId,omitempty"`
	Stat         StatKey        `json:"stat,omitempty"`
	From         *hex.Coord     `json:"from,omitempty"`
	To           *hex.Coord     `json:"to,omitempty"`
	Amount       int            `json:"amount,omitempty"`
	Dice         []int          `json:"dice,omitempty"`
	Success      bool           `json:"success,omitempty"`
	Round        int            `json:"round,omitempty"`
	Result       *VictoryResult `json:"result,omitempty"`
}

// CoordPtr returns a pointer to a copy of c for event fields.
func CoordPtr(c hex.Coord) *hex.Coord { return &c }
