package game

import "github.com/ericogr/hexcrusade/internal/hex"

// ActionType tags a GameAction.
type ActionType string

const (
	ActionRollMoveDice       ActionType = "ROLL_MOVE_DICE"
	ActionMove               ActionType = "MOVE"
	ActionEndMovePhase       ActionType = "END_MOVE_PHASE"
	ActionBasicAttack        ActionType = "BASIC_ATTACK"
	ActionUseSkill           ActionType = "USE_SKILL"
	ActionRollStatDice       ActionType = "ROLL_STAT_DICE"
	ActionEndTurn            ActionType = "END_TURN"
	ActionCompleteRevelation ActionType = "COMPLETE_REVELATION"
	ActionApplyCorruptDice   ActionType = "APPLY_CORRUPT_DICE"
	ActionChooseHoly         ActionType = "CHOOSE_HOLY"
)

// ActionTypes lists every action in dispatch order.
var ActionTypes = []ActionType{
	ActionRollMoveDice,
	ActionMove,
	ActionEndMovePhase,
	ActionBasicAttack,
	ActionUseSkill,
	ActionRollStatDice,
	ActionEndTurn,
	ActionCompleteRevelation,
	ActionApplyCorruptDice,
	ActionChooseHoly,
}

// TurnGated reports whether t may only be taken by the current player.
// Corrupt-die binding and returning to holy can happen at any time.
func (t ActionType) TurnGated() bool {
	return t != ActionApplyCorruptDice && t != ActionChooseHoly
}

// Known reports whether t is a member of the action union.
func (t ActionType) Known() bool {
	for _, a := range ActionTypes {
		if a == t {
			return true
		}
	}
	return false
}

// GameAction is the closed action union. Only the fields relevant to Type
// are read.
type GameAction struct {
	Type             ActionType `json:"type"`
	Position         *hex.Coord `json:"position,omitempty"`
	TargetID         string     `json:"targetId,omitempty"`
	SkillID          string     `json:"skillId,omitempty"`
	SecondarySkillID string     `json:"secondarySkillId,omitempty"`
	Stat             StatKey    `json:"stat,omitempty"`
	RevelationID     string     `json:"revelationId,omitempty"`
}

// ValidAction pairs a legal action with a human-readable label.
type ValidAction struct {
	Action      GameAction `json:"action"`
	Description string     `json:"description"`
}

// ValidationResult is the outcome of the lightweight action pre-check.
type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ActionResult is returned by every engine action. On failure NewState is
// the input state and Events is empty.
type ActionResult struct {
	Success  bool      `json:"success"`
	NewState GameState `json:"newState"`
	Message  string    `json:"message"`
	Events   []Event   `json:"events"`
}
