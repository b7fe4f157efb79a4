package engine

import "errors"

// Rule violations. They are reported through ActionResult.Message and never
// escape ExecuteAction as Go errors.
var (
	ErrGameOver           = errors.New("the game is over")
	ErrUnknownAction      = errors.New("unknown action type")
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrNotYourTurn        = errors.New("it is not your turn")
	ErrMonsterTurn        = errors.New("it is the monsters' turn")
	ErrPlayerDead         = errors.New("dead heroes cannot act")
	ErrWrongPhase         = errors.New("action not allowed in this phase")
	ErrAlreadyRolled      = errors.New("movement dice already rolled this turn")
	ErrNotRolled          = errors.New("roll the movement dice first")
	ErrMissingPosition    = errors.New("a position is required")
	ErrNotAdjacent        = errors.New("target is not adjacent")
	ErrOutOfRange         = errors.New("target is out of range")
	ErrOffBoard           = errors.New("position is off the board")
	ErrTileBlocked        = errors.New("tile cannot be entered")
	ErrTileOccupied       = errors.New("tile is occupied")
	ErrNotEnoughMovement  = errors.New("not enough movement left")
	ErrAttackUsed         = errors.New("basic attack already used this turn")
	ErrUnknownTarget      = errors.New("unknown or dead target")
	ErrTargetSelf         = errors.New("cannot target yourself")
	ErrTargetStealthed    = errors.New("target is stealthed")
	ErrSwordVsMonster     = errors.New("the demon sword cannot be used against monsters")
	ErrGolemImmune        = errors.New("the golem is immune to basic attacks this round")
	ErrUnknownSkill       = errors.New("unknown skill")
	ErrWrongClass         = errors.New("skill belongs to another class")
	ErrSkillCooldown      = errors.New("skill is on cooldown")
	ErrSkillBudget        = errors.New("not enough intelligence left this turn")
	ErrNothingHit         = errors.New("nothing was hit")
	ErrNoLanding          = errors.New("no free tile to land on")
	ErrInvalidStat        = errors.New("unknown stat")
	ErrNotEnoughEssence   = errors.New("not enough monster essence")
	ErrUnknownRevelation  = errors.New("unknown revelation")
	ErrRevelationNotHeld  = errors.New("revelation is not in hand")
	ErrRevelationEvent    = errors.New("revelation completes on its own trigger")
	ErrRevelationUnmet    = errors.New("revelation task is not complete")
	ErrNoCorruptDie       = errors.New("no corrupt die to apply")
	ErrCorruptDieBound    = errors.New("corrupt die already applied")
	ErrNotCorrupt         = errors.New("hero is not corrupt")
	ErrHoldingDemonSword  = errors.New("cannot turn holy while holding the demon sword")
	ErrInvalidPlayerCount = errors.New("a game needs 2 to 6 players")
	ErrDuplicatePlayer    = errors.New("player ids must be unique")
	ErrUnknownClass       = errors.New("unknown hero class")
)
