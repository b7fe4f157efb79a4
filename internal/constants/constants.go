package constants

// Centralized constants for headers, routes, response keys and log fields.
const (
	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"

	ContentTypeJSON = "application/json"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"

	// Gin context keys
	ContextKeyRequestID = "requestID"
)

// Routes used by the backend router
const (
	RouteAPIPrefix         = "/api"
	RouteHealth            = "/healthz"
	RouteGames             = "/games"
	RouteGameByID          = "/games/:gameID"
	RouteGameActions       = "/games/:gameID/actions"
	RouteGameValidate      = "/games/:gameID/validate"
	RouteGameValidActions  = "/games/:gameID/valid-actions"
	RouteGameReachable     = "/games/:gameID/reachable"
	RouteBoard             = "/board"
	RouteDefinitions       = "/definitions"
	RouteLeaderboard       = "/leaderboard"
	RoutePlayerStats       = "/player-stats/:name"
	RouteVersion           = "/version"
	ParamGameID            = "gameID"
	ParamPlayerName        = "name"
	QueryPlayerID          = "playerId"
	QueryLimit             = "limit"
	DefaultLeaderboardSize = 10
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyGameID  = "gameId"
	JSONKeyState   = "state"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrGameNotFound           = "Game not found"
	ErrPlayerNotInGame        = "Player not in game"
	ErrPlayerIDRequired       = "playerId is required"
	ErrInvalidLimit           = "limit must be a positive integer"
	ErrFailedCreateGame       = "Failed to create game"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchStats       = "Failed to fetch stats"
	ErrLedgerDisabled         = "Match ledger is disabled"
	ErrInternal               = "Internal server error"
)

// Logging field names
const (
	LogFieldGameID    = "game_id"
	LogFieldPlayerID  = "player_id"
	LogFieldAction    = "action"
	LogFieldVictory   = "victory"
	LogFieldWinnerID  = "winner_id"
	LogFieldRequestID = "request_id"
	LogFieldMethod    = "method"
	LogFieldPath      = "path"
	LogFieldStatus    = "status"
	LogFieldLatency   = "latency"
	LogFieldCount     = "count"
	LogFieldSchedule  = "schedule"
	LogFieldAddr      = "addr"
	LogFieldReason    = "reason"
	LogFieldDSN       = "dsn"
	LogFieldEnvFiles  = "env_files"
	LogFieldHint      = "hint"
	LogFieldSignal    = "signal"
	LogFieldVersion   = "version"
	LogFieldCommit    = "commit"
)
