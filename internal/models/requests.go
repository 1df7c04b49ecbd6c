package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type VerifyRequest struct {
	UserID string `json:"userId" binding:"required"`
	Code   string `json:"code" binding:"required,len=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type SportsBetRequest struct {
	MatchID string  `json:"matchId" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Odds    float64 `json:"odds" binding:"required,gt=1"`
	Details string  `json:"details" binding:"required"`
	Outcome string  `json:"outcome" binding:"required,oneof=home away draw"`
}

type CrashBetRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CrashWinRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Multiplier float64 `json:"multiplier" binding:"required,gte=1"`
}

type CrashLoseRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	CrashPoint float64 `json:"crashPoint" binding:"required,gte=1"`
}

type DiceBetRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Target int     `json:"target" binding:"required,min=1,max=95"`
	// Only roll-under is offered; the field is kept for the client.
	Condition string `json:"condition"`
}

type MinesBetRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	MineCount int     `json:"mineCount" binding:"required,min=1,max=24"`
}

type MinesRevealRequest struct {
	// Tile 0 is valid, so no required tag here.
	TileIndex int `json:"tileIndex" binding:"min=0,max=24"`
}

type HiLoStartRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type HiLoNextRequest struct {
	Prediction string `json:"prediction" binding:"required,oneof=higher lower"`
}

type PlinkoBetRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Rows   int     `json:"rows" binding:"required,min=8,max=16"`
}
