package models

type Sport string

const (
	SportCricket  Sport = "cricket"
	SportFootball Sport = "football"
	SportChess    Sport = "chess"
)

// Score carries the sport-specific scoreboard fields. Cricket uses
// home/away strings plus overs, football numeric goals plus the clock,
// chess an engine eval plus the last move.
type Score struct {
	Home  any    `json:"home,omitempty"`
	Away  any    `json:"away,omitempty"`
	Overs string `json:"overs,omitempty"`
	Time  string `json:"time,omitempty"`
	Eval  string `json:"eval,omitempty"`
	Move  string `json:"move,omitempty"`
}

type Odds struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
	Draw float64 `json:"draw,omitempty"`
}

type Match struct {
	ID      string `json:"id"`
	Sport   Sport  `json:"sport"`
	Home    string `json:"home"`
	Away    string `json:"away"`
	Status  string `json:"status"`
	Score   Score  `json:"score"`
	Odds    Odds   `json:"odds"`
	Details string `json:"details"`
}
