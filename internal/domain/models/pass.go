package models

// PassRow is one row of the passes table as served by GET /passes.
type PassRow struct {
	ID       int      `json:"id"`
	PassKey  string   `json:"pass_key"`
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Price    int64    `json:"price"`
	Features []string `json:"features"`
}
