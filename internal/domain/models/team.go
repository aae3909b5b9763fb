package models

// Team with a nil CreatedBy is a "real" team; a non-nil CreatedBy names the
// user who created it through the API ("fake" team).
type Team struct {
	TeamID    int     `db:"team_id" json:"team_id"`
	CreatedBy *string `db:"created_by" json:"created_by"`
	TeamCity  *string `db:"team_city" json:"team_city"`
	TeamName  string  `db:"team_name" json:"team_name"`
}

type TeamDetail struct {
	Team
	Players []int `json:"players"`
}
