package models

type Movie struct {
	MovieID    int      `db:"movie_id" json:"movie_id"`
	Title      string   `db:"title" json:"movie_title"`
	Year       *int     `db:"year" json:"year"`
	IMDBRating *float64 `db:"imdb_rating" json:"imdb_rating"`
	IMDBVotes  *int     `db:"imdb_votes" json:"imdb_votes"`
}

// CharacterLines is one row of a movie's character leaderboard.
type CharacterLines struct {
	CharacterID int    `db:"character_id" json:"character_id"`
	Name        string `db:"name" json:"character"`
	NumLines    int    `db:"num_lines" json:"num_lines"`
}

type MovieDetail struct {
	MovieID       int              `json:"movie_id"`
	Title         string           `json:"movie_title"`
	TopCharacters []CharacterLines `json:"top_characters"`
}
