package entity

// Tally counts finished games of one mode.
type Tally struct {
	Mode     string `json:"mode"`
	BlueWins int64  `json:"blue_wins"`
	RedWins  int64  `json:"red_wins"`
	Draws    int64  `json:"draws"`
}

func (that *Tally) Total() int64 {
	return that.BlueWins + that.RedWins + that.Draws
}
