package board

// MoveRow pairs a white move with the black reply.
type MoveRow struct {
	Number int    `json:"number"`
	White  string `json:"white"`
	Black  string `json:"black,omitempty"`
}

// MoveRows groups a SAN history into numbered rows.
func MoveRows(history []string) []MoveRow {
	rows := make([]MoveRow, 0, (len(history)+1)/2)
	for i := 0; i < len(history); i += 2 {
		row := MoveRow{Number: i/2 + 1, White: history[i]}
		if i+1 < len(history) {
			row.Black = history[i+1]
		}
		rows = append(rows, row)
	}
	return rows
}
