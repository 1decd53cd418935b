package models

// Option is a value/label pair offered by the comment form.
type Option struct {
	Value string
	Label string
}

// PlayerSides lists the sides the comment form offers.
var PlayerSides = []Option{
	{Value: "white", Label: "White"},
	{Value: "black", Label: "Black"},
}

// TacticalIdeas lists the categories the comment form offers. Storage accepts
// any text; this list only drives the form.
var TacticalIdeas = []Option{
	{Value: "attack", Label: "Attack"},
	{Value: "defense", Label: "Defense"},
	{Value: "fork", Label: "Fork"},
	{Value: "pin", Label: "Pin"},
	{Value: "skewer", Label: "Skewer"},
	{Value: "discovery", Label: "Discovery"},
	{Value: "doubleAttack", Label: "Double Attack"},
	{Value: "sacrifice", Label: "Sacrifice"},
	{Value: "promotion", Label: "Promotion"},
	{Value: "zugzwang", Label: "Zugzwang"},
	{Value: "tempo", Label: "Tempo"},
	{Value: "endgame", Label: "Endgame Technique"},
	{Value: "opening", Label: "Opening Theory"},
	{Value: "middlegame", Label: "Middlegame Strategy"},
	{Value: "other", Label: "Other"},
}

// OptionLabel returns the label for value, or value itself when unknown.
func OptionLabel(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
