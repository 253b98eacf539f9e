package config

// MinLineLength is the shortest accepted MaxLineLength.
const MinLineLength = 20

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON reports
	Format OutputFormat

	// MaxLineLength wraps move lists in text output
	MaxLineLength int

	// UseColour renders the board with terminal colours
	UseColour bool

	// ShowLegalMoves lists every legal move of the side to move
	ShowLegalMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        TextFormat,
		MaxLineLength: 80,
		UseColour:     true,
	}
}
