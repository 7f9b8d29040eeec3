package game

type Scratch string

const (
	ScratchLeft  Scratch = "left"
	ScratchRight Scratch = "right"
	ScratchOff   Scratch = "off"
)

var Scratches = map[string]Scratch{
	"left":  ScratchLeft,
	"right": ScratchRight,
	"off":   ScratchOff,
}

type PlayerOptions struct {
	Scratch Scratch
	Double  bool
}

const (
	KeyMode5K = "5K"
	KeyMode7K = "7K"
)

// Columns of a single play chart, in play order.
var Columns = []string{"SC", "1", "2", "3", "4", "5", "6", "7"}

// Columns of a double play chart.
var DoubleColumns = []string{
	"SC", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", "10", "11", "12", "13", "14", "SC2",
}

// Columns a 5 key chart can be shifted through.
var shiftableColumns = []string{"1", "2", "3", "4", "5", "6", "7"}
