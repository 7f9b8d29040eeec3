package config

import (
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("bmsc", "Compile BMS charts and judge recorded plays").Version("0.3.0")

	Format   = app.Flag("format", "Chart dialect, bms or dtx").Default("bms").Short('f').Enum("bms", "dtx")
	Seed     = app.Flag("seed", "Seed for #RANDOM, 0 for a random one").Default("0").Int64()
	Double   = app.Flag("double", "Double play, both sides").Bool()
	Scratch  = app.Flag("scratch", "Scratch side, or off to play it as background").Default("left").Short('s').Enum("left", "right", "off")
	Tutorial = app.Flag("tutorial", "Wide timegates for the first part of the song").Bool()
	Rate     = app.Flag("rate", "Playback rate").Default("1.0").Short('r').Float64()
	Offset   = app.Flag("offset", "Global offset added to input times").Default("0ms").Short('o').Duration()
	Database = app.Flag("db", "Score database").Default("./scores.db").String()
	Verbose  = app.Flag("verbose", "Log compiler warnings").Short('v').Bool()

	Info      = app.Command("info", "Show song info and counts")
	InfoChart = Info.Arg("chart", "Chart file").Required().ExistingFile()

	Notes      = app.Command("notes", "List playable notes")
	NotesChart = Notes.Arg("chart", "Chart file").Required().ExistingFile()

	Timing      = app.Command("timing", "List BPM changes and stops")
	TimingChart = Timing.Arg("chart", "Chart file").Required().ExistingFile()

	Replay       = app.Command("replay", "Judge a recorded play and save it")
	ReplayChart  = Replay.Arg("chart", "Chart file").Required().ExistingFile()
	ReplayInputs = Replay.Arg("inputs", "JSON list of {Column, HitTime, Release}").Required().ExistingFile()
	ReplayDryRun = Replay.Flag("dry-run", "Do not save the play").Bool()

	History      = app.Command("history", "List saved plays of a chart")
	HistoryChart = History.Arg("chart", "Chart file").Required().ExistingFile()
)

// Parse reads the command line, returning the selected command.
func Parse(args []string) (string, error) {
	return app.Parse(args)
}

func MustParse() string {
	return kingpin.MustParse(Parse(os.Args[1:]))
}
