package notes

// Mapping maps a chart channel to a game column label.
type Mapping map[string]string

// Column labels are stored in score history, keep them stable.
var (
	// Single play on the 1P side, 7 keys and a scratch.
	IIDXP1 = Mapping{
		"11": "1", "12": "2", "13": "3", "14": "4", "15": "5", "18": "6", "19": "7", "16": "SC",
	}
	IIDXP1Landmine = Mapping{
		"D1": "1", "D2": "2", "D3": "3", "D4": "4", "D5": "5", "D8": "6", "D9": "7", "D6": "SC",
	}

	// Single play written on the 2P side.
	IIDXP2 = Mapping{
		"21": "1", "22": "2", "23": "3", "24": "4", "25": "5", "28": "6", "29": "7", "26": "SC",
	}
	IIDXP2Landmine = Mapping{
		"E1": "1", "E2": "2", "E3": "3", "E4": "4", "E5": "5", "E8": "6", "E9": "7", "E6": "SC",
	}

	// Double play, both sides.
	IIDXDP = Mapping{
		"11": "1", "12": "2", "13": "3", "14": "4", "15": "5", "18": "6", "19": "7", "16": "SC",
		"21": "8", "22": "9", "23": "10", "24": "11", "25": "12", "28": "13", "29": "14", "26": "SC2",
	}
	IIDXDPLandmine = Mapping{
		"D1": "1", "D2": "2", "D3": "3", "D4": "4", "D5": "5", "D8": "6", "D9": "7", "D6": "SC",
		"E1": "8", "E2": "9", "E3": "10", "E4": "11", "E5": "12", "E8": "13", "E9": "14", "E6": "SC2",
	}
)

// Presets by name, for configuration.
var Presets = map[string]Mapping{
	"p1":          IIDXP1,
	"p1-landmine": IIDXP1Landmine,
	"p2":          IIDXP2,
	"p2-landmine": IIDXP2Landmine,
	"dp":          IIDXDP,
	"dp-landmine": IIDXDPLandmine,
}
