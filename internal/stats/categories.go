package stats

// The registry below is the fixed catalog of statistical categories pulled
// from each boxscore. Column names mirror the source site's display headers;
// stat codes are the stable identifiers everything downstream keys on.

// Passing covers the advanced passing table.
var Passing = Category{
	Name:    "passing",
	ID:      "P",
	TableID: "passing_advanced",
	Columns: []ColumnSpec{
		{"Player", KindText}, {"Tm", KindText},
		{"Cmp", KindInt}, {"Att", KindInt}, {"Yds", KindInt},
		{"1D", KindInt}, {"1D%", KindFloat},
		{"IAY", KindInt}, {"IAY/PA", KindFloat},
		{"CAY", KindInt}, {"CAY/Cmp", KindFloat}, {"CAY/PA", KindFloat},
		{"YAC", KindInt}, {"YAC/Cmp", KindFloat},
		{"Drops", KindInt}, {"Drop%", KindFloat},
		{"BadTh", KindInt}, {"Bad%", KindFloat},
		{"Sk", KindInt}, {"Bltz", KindInt}, {"Hrry", KindInt},
		{"Hits", KindInt}, {"Prss", KindInt}, {"Prss%", KindFloat},
		{"Scrm", KindInt}, {"Yds/Scr", KindFloat},
	},
	Cleaning: map[string][]string{
		"%": {"1D%", "Drop%", "Bad%", "Prss%"},
	},
	Derived: []DerivedColumn{
		{Name: "Cmp%", Op: OpPercentage, A: "Cmp", B: "Att"},
	},
	Order: []string{
		"Player", "Tm", "Cmp", "Att", "Cmp%", "Yds", "1D", "1D%", "IAY",
		"IAY/PA", "CAY", "CAY/Cmp", "CAY/PA", "YAC", "YAC/Cmp", "Drops",
		"Drop%", "BadTh", "Bad%", "Sk", "Bltz", "Hrry", "Hits", "Prss",
		"Prss%", "Scrm", "Yds/Scr",
	},
	ValueVars: []string{
		"Cmp", "Att", "Yds", "1D", "1D%", "IAY", "IAY/PA", "CAY", "CAY/Cmp",
		"CAY/PA", "YAC", "YAC/Cmp", "Drops", "Drop%", "BadTh", "Bad%", "Sk",
		"Bltz", "Hrry", "Hits", "Prss", "Prss%", "Scrm", "Yds/Scr", "Cmp%",
	},
	StatCodes: map[string]string{
		"Cmp": "P1", "Att": "P2", "Yds": "P3", "1D": "P4", "1D%": "P5",
		"IAY": "P6", "IAY/PA": "P7", "CAY": "P8", "CAY/Cmp": "P9",
		"CAY/PA": "P10", "YAC": "P11", "YAC/Cmp": "P12", "Drops": "P13",
		"Drop%": "P14", "BadTh": "P15", "Bad%": "P16", "Sk": "P17",
		"Bltz": "P18", "Hrry": "P19", "Hits": "P20", "Prss": "P21",
		"Prss%": "P22", "Scrm": "P23", "Yds/Scr": "P24", "Cmp%": "P25",
	},
	SummaryCodes: []string{
		"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8", "P9", "P10", "P11",
		"P12", "P13", "P14", "P15", "P16", "P17", "P18", "P19", "P20", "P21",
		"P22", "P23", "P24", "P25",
	},
	AggRules: map[string]AggRule{
		"P1":  {Kind: AggSum},
		"P2":  {Kind: AggSum},
		"P3":  {Kind: AggSum},
		"P4":  {Kind: AggSum},
		"P5":  {Kind: AggPercentage, Num: "P4", Den: "P2"},
		"P6":  {Kind: AggSum},
		"P7":  {Kind: AggWeightedAvg, Num: "P6", Den: "P2"},
		"P8":  {Kind: AggSum},
		"P9":  {Kind: AggWeightedAvg, Num: "P8", Den: "P1"},
		"P10": {Kind: AggWeightedAvg, Num: "P8", Den: "P2"},
		"P11": {Kind: AggSum},
		"P12": {Kind: AggWeightedAvg, Num: "P11", Den: "P1"},
		"P13": {Kind: AggSum},
		"P14": {Kind: AggPercentage, Num: "P13", Den: "P2"},
		"P15": {Kind: AggSum},
		"P16": {Kind: AggPercentage, Num: "P15", Den: "P2"},
		"P17": {Kind: AggSum},
		"P18": {Kind: AggSum},
		"P19": {Kind: AggSum},
		"P20": {Kind: AggSum},
		"P21": {Kind: AggSum},
		"P22": {Kind: AggPercentage, Num: "P21", Den: "P2"},
		"P23": {Kind: AggSum},
		"P24": {Kind: AggAvgOfTwo},
		"P25": {Kind: AggPercentage, Num: "P1", Den: "P2"},
	},
}

// Receiving covers the advanced receiving table. Its one-letter id is C
// (catching) because rushing already claims R.
var Receiving = Category{
	Name:    "receiving",
	ID:      "C",
	TableID: "receiving_advanced",
	Columns: []ColumnSpec{
		{"Player", KindText}, {"Tm", KindText},
		{"Tgt", KindInt}, {"Rec", KindInt}, {"Yds", KindInt}, {"TD", KindInt},
		{"1D", KindInt}, {"YBC", KindInt}, {"YBC/R", KindFloat},
		{"YAC", KindInt}, {"YAC/R", KindFloat}, {"ADOT", KindFloat},
		{"BrkTkl", KindInt}, {"Rec/Br", KindFloat},
		{"Drop", KindInt}, {"Drop%", KindFloat},
		{"Int", KindInt}, {"Rat", KindFloat},
	},
	Cleaning: map[string][]string{
		"%": {"Drop%"},
	},
	Derived: []DerivedColumn{
		{Name: "Ctch%", Op: OpPercentage, A: "Rec", B: "Tgt"},
	},
	Order: []string{
		"Player", "Tm", "Tgt", "Rec", "Ctch%", "Yds", "TD", "1D", "YBC",
		"YBC/R", "YAC", "YAC/R", "ADOT", "BrkTkl", "Rec/Br", "Drop", "Drop%",
		"Int", "Rat",
	},
	ValueVars: []string{
		"Tgt", "Rec", "Yds", "TD", "1D", "YBC", "YBC/R", "YAC", "YAC/R",
		"ADOT", "BrkTkl", "Rec/Br", "Drop", "Drop%", "Int", "Rat", "Ctch%",
	},
	StatCodes: map[string]string{
		"Tgt": "C1", "Rec": "C2", "Yds": "C3", "TD": "C4", "1D": "C5",
		"YBC": "C6", "YBC/R": "C7", "YAC": "C8", "YAC/R": "C9", "ADOT": "C10",
		"BrkTkl": "C11", "Rec/Br": "C12", "Drop": "C13", "Drop%": "C14",
		"Int": "C15", "Rat": "C16", "Ctch%": "C17",
	},
	SummaryCodes: []string{
		"C1", "C2", "C3", "C4", "C5", "C6", "C7", "C8", "C9", "C10", "C11",
		"C12", "C13", "C14", "C15", "C16", "C17",
	},
	AggRules: map[string]AggRule{
		"C1":  {Kind: AggSum},
		"C2":  {Kind: AggSum},
		"C3":  {Kind: AggSum},
		"C4":  {Kind: AggSum},
		"C5":  {Kind: AggSum},
		"C6":  {Kind: AggSum},
		"C7":  {Kind: AggWeightedAvg, Num: "C6", Den: "C2"},
		"C8":  {Kind: AggSum},
		"C9":  {Kind: AggWeightedAvg, Num: "C8", Den: "C2"},
		"C10": {Kind: AggAvgOfTwo},
		"C11": {Kind: AggSum},
		"C12": {Kind: AggWeightedAvg, Num: "C2", Den: "C11"},
		"C13": {Kind: AggSum},
		"C14": {Kind: AggPercentage, Num: "C13", Den: "C1"},
		"C15": {Kind: AggSum},
		"C16": {Kind: AggAvgOfTwo},
		"C17": {Kind: AggPercentage, Num: "C2", Den: "C1"},
	},
}

// Rushing covers the advanced rushing table.
var Rushing = Category{
	Name:    "rushing",
	ID:      "R",
	TableID: "rushing_advanced",
	Columns: []ColumnSpec{
		{"Player", KindText}, {"Tm", KindText},
		{"Att", KindInt}, {"Yds", KindInt}, {"TD", KindInt}, {"1D", KindInt},
		{"YBC", KindInt}, {"YBC/Att", KindFloat},
		{"YAC", KindInt}, {"YAC/Att", KindFloat},
		{"BrkTkl", KindInt}, {"Att/Br", KindFloat},
	},
	Derived: []DerivedColumn{
		{Name: "Yds/Att", Op: OpAverage, A: "Yds", B: "Att"},
	},
	Order: []string{
		"Player", "Tm", "Att", "Yds", "Yds/Att", "TD", "1D", "YBC", "YBC/Att",
		"YAC", "YAC/Att", "BrkTkl", "Att/Br",
	},
	ValueVars: []string{
		"Att", "Yds", "TD", "1D", "YBC", "YBC/Att", "YAC", "YAC/Att",
		"BrkTkl", "Att/Br", "Yds/Att",
	},
	StatCodes: map[string]string{
		"Att": "R1", "Yds": "R2", "TD": "R3", "1D": "R4", "YBC": "R5",
		"YBC/Att": "R6", "YAC": "R7", "YAC/Att": "R8", "BrkTkl": "R9",
		"Att/Br": "R10", "Yds/Att": "R11",
	},
	SummaryCodes: []string{
		"R1", "R2", "R3", "R4", "R5", "R6", "R7", "R8", "R9", "R10", "R11",
	},
	AggRules: map[string]AggRule{
		"R1":  {Kind: AggSum},
		"R2":  {Kind: AggSum},
		"R3":  {Kind: AggSum},
		"R4":  {Kind: AggSum},
		"R5":  {Kind: AggSum},
		"R6":  {Kind: AggWeightedAvg, Num: "R5", Den: "R1"},
		"R7":  {Kind: AggSum},
		"R8":  {Kind: AggWeightedAvg, Num: "R7", Den: "R1"},
		"R9":  {Kind: AggSum},
		"R10": {Kind: AggWeightedAvg, Num: "R1", Den: "R9"},
		"R11": {Kind: AggWeightedAvg, Num: "R2", Den: "R1"},
	},
}

// Defense covers the basic defense box score folded together with the
// advanced pass-defense table. Its expected columns describe the reassembled
// base table, after the interception-band Yds/TD are renamed to
// int_Yds/int_TD; shape validation is deferred until then. The advanced
// side's Yds/TD arrive renamed to Yds_Allowed/TD_Allowed.
var Defense = Category{
	Name:    "defense",
	ID:      "D",
	TableID: "player_defense",
	Columns: []ColumnSpec{
		{"Player", KindText}, {"Tm", KindText},
		{"Int", KindInt}, {"int_Yds", KindInt}, {"int_TD", KindInt},
		{"Lng", KindInt}, {"PD", KindInt}, {"Sk", KindFloat},
		{"Comb", KindInt}, {"Solo", KindInt}, {"Ast", KindInt},
		{"TFL", KindInt}, {"QBHits", KindInt}, {"FR", KindInt},
		{"Yds", KindInt}, {"TD", KindInt}, {"FF", KindInt},
	},
	Cleaning: map[string][]string{
		"%": {"Cmp%", "MTkl%"},
	},
	Order: []string{
		"Player", "Tm", "Int", "int_Yds", "int_TD", "Lng", "PD", "Sk", "Comb",
		"Solo", "Ast", "TFL", "QBHits", "FR", "Yds", "TD", "FF", "Tgt", "Cmp",
		"Cmp%", "Yds_Allowed", "Yds/Cmp", "Yds/Tgt", "TD_Allowed", "Rat",
		"DADOT", "Air", "YAC", "Bltz", "Hrry", "QBKD", "Prss", "MTkl", "MTkl%",
	},
	ValueVars: []string{
		"Int", "int_Yds", "int_TD", "Lng", "PD", "Sk", "Comb", "Solo", "Ast",
		"TFL", "QBHits", "FR", "Yds", "TD", "FF", "Tgt", "Cmp", "Cmp%",
		"Yds_Allowed", "Yds/Cmp", "Yds/Tgt", "TD_Allowed", "Rat", "DADOT",
		"Air", "YAC", "Bltz", "Hrry", "QBKD", "Prss", "MTkl", "MTkl%",
	},
	StatCodes: map[string]string{
		"Int": "D1", "int_Yds": "D2", "int_TD": "D3", "Lng": "D4", "PD": "D5",
		"Sk": "D6", "Comb": "D7", "Solo": "D8", "Ast": "D9", "TFL": "D10",
		"QBHits": "D11", "FR": "D12", "Yds": "D13", "TD": "D14", "FF": "D15",
		"Tgt": "D16", "Cmp": "D17", "Cmp%": "D18", "Yds_Allowed": "D19",
		"Yds/Cmp": "D20", "Yds/Tgt": "D21", "TD_Allowed": "D22", "Rat": "D23",
		"DADOT": "D24", "Air": "D25", "YAC": "D26", "Bltz": "D27",
		"Hrry": "D28", "QBKD": "D29", "Prss": "D30", "MTkl": "D31",
		"MTkl%": "D32",
	},
	// Lng is a longest-return mark, not an additive quantity, so it stays
	// out of the season summary.
	SummaryCodes: []string{
		"D1", "D2", "D3", "D5", "D6", "D7", "D8", "D9", "D10", "D11", "D12",
		"D13", "D14", "D15", "D16", "D17", "D18", "D19", "D20", "D21", "D22",
		"D23", "D24", "D25", "D26", "D27", "D28", "D29", "D30", "D31", "D32",
	},
	AggRules: map[string]AggRule{
		"D1":  {Kind: AggSum},
		"D2":  {Kind: AggSum},
		"D3":  {Kind: AggSum},
		"D5":  {Kind: AggSum},
		"D6":  {Kind: AggSum},
		"D7":  {Kind: AggSum},
		"D8":  {Kind: AggSum},
		"D9":  {Kind: AggSum},
		"D10": {Kind: AggSum},
		"D11": {Kind: AggSum},
		"D12": {Kind: AggSum},
		"D13": {Kind: AggSum},
		"D14": {Kind: AggSum},
		"D15": {Kind: AggSum},
		"D16": {Kind: AggSum},
		"D17": {Kind: AggSum},
		"D18": {Kind: AggPercentage, Num: "D17", Den: "D16"},
		"D19": {Kind: AggSum},
		"D20": {Kind: AggWeightedAvg, Num: "D19", Den: "D17"},
		"D21": {Kind: AggWeightedAvg, Num: "D19", Den: "D16"},
		"D22": {Kind: AggSum},
		"D23": {Kind: AggAvgOfTwo},
		"D24": {Kind: AggAvgOfTwo},
		"D25": {Kind: AggSum},
		"D26": {Kind: AggSum},
		"D27": {Kind: AggSum},
		"D28": {Kind: AggSum},
		"D29": {Kind: AggSum},
		"D30": {Kind: AggSum},
		"D31": {Kind: AggSum},
		"D32": {Kind: AggPercentage, Num: "D31", Den: "D7"},
	},
}

// advancedDefenseTableID is the element id of the advanced pass-defense
// table merged into the defense category.
const advancedDefenseTableID = "defense_advanced"

// advancedDefenseColumns is the expected shape of the advanced table before
// its duplicate columns are dropped and its Yds/TD renamed.
var advancedDefenseColumns = []string{
	"Player", "Tm", "Int", "Tgt", "Cmp", "Cmp%", "Yds", "Yds/Cmp", "Yds/Tgt",
	"TD", "Rat", "DADOT", "Air", "YAC", "Bltz", "Hrry", "QBKD", "Sk", "Prss",
	"Comb", "MTkl", "MTkl%",
}

// Categories is the fixed registry, validated once at startup via
// ValidateRegistry.
var Categories = []Category{Passing, Receiving, Rushing, Defense}
