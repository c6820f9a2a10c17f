package tokenize

import "sort"

// drumNames maps every long drum name to its abbreviation.
var drumNames = map[string]string{
	"acousticbassdrum": "bda",
	"bassdrum":         "bd",
	"hisidestick":      "ssh",
	"sidestick":        "ss",
	"losidestick":      "ssl",
	"acousticsnare":    "sna",
	"snare":            "sn",
	"handclap":         "hc",
	"electricsnare":    "sne",
	"lowfloortom":      "tomfl",
	"closedhihat":      "hhc",
	"hihat":            "hh",
	"highfloortom":     "tomfh",
	"pedalhihat":       "hhp",
	"lowtom":           "toml",
	"openhihat":        "hho",
	"halfopenhihat":    "hhho",
	"lowmidtom":        "tomml",
	"himidtom":         "tommh",
	"crashcymbala":     "cymca",
	"crashcymbal":      "cymc",
	"hightom":          "tomh",
	"ridecymbala":      "cymra",
	"ridecymbal":       "cymr",
	"chinesecymbal":    "cymch",
	"ridebell":         "rb",
	"tambourine":       "tamb",
	"splashcymbal":     "cyms",
	"cowbell":          "cb",
	"crashcymbalb":     "cymcb",
	"vibraslap":        "vibs",
	"ridecymbalb":      "cymrb",
	"mutehibongo":      "bohm",
	"hibongo":          "boh",
	"openhibongo":      "boho",
	"mutelobongo":      "bolm",
	"lobongo":          "bol",
	"openlobongo":      "bolo",
	"mutehiconga":      "cghm",
	"muteloconga":      "cglm",
	"openhiconga":      "cgho",
	"hiconga":          "cgh",
	"openloconga":      "cglo",
	"loconga":          "cgl",
	"hitimbale":        "timh",
	"lotimbale":        "timl",
	"hiagogo":          "agh",
	"loagogo":          "agl",
	"cabasa":           "cab",
	"maracas":          "mar",
	"shortwhistle":     "whs",
	"longwhistle":      "whl",
	"shortguiro":       "guis",
	"longguiro":        "guil",
	"guiro":            "gui",
	"claves":           "cl",
	"hiwoodblock":      "wbh",
	"lowoodblock":      "wbl",
	"mutecuica":        "cuim",
	"opencuica":        "cuio",
	"mutetriangle":     "trim",
	"triangle":         "tri",
	"opentriangle":     "trio",
	"oneup":            "ua",
	"twoup":            "ub",
	"threeup":          "uc",
	"fourup":           "ud",
	"fiveup":           "ue",
	"onedown":          "da",
	"twodown":          "db",
	"threedown":        "dc",
	"fourdown":         "dd",
	"fivedown":         "de",
}

var drumWords = func() map[string]bool {
	m := make(map[string]bool, 2*len(drumNames))
	for long, short := range drumNames {
		m[long] = true
		m[short] = true
	}
	return m
}()

// IsDrumName reports whether word names a drum, in long or short form.
func IsDrumName(word string) bool {
	return drumWords[word]
}

// DrumNames returns all drum names, long and short, sorted.
func DrumNames() []string {
	out := make([]string, 0, len(drumWords))
	for w := range drumWords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
