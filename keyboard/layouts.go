package keyboard

// Registered layout names.
const (
	LayoutCuratorQWERTY = "CURATOR_QWERTY"
	LayoutQWERTY        = "QWERTY"
	LayoutDvorak        = "DVORAK"
	LayoutColemak       = "COLEMAK"
	LayoutAZERTY        = "AZERTY"
	LayoutQWERTZ        = "QWERTZ"
	LayoutSpanishQWERTY = "SPANISH_QWERTY"
	LayoutSwedishQWERTY = "SWEDISH_QWERTY"
)

// layoutRows holds the staggered physical grids the neighbor maps are
// derived from. Leading spaces encode the stagger of each row.
var layoutRows = map[string][]string{
	LayoutQWERTY: {
		"`1234567890-=",
		" qwertyuiop[]\\",
		"  asdfghjkl;'",
		"   zxcvbnm,./",
	},
	LayoutDvorak: {
		"`1234567890[]\\",
		" ',.pyfgcrl/=\\",
		"  aoeuidhtns-",
		"   ;qjkxbmwvz",
	},
	LayoutColemak: {
		"`1234567890-=",
		" qwfpgjluy;[]\\",
		"  arstdhneio'",
		"   zxcvbkm,./",
	},
	LayoutAZERTY: {
		"²&é\"'(-è_çà)=",
		" azertyuiop^$",
		"  qsdfghjklmù*",
		"   <wxcvbn,;:!",
	},
	LayoutQWERTZ: {
		"^1234567890ß´",
		" qwertzuiopü+",
		"  asdfghjklöä#",
		"   yxcvbnm,.-",
	},
	LayoutSpanishQWERTY: {
		"º1234567890'¡",
		" qwertyuiop´+",
		"  asdfghjklñ´",
		"   <zxcvbnm,.-",
	},
	LayoutSwedishQWERTY: {
		"§1234567890+´",
		" qwertyuiopå¨",
		"  asdfghjklöä'",
		"   <zxcvbnm,.-",
	},
}

// curatorQWERTY is a hand-tuned QWERTY adjacency used as the default
// typo layout. Space entries model fat-finger slips onto the space
// bar for keys on the bottom rows.
func curatorQWERTY() NeighborMap {
	split := func(s string) []string {
		out := make([]string, 0, len(s))
		for _, r := range s {
			out = append(out, string(r))
		}

		return out
	}

	return NeighborMap{
		"a": split("qwsz"),
		"b": split("vghn  "),
		"c": split("xdfv  "),
		"d": split("serfcx"),
		"e": split("wsdrf34"),
		"f": split("drtgvc"),
		"g": split("ftyhbv"),
		"h": split("gyujnb"),
		"i": split("ujko89"),
		"j": split("huikmn"),
		"k": split("jilom,"),
		"l": split("kop;.,"),
		"m": split("njk,  "),
		"n": split("bhjm  "),
		"o": split("iklp90"),
		"p": split("o0-[;l"),
		"q": split("was 12"),
		"r": split("edft45"),
		"s": split("awedxz"),
		"t": split("r56ygf"),
		"u": split("y78ijh"),
		"v": split("cfgb  "),
		"w": split("q23esa"),
		"x": split("zsdc  "),
		"y": split("t67uhg"),
		"z": split("asx"),
	}
}

// shiftSymbols holds the non-letter shift pairs per layout; Shift adds
// uppercase letters on top.
var shiftSymbols = map[string]ShiftMap{
	LayoutCuratorQWERTY: qwertySymbols(),
	LayoutQWERTY:        qwertySymbols(),
	LayoutColemak:       qwertySymbols(),
	LayoutDvorak:        qwertySymbols(),
	LayoutAZERTY: {
		"&": "1", "é": "2", "\"": "3", "'": "4", "(": "5",
		"-": "6", "è": "7", "_": "8", "ç": "9", "à": "0",
		")": "°", "=": "+", "^": "¨", "$": "£", "*": "µ",
		"ù": "%", "<": ">", ",": "?", ";": ".", ":": "/", "!": "§",
	},
	LayoutQWERTZ: {
		"^": "°", "1": "!", "2": "\"", "3": "§", "4": "$",
		"5": "%", "6": "&", "7": "/", "8": "(", "9": ")",
		"0": "=", "ß": "?", "´": "`", "+": "*", "#": "'",
		"-": "_", ",": ";", ".": ":",
		"ä": "Ä", "ö": "Ö", "ü": "Ü",
	},
	LayoutSpanishQWERTY: {
		"º": "ª", "1": "!", "2": "\"", "3": "·", "4": "$",
		"5": "%", "6": "&", "7": "/", "8": "(", "9": ")",
		"0": "=", "'": "?", "¡": "¿", "+": "*", "´": "¨",
		"-": "_", ",": ";", ".": ":", "<": ">", "ñ": "Ñ",
	},
	LayoutSwedishQWERTY: {
		"§": "½", "1": "!", "2": "\"", "3": "#", "4": "¤",
		"5": "%", "6": "&", "7": "/", "8": "(", "9": ")",
		"0": "=", "+": "?", "´": "¨", "-": "_", ",": ";",
		".": ":", "<": ">", "å": "Å", "ä": "Ä", "ö": "Ö",
	},
}

func qwertySymbols() ShiftMap {
	return ShiftMap{
		"`": "~", "1": "!", "2": "@", "3": "#", "4": "$",
		"5": "%", "6": "^", "7": "&", "8": "*", "9": "(",
		"0": ")", "-": "_", "=": "+", "[": "{", "]": "}",
		"\\": "|", ";": ":", "'": "\"", ",": "<", ".": ">",
		"/": "?",
	}
}
