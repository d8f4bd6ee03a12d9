package entity

// legacy holds the references browsers accept with or without the
// terminating semicolon; Table carries each of these twice, with and
// without it.
var legacy = map[string]string{
	"AElig":  "Æ",
	"AMP":    "&",
	"Aacute": "Á",
	"Acirc":  "Â",
	"Agrave": "À",
	"Aring":  "Å",
	"Atilde": "Ã",
	"Auml":   "Ä",
	"COPY":   "©",
	"Ccedil": "Ç",
	"ETH":    "Ð",
	"Eacute": "É",
	"Ecirc":  "Ê",
	"Egrave": "È",
	"Euml":   "Ë",
	"GT":     ">",
	"Iacute": "Í",
	"Icirc":  "Î",
	"Igrave": "Ì",
	"Iuml":   "Ï",
	"LT":     "<",
	"Ntilde": "Ñ",
	"Oacute": "Ó",
	"Ocirc":  "Ô",
	"Ograve": "Ò",
	"Oslash": "Ø",
	"Otilde": "Õ",
	"Ouml":   "Ö",
	"QUOT":   "\"",
	"REG":    "®",
	"THORN":  "Þ",
	"Uacute": "Ú",
	"Ucirc":  "Û",
	"Ugrave": "Ù",
	"Uuml":   "Ü",
	"Yacute": "Ý",
	"aacute": "á",
	"acirc":  "â",
	"acute":  "´",
	"aelig":  "æ",
	"agrave": "à",
	"amp":    "&",
	"aring":  "å",
	"atilde": "ã",
	"auml":   "ä",
	"brvbar": "¦",
	"ccedil": "ç",
	"cedil":  "¸",
	"cent":   "¢",
	"copy":   "©",
	"curren": "¤",
	"deg":    "°",
	"divide": "÷",
	"eacute": "é",
	"ecirc":  "ê",
	"egrave": "è",
	"eth":    "ð",
	"euml":   "ë",
	"frac12": "½",
	"frac14": "¼",
	"frac34": "¾",
	"gt":     ">",
	"iacute": "í",
	"icirc":  "î",
	"iexcl":  "¡",
	"igrave": "ì",
	"iquest": "¿",
	"iuml":   "ï",
	"laquo":  "«",
	"lt":     "<",
	"macr":   "¯",
	"micro":  "µ",
	"middot": "·",
	"nbsp":   " ",
	"not":    "¬",
	"ntilde": "ñ",
	"oacute": "ó",
	"ocirc":  "ô",
	"ograve": "ò",
	"ordf":   "ª",
	"ordm":   "º",
	"oslash": "ø",
	"otilde": "õ",
	"ouml":   "ö",
	"para":   "¶",
	"plusmn": "±",
	"pound":  "£",
	"quot":   "\"",
	"raquo":  "»",
	"reg":    "®",
	"sect":   "§",
	"shy":    "­",
	"sup1":   "¹",
	"sup2":   "²",
	"sup3":   "³",
	"szlig":  "ß",
	"thorn":  "þ",
	"times":  "×",
	"uacute": "ú",
	"ucirc":  "û",
	"ugrave": "ù",
	"uml":    "¨",
	"uuml":   "ü",
	"yacute": "ý",
	"yen":    "¥",
	"yuml":   "ÿ",
}

// semicolonOnly holds references that require the terminating semicolon.
var semicolonOnly = map[string]string{
	"Alpha;":    "Α",
	"Beta;":     "Β",
	"Chi;":      "Χ",
	"Dagger;":   "‡",
	"Delta;":    "Δ",
	"Epsilon;":  "Ε",
	"Eta;":      "Η",
	"Gamma;":    "Γ",
	"Iota;":     "Ι",
	"Kappa;":    "Κ",
	"Lambda;":   "Λ",
	"Mu;":       "Μ",
	"Nu;":       "Ν",
	"OElig;":    "Œ",
	"Omega;":    "Ω",
	"Omicron;":  "Ο",
	"Phi;":      "Φ",
	"Pi;":       "Π",
	"Prime;":    "″",
	"Psi;":      "Ψ",
	"Rho;":      "Ρ",
	"Scaron;":   "Š",
	"Sigma;":    "Σ",
	"Tau;":      "Τ",
	"Theta;":    "Θ",
	"Upsilon;":  "Υ",
	"Xi;":       "Ξ",
	"Yuml;":     "Ÿ",
	"Zeta;":     "Ζ",
	"alefsym;":  "ℵ",
	"alpha;":    "α",
	"and;":      "∧",
	"ang;":      "∠",
	"apos;":     "'",
	"asymp;":    "≈",
	"bdquo;":    "„",
	"beta;":     "β",
	"bull;":     "•",
	"cap;":      "∩",
	"chi;":      "χ",
	"circ;":     "ˆ",
	"clubs;":    "♣",
	"cong;":     "≅",
	"crarr;":    "↵",
	"cup;":      "∪",
	"dArr;":     "⇓",
	"dagger;":   "†",
	"darr;":     "↓",
	"delta;":    "δ",
	"diams;":    "♦",
	"empty;":    "∅",
	"emsp;":     " ",
	"ensp;":     " ",
	"epsilon;":  "ε",
	"equiv;":    "≡",
	"eta;":      "η",
	"euro;":     "€",
	"exist;":    "∃",
	"fnof;":     "ƒ",
	"forall;":   "∀",
	"frasl;":    "⁄",
	"gamma;":    "γ",
	"ge;":       "≥",
	"hArr;":     "⇔",
	"harr;":     "↔",
	"hearts;":   "♥",
	"hellip;":   "…",
	"iota;":     "ι",
	"image;":    "ℑ",
	"infin;":    "∞",
	"int;":      "∫",
	"isin;":     "∈",
	"kappa;":    "κ",
	"lArr;":     "⇐",
	"lambda;":   "λ",
	"lang;":     "⟨",
	"larr;":     "←",
	"lceil;":    "⌈",
	"ldquo;":    "“",
	"le;":       "≤",
	"lfloor;":   "⌊",
	"lowast;":   "∗",
	"loz;":      "◊",
	"lrm;":      "‎",
	"lsaquo;":   "‹",
	"lsquo;":    "‘",
	"mdash;":    "—",
	"minus;":    "−",
	"mu;":       "μ",
	"nabla;":    "∇",
	"ndash;":    "–",
	"ne;":       "≠",
	"ni;":       "∋",
	"notin;":    "∉",
	"nsub;":     "⊄",
	"nu;":       "ν",
	"oelig;":    "œ",
	"oline;":    "‾",
	"omega;":    "ω",
	"omicron;":  "ο",
	"oplus;":    "⊕",
	"or;":       "∨",
	"otimes;":   "⊗",
	"part;":     "∂",
	"permil;":   "‰",
	"perp;":     "⊥",
	"phi;":      "φ",
	"pi;":       "π",
	"piv;":      "ϖ",
	"prime;":    "′",
	"prod;":     "∏",
	"prop;":     "∝",
	"psi;":      "ψ",
	"radic;":    "√",
	"rArr;":     "⇒",
	"rang;":     "⟩",
	"rarr;":     "→",
	"rceil;":    "⌉",
	"rdquo;":    "”",
	"real;":     "ℜ",
	"rfloor;":   "⌋",
	"rho;":      "ρ",
	"rlm;":      "‏",
	"rsaquo;":   "›",
	"rsquo;":    "’",
	"sbquo;":    "‚",
	"scaron;":   "š",
	"sdot;":     "⋅",
	"sigma;":    "σ",
	"sigmaf;":   "ς",
	"sim;":      "∼",
	"spades;":   "♠",
	"sub;":      "⊂",
	"sube;":     "⊆",
	"sum;":      "∑",
	"sup;":      "⊃",
	"supe;":     "⊇",
	"tau;":      "τ",
	"there4;":   "∴",
	"theta;":    "θ",
	"thetasym;": "ϑ",
	"thinsp;":   " ",
	"tilde;":    "˜",
	"trade;":    "™",
	"uArr;":     "⇑",
	"uarr;":     "↑",
	"upsih;":    "ϒ",
	"upsilon;":  "υ",
	"weierp;":   "℘",
	"xi;":       "ξ",
	"zeta;":     "ζ",
	"zwj;":      "‍",
	"zwnj;":     "‌",
}

// Table maps character reference names, as they appear after "&", to
// their replacement text.
var Table = func() map[string]string {
	m := make(map[string]string, 2*len(legacy)+len(semicolonOnly))
	for name, repl := range legacy {
		m[name] = repl
		m[name+";"] = repl
	}
	for name, repl := range semicolonOnly {
		m[name] = repl
	}
	return m
}()
