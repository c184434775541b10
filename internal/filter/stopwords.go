package filter

// stopwordTables maps a language name to its built-in stopword table.
var stopwordTables = map[string]map[string]struct{}{
	"french":  frenchStopwords,
	"english": englishStopwords,
}

// punctuationGlyphs are single-character punctuation tokens and the
// decorative symbols common in tweets. The tokenizer emits these as
// standalone tokens; the filter drops them by membership.
var punctuationGlyphs = map[string]struct{}{
	"!": {}, "?": {}, ",": {}, ";": {}, ":": {}, ".": {}, "…": {},
	"(": {}, ")": {}, "[": {}, "]": {}, "{": {}, "}": {},
	"\"": {}, "'": {}, "’": {}, "`": {}, "«": {}, "»": {},
	"-": {}, "_": {}, "—": {}, "–": {}, "*": {}, "+": {}, "=": {},
	"/": {}, "\\": {}, "|": {}, "<": {}, ">": {}, "~": {}, "^": {},
	"&": {}, "%": {}, "$": {}, "€": {}, "£": {}, "°": {}, "§": {},
}

// emoticonGlyphs are ASCII emoticon sequences the tokenizer keeps atomic.
var emoticonGlyphs = map[string]struct{}{
	":)": {}, ":-)": {}, ":(": {}, ":-(": {}, ":d": {}, ":-d": {},
	":p": {}, ":-p": {}, ";)": {}, ";-)": {}, ":o": {}, ":-o": {},
	":/": {}, ":-/": {}, ":\\": {}, ":|": {}, ":*": {}, ";p": {},
	"=)": {}, "=(": {}, "8)": {}, "<3": {}, "</3": {}, "^^": {},
	"xd": {}, "x)": {},
}

// frenchStopwords is the built-in French stopword table: articles,
// pronouns, common verb forms (être/avoir/faire), prepositions, and the
// usual high-frequency fillers of informal French.
var frenchStopwords = map[string]struct{}{
	"a": {}, "ai": {}, "aie": {}, "ainsi": {}, "alors": {}, "apres": {},
	"après": {}, "as": {}, "assez": {}, "au": {}, "aucun": {}, "aucune": {},
	"aujourd'hui": {}, "auquel": {}, "aura": {}, "aussi": {}, "autre": {},
	"autres": {}, "aux": {}, "avaient": {}, "avais": {}, "avait": {},
	"avant": {}, "avec": {}, "avez": {}, "avoir": {}, "avons": {},
	"beaucoup": {}, "bien": {}, "bon": {}, "bonne": {},
	"c": {}, "ca": {}, "car": {}, "ce": {}, "ceci": {}, "cela": {},
	"celle": {}, "celles": {}, "celui": {}, "cependant": {}, "ces": {},
	"cet": {}, "cette": {}, "ceux": {}, "chaque": {}, "chez": {},
	"comme": {}, "comment": {}, "ça": {},
	"d": {}, "dans": {}, "de": {}, "dedans": {}, "dehors": {}, "deja": {},
	"depuis": {}, "des": {}, "dessous": {}, "dessus": {}, "deux": {},
	"doit": {}, "donc": {}, "dont": {}, "du": {}, "déjà": {},
	"elle": {}, "elles": {}, "en": {}, "encore": {}, "entre": {},
	"es": {}, "est": {}, "et": {}, "etaient": {}, "etais": {},
	"etait": {}, "etc": {}, "ete": {}, "etre": {}, "eu": {}, "eux": {},
	"également": {}, "étaient": {}, "était": {}, "été": {}, "être": {},
	"fait": {}, "faire": {}, "fais": {}, "faites": {}, "fois": {},
	"font": {}, "fut": {},
	"grand": {}, "grande": {},
	"haut": {}, "hein": {}, "hors": {},
	"ici": {}, "il": {}, "ils": {},
	"j": {}, "jamais": {}, "je": {}, "jusqu": {}, "jusque": {},
	"l": {}, "la": {}, "le": {}, "lequel": {}, "les": {}, "lesquelles": {},
	"lesquels": {}, "leur": {}, "leurs": {}, "lors": {}, "lui": {}, "là": {},
	"m": {}, "ma": {}, "mais": {}, "me": {}, "meme": {}, "memes": {},
	"mes": {}, "mieux": {}, "moi": {}, "moins": {}, "mon": {}, "même": {},
	"mêmes": {},
	"n": {}, "ne": {}, "ni": {}, "non": {}, "nos": {}, "notre": {},
	"nous": {},
	"on": {}, "ont": {}, "ou": {}, "où": {}, "oui": {},
	"par": {}, "parce": {}, "parmi": {}, "pas": {}, "pendant": {},
	"peu": {}, "peut": {}, "peuvent": {}, "plus": {}, "plusieurs": {},
	"pour": {}, "pourquoi": {}, "pres": {}, "près": {}, "puis": {},
	"qu": {}, "quand": {}, "que": {}, "quel": {}, "quelle": {},
	"quelles": {}, "quelque": {}, "quelques": {}, "quels": {}, "qui": {},
	"quoi": {},
	"rien": {},
	"s": {}, "sa": {}, "sans": {}, "se": {}, "selon": {}, "sera": {},
	"ses": {}, "seulement": {}, "si": {}, "sien": {}, "soi": {},
	"soit": {}, "son": {}, "sont": {}, "sous": {}, "sur": {},
	"t": {}, "ta": {}, "tandis": {}, "te": {}, "tes": {}, "toi": {},
	"ton": {}, "toujours": {}, "tous": {}, "tout": {}, "toute": {},
	"toutes": {}, "tres": {}, "trop": {}, "très": {}, "tu": {},
	"un": {}, "une": {},
	"va": {}, "vers": {}, "voici": {}, "voila": {}, "voilà": {},
	"vont": {}, "vos": {}, "votre": {}, "vous": {}, "vu": {},
	"y": {},
}

// englishStopwords is the built-in English stopword table, for corpora
// mixing English into the stream.
var englishStopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {},
	"against": {}, "all": {}, "am": {}, "an": {}, "and": {}, "any": {},
	"are": {}, "as": {}, "at": {}, "be": {}, "because": {}, "been": {},
	"before": {}, "being": {}, "below": {}, "between": {}, "both": {},
	"but": {}, "by": {}, "can": {}, "did": {}, "do": {}, "does": {},
	"doing": {}, "down": {}, "during": {}, "each": {}, "few": {},
	"for": {}, "from": {}, "further": {}, "had": {}, "has": {},
	"have": {}, "having": {}, "he": {}, "her": {}, "here": {},
	"hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {},
	"how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "its": {}, "itself": {}, "just": {}, "me": {}, "more": {},
	"most": {}, "my": {}, "myself": {}, "no": {}, "nor": {}, "not": {},
	"now": {}, "of": {}, "off": {}, "on": {}, "once": {}, "only": {},
	"or": {}, "other": {}, "our": {}, "ours": {}, "ourselves": {},
	"out": {}, "over": {}, "own": {}, "same": {}, "she": {},
	"should": {}, "so": {}, "some": {}, "such": {}, "than": {},
	"that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"themselves": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "very": {}, "was": {}, "we": {},
	"were": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "who": {}, "whom": {}, "why": {}, "will": {},
	"with": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},
	"yourselves": {},
}
