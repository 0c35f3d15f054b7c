package token

var keywords = map[string]Kind{
	"let":  KwLet,
	"in":   KwIn,
	"defn": KwDefn,
	"decl": KwDecl,
	"type": KwType,
}

// LookupKeyword reports whether ident names one of the language's reserved
// words and, if so, which Kind it lexes as. Keywords are case-sensitive;
// only the exact lowercase spelling is recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
