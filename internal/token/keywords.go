package token

// Зарезервированные слова. Регистрозависимо, точное совпадение.
var keywords = map[string]Kind{
	"syntax": KwSyntax,
	"data":   KwData,
	"forall": KwForall,
	"match":  KwMatch,
	"=>":     FatArrow,
	"=":      Assign,
	"|":      Bar,
	"*":      Star,
	"->":     Arrow,
	"def":    KwDef,
	"type":   KwType,
}

// LookupKeyword возвращает тип и bool если слово зарезервировано.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

// LookupPunct classifies single-character punctuation. It is consulted before
// any word is accumulated.
func LookupPunct(r rune) (Kind, bool) {
	switch r {
	case 'λ', '\\':
		return Lambda, true
	case '(':
		return LParen, true
	case ')':
		return RParen, true
	case '.':
		return Dot, true
	case ':':
		return Colon, true
	default:
		return Invalid, false
	}
}
