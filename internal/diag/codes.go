package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0
	// Лексические (лексер пока не выдаёт ошибок)
	LexInfo Code = 1000

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynTokenMismatch      Code = 2002
	SynExpectIdentifier   Code = 2003
	SynUnexpectedTopLevel Code = 2004

	// Ввод-вывод
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Проект
	ProjManifestInvalid Code = 5001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexInfo:               "Lexical information",
		SynInfo:               "Syntax information",
		SynUnexpectedToken:    "Unexpected token",
		SynTokenMismatch:      "Expected a different token",
		SynExpectIdentifier:   "Expected an identifier",
		SynUnexpectedTopLevel: "Expected a definition",
		IOLoadFileError:       "Failed to load file",
		IOCacheError:          "Diagnostics cache failure",
		ProjManifestInvalid:   "Invalid project manifest",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
