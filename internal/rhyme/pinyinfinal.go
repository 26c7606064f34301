package rhyme

// Pinyin-final → modern-class tables, ported in shape from the teacher's
// original Python rhythm module (rhythm/new_rhythm.py's xin_yun/tong_yun
// dicts), which is the "pinyin-final map" asset named in spec.md §6.
//
// Each entry maps a bare pinyin final (tone marks and initials stripped) to
// its class id in the 14-class (Xin) or 16-class (Tong) book. Finals not
// present in a table are out of scope for that book.

var xinFinalClass = map[string]int{
	"a": 1, "ia": 1, "ua": 1,
	"o": 2, "e": 2, "uo": 2,
	"ie": 3, "ue": 3, "ve": 3,
	"ai": 4, "uai": 4,
	"ei": 5, "uei": 5, "ui": 5,
	"ao": 6, "iao": 6,
	"ou": 7, "iu": 7, "iou": 7,
	"an": 8, "ian": 8, "uan": 8, "van": 8,
	"en": 9, "in": 9, "un": 9, "vn": 9, "uen": 9,
	"ang": 10, "iang": 10, "uang": 10,
	"ueng": 11, "eng": 11, "ing": 11, "ong": 11, "iong": 11,
	"i": 12, "er": 12, "v": 12,
	"-i": 13,
	"u": 14,
}

var tongFinalClass = map[string]int{
	"a": 1, "ia": 1, "ua": 1,
	"o": 2, "uo": 2,
	"e": 3, "ie": 3, "ue": 3, "ve": 3,
	"i": 4, "-i": 4,
	"u": 5,
	"v": 6,
	"ai": 7, "uai": 7,
	"ei": 8, "ui": 8, "uei": 8,
	"ao": 9, "iao": 9,
	"ou": 10, "iu": 10, "iou": 10,
	"an": 11, "ian": 11, "uan": 11, "van": 11,
	"en": 12, "in": 12, "uen": 12, "un": 12, "vn": 12,
	"ang": 13, "iang": 13, "uang": 13,
	"ueng": 14, "eng": 14, "ing": 14,
	"ong": 15, "iong": 15,
	"er": 16,
}

// xinClassNames and tongClassNames name each book's classes by its
// traditional representative character, used for report annotations.
var xinClassNames = []string{"麻", "波", "皆", "开", "微", "豪", "尤", "寒", "文", "唐", "庚", "齐", "支", "姑"}
var tongClassNames = []string{"啊", "喔", "鹅", "衣", "乌", "迂", "哀", "欸", "熬", "欧", "安", "恩", "昂", "英", "雍", "儿"}

func finalClassTable(book Book) map[string]int {
	switch book {
	case Xin:
		return xinFinalClass
	case Tong:
		return tongFinalClass
	default:
		return nil
	}
}

func classNames(book Book) []string {
	switch book {
	case Xin:
		return xinClassNames
	case Tong:
		return tongClassNames
	default:
		return nil
	}
}

// ClassName renders a signed modern-book class id (as produced by the
// oracle, where the sign carries the tone: positive level, negative
// oblique) as its traditional gloss, e.g. "尤" for class 7 of Xin.
func ClassName(book Book, signedClass int) string {
	names := classNames(book)
	if names == nil {
		return ""
	}
	n := signedClass
	if n < 0 {
		n = -n
	}
	if n < 1 || n > len(names) {
		return ""
	}
	return names[n-1]
}
