package ids

import (
	"fmt"
	"strings"

	"github.com/hectorgimenez/d2go/pkg/data/item"

	"github.com/hectorgimenez/d2rlabels/internal/locale"
)

// Rune is one of the 33 runes, numbered in drop order.
type Rune struct {
	Entry
	Number int
	// Code is the lowercase rune name used for highlight definition file names.
	Code  string
	Names locale.Text
}

type runeName struct {
	en, ru, ko, ja, zhTW, zhCN string
}

var runeNames = []runeName{
	{"El", "Эл", "엘", "エル", "艾爾", "艾尔"},
	{"Eld", "Элд", "엘드", "エルド", "艾德", "艾德"},
	{"Tir", "Тир", "티르", "ティル", "特爾", "特尔"},
	{"Nef", "Неф", "네프", "ネフ", "那夫", "那夫"},
	{"Eth", "Эт", "에스", "エス", "愛德", "爱德"},
	{"Ith", "Ит", "이스", "イス", "伊司", "伊司"},
	{"Tal", "Тал", "탈", "タル", "塔爾", "塔尔"},
	{"Ral", "Рал", "랄", "ラル", "拉爾", "拉尔"},
	{"Ort", "Орт", "오르트", "オルト", "歐特", "欧特"},
	{"Thul", "Тул", "툴", "スル", "書爾", "书尔"},
	{"Amn", "Амн", "암", "アムン", "安姆", "安姆"},
	{"Sol", "Сол", "솔", "ソル", "索爾", "索尔"},
	{"Shael", "Шаэль", "샤엘", "シェイル", "夏", "夏"},
	{"Dol", "Дол", "돌", "ドル", "多爾", "多尔"},
	{"Hel", "Хел", "헬", "ヘル", "海爾", "海尔"},
	{"Io", "Ио", "이오", "イオ", "伊歐", "伊欧"},
	{"Lum", "Лум", "룸", "ルム", "盧姆", "卢姆"},
	{"Ko", "Ко", "코", "コ", "科", "科"},
	{"Fal", "Фал", "팔", "ファル", "法爾", "法尔"},
	{"Lem", "Лем", "렘", "レム", "藍姆", "蓝姆"},
	{"Pul", "Пул", "풀", "プル", "普爾", "普尔"},
	{"Um", "Ум", "움", "ウム", "烏姆", "乌姆"},
	{"Mal", "Мал", "말", "マル", "馬爾", "马尔"},
	{"Ist", "Ист", "이스트", "イスト", "伊司特", "伊司特"},
	{"Gul", "Гул", "굴", "グル", "古爾", "古尔"},
	{"Vex", "Векс", "벡스", "ヴェクス", "伐克斯", "伐克斯"},
	{"Ohm", "Ом", "오움", "オーム", "歐姆", "欧姆"},
	{"Lo", "Ло", "로", "ロ", "羅", "罗"},
	{"Sur", "Сур", "수르", "スール", "瑟", "瑟"},
	{"Ber", "Бер", "베르", "ベル", "貝", "贝"},
	{"Jah", "Джа", "자", "ジャー", "喬", "乔"},
	{"Cham", "Чам", "참", "チャム", "查姆", "查姆"},
	{"Zod", "Зод", "조드", "ゾッド", "薩德", "萨德"},
}

const firstRuneID = 2103

var runes = NewTable(buildRunes())

func buildRunes() []Rune {
	list := make([]Rune, 0, len(runeNames))
	for i, n := range runeNames {
		num := i + 1
		list = append(list, Rune{
			Entry: Entry{
				Name: item.Name(n.en + "Rune"),
				Key:  fmt.Sprintf("r%02d", num),
				ID:   firstRuneID + i,
				File: FileItemRunes,
			},
			Number: num,
			Code:   strings.ToLower(n.en),
			Names:  localizedRuneNames(n),
		})
	}

	return list
}

func localizedRuneNames(n runeName) locale.Text {
	return locale.Text{
		locale.EnUS: n.en + " Rune",
		locale.RuRU: "Руна " + n.ru,
		locale.ZhTW: n.zhTW + "符文",
		locale.DeDE: n.en + "-Rune",
		locale.EsES: "Runa " + n.en,
		locale.FrFR: "Rune " + n.en,
		locale.ItIT: "Runa " + n.en,
		locale.KoKR: n.ko + " 룬",
		locale.PlPL: "Runa " + n.en,
		locale.EsMX: "Runa " + n.en,
		locale.JaJP: n.ja + "のルーン",
		locale.PtBR: "Runa " + n.en,
		locale.ZhCN: n.zhCN + "符文",
	}
}

// RuneByNumber returns the rune with the given 1-based ordinal.
func RuneByNumber(number int) (Rune, bool) {
	list := runes.All()
	if number < 1 || number > len(list) {
		return Rune{}, false
	}
	return list[number-1], true
}
