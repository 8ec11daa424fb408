package gosuslugi

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// RegionCode identifies a Russian federal subject.
type RegionCode int

// String renders the code the way the registry expects it in URLs: two digits, zero-padded.
func (c RegionCode) String() string {
	return fmt.Sprintf("%02d", int(c))
}

// Name returns the human-readable region name, or an empty string for unknown codes.
func (c RegionCode) Name() string {
	return regionNames[c]
}

// regionNames maps region codes to region names. It is never mutated.
//
//nolint:gochecknoglobals // Read-only reference table.
var regionNames = map[RegionCode]string{
	1:  "Республика Адыгея",
	2:  "Республика Башкортостан",
	3:  "Республика Бурятия",
	4:  "Республика Алтай",
	5:  "Республика Дагестан",
	6:  "Республика Ингушетия",
	7:  "Кабардино-Балкарская Республика",
	8:  "Республика Калмыкия",
	9:  "Карачаево-Черкесская Республика",
	10: "Республика Карелия",
	11: "Республика Коми",
	12: "Республика Марий Эл",
	13: "Республика Мордовия",
	14: "Республика Саха (Якутия)",
	15: "Республика Северная Осетия - Алания",
	16: "Республика Татарстан",
	17: "Республика Тыва",
	18: "Удмуртская Республика",
	19: "Республика Хакасия",
	20: "Чеченская Республика",
	21: "Чувашская Республика",
	22: "Алтайский край",
	23: "Краснодарский край",
	24: "Красноярский край",
	25: "Приморский край",
	26: "Ставропольский край",
	27: "Хабаровский край",
	28: "Амурская область",
	29: "Архангельская область",
	30: "Астраханская область",
	31: "Белгородская область",
	32: "Брянская область",
	33: "Владимирская область",
	34: "Волгоградская область",
	35: "Вологодская область",
	36: "Воронежская область",
	37: "Ивановская область",
	38: "Иркутская область",
	39: "Калининградская область",
	40: "Калужская область",
	41: "Камчатский край",
	42: "Кемеровская область - Кузбасс",
	43: "Кировская область",
	44: "Костромская область",
	45: "Курганская область",
	46: "Курская область",
	47: "Ленинградская область",
	48: "Липецкая область",
	49: "Магаданская область",
	50: "Московская область",
	51: "Мурманская область",
	52: "Нижегородская область",
	53: "Новгородская область",
	54: "Новосибирская область",
	55: "Омская область",
	56: "Оренбургская область",
	57: "Орловская область",
	58: "Пензенская область",
	59: "Пермский край",
	60: "Псковская область",
	61: "Ростовская область",
	62: "Рязанская область",
	63: "Самарская область",
	64: "Саратовская область",
	65: "Сахалинская область",
	66: "Свердловская область",
	67: "Смоленская область",
	68: "Тамбовская область",
	69: "Тверская область",
	70: "Томская область",
	71: "Тульская область",
	72: "Тюменская область",
	73: "Ульяновская область",
	74: "Челябинская область",
	75: "Забайкальский край",
	76: "Ярославская область",
	77: "Москва",
	78: "Санкт-Петербург",
	79: "Еврейская автономная область",
	83: "Ненецкий автономный округ",
	86: "Ханты-Мансийский автономный округ - Югра",
	87: "Чукотский автономный округ",
	89: "Ямало-Ненецкий автономный округ",
	91: "Республика Крым",
	92: "Севастополь",
}

// RegionName returns the name of the region with the given code.
func RegionName(code RegionCode) (string, bool) {
	name, ok := regionNames[code]

	return name, ok
}

// RegionCodes returns all known region codes in ascending order.
func RegionCodes() []RegionCode {
	return slices.Sorted(maps.Keys(regionNames))
}

// ParseRegionCode parses a region code such as "77" or "07" and checks it against the reference.
func ParseRegionCode(text string) (RegionCode, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ErrRegionCodeIsAbsent, text)
	}

	code := RegionCode(value)
	if _, ok := regionNames[code]; !ok {
		return 0, fmt.Errorf("%w: '%s'", ErrRegionCodeIsAbsent, text)
	}

	return code, nil
}

func validateRegionCodes(codes []RegionCode) error {
	for _, code := range codes {
		if _, ok := regionNames[code]; !ok {
			return fmt.Errorf("%w: region code %d", ErrRegionCodeIsAbsent, int(code))
		}
	}

	return nil
}
