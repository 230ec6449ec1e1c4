package username

import (
	"strconv"
	"strings"
)

// Словари для генерации имён. Порядок и повторы значимы: индекс
// выбирается остатком от деления хэша, изменение списков меняет
// имена всех существующих пользователей.
var prefixes = []string{
	"crypto", "defi", "nft", "dao", "web3", "blockchain", "ether", "stark", "zero", "invi",
	"pay", "crypto", "defi", "nft", "dao", "web3", "blockchain", "ether", "stark", "zero", "invi",
}

var suffixes = []string{
	"master", "lord", "king", "queen", "ninja", "warrior", "hunter", "trader", "builder", "creator",
	"genius", "pro", "expert", "legend", "hero", "champion", "wizard", "sage", "oracle", "node",
}

// hash - хэш строки: h = (h << 5) - h + код символа, с переполнением
// знакового 32-битного числа. Не криптографический, коллизии возможны.
func hash(s string) int32 {
	var h int32
	for _, c := range s {
		h = (h << 5) - h + int32(c)
	}
	return h
}

// abs - модуль 32-битного хэша в 64 битах. Для минимального int32
// отрицание в int32 переполняется и даёт отрицательный индекс,
// поэтому расширяем до int64 перед отрицанием.
func abs(v int32) int64 {
	if v < 0 {
		return -int64(v)
	}
	return int64(v)
}

// Generate - детерминированная генерация имени пользователя из email.
// Один и тот же email всегда даёт одно и то же имя.
func Generate(email string) string {
	h := hash(email)

	prefix := prefixes[abs(h)%int64(len(prefixes))]
	suffix := suffixes[abs(h>>8)%int64(len(suffixes))]
	number := abs(h>>16)%999 + 1

	return prefix + suffix + strconv.FormatInt(number, 10)
}

// DisplayName - отображаемое имя из email: часть до @, только буквы,
// каждое слово с заглавной. Пустой результат заменяется на "User".
func DisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")

	// всё кроме латинских букв считаем разделителями слов
	words := strings.FieldsFunc(local, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	})

	var parts []string
	for _, word := range words {
		parts = append(parts, strings.ToUpper(word[:1])+strings.ToLower(word[1:]))
	}

	name := strings.Join(parts, " ")
	if name == "" {
		return "User"
	}
	return name
}
