package validators

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature проверяет подпись тела нотификации. Подпись - это
// HMAC-SHA256 от тела запроса на общем секрете, в hex-кодировке.
// Сравнение выполняется за постоянное время, чтобы исключить атаки
// по времени ответа. Любая внутренняя ошибка (битый hex, подпись
// другой длины) даёт false, функция не паникует.
func VerifySignature(payload []byte, receivedHex string, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := mac.Sum(nil)

	received, err := hex.DecodeString(receivedHex)
	if err != nil {
		return false
	}

	// длина подписи не секретна, сравнение длин не раскрывает содержимое
	return hmac.Equal(expected, received)
}

// Sign вычисляет hex-подпись тела на общем секрете. Используется
// шлюзом и тестами для формирования заголовка chipi-signature.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// CheckAmount проверяет, что сумма платежа задана и положительна
func CheckAmount(amount float64) bool {
	return amount > 0
}
